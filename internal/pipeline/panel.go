package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrPanelConversion indicates a right panel could not be converted.
var ErrPanelConversion = errors.New("panel conversion failed")

// PanelConverter converts pre-authored right panel markdown to HTML.
// Panels are site chrome written by the site author, so full CommonMark
// with GFM applies here, unlike document bodies.
type PanelConverter struct {
	md goldmark.Markdown
}

// NewPanelConverter creates a PanelConverter with GFM and class-based code highlighting.
func NewPanelConverter() *PanelConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			html.WithUnsafe(), // panels may mix raw HTML such as <br>
		),
	)
	return &PanelConverter{md: md}
}

// ToHTML converts panel markdown to an HTML fragment.
func (c *PanelConverter) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPanelConversion, err)
	}
	return buf.String(), nil
}

// ResolvePanel returns normalized panel HTML from either raw HTML or
// markdown. Markdown wins when both are set.
func (c *PanelConverter) ResolvePanel(rawHTML, markdown string) (string, error) {
	content := rawHTML
	if markdown != "" {
		converted, err := c.ToHTML(markdown)
		if err != nil {
			return "", err
		}
		content = converted
	}

	normalized, err := NormalizeFragment(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPanelConversion, err)
	}
	return normalized, nil
}
