package pipeline

import (
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// CodeHighlighter renders code cell source as HTML safe to place inside
// <pre><code>.
type CodeHighlighter interface {
	Highlight(code, language string) string
}

// PlainHighlighter escapes code without any syntax markup.
type PlainHighlighter struct{}

// Highlight returns the HTML-escaped code.
func (PlainHighlighter) Highlight(code, _ string) string {
	return html.EscapeString(code)
}

// ChromaHighlighter adds CSS-class based syntax markup using chroma.
// The site stylesheet is expected to define the chroma classes.
type ChromaHighlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewChromaHighlighter creates a ChromaHighlighter.
func NewChromaHighlighter() *ChromaHighlighter {
	return &ChromaHighlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
		style: styles.Fallback,
	}
}

// Highlight tokenizes code with the lexer for language. Any lexer or
// formatter failure falls back to plain escaping.
func (c *ChromaHighlighter) Highlight(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return html.EscapeString(code)
	}

	var buf strings.Builder
	if err := c.formatter.Format(&buf, c.style, iterator); err != nil {
		return html.EscapeString(code)
	}
	return buf.String()
}

// Compile-time interface checks.
var (
	_ CodeHighlighter = PlainHighlighter{}
	_ CodeHighlighter = (*ChromaHighlighter)(nil)
)
