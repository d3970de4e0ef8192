package pipeline

import (
	"fmt"
	"html"
	"strings"
)

// Block is one structural unit of a parsed document.
// The concrete types are Heading, Paragraph, List, Image and Raw.
type Block interface {
	block()
}

// Heading is a heading already mapped to its HTML level.
type Heading struct {
	Level int
	HTML  string
}

// Paragraph holds inline-formatted paragraph content.
type Paragraph struct {
	HTML string
}

// List is a bullet list with at most one level of nesting.
type List struct {
	Items []ListItem
}

// ListItem is one top-level list entry and its nested entries.
type ListItem struct {
	HTML     string
	Children []string
}

// Image is a captioned figure.
type Image struct {
	Src         string
	Alt         string // plain text, emphasis markers removed
	CaptionHTML string // inline-formatted alt text
}

// Raw is markup passed through without a wrapper.
type Raw struct {
	HTML string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (List) block()      {}
func (Image) block()     {}
func (Raw) block()       {}

// RenderBlocks renders blocks to HTML in order, one block per line.
func RenderBlocks(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, renderBlock(b))
	}
	return strings.Join(parts, "\n")
}

// renderBlock renders a single block.
func renderBlock(b Block) string {
	switch b := b.(type) {
	case Heading:
		return fmt.Sprintf("<h%d>%s</h%d>", b.Level, b.HTML, b.Level)
	case Paragraph:
		return "<p>" + b.HTML + "</p>"
	case List:
		return renderList(b)
	case Image:
		return fmt.Sprintf(`<figure><img class="report-image" src="%s" alt="%s"><figcaption>%s</figcaption></figure>`,
			html.EscapeString(b.Src), html.EscapeString(b.Alt), b.CaptionHTML)
	case Raw:
		return b.HTML
	default:
		return ""
	}
}

// renderList renders a list, nesting children inside their parent item.
func renderList(l List) string {
	parts := []string{"<ul>"}
	for _, item := range l.Items {
		if len(item.Children) == 0 {
			parts = append(parts, "<li>"+item.HTML+"</li>")
			continue
		}
		parts = append(parts, "<li>"+item.HTML, "<ul>")
		for _, child := range item.Children {
			parts = append(parts, "<li>"+child+"</li>")
		}
		parts = append(parts, "</ul>", "</li>")
	}
	parts = append(parts, "</ul>")
	return strings.Join(parts, "\n")
}
