package pipeline

import (
	"fmt"
	"strings"

	"github.com/alnah/go-nbsite/internal/notebook"
)

// CellsResult is the rendered body of a notebook.
type CellsResult struct {
	HTML      string
	CodeCells int
	Figures   int
}

// CellRenderer renders notebook cells to HTML.
type CellRenderer struct {
	parser      *Parser
	highlighter CodeHighlighter
}

// NewCellRenderer creates a CellRenderer. A nil highlighter escapes code
// without syntax markup.
func NewCellRenderer(h CodeHighlighter) *CellRenderer {
	if h == nil {
		h = PlainHighlighter{}
	}
	return &CellRenderer{
		parser:      NewParser(NotebookDialect()),
		highlighter: h,
	}
}

// Render renders every non-blank cell in order. Blank cells are skipped
// and do not count towards the code cell or figure totals. Raw cells are
// not rendered.
func (r *CellRenderer) Render(nb *notebook.Notebook) CellsResult {
	var result CellsResult
	var parts []string
	language := nb.Language()

	for _, cell := range nb.RenderableCells() {
		switch cell.Kind {
		case notebook.KindMarkdown:
			body := RenderBlocks(r.parser.ParseText(cell.Source.String()))
			parts = append(parts, `<div class="cell-markdown">`+body+"</div>")
		case notebook.KindCode:
			result.CodeCells++
			outputs, figures := RenderOutputs(cell.Outputs)
			result.Figures += figures
			parts = append(parts, r.renderCode(cell, language, result.CodeCells, outputs))
		}
	}

	result.HTML = strings.Join(parts, "\n")
	return result
}

// renderCode renders a folded code cell followed by its outputs.
func (r *CellRenderer) renderCode(cell notebook.Cell, language string, n int, outputs string) string {
	code := r.highlighter.Highlight(cell.Source.String(), language)

	var buf strings.Builder
	buf.WriteString(`<div class="cell-code-wrapper">` + "\n")
	buf.WriteString(`<details class="code-fold">` + "\n")
	fmt.Fprintf(&buf, `<summary class="code-fold-toggle">Code Cell %d</summary>`+"\n", n)
	buf.WriteString(`<pre class="cell-code"><code>` + code + "</code></pre>\n")
	buf.WriteString("</details>\n")
	if outputs != "" {
		buf.WriteString(outputs + "\n")
	}
	buf.WriteString("</div>")
	return buf.String()
}
