package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alnah/go-nbsite/internal/assets"
)

// ErrPageRender indicates a page template failed to parse or execute.
var ErrPageRender = errors.New("page template rendering failed")

// NavEntry is one notebook in the site navigation.
type NavEntry struct {
	PageID string
	Name   string
}

// NavItem is a rendered navigation list entry.
type NavItem struct {
	NavEntry
	Current bool
}

// Navigation is the configured notebook order and the current position.
type Navigation struct {
	Entries []NavEntry
	Current int
}

// Prev returns the previous entry, or nil at the first position.
func (n Navigation) Prev() *NavEntry {
	if n.Current <= 0 || n.Current > len(n.Entries)-1 {
		return nil
	}
	e := n.Entries[n.Current-1]
	return &e
}

// Next returns the next entry, or nil at the last position.
func (n Navigation) Next() *NavEntry {
	if n.Current < 0 || n.Current >= len(n.Entries)-1 {
		return nil
	}
	e := n.Entries[n.Current+1]
	return &e
}

// Items returns every entry with the current one flagged.
func (n Navigation) Items() []NavItem {
	items := make([]NavItem, len(n.Entries))
	for i, e := range n.Entries {
		items[i] = NavItem{NavEntry: e, Current: i == n.Current}
	}
	return items
}

// PanelFooter is the optional block at the bottom of the notebook panel.
type PanelFooter struct {
	Title string
	Text  string
}

// NotebookPage holds everything rendered on a notebook page.
type NotebookPage struct {
	Title       string
	Subtitle    string // trusted markup
	Description string
	Navigation  Navigation
	Content     string // rendered cells
	SourceFile  string
	CodeCells   int
	Figures     int
	Footer      *PanelFooter
}

// ReportPage holds everything rendered on a report section page.
type ReportPage struct {
	Title      string
	Subtitle   string // trusted markup
	Content    string // rendered blocks
	RightPanel string // trusted markup
}

// notebookView is the template data of a notebook page.
type notebookView struct {
	Title       string
	Subtitle    template.HTML
	Description string
	Prev        *NavEntry
	Next        *NavEntry
	Nav         []NavItem
	Content     template.HTML
	SourceFile  string
	CodeCells   int
	Figures     int
	Footer      *PanelFooter
}

// reportView is the template data of a report page.
type reportView struct {
	Title      string
	Subtitle   template.HTML
	Content    template.HTML
	RightPanel template.HTML
}

// PageAssembler wraps rendered content in the page templates.
// Every page is a pair of divs, content-middle and content-right.
type PageAssembler struct {
	notebook *template.Template
	report   *template.Template
}

// NewPageAssembler parses the templates of a template set.
func NewPageAssembler(set *assets.TemplateSet) (*PageAssembler, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil template set", ErrPageRender)
	}

	nb, err := template.New("notebook").Parse(set.Notebook)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing notebook template: %v", ErrPageRender, err)
	}
	rp, err := template.New("report").Parse(set.Report)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing report template: %v", ErrPageRender, err)
	}

	return &PageAssembler{notebook: nb, report: rp}, nil
}

// Notebook assembles a notebook page.
func (a *PageAssembler) Notebook(page *NotebookPage) (string, error) {
	nav := page.Navigation
	// #nosec G203 -- Subtitle comes from site configuration, Content is built by this package
	view := notebookView{
		Title:       page.Title,
		Subtitle:    template.HTML(page.Subtitle),
		Description: page.Description,
		Prev:        nav.Prev(),
		Next:        nav.Next(),
		Nav:         nav.Items(),
		Content:     template.HTML(page.Content),
		SourceFile:  page.SourceFile,
		CodeCells:   page.CodeCells,
		Figures:     page.Figures,
		Footer:      page.Footer,
	}
	return execute(a.notebook, view)
}

// Report assembles a report section page.
func (a *PageAssembler) Report(page *ReportPage) (string, error) {
	// #nosec G203 -- all three fields are trusted markup
	view := reportView{
		Title:      page.Title,
		Subtitle:   template.HTML(page.Subtitle),
		Content:    template.HTML(page.Content),
		RightPanel: template.HTML(page.RightPanel),
	}
	return execute(a.report, view)
}

// execute renders a template and trims surrounding whitespace.
func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// ErrorPage renders the fragment shown in place of a document that could
// not be converted. It never fails.
func ErrorPage(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return `<div class="content-middle"><h1>Error</h1><p>` + html.EscapeString(msg) + `</p></div>`
}
