package nbsite

import (
	"fmt"
	"strings"
)

// DefaultSubtitle is shown under every page title when the site sets none.
const DefaultSubtitle = "Hot City, Heated Calls:<br>Understanding Extreme Heat and Quality of Life<br>Using New York City's 311 and SHAP"

// NotebookEntry describes one notebook page. The order of entries in a Site
// is the navigation order.
type NotebookEntry struct {
	File        string // notebook file name, e.g. "eda.ipynb"
	PageID      string // output page name without extension
	NavName     string // label in the navigation list
	Title       string
	Description string
}

// Validate checks that required fields are present.
func (e NotebookEntry) Validate() error {
	if strings.TrimSpace(e.File) == "" {
		return fmt.Errorf("%w: file is required", ErrInvalidNotebook)
	}
	if strings.TrimSpace(e.PageID) == "" {
		return fmt.Errorf("%w: %s: page id is required", ErrInvalidNotebook, e.File)
	}
	if strings.ContainsAny(e.PageID, `/\`) {
		return fmt.Errorf("%w: %s: page id %q contains a path separator", ErrInvalidNotebook, e.File, e.PageID)
	}
	return nil
}

// SectionEntry maps a numbered report section to its page.
type SectionEntry struct {
	Name               string // heading text after "# ", e.g. "1. INTRODUCTION"
	PageFile           string // output file name, e.g. "01_introduction.html"
	PageTitle          string
	RightPanel         string // pre-authored HTML
	RightPanelMarkdown string // pre-authored markdown, wins over RightPanel
}

// Validate checks that required fields are present.
func (e SectionEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSection)
	}
	if strings.TrimSpace(e.PageFile) == "" {
		return fmt.Errorf("%w: %s: page file is required", ErrInvalidSection, e.Name)
	}
	if strings.ContainsAny(e.PageFile, `/\`) {
		return fmt.Errorf("%w: %s: page file %q contains a path separator", ErrInvalidSection, e.Name, e.PageFile)
	}
	return nil
}

// Footer is the block at the bottom of the notebook right panel.
type Footer struct {
	Title string
	Text  string
}

// Site is the static description of the website: which notebooks become
// pages and which report sections are published.
type Site struct {
	Notebooks []NotebookEntry
	Sections  []SectionEntry
	Subtitle  string  // trusted markup, DefaultSubtitle when empty
	Footer    *Footer // nil hides the footer
}

// Validate checks every entry and rejects duplicate page ids and section names.
func (s *Site) Validate() error {
	if s == nil || (len(s.Notebooks) == 0 && len(s.Sections) == 0) {
		return ErrEmptySite
	}

	pages := make(map[string]bool)
	for _, nb := range s.Notebooks {
		if err := nb.Validate(); err != nil {
			return err
		}
		if pages[nb.PageID] {
			return fmt.Errorf("%w: %q", ErrDuplicatePageID, nb.PageID)
		}
		pages[nb.PageID] = true
	}

	names := make(map[string]bool)
	for _, sec := range s.Sections {
		if err := sec.Validate(); err != nil {
			return err
		}
		if names[sec.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSection, sec.Name)
		}
		names[sec.Name] = true
	}

	return nil
}

// subtitle returns the configured subtitle or the default one.
func (s *Site) subtitle() string {
	if s.Subtitle == "" {
		return DefaultSubtitle
	}
	return s.Subtitle
}

// NotebookResult is the outcome of converting one notebook.
// A malformed notebook still has HTML: the error page.
type NotebookResult struct {
	Entry     NotebookEntry
	HTML      string
	CodeCells int
	Figures   int
	Err       error
}

// SectionResult is the outcome of converting one report section.
type SectionResult struct {
	Entry SectionEntry
	HTML  string
	Err   error
}

// ReportResult is the outcome of converting the report.
type ReportResult struct {
	Title    string   // front matter title, "" when absent
	Found    []string // every section name, in document order
	Sections []SectionResult
	Skipped  []string       // section names with no mapping, in document order
	Meta     map[string]any // front matter, nil when absent or unparsable
}
