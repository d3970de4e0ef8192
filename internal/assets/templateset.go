package assets

import (
	"fmt"
	"strings"
)

// TemplateSet holds the page templates of one site layout.
type TemplateSet struct {
	Name     string // Identifier (name or directory path)
	Notebook string // Notebook page template
	Report   string // Report section page template
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// Template file names inside a set directory.
const (
	notebookTemplateFile = "notebook.html"
	reportTemplateFile   = "report.html"
)

// templateFiles lists the files every set must provide.
var templateFiles = []string{notebookTemplateFile, reportTemplateFile}

// newTemplateSet builds a set from file contents keyed by file name.
func newTemplateSet(name string, files map[string]string) *TemplateSet {
	return &TemplateSet{
		Name:     name,
		Notebook: files[notebookTemplateFile],
		Report:   files[reportTemplateFile],
	}
}

// ValidateAssetName checks that a set name is safe for use as a directory name.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots, or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
