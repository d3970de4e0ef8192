// Package notebook decodes executable notebook documents (.ipynb).
//
// Decoding is lenient: only the top-level structure must be a JSON object.
// Unknown fields are ignored and payloads that are neither a string nor a
// list of strings decode as empty text.
package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed indicates the document is not a decodable notebook.
var ErrMalformed = errors.New("malformed notebook")

// CellKind is the type tag of a cell.
type CellKind string

// Cell kinds.
const (
	KindMarkdown CellKind = "markdown"
	KindCode     CellKind = "code"
	KindRaw      CellKind = "raw"
)

// OutputType is the type tag of a code cell output.
type OutputType string

// Output types.
const (
	OutputStream        OutputType = "stream"
	OutputExecuteResult OutputType = "execute_result"
	OutputDisplayData   OutputType = "display_data"
	OutputError         OutputType = "error"
)

// MultilineString is a text field stored either as a single string or as a
// list of line fragments, which are joined without separators.
type MultilineString string

// UnmarshalJSON accepts a string, a list of strings, or null.
// Any other value decodes as the empty string.
func (m *MultilineString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MultilineString(s)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err == nil {
		*m = MultilineString(strings.Join(parts, ""))
		return nil
	}

	*m = ""
	return nil
}

// String returns the joined text.
func (m MultilineString) String() string {
	return string(m)
}

// Output is one captured execution result of a code cell.
type Output struct {
	Type      OutputType                 `json:"output_type"`
	Name      string                     `json:"name,omitempty"`
	Text      MultilineString            `json:"text,omitempty"`
	Data      map[string]MultilineString `json:"data,omitempty"`
	EName     string                     `json:"ename,omitempty"`
	EValue    string                     `json:"evalue,omitempty"`
	Traceback []string                   `json:"traceback,omitempty"`
}

// Cell is one markdown, code or raw cell.
type Cell struct {
	Kind    CellKind        `json:"cell_type"`
	Source  MultilineString `json:"source"`
	Outputs []Output        `json:"outputs,omitempty"`
}

// IsEmpty reports whether the cell source is blank.
func (c Cell) IsEmpty() bool {
	return strings.TrimSpace(string(c.Source)) == ""
}

// KernelSpec describes the kernel that produced the outputs.
type KernelSpec struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	DisplayName string `json:"display_name"`
}

// LanguageInfo describes the notebook programming language.
type LanguageInfo struct {
	Name string `json:"name"`
}

// Metadata is the subset of notebook metadata used for rendering.
type Metadata struct {
	KernelSpec   KernelSpec   `json:"kernelspec"`
	LanguageInfo LanguageInfo `json:"language_info"`
}

// Notebook is a decoded notebook document.
type Notebook struct {
	Cells         []Cell   `json:"cells"`
	Metadata      Metadata `json:"metadata"`
	NBFormat      int      `json:"nbformat"`
	NBFormatMinor int      `json:"nbformat_minor"`
}

// DefaultLanguage is assumed when the notebook metadata names none.
const DefaultLanguage = "python"

// Language returns the notebook programming language.
func (n *Notebook) Language() string {
	if n.Metadata.LanguageInfo.Name != "" {
		return n.Metadata.LanguageInfo.Name
	}
	if n.Metadata.KernelSpec.Language != "" {
		return n.Metadata.KernelSpec.Language
	}
	return DefaultLanguage
}

// RenderableCells returns the cells with non-blank sources, in order.
func (n *Notebook) RenderableCells() []Cell {
	cells := make([]Cell, 0, len(n.Cells))
	for _, c := range n.Cells {
		if c.IsEmpty() {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

// Parse decodes a notebook from raw bytes.
func Parse(data []byte) (*Notebook, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformed)
	}

	var nb Notebook
	if err := json.Unmarshal(trimmed, &nb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &nb, nil
}
