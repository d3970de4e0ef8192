package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PathRewrite maps a source-relative path prefix to an output-relative one.
type PathRewrite struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultImageRewrites returns the rules for report images.
// Report sources reference notebooks/images/..., while pages are served from
// docs/pages/ next to docs/images/.
func DefaultImageRewrites() []PathRewrite {
	return []PathRewrite{
		{From: "notebooks/images/", To: "../images/"},
		{From: "notebooks/", To: "../images/"},
	}
}

// RewriteImagePath applies the first rule whose prefix matches path.
// Paths matching no rule are returned unchanged.
func RewriteImagePath(path string, rules []PathRewrite) string {
	for _, r := range rules {
		if r.From != "" && strings.HasPrefix(path, r.From) {
			return r.To + path[len(r.From):]
		}
	}
	return path
}

// NormalizeFragment parses an HTML fragment and renders it back, closing
// unbalanced tags so the fragment cannot leak out of its container.
// Empty input is returned unchanged.
func NormalizeFragment(content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return content, nil
	}

	// Parse with a <div> context so the fragment is not wrapped in <html><body>.
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
