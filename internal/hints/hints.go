// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-nbsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run 'nbsite init-config'"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-nbsite") {
			hint += " and save it as " + p
			break
		}
	}

	return format(hint)
}

// ForNotebooksDir returns hints when no notebooks directory is found.
func ForNotebooksDir() string {
	return format("use --notebooks /path/to/notebooks or set paths.notebooksDir")
}

// ForReportNotFound returns hints when the report file is missing.
func ForReportNotFound() string {
	return format("use --report /path/to/Project_Report.md or set paths.report")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForMalformedNotebook returns a hint for notebooks that fail to decode.
func ForMalformedNotebook() string {
	return format("re-save the notebook from Jupyter; the page shows an error block instead")
}

// ForUnmappedSections returns a hint listing the mapped section names.
func ForUnmappedSections(mapped []string) string {
	if len(mapped) == 0 {
		return ""
	}
	return format("mapped sections: " + strings.Join(mapped, ", "))
}

// ForTemplateSet returns hints for template set loading errors.
func ForTemplateSet(name string) string {
	return formatHints([]string{
		"expected templates/" + name + "/notebook.html and report.html under --asset-path",
		"omit --asset-path to use the built-in templates",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
