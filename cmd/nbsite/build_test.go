package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-nbsite/internal/config"
)

// ---------------------------------------------------------------------------
// TestHintFor - Hints attached to fatal errors
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	userPath := "/home/u/.config/go-nbsite/site.yaml"

	tests := []struct {
		name     string
		err      error
		contains string
		excludes string
	}{
		{
			name:     "config not found suggests the user config path",
			err:      fmt.Errorf("loading config: %w", &config.NotFoundError{Tried: []string{"site.yaml", "site.yml", userPath}}),
			contains: "save it as " + userPath,
		},
		{
			name:     "config not found without searched paths",
			err:      config.ErrConfigNotFound,
			contains: "init-config",
			excludes: "save it as",
		},
		{
			name:     "explicit config path",
			err:      &config.NotFoundError{Tried: []string{"./missing.yaml"}},
			contains: "--config",
			excludes: "save it as",
		},
		{
			name:     "missing report",
			err:      fmt.Errorf("%w: tried Project_Report.md", ErrNoReport),
			contains: "--report",
		},
		{
			name:     "missing notebooks directory",
			err:      ErrNoNotebooksDir,
			contains: "--notebooks",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("hintFor() = %q, should not contain %q", got, tt.excludes)
			}
		})
	}
}

func TestHintFor_Unknown(t *testing.T) {
	t.Parallel()

	if got := hintFor(errors.New("boom")); got != "" {
		t.Errorf("hintFor() = %q, want empty", got)
	}
}
