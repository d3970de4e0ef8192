package nbsite

// Notes:
// - Builder is tested through its public operations with in-memory notebooks
//   (fstest.MapFS), so no test touches the filesystem.
// - Page markup is checked by substring; the templates own the layout.

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"
)

const sampleNotebook = `{
  "cells": [
    {"cell_type": "markdown", "source": "## Setup\nUses __pandas__."},
    {"cell_type": "code", "source": ["import pandas as pd\n", "df = pd.read_csv('x')"], "outputs": [
      {"output_type": "display_data", "data": {"image/png": "iVBORw0KGgo=", "text/plain": "<Figure>"}},
      {"output_type": "execute_result", "data": {"text/plain": ["   a\n", "0  1"]}}
    ]},
    {"cell_type": "code", "source": "", "outputs": []},
    {"cell_type": "raw", "source": "ignored"}
  ],
  "metadata": {},
  "nbformat": 4,
  "nbformat_minor": 5
}`

func testSite() Site {
	return Site{
		Notebooks: []NotebookEntry{
			{File: "a.ipynb", PageID: "page_a", NavName: "1. A", Title: "Alpha", Description: "First step."},
			{File: "b.ipynb", PageID: "page_b", NavName: "2. B", Title: "Beta"},
			{File: "c.ipynb", PageID: "page_c", NavName: "3. C", Title: "Gamma"},
		},
		Sections: []SectionEntry{
			{Name: "1. INTRODUCTION", PageFile: "01_introduction.html", PageTitle: "Introduction", RightPanel: "<h2>Panel</h2>"},
			{Name: "2. RESULTS", PageFile: "02_results.html", PageTitle: "Results", RightPanelMarkdown: "**Key** finding"},
		},
		Footer: &Footer{Title: "Data Pipeline", Text: "A → B"},
	}
}

func newTestBuilder(t *testing.T, opts ...Option) *Builder {
	t.Helper()

	b, err := New(testSite(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return b
}

// ---------------------------------------------------------------------------
// TestNew - Construction and validation
// ---------------------------------------------------------------------------

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		site    Site
		opts    []Option
		wantErr error
	}{
		{
			name: "valid site",
			site: testSite(),
		},
		{
			name:    "empty site",
			site:    Site{},
			wantErr: ErrEmptySite,
		},
		{
			name: "duplicate page id",
			site: Site{Notebooks: []NotebookEntry{
				{File: "a.ipynb", PageID: "same"},
				{File: "b.ipynb", PageID: "same"},
			}},
			wantErr: ErrDuplicatePageID,
		},
		{
			name: "duplicate section",
			site: Site{Sections: []SectionEntry{
				{Name: "1. A", PageFile: "a.html"},
				{Name: "1. A", PageFile: "b.html"},
			}},
			wantErr: ErrDuplicateSection,
		},
		{
			name:    "page id with separator",
			site:    Site{Notebooks: []NotebookEntry{{File: "a.ipynb", PageID: "../a"}}},
			wantErr: ErrInvalidNotebook,
		},
		{
			name:    "section without page file",
			site:    Site{Sections: []SectionEntry{{Name: "1. A"}}},
			wantErr: ErrInvalidSection,
		},
		{
			name:    "unknown template set",
			site:    testSite(),
			opts:    []Option{WithTemplateSet("nonexistent")},
			wantErr: ErrTemplateSetMissing,
		},
		{
			name:    "missing asset path",
			site:    testSite(),
			opts:    []Option{WithAssetPath("/nonexistent/nbsite/assets")},
			wantErr: ErrInvalidAssetPath,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := New(tt.site, tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if len(b.Site().Notebooks) != len(tt.site.Notebooks) {
				t.Errorf("Site() lost notebooks")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvertNotebook - Single notebook conversion
// ---------------------------------------------------------------------------

func TestConvertNotebook(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)

	t.Run("renders page", func(t *testing.T) {
		t.Parallel()

		r := b.ConvertNotebook(1, []byte(sampleNotebook))
		if r.Err != nil {
			t.Fatalf("Err = %v", r.Err)
		}
		if r.CodeCells != 1 {
			t.Errorf("CodeCells = %d, want 1", r.CodeCells)
		}
		if r.Figures != 1 {
			t.Errorf("Figures = %d, want 1", r.Figures)
		}
		for _, want := range []string{
			"<h1>CODE: Beta</h1>",
			"<h2>Setup</h2>",
			"<strong>pandas</strong>",
			"Code Cell 1",
			"data:image/png;base64,iVBORw0KGgo=",
			`data-page="page_a" class="notebook-prev"`,
			`data-page="page_c" class="notebook-next"`,
			`class="notebook-nav-current"><a href="#" data-page="page_b"`,
			"<b>Source:</b> b.ipynb",
			"Data Pipeline",
			"Understanding Extreme Heat",
		} {
			if !strings.Contains(r.HTML, want) {
				t.Errorf("page missing %q", want)
			}
		}
		if strings.Contains(r.HTML, "ignored") {
			t.Error("raw cells must not be rendered")
		}
	})

	t.Run("first page has no previous link", func(t *testing.T) {
		t.Parallel()

		r := b.ConvertNotebook(0, []byte(sampleNotebook))
		if strings.Contains(r.HTML, "notebook-prev") {
			t.Error("unexpected previous link on first page")
		}
		if !strings.Contains(r.HTML, "First step.") {
			t.Error("missing description")
		}
	})

	t.Run("last page has no next link", func(t *testing.T) {
		t.Parallel()

		r := b.ConvertNotebook(2, []byte(sampleNotebook))
		if strings.Contains(r.HTML, "notebook-next") {
			t.Error("unexpected next link on last page")
		}
	})

	t.Run("malformed notebook", func(t *testing.T) {
		t.Parallel()

		r := b.ConvertNotebook(0, []byte("not json"))
		if !errors.Is(r.Err, ErrMalformedNotebook) {
			t.Fatalf("Err = %v, want ErrMalformedNotebook", r.Err)
		}
		if !strings.HasPrefix(r.HTML, `<div class="content-middle"><h1>Error</h1><p>`) {
			t.Errorf("HTML = %q, want error page", r.HTML)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()

		r := b.ConvertNotebook(7, []byte(sampleNotebook))
		if !errors.Is(r.Err, ErrInvalidNotebook) {
			t.Errorf("Err = %v, want ErrInvalidNotebook", r.Err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvertNotebook_NoFooter - Footer omitted
// ---------------------------------------------------------------------------

func TestConvertNotebook_NoFooter(t *testing.T) {
	t.Parallel()

	site := testSite()
	site.Footer = nil
	site.Subtitle = "Custom subtitle"
	b, err := New(site)
	if err != nil {
		t.Fatal(err)
	}

	r := b.ConvertNotebook(0, []byte(sampleNotebook))
	if strings.Contains(r.HTML, "panel-right-footer") {
		t.Error("footer rendered for a site without one")
	}
	if !strings.Contains(r.HTML, "<h2>Custom subtitle</h2>") {
		t.Error("custom subtitle not rendered")
	}
}

// ---------------------------------------------------------------------------
// TestBuildNotebooks - Batch conversion
// ---------------------------------------------------------------------------

func TestBuildNotebooks(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := newTestBuilder(t, WithLogger(logger))

	src := fstest.MapFS{
		"a.ipynb": {Data: []byte(sampleNotebook)},
		"c.ipynb": {Data: []byte("[]")},
	}

	results, err := b.BuildNotebooks(context.Background(), src)
	if err != nil {
		t.Fatalf("BuildNotebooks() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}

	if results[0].Err != nil || results[0].Entry.PageID != "page_a" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if !errors.Is(results[1].Err, ErrNotebookNotFound) || results[1].HTML != "" {
		t.Errorf("results[1] Err = %v, want ErrNotebookNotFound and no HTML", results[1].Err)
	}
	if !errors.Is(results[2].Err, ErrMalformedNotebook) {
		t.Errorf("results[2] Err = %v, want ErrMalformedNotebook", results[2].Err)
	}

	for _, want := range []string{`msg="templates loaded" set=default custom=false`, "notebook converted", "notebook skipped", "malformed notebook"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("logs missing %q", want)
		}
	}
}

func TestBuildNotebooks_Canceled(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := b.BuildNotebooks(ctx, fstest.MapFS{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results after cancel", len(results))
	}
}

// ---------------------------------------------------------------------------
// TestConvertReport - Section splitting and mapping
// ---------------------------------------------------------------------------

func TestConvertReport(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)

	report := strings.Join([]string{
		"---",
		"title: Report",
		"---",
		"Intro text that belongs to no section.",
		"",
		"# 1. INTRODUCTION",
		"",
		"## Background",
		"Heat **kills**.",
		"",
		"# 2. RESULTS",
		"![Map](notebooks/images/map.png)",
		"",
		"# 9. EXTRA",
		"Unmapped.",
	}, "\n")

	result, err := b.ConvertReport(context.Background(), report)
	if err != nil {
		t.Fatalf("ConvertReport() error = %v", err)
	}

	if got := strings.Join(result.Found, "|"); got != "1. INTRODUCTION|2. RESULTS|9. EXTRA" {
		t.Errorf("Found = %q", got)
	}
	if len(result.Skipped) != 1 || result.Skipped[0] != "9. EXTRA" {
		t.Errorf("Skipped = %v, want [9. EXTRA]", result.Skipped)
	}
	if result.Meta["title"] != "Report" {
		t.Errorf("Meta = %v, want title", result.Meta)
	}
	if result.Title != "Report" {
		t.Errorf("Title = %q, want %q", result.Title, "Report")
	}
	if len(result.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(result.Sections))
	}

	intro := result.Sections[0]
	if intro.Err != nil {
		t.Fatalf("intro Err = %v", intro.Err)
	}
	for _, want := range []string{
		"<h1>Introduction</h1>",
		"<h1>Background</h1>",
		"<p>Heat <strong>kills</strong>.</p>",
		"<h2>Panel</h2>",
	} {
		if !strings.Contains(intro.HTML, want) {
			t.Errorf("intro page missing %q:\n%s", want, intro.HTML)
		}
	}
	if strings.Contains(intro.HTML, "Intro text") {
		t.Error("preamble leaked into first section")
	}

	results := result.Sections[1].HTML
	if !strings.Contains(results, `src="../images/map.png"`) {
		t.Errorf("image path not rewritten:\n%s", results)
	}
	if !strings.Contains(results, "<strong>Key</strong> finding") {
		t.Errorf("markdown right panel not converted:\n%s", results)
	}
}

func TestConvertReport_ImageRewrites(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t, WithImageRewrites([]ImageRewrite{{From: "notebooks/", To: "/static/"}}))

	result, err := b.ConvertReport(context.Background(), "# 2. RESULTS\n![Map](notebooks/images/map.png)\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(result.Sections[0].HTML, `src="/static/images/map.png"`) {
		t.Errorf("custom rewrite not applied:\n%s", result.Sections[0].HTML)
	}
}

func TestConvertReport_NoSections(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	result, err := b.ConvertReport(context.Background(), "Just text.\n## Not numbered\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Found) != 0 || len(result.Sections) != 0 {
		t.Errorf("expected no sections, got %+v", result)
	}
}

func TestConvertReport_InvalidFrontMatter(t *testing.T) {
	t.Parallel()

	b := newTestBuilder(t)
	result, err := b.ConvertReport(context.Background(), "---\ntitle: [unclosed\n---\n# 1. INTRODUCTION\nBody.\n")
	if err != nil {
		t.Fatalf("ConvertReport() error = %v", err)
	}
	if result.Meta != nil {
		t.Errorf("Meta = %v, want nil", result.Meta)
	}
	if result.Title != "" {
		t.Errorf("Title = %q, want empty", result.Title)
	}
	if len(result.Sections) != 1 {
		t.Errorf("got %d sections, want 1", len(result.Sections))
	}
}

// ---------------------------------------------------------------------------
// TestWithHighlight - Chroma highlighting
// ---------------------------------------------------------------------------

func TestWithHighlight(t *testing.T) {
	t.Parallel()

	plain := newTestBuilder(t).ConvertNotebook(0, []byte(sampleNotebook))
	highlighted := newTestBuilder(t, WithHighlight(true)).ConvertNotebook(0, []byte(sampleNotebook))

	if plain.Err != nil || highlighted.Err != nil {
		t.Fatalf("errors: %v, %v", plain.Err, highlighted.Err)
	}
	if strings.Contains(plain.HTML, "<span class=") {
		t.Error("plain output contains highlight spans")
	}
	if !strings.Contains(highlighted.HTML, "<span class=") {
		t.Error("highlighted output has no highlight spans")
	}
}

// ---------------------------------------------------------------------------
// TestSiteValidate - Site description rules
// ---------------------------------------------------------------------------

func TestSiteValidate(t *testing.T) {
	t.Parallel()

	var nilSite *Site
	if !errors.Is(nilSite.Validate(), ErrEmptySite) {
		t.Error("nil site should be empty")
	}

	site := testSite()
	if err := site.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if site.subtitle() != DefaultSubtitle {
		t.Error("empty subtitle should use the default")
	}
}
