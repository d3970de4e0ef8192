// Package nbsite builds the HTML page fragments of a research website from
// Jupyter notebooks and a single markdown report.
//
// # Quick Start
//
// Describe the site, create a builder, and convert documents:
//
//	b, err := nbsite.New(site)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := b.BuildNotebooks(ctx, os.DirFS("notebooks"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    if r.Err == nil {
//	        os.WriteFile(r.Entry.PageID+".html", []byte(r.HTML), 0644)
//	    }
//	}
//
// Every fragment is a content-middle div followed by a content-right div,
// ready to be injected client-side by the site shell.
//
// # Conversion Pipeline
//
// Notebook pages follow these stages:
//
//  1. Notebook decoding (cells, outputs, kernel language)
//  2. Markdown cells through a small markdown subset parser
//  3. Code cells folded, outputs rendered by MIME precedence with size caps
//  4. Page assembly with navigation and notebook metadata
//
// The report is stripped of front matter, split on numbered top-level
// headings ("# 1. INTRODUCTION"), and each mapped section becomes a page with
// its pre-authored right panel.
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	b, err := nbsite.New(site,
//	    nbsite.WithLogger(slog.Default()),
//	    nbsite.WithHighlight(true),
//	    nbsite.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Asset directory structure:
//
//	assets/
//	└── templates/
//	    └── default/
//	        ├── notebook.html
//	        └── report.html
package nbsite
