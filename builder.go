package nbsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/alnah/go-nbsite/internal/assets"
	"github.com/alnah/go-nbsite/internal/notebook"
	"github.com/alnah/go-nbsite/internal/pipeline"
	"github.com/alnah/go-nbsite/internal/yamlutil"
)

// Builder converts the notebooks and the report of one Site.
// It holds only immutable configuration and parsed templates, so a Builder
// may be shared.
type Builder struct {
	cfg    builderConfig
	site   Site
	logger *slog.Logger

	cells  *pipeline.CellRenderer
	report *pipeline.Parser
	pages  *pipeline.PageAssembler
	panels map[string]string // section name -> normalized right panel HTML
}

// New creates a Builder for site.
// Returns error if the site is invalid, a right panel cannot be converted,
// or the page templates cannot be loaded.
func New(site Site, opts ...Option) (*Builder, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:    builderConfig{templateSet: assets.DefaultTemplateSetName},
		site:   site,
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}

	var highlighter pipeline.CodeHighlighter
	if b.cfg.highlight {
		highlighter = pipeline.NewChromaHighlighter()
	}
	b.cells = pipeline.NewCellRenderer(highlighter)

	dialect := pipeline.ReportDialect()
	if b.cfg.rewritesSet {
		dialect.ImageRewrites = toPathRewrites(b.cfg.imageRewrites)
	}
	b.report = pipeline.NewParser(dialect)

	if err := b.loadTemplates(); err != nil {
		return nil, err
	}
	if err := b.resolvePanels(); err != nil {
		return nil, err
	}

	return b, nil
}

// loadTemplates resolves the template set and parses it.
func (b *Builder) loadTemplates() error {
	resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	set, err := resolver.LoadTemplateSet(b.cfg.templateSet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplateSetMissing, err)
	}
	b.logger.Debug("templates loaded", "set", set.Name, "custom", resolver.HasCustomLoader())

	b.pages, err = pipeline.NewPageAssembler(set)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return nil
}

// resolvePanels converts every section right panel once.
func (b *Builder) resolvePanels() error {
	converter := pipeline.NewPanelConverter()
	b.panels = make(map[string]string, len(b.site.Sections))

	for _, sec := range b.site.Sections {
		panel, err := converter.ResolvePanel(sec.RightPanel, sec.RightPanelMarkdown)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidRightPanel, sec.Name, err)
		}
		b.panels[sec.Name] = panel
	}
	return nil
}

// Site returns the site the builder was created for.
func (b *Builder) Site() Site {
	return b.site
}

// ConvertNotebook converts the raw content of the notebook at index in the
// site navigation. A malformed notebook yields the error page and a non-nil
// Err wrapping ErrMalformedNotebook.
func (b *Builder) ConvertNotebook(index int, data []byte) NotebookResult {
	if index < 0 || index >= len(b.site.Notebooks) {
		err := fmt.Errorf("%w: index %d out of range", ErrInvalidNotebook, index)
		return NotebookResult{HTML: pipeline.ErrorPage(err), Err: err}
	}

	entry := b.site.Notebooks[index]
	result := NotebookResult{Entry: entry}

	nb, err := notebook.Parse(data)
	if err != nil {
		result.Err = fmt.Errorf("%w: %s: %v", ErrMalformedNotebook, entry.File, err)
		result.HTML = pipeline.ErrorPage(err)
		b.logger.Warn("malformed notebook", "file", entry.File, "error", err)
		return result
	}

	body := b.cells.Render(nb)
	result.CodeCells = body.CodeCells
	result.Figures = body.Figures

	html, err := b.pages.Notebook(&pipeline.NotebookPage{
		Title:       entry.Title,
		Subtitle:    b.site.subtitle(),
		Description: entry.Description,
		Navigation:  b.navigation(index),
		Content:     body.HTML,
		SourceFile:  entry.File,
		CodeCells:   body.CodeCells,
		Figures:     body.Figures,
		Footer:      b.panelFooter(),
	})
	if err != nil {
		result.Err = fmt.Errorf("%w: %s: %v", ErrPageRender, entry.File, err)
		result.HTML = pipeline.ErrorPage(err)
		b.logger.Error("notebook page assembly failed", "file", entry.File, "error", err)
		return result
	}

	result.HTML = html
	b.logger.Debug("notebook converted",
		"file", entry.File, "page", entry.PageID,
		"code_cells", body.CodeCells, "figures", body.Figures)
	return result
}

// BuildNotebooks converts every configured notebook found in src, in
// navigation order. Missing notebooks are reported with ErrNotebookNotFound
// and do not stop the batch. The context is checked between notebooks.
func (b *Builder) BuildNotebooks(ctx context.Context, src fs.FS) ([]NotebookResult, error) {
	results := make([]NotebookResult, 0, len(b.site.Notebooks))

	for i, entry := range b.site.Notebooks {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		data, err := fs.ReadFile(src, entry.File)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = fmt.Errorf("%w: %s", ErrNotebookNotFound, entry.File)
			} else {
				err = fmt.Errorf("reading %s: %w", entry.File, err)
			}
			b.logger.Warn("notebook skipped", "file", entry.File, "error", err)
			results = append(results, NotebookResult{Entry: entry, Err: err})
			continue
		}

		results = append(results, b.ConvertNotebook(i, data))
	}

	return results, nil
}

// ConvertReport converts the report into one page per mapped section.
// Front matter is stripped first; a front matter block that is not valid
// YAML is logged and otherwise ignored. Sections without a mapping are
// listed in Skipped.
func (b *Builder) ConvertReport(ctx context.Context, content string) (*ReportResult, error) {
	meta, body, err := yamlutil.ParseFrontMatter(content)
	if err != nil {
		b.logger.Warn("report front matter ignored", "error", err)
	}

	result := &ReportResult{}
	if meta != nil {
		result.Meta = meta
		result.Title = meta.String("title")
	}

	for _, sec := range pipeline.SplitSections(body) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Found = append(result.Found, sec.Name)
		entry, ok := b.section(sec.Name)
		if !ok {
			b.logger.Warn("unmapped report section", "section", sec.Name)
			result.Skipped = append(result.Skipped, sec.Name)
			continue
		}

		result.Sections = append(result.Sections, b.convertSection(entry, sec.Body))
	}

	return result, nil
}

// convertSection renders one mapped section.
func (b *Builder) convertSection(entry SectionEntry, body string) SectionResult {
	content := pipeline.RenderBlocks(b.report.ParseText(body))

	html, err := b.pages.Report(&pipeline.ReportPage{
		Title:      entry.PageTitle,
		Subtitle:   b.site.subtitle(),
		Content:    content,
		RightPanel: b.panels[entry.Name],
	})
	if err != nil {
		b.logger.Error("report page assembly failed", "section", entry.Name, "error", err)
		return SectionResult{
			Entry: entry,
			HTML:  pipeline.ErrorPage(err),
			Err:   fmt.Errorf("%w: %s: %v", ErrPageRender, entry.Name, err),
		}
	}

	b.logger.Debug("report section converted", "section", entry.Name, "page", entry.PageFile)
	return SectionResult{Entry: entry, HTML: html}
}

// section finds the mapping of a section name.
func (b *Builder) section(name string) (SectionEntry, bool) {
	for _, sec := range b.site.Sections {
		if sec.Name == name {
			return sec, true
		}
	}
	return SectionEntry{}, false
}

// navigation builds the notebook navigation for the page at index.
func (b *Builder) navigation(index int) pipeline.Navigation {
	entries := make([]pipeline.NavEntry, len(b.site.Notebooks))
	for i, nb := range b.site.Notebooks {
		entries[i] = pipeline.NavEntry{PageID: nb.PageID, Name: nb.NavName}
	}
	return pipeline.Navigation{Entries: entries, Current: index}
}

// panelFooter converts the site footer, nil when the site has none.
func (b *Builder) panelFooter() *pipeline.PanelFooter {
	if b.site.Footer == nil {
		return nil
	}
	return &pipeline.PanelFooter{Title: b.site.Footer.Title, Text: b.site.Footer.Text}
}

// toPathRewrites converts public rewrite rules to pipeline rules.
func toPathRewrites(rules []ImageRewrite) []pipeline.PathRewrite {
	out := make([]pipeline.PathRewrite, len(rules))
	for i, r := range rules {
		out[i] = pipeline.PathRewrite{From: r.From, To: r.To}
	}
	return out
}
