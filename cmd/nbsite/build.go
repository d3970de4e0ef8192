package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	nbsite "github.com/alnah/go-nbsite"
	"github.com/alnah/go-nbsite/internal/config"
	"github.com/alnah/go-nbsite/internal/fileutil"
	"github.com/alnah/go-nbsite/internal/hints"
)

// reportFileName is the report looked up during discovery.
const reportFileName = "Project_Report.md"

// runBuildCommand runs build, notebooks or report.
func runBuildCommand(ctx context.Context, cmd string, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(cmd, args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}

	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	builder, err := nbsite.New(siteFromConfig(cfg), builderOptions(cfg, flags.common.verbose, env.Stderr)...)
	if err != nil {
		return err
	}

	out := env.Stdout
	if flags.common.quiet {
		out = io.Discard
	}

	start := env.Now()

	if cmd == cmdBuild || cmd == cmdNotebooks {
		if err := buildNotebooks(ctx, builder, cfg, out, env.Stderr); err != nil {
			return err
		}
	}
	if cmd == cmdBuild {
		fmt.Fprintln(out)
	}
	if cmd == cmdBuild || cmd == cmdReport {
		if err := buildReport(ctx, builder, cfg, out, env.Stderr); err != nil {
			return err
		}
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Done in %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return nil
}

// loadConfig loads the config named by the flag or the environment, or the
// built-in defaults when neither is set.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags to config (CLI wins).
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.paths.baseDir != "" {
		cfg.Paths.BaseDir = flags.paths.baseDir
	}
	if flags.paths.notebooks != "" {
		cfg.Paths.NotebooksDir = flags.paths.notebooks
	}
	if flags.paths.report != "" {
		cfg.Paths.Report = flags.paths.report
	}
	if flags.paths.output != "" {
		cfg.Paths.OutputDir = flags.paths.output
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.templateSet != "" {
		cfg.Assets.TemplateSet = flags.assets.templateSet
	}
	if flags.highlight {
		cfg.Highlight = true
	}
	if flags.noHighlight {
		cfg.Highlight = false
	}
}

// siteFromConfig converts the config to the library site description.
func siteFromConfig(cfg *config.Config) nbsite.Site {
	site := nbsite.Site{Subtitle: cfg.Subtitle}

	for _, nb := range cfg.Notebooks {
		site.Notebooks = append(site.Notebooks, nbsite.NotebookEntry{
			File:        nb.File,
			PageID:      nb.PageID,
			NavName:     nb.NavName,
			Title:       nb.Title,
			Description: nb.Description,
		})
	}
	for _, sec := range cfg.Sections {
		site.Sections = append(site.Sections, nbsite.SectionEntry{
			Name:               sec.Name,
			PageFile:           sec.PageFile,
			PageTitle:          sec.PageTitle,
			RightPanel:         sec.RightPanel,
			RightPanelMarkdown: sec.RightPanelMarkdown,
		})
	}
	if cfg.Footer.Enabled {
		site.Footer = &nbsite.Footer{Title: cfg.Footer.Title, Text: cfg.Footer.Text}
	}

	return site
}

// builderOptions converts the config to builder options.
func builderOptions(cfg *config.Config, verbose bool, logOut io.Writer) []nbsite.Option {
	rules := make([]nbsite.ImageRewrite, len(cfg.ImageRewrites))
	for i, r := range cfg.ImageRewrites {
		rules[i] = nbsite.ImageRewrite{From: r.From, To: r.To}
	}

	opts := []nbsite.Option{
		nbsite.WithLogger(newLogger(logOut, verbose)),
		nbsite.WithHighlight(cfg.Highlight),
		nbsite.WithImageRewrites(rules),
		nbsite.WithAssetPath(cfg.Assets.BasePath),
	}
	if cfg.Assets.TemplateSet != "" {
		opts = append(opts, nbsite.WithTemplateSet(cfg.Assets.TemplateSet))
	}
	return opts
}

// baseDir returns the discovery base directory.
func baseDir(cfg *config.Config) string {
	if cfg.Paths.BaseDir == "" {
		return "."
	}
	return cfg.Paths.BaseDir
}

// resolveNotebooksDir returns the configured notebooks directory or
// discovers it next to or above the base directory.
func resolveNotebooksDir(cfg *config.Config) (string, error) {
	candidates := []string{cfg.Paths.NotebooksDir}
	if cfg.Paths.NotebooksDir == "" {
		base := baseDir(cfg)
		candidates = []string{
			filepath.Join(base, "notebooks"),
			filepath.Join(base, "..", "notebooks"),
		}
	}

	dir, err := fileutil.FindDir(candidates...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoNotebooksDir, err)
	}
	return dir, nil
}

// resolveReportPath returns the configured report or discovers it next to
// or above the base directory.
func resolveReportPath(cfg *config.Config) (string, error) {
	candidates := []string{cfg.Paths.Report}
	if cfg.Paths.Report == "" {
		base := baseDir(cfg)
		candidates = []string{
			filepath.Join(base, reportFileName),
			filepath.Join(base, "..", reportFileName),
		}
	}

	path, err := fileutil.FindFile(candidates...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoReport, err)
	}
	return path, nil
}

// resolveOutputDir returns the configured output directory or the first
// existing conventional location, and creates it when missing.
func resolveOutputDir(cfg *config.Config) (string, error) {
	dir := cfg.Paths.OutputDir
	if dir == "" {
		base := baseDir(cfg)
		dir = fileutil.FirstExistingDir(
			filepath.Join(base, "docs", "pages"),
			filepath.Join(base, "..", "docs", "pages"),
			filepath.Join(base, "pages"),
		)
	}

	if err := fileutil.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutputDir, err)
	}
	return dir, nil
}

// buildNotebooks converts and writes every configured notebook.
// Missing and malformed notebooks are reported and do not stop the batch.
func buildNotebooks(ctx context.Context, b *nbsite.Builder, cfg *config.Config, out, errOut io.Writer) error {
	notebooksDir, err := resolveNotebooksDir(cfg)
	if err != nil {
		return err
	}
	outputDir, err := resolveOutputDir(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Building notebook pages.")
	fmt.Fprintf(out, "Notebooks Directory: %s.\n", notebooksDir)
	fmt.Fprintf(out, "Output Directory: %s.\n", outputDir)
	fmt.Fprintln(out)

	results, err := b.BuildNotebooks(ctx, os.DirFS(notebooksDir))
	if err != nil {
		return err
	}

	var converted int
	var totalSize int64
	for _, r := range results {
		if errors.Is(r.Err, nbsite.ErrNotebookNotFound) {
			fmt.Fprintf(out, "NOT FOUND: %s.\n", r.Entry.File)
			continue
		}
		if r.HTML == "" {
			fmt.Fprintf(errOut, "FAILED %s: %v\n", r.Entry.File, r.Err)
			continue
		}

		page := r.Entry.PageID + ".html"
		_, size, err := fileutil.WriteFile(outputDir, page, r.HTML)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWritePage, page, err)
		}
		totalSize += size

		if r.Err != nil {
			fmt.Fprintf(errOut, "ERROR %s: %v%s\n", r.Entry.File, r.Err, hints.ForMalformedNotebook())
			continue
		}
		converted++
		fmt.Fprintf(out, "%s (%.1f KB).\n", page, float64(size)/1024)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Converted %d/%d notebooks.\n", converted, len(results))
	fmt.Fprintf(out, "Total Size: %.2f MB.\n", float64(totalSize)/(1024*1024))
	return nil
}

// buildReport converts the report and writes one page per mapped section.
func buildReport(ctx context.Context, b *nbsite.Builder, cfg *config.Config, out, errOut io.Writer) error {
	reportPath, err := resolveReportPath(cfg)
	if err != nil {
		return err
	}
	outputDir, err := resolveOutputDir(cfg)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(reportPath) // #nosec G304 -- report path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadReport, err)
	}

	fmt.Fprintf(out, "Building report pages from %s.\n", filepath.Base(reportPath))
	fmt.Fprintf(out, "Source: %s\n", reportPath)
	fmt.Fprintf(out, "Output: %s\n", outputDir)
	fmt.Fprintln(out)

	result, err := b.ConvertReport(ctx, string(content))
	if err != nil {
		return err
	}

	if result.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", result.Title)
	}
	fmt.Fprintf(out, "Found %d sections:\n", len(result.Found))
	for _, name := range result.Found {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintln(out)

	pages := make(map[string]nbsite.SectionResult, len(result.Sections))
	for _, sec := range result.Sections {
		pages[sec.Entry.Name] = sec
	}

	for _, name := range result.Found {
		sec, ok := pages[name]
		if !ok {
			fmt.Fprintf(out, "Skipping unmapped section: %s.\n", name)
			continue
		}

		_, size, err := fileutil.WriteFile(outputDir, sec.Entry.PageFile, sec.HTML)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWritePage, sec.Entry.PageFile, err)
		}
		if sec.Err != nil {
			fmt.Fprintf(errOut, "ERROR %s: %v\n", name, sec.Err)
			continue
		}
		fmt.Fprintf(out, "%s (%.1f KB).\n", sec.Entry.PageFile, float64(size)/1024)
	}

	if len(result.Skipped) > 0 {
		fmt.Fprintf(errOut, "warning: %d unmapped section(s)%s\n", len(result.Skipped), hints.ForUnmappedSections(mappedNames(b.Site())))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Updated report.")
	return nil
}

// mappedNames lists the section names of a site.
func mappedNames(site nbsite.Site) []string {
	names := make([]string, len(site.Sections))
	for i, sec := range site.Sections {
		names[i] = sec.Name
	}
	return names
}

// hintFor returns an actionable hint for a fatal error, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			return hints.ForConfigNotFound(nf.Tried)
		}
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrNoNotebooksDir):
		return hints.ForNotebooksDir()
	case errors.Is(err, ErrNoReport):
		return hints.ForReportNotFound()
	case errors.Is(err, ErrOutputDir), errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, nbsite.ErrTemplateSetMissing):
		return hints.ForTemplateSet("<name>")
	}
	return ""
}
