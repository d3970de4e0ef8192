package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nbsite/internal/fileutil"
	"github.com/alnah/go-nbsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("field is required")
)

// NotFoundError reports the paths searched for a missing config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Unwrap returns ErrConfigNotFound for errors.Is() matching.
func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// Field length limits.
const (
	MaxFileNameLength    = 255   // Notebook file, page id, page file
	MaxNavNameLength     = 100   // Navigation label
	MaxTitleLength       = 200   // Page title
	MaxDescriptionLength = 500   // Notebook description
	MaxSubtitleLength    = 500   // Subtitle markup, several <br> lines
	MaxSectionNameLength = 200   // "2. DATA and METHODS"
	MaxPanelLength       = 20000 // Right panel HTML or markdown
	MaxFooterLength      = 200   // Footer title and text
	MaxPathLength        = 4096  // Filesystem paths
	MaxTemplateSetLength = 100   // Template set name
)

// Config holds the description of the site and how to build it.
type Config struct {
	Subtitle      string         `yaml:"subtitle"`
	Footer        FooterConfig   `yaml:"footer"`
	Paths         PathsConfig    `yaml:"paths"`
	Highlight     bool           `yaml:"highlight"`
	Assets        AssetsConfig   `yaml:"assets"`
	ImageRewrites []RewriteRule  `yaml:"imageRewrites"`
	Notebooks     []NotebookSpec `yaml:"notebooks"`
	Sections      []SectionSpec  `yaml:"sections"`
}

// FooterConfig defines the notebook right panel footer.
type FooterConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
	Text    string `yaml:"text"`
}

// PathsConfig defines input and output locations.
// Empty values are discovered relative to BaseDir.
type PathsConfig struct {
	BaseDir      string `yaml:"baseDir"`      // Empty = current directory
	NotebooksDir string `yaml:"notebooksDir"` // Empty = <base>/notebooks, then <base>/../notebooks
	Report       string `yaml:"report"`       // Empty = <base>/Project_Report.md, then <base>/../Project_Report.md
	OutputDir    string `yaml:"outputDir"`    // Empty = <base>/docs/pages, then <base>/../docs/pages, then <base>/pages
}

// AssetsConfig defines template loading options.
type AssetsConfig struct {
	BasePath    string `yaml:"basePath"`    // Empty = use embedded templates
	TemplateSet string `yaml:"templateSet"` // Empty = "default"
}

// RewriteRule replaces an image path prefix.
type RewriteRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// NotebookSpec describes one notebook page, in navigation order.
type NotebookSpec struct {
	File        string `yaml:"file"`
	PageID      string `yaml:"pageId"`
	NavName     string `yaml:"navName"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// SectionSpec maps a numbered report section to its page.
type SectionSpec struct {
	Name               string `yaml:"name"`
	PageFile           string `yaml:"pageFile"`
	PageTitle          string `yaml:"pageTitle"`
	RightPanel         string `yaml:"rightPanel"`
	RightPanelMarkdown string `yaml:"rightPanelMarkdown"`
}

// Validate checks required fields and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("subtitle", c.Subtitle, MaxSubtitleLength); err != nil {
		return err
	}

	if err := validateFieldLength("footer.title", c.Footer.Title, MaxFooterLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.text", c.Footer.Text, MaxFooterLength); err != nil {
		return err
	}

	paths := map[string]string{
		"paths.baseDir":      c.Paths.BaseDir,
		"paths.notebooksDir": c.Paths.NotebooksDir,
		"paths.report":       c.Paths.Report,
		"paths.outputDir":    c.Paths.OutputDir,
		"assets.basePath":    c.Assets.BasePath,
	}
	for name, value := range paths {
		if err := validateFieldLength(name, value, MaxPathLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("assets.templateSet", c.Assets.TemplateSet, MaxTemplateSetLength); err != nil {
		return err
	}

	for i, rule := range c.ImageRewrites {
		if rule.From == "" {
			return fmt.Errorf("%w: imageRewrites[%d].from", ErrFieldRequired, i)
		}
		if err := validateFieldLength(fmt.Sprintf("imageRewrites[%d].from", i), rule.From, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("imageRewrites[%d].to", i), rule.To, MaxPathLength); err != nil {
			return err
		}
	}

	for i, nb := range c.Notebooks {
		if err := nb.validate(fmt.Sprintf("notebooks[%d]", i)); err != nil {
			return err
		}
	}
	for i, sec := range c.Sections {
		if err := sec.validate(fmt.Sprintf("sections[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

func (n NotebookSpec) validate(prefix string) error {
	if n.File == "" {
		return fmt.Errorf("%w: %s.file", ErrFieldRequired, prefix)
	}
	if n.PageID == "" {
		return fmt.Errorf("%w: %s.pageId", ErrFieldRequired, prefix)
	}
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"file", n.File, MaxFileNameLength},
		{"pageId", n.PageID, MaxFileNameLength},
		{"navName", n.NavName, MaxNavNameLength},
		{"title", n.Title, MaxTitleLength},
		{"description", n.Description, MaxDescriptionLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(prefix+"."+f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

func (s SectionSpec) validate(prefix string) error {
	if s.Name == "" {
		return fmt.Errorf("%w: %s.name", ErrFieldRequired, prefix)
	}
	if s.PageFile == "" {
		return fmt.Errorf("%w: %s.pageFile", ErrFieldRequired, prefix)
	}
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"name", s.Name, MaxSectionNameLength},
		{"pageFile", s.PageFile, MaxFileNameLength},
		{"pageTitle", s.PageTitle, MaxTitleLength},
		{"rightPanel", s.RightPanel, MaxPanelLength},
		{"rightPanelMarkdown", s.RightPanelMarkdown, MaxPanelLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(prefix+"."+f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

//go:embed defaults.yaml
var defaultsYAML []byte

// DefaultConfig returns the built-in site: nine notebooks, five report
// sections, the site subtitle and the pipeline footer.
// Panics if the embedded defaults are invalid (programmer error).
func DefaultConfig() *Config {
	var cfg Config
	if err := yamlutil.UnmarshalStrict(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return &cfg
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields present in the file replace the built-in defaults; lists are
// replaced as a whole.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-nbsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-nbsite", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Tried: triedPaths}
}
