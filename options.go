package nbsite

import (
	"io"
	"log/slog"
)

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	highlight     bool
	assetPath     string
	templateSet   string
	imageRewrites []ImageRewrite
	rewritesSet   bool
}

// ImageRewrite replaces a source path prefix of report images.
type ImageRewrite struct {
	From string
	To   string
}

// discardLogger is used when no logger is configured.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithLogger sets the structured logger for conversion events.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithHighlight enables syntax highlighting of code cells.
// Highlighted code carries chroma CSS classes.
func WithHighlight(enabled bool) Option {
	return func(b *Builder) {
		b.cfg.highlight = enabled
	}
}

// WithAssetPath sets a directory whose templates override the embedded ones.
// Templates missing from the directory fall back to the embedded set.
func WithAssetPath(path string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = path
	}
}

// WithTemplateSet selects a template set by name (default: "default").
func WithTemplateSet(name string) Option {
	return func(b *Builder) {
		b.cfg.templateSet = name
	}
}

// WithImageRewrites replaces the report image path rules.
// An empty list disables rewriting.
func WithImageRewrites(rules []ImageRewrite) Option {
	return func(b *Builder) {
		b.cfg.imageRewrites = rules
		b.cfg.rewritesSet = true
	}
}
