package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-nbsite/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "NBSITE_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string // NBSITE_CONFIG: config file name or path
	BaseDir      string // NBSITE_BASE_DIR: discovery base directory
	NotebooksDir string // NBSITE_NOTEBOOKS_DIR: notebooks directory
	Report       string // NBSITE_REPORT: report markdown file
	OutputDir    string // NBSITE_OUTPUT_DIR: pages output directory
	AssetPath    string // NBSITE_ASSET_PATH: custom template directory
	Highlight    *bool  // NBSITE_HIGHLIGHT: code cell highlighting
}

// knownEnvVars lists valid NBSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"NBSITE_CONFIG":        true,
	"NBSITE_BASE_DIR":      true,
	"NBSITE_NOTEBOOKS_DIR": true,
	"NBSITE_REPORT":        true,
	"NBSITE_OUTPUT_DIR":    true,
	"NBSITE_ASSET_PATH":    true,
	"NBSITE_HIGHLIGHT":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:   getenv("NBSITE_CONFIG"),
		BaseDir:      getenv("NBSITE_BASE_DIR"),
		NotebooksDir: getenv("NBSITE_NOTEBOOKS_DIR"),
		Report:       getenv("NBSITE_REPORT"),
		OutputDir:    getenv("NBSITE_OUTPUT_DIR"),
		AssetPath:    getenv("NBSITE_ASSET_PATH"),
	}

	if v := getenv("NBSITE_HIGHLIGHT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Highlight = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized NBSITE_* variables.
// Helps catch typos like NBSITE_OUTPUT instead of NBSITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.BaseDir != "" && cfg.Paths.BaseDir == "" {
		cfg.Paths.BaseDir = env.BaseDir
	}
	if env.NotebooksDir != "" && cfg.Paths.NotebooksDir == "" {
		cfg.Paths.NotebooksDir = env.NotebooksDir
	}
	if env.Report != "" && cfg.Paths.Report == "" {
		cfg.Paths.Report = env.Report
	}
	if env.OutputDir != "" && cfg.Paths.OutputDir == "" {
		cfg.Paths.OutputDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Highlight != nil && !cfg.Highlight {
		cfg.Highlight = *env.Highlight
	}
}
