package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/alnah/go-nbsite/internal/config"
	"github.com/alnah/go-nbsite/internal/fileutil"
	"github.com/alnah/go-nbsite/internal/yamlutil"
)

// ErrConfigExists is returned when init-config would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// runInitConfig prints the built-in configuration as YAML, or writes it to
// the file given with --output.
func runInitConfig(args []string, env *Environment) error {
	flags, err := parseInitConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if flags.output == "" {
		_, err := env.Stdout.Write(data)
		return err
	}

	if fileutil.FileExists(flags.output) && !flags.force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, flags.output)
	}

	path, _, err := fileutil.WriteFile(filepath.Dir(flags.output), filepath.Base(flags.output), string(data))
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(env.Stdout, "Wrote %s.\n", path)
	return nil
}
