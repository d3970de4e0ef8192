package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds input and output location flags.
type pathFlags struct {
	baseDir   string
	notebooks string
	report    string
	output    string
}

// assetFlags holds template-related flags.
type assetFlags struct {
	assetPath   string // Override template directory
	templateSet string // Template set name
}

// buildFlags holds all flags for the build, notebooks and report commands.
type buildFlags struct {
	common      commonFlags
	paths       pathFlags
	assets      assetFlags
	highlight   bool
	noHighlight bool
}

// initConfigFlags holds flags for the init-config command.
type initConfigFlags struct {
	output string
	force  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addPathFlags adds location flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.baseDir, "base", "b", "", "base directory for discovery (default: current directory)")
	fs.StringVarP(&f.notebooks, "notebooks", "n", "", "notebooks directory")
	fs.StringVarP(&f.report, "report", "r", "", "report markdown file")
	fs.StringVarP(&f.output, "output", "o", "", "pages output directory")
}

// addAssetFlags adds template flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom template directory")
	fs.StringVar(&f.templateSet, "template", "", "template set name (default: \"default\")")
}

// parseBuildFlags parses flags of a build command and returns positional args.
func parseBuildFlags(name string, args []string, usage io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addAssetFlags(fs, &f.assets)
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight code cells")
	fs.BoolVar(&f.noHighlight, "no-highlight", false, "disable code cell highlighting")

	fs.Usage = func() { printBuildUsage(usage, name) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}

// parseInitConfigFlags parses flags of the init-config command.
func parseInitConfigFlags(args []string, usage io.Writer) (*initConfigFlags, error) {
	fs := flag.NewFlagSet("init-config", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &initConfigFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")

	fs.Usage = func() { printInitConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	return f, nil
}

// usageError marks a flag parsing error as a usage error.
// The help request passes through untouched.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
