package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build        Build notebook and report pages (default)")
	fmt.Fprintln(w, "  notebooks    Build notebook pages only")
	fmt.Fprintln(w, "  report       Build report section pages only")
	fmt.Fprintln(w, "  init-config  Print the built-in site configuration as YAML")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'nbsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for build, notebooks and report.
func printBuildUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: nbsite %s [flags]\n", name)
	fmt.Fprintln(w)
	switch name {
	case cmdNotebooks:
		fmt.Fprintln(w, "Convert the configured notebooks to page fragments.")
	case cmdReport:
		fmt.Fprintln(w, "Split the report on numbered headings and convert mapped sections.")
	default:
		fmt.Fprintln(w, "Convert notebooks and report sections to page fragments.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -b, --base <dir>          Base directory for discovery")
	fmt.Fprintln(w, "  -n, --notebooks <dir>     Notebooks directory")
	fmt.Fprintln(w, "                            (default: <base>/notebooks, then <base>/../notebooks)")
	fmt.Fprintln(w, "  -r, --report <file>       Report markdown file")
	fmt.Fprintln(w, "                            (default: <base>/Project_Report.md, then <base>/../Project_Report.md)")
	fmt.Fprintln(w, "  -o, --output <dir>        Pages output directory")
	fmt.Fprintln(w, "                            (default: <base>/docs/pages, <base>/../docs/pages, <base>/pages)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --highlight           Syntax-highlight code cells")
	fmt.Fprintln(w, "      --no-highlight        Disable code cell highlighting")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom template directory")
	fmt.Fprintln(w, "      --template <name>     Template set name")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  NBSITE_CONFIG, NBSITE_BASE_DIR, NBSITE_NOTEBOOKS_DIR, NBSITE_REPORT,")
	fmt.Fprintln(w, "  NBSITE_OUTPUT_DIR, NBSITE_ASSET_PATH, NBSITE_HIGHLIGHT")
}

// printInitConfigUsage prints usage for the init-config command.
func printInitConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: nbsite init-config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the built-in site configuration as YAML, as a starting point")
	fmt.Fprintln(w, "for a custom config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <file>       Write to file instead of stdout")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdBuild, cmdNotebooks, cmdReport:
		printBuildUsage(env.Stdout, args[0])
	case cmdInitConfig:
		printInitConfigUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: nbsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: nbsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
