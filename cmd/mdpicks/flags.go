package main

import (
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds stylesheet flags.
type styleFlags struct {
	css       string // extra CSS file appended after the style
	style     string // style name, CSS file path or inline CSS
	assetPath string // directory with custom styles/{name}.css
	noStyle   bool
}

// renderFlags holds HTML output flags.
type renderFlags struct {
	fragment  bool
	hardWraps bool
	audit     bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout time.Duration
	summary bool
	style   styleFlags
	render  renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// addStyleFlags adds stylesheet flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVar(&f.css, "css", "", "extra CSS file")
	fs.StringVar(&f.style, "style", "", "style name or CSS file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.noStyle, "no-style", false, "disable the built-in style")
}

// addRenderFlags adds HTML output flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVar(&f.fragment, "fragment", false, "write body HTML only")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "render line breaks as <br>")
	fs.BoolVar(&f.audit, "audit", false, "verify pick markup in the output")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, stderr io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "per-document timeout (e.g., 10s, 1m)")
	fs.BoolVar(&f.summary, "summary", false, "list injected picks per document")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printConvertUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
