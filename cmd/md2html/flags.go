package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags controlling configuration and verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// syntaxFlags holds grammar flags.
type syntaxFlags struct {
	custom bool
	digest string
	mode   string
	engine string
}

// documentFlags holds output shape flags.
type documentFlags struct {
	standalone bool
	title      string
	style      string
	assetPath  string
	css        string
}

// convertFlags holds all flags for a run.
type convertFlags struct {
	common      commonFlags
	syntax      syntaxFlags
	document    documentFlags
	workers     int
	printConfig bool
	version     bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addSyntaxFlags adds grammar flags to a FlagSet.
func addSyntaxFlags(fs *flag.FlagSet, f *syntaxFlags) {
	fs.BoolVar(&f.custom, "custom-syntax", false, "enable [[digest]] and ((strip)) spans")
	fs.StringVar(&f.digest, "digest", "", "digest for [[...]]: md5, blake3")
	fs.StringVar(&f.mode, "mode", "", "list detection: block, line")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: transformer, goldmark")
}

// addDocumentFlags adds output shape flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a full HTML document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = first heading)")
	fs.StringVar(&f.style, "style", "", "built-in style name or CSS file for standalone output")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom styles/{name}.css")
	fs.StringVar(&f.css, "css", "", "stylesheet file for standalone output")
}

// parseFlags parses args (without the program name) and returns positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &convertFlags{}

	addCommonFlags(fs, &f.common)
	addSyntaxFlags(fs, &f.syntax)
	addDocumentFlags(fs, &f.document)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directories (0 = auto)")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}
