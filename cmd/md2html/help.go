package main

import (
	"fmt"
	"io"
)

// printShortUsage prints the one-line synopsis shown after argument errors.
func printShortUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input> <output>")
	fmt.Fprintln(w, "Run 'md2html --help' for details.")
}

// printUsage prints the full usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] <input> <output>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a Markdown file to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file, or a directory of .md/.markdown files")
	fmt.Fprintln(w, "  output    HTML file, or a directory when input is a directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Syntax:")
	fmt.Fprintln(w, "      --custom-syntax       Enable [[digest]] and ((strip)) spans")
	fmt.Fprintln(w, "      --digest <s>          Digest for [[...]]: md5, blake3")
	fmt.Fprintln(w, "      --mode <s>            List detection: block, line")
	fmt.Fprintln(w, "      --engine <s>          Engine: transformer, goldmark")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --standalone          Wrap output in a full HTML document")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = first heading)")
	fmt.Fprintln(w, "      --style <name|path>   Built-in style (default, minimal) or CSS file")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with custom styles/{name}.css")
	fmt.Fprintln(w, "      --css <path>          Extra stylesheet, applied after --style")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directories (0 = auto)")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version information")
}
