package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// defaultTransformer uses the default grammar: custom syntax off, block mode.
var defaultTransformer = &pipeline.BlockTransformer{}

// Convert returns the HTML fragment for markdown using the default grammar.
// It never fails: unrecognized syntax is emitted as paragraph text.
func Convert(markdown string) string {
	return defaultTransformer.Transform(markdown)
}
