package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Block separator: a newline followed by one or more blank lines.
	// Lines holding only spaces or tabs count as blank.
	blockSeparator = regexp.MustCompile(`\n(?:[ \t]*\n)+`)
)

// utf8BOM is stripped from the start of the document if present.
const utf8BOM = "\uFEFF"

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// LineEndingPreprocessor prepares raw text for block splitting.
type LineEndingPreprocessor struct{}

// PreprocessMarkdown normalizes line endings and drops a leading byte order mark.
func (p *LineEndingPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return preprocess(content)
}

func preprocess(content string) string {
	content = strings.TrimPrefix(content, utf8BOM)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// splitBlocks cuts content on blank-line runs and returns the trimmed,
// non-empty blocks in document order.
func splitBlocks(content string) []string {
	// Whitespace-only lines separate blocks too, unlike a bare "\n\n+" split.
	parts := blockSeparator.Split(content, -1)
	blocks := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		blocks = append(blocks, part)
	}
	return blocks
}
