package pipeline

import (
	"regexp"
	"strings"
)

// Inline span patterns. All are non-greedy and never cross a line break.
var (
	digestPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)
	stripPattern  = regexp.MustCompile(`\(\((.*?)\)\)`)
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`__(.*?)__`)
)

// InlineTransformer rewrites inline spans inside a block.
// Each rule runs once over the whole block, so output of one rule is visible
// to the rules after it but no rule is applied to its own output.
type InlineTransformer struct {
	// CustomSyntax enables [[digest]] and ((strip)) spans.
	CustomSyntax bool
	// Digest hashes [[...]] contents. Nil means md5.
	Digest DigestFunc
}

// Apply returns block with every recognized span replaced.
func (t *InlineTransformer) Apply(block string) string {
	if t.CustomSyntax {
		block = t.replaceDigests(block)
		block = stripPattern.ReplaceAllStringFunc(block, func(m string) string {
			return stripC(stripPattern.FindStringSubmatch(m)[1])
		})
	}
	block = boldPattern.ReplaceAllString(block, "<b>$1</b>")
	block = italicPattern.ReplaceAllString(block, "<em>$1</em>")
	return block
}

func (t *InlineTransformer) replaceDigests(block string) string {
	digest := t.Digest
	if digest == nil {
		digest = md5Hex
	}
	return digestPattern.ReplaceAllStringFunc(block, func(m string) string {
		return digest([]byte(digestPattern.FindStringSubmatch(m)[1]))
	})
}

// stripC removes every "c" and "C" and leaves everything else untouched.
func stripC(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'c' || r == 'C' {
			return -1
		}
		return r
	}, s)
}
