package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownMode indicates an unsupported processing mode name.
var ErrUnknownMode = errors.New("unknown processing mode")

var headingLinePattern = regexp.MustCompile(`^(#{1,6})\s*(.*)`)

// Mode selects how list items are recognized inside a block.
type Mode int

const (
	// ModeBlock classifies a block as a whole: it is a list only when every
	// line is a list item.
	ModeBlock Mode = iota
	// ModeLine classifies every line on its own, so headings, list items and
	// paragraph lines can share a block.
	ModeLine
)

// Mode names accepted by ParseMode.
const (
	ModeBlockName = "block"
	ModeLineName  = "line"
)

// ParseMode maps a mode name to a Mode. An empty name selects ModeBlock.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "", ModeBlockName:
		return ModeBlock, nil
	case ModeLineName:
		return ModeLine, nil
	default:
		return ModeBlock, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownMode, name, ModeBlockName, ModeLineName)
	}
}

func (m Mode) String() string {
	if m == ModeLine {
		return ModeLineName
	}
	return ModeBlockName
}

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// BlockTransformer converts the supported Markdown subset to HTML fragments.
// It holds configuration only and is safe for concurrent use.
type BlockTransformer struct {
	Inline InlineTransformer
	Mode   Mode
}

// ToHTML implements HTMLConverter. The transform itself cannot fail;
// only a canceled context yields an error.
func (t *BlockTransformer) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return t.Transform(content), nil
}

// Transform returns the concatenated HTML fragments for content.
func (t *BlockTransformer) Transform(content string) string {
	return strings.Join(t.Fragments(content), "")
}

// Fragments returns the HTML fragments for content in document order.
func (t *BlockTransformer) Fragments(content string) []string {
	var fragments []string
	emit := func(f string) { fragments = append(fragments, f) }
	lists := NewListMachine(emit)

	for _, block := range splitBlocks(preprocess(content)) {
		block = t.Inline.Apply(block)
		if t.Mode == ModeLine {
			renderLines(block, lists, emit)
		} else {
			renderBlock(block, lists, emit)
		}
		lists.Break()
	}
	lists.Break()

	return fragments
}

// renderBlock classifies block as heading, list, or paragraph.
// Lines after a heading line are rendered as a block of their own.
func renderBlock(block string, lists *ListMachine, emit func(string)) {
	first, rest, _ := strings.Cut(block, "\n")

	if level, content, ok := matchHeading(first); ok {
		emit(heading(level, content))
		if rest = strings.TrimSpace(rest); rest != "" {
			renderBlock(rest, lists, emit)
		}
		return
	}

	lines := strings.Split(block, "\n")
	kinds := make([]ListKind, len(lines))
	contents := make([]string, len(lines))
	for i, line := range lines {
		kind, content, ok := matchListItem(line)
		if !ok {
			emit(paragraph(block))
			return
		}
		kinds[i], contents[i] = kind, content
	}

	for i := range lines {
		lists.Item(kinds[i], contents[i])
	}
	lists.Break()
}

// renderLines classifies each line of block separately. Consecutive
// paragraph lines are joined into one paragraph.
func renderLines(block string, lists *ListMachine, emit func(string)) {
	var para []string
	flush := func() {
		if len(para) > 0 {
			emit(paragraph(strings.Join(para, "\n")))
			para = nil
		}
	}

	for _, line := range strings.Split(block, "\n") {
		if level, content, ok := matchHeading(line); ok {
			lists.Break()
			flush()
			emit(heading(level, content))
			continue
		}
		if kind, content, ok := matchListItem(line); ok {
			flush()
			lists.Item(kind, content)
			continue
		}
		lists.Break()
		para = append(para, line)
	}

	lists.Break()
	flush()
}

func matchHeading(line string) (level int, content string, ok bool) {
	m := headingLinePattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

func heading(level int, content string) string {
	return fmt.Sprintf("<h%d>%s</h%d>\n", level, content, level)
}

// paragraph wraps text in <p> and turns single newlines into <br />.
func paragraph(text string) string {
	return "<p>\n    " + strings.ReplaceAll(text, "\n", "<br />\n") + "\n</p>\n"
}
