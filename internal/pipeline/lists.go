package pipeline

import "regexp"

// List item patterns. "-" marks an unordered item; "*" or a number followed
// by "." or ")" marks an ordered item.
var (
	unorderedItemPattern = regexp.MustCompile(`^-\s+(.*)`)
	orderedItemPattern   = regexp.MustCompile(`^(?:\*|\d+[.)])\s+(.*)`)
)

// ListKind is the state of the list machine.
type ListKind int

const (
	NoList ListKind = iota
	UnorderedList
	OrderedList
)

// String returns the wrapper element name, or "none".
func (k ListKind) String() string {
	switch k {
	case UnorderedList:
		return "ul"
	case OrderedList:
		return "ol"
	default:
		return "none"
	}
}

// matchListItem reports whether line is a list item and returns its kind and content.
func matchListItem(line string) (ListKind, string, bool) {
	if m := unorderedItemPattern.FindStringSubmatch(line); m != nil {
		return UnorderedList, m[1], true
	}
	if m := orderedItemPattern.FindStringSubmatch(line); m != nil {
		return OrderedList, m[1], true
	}
	return NoList, "", false
}

// ListMachine tracks whether a list wrapper is open and emits the wrapper
// and item fragments as items and breaks arrive.
//
//	NoList   --item(k)-->        open k
//	in k     --item(k)-->        item only
//	in k     --item(j), j!=k-->  close k, open j
//	in k     --break-->          close k
type ListMachine struct {
	state ListKind
	emit  func(fragment string)
}

// NewListMachine returns a machine in the NoList state writing to emit.
func NewListMachine(emit func(fragment string)) *ListMachine {
	return &ListMachine{emit: emit}
}

// State returns the kind of the currently open list, or NoList.
func (m *ListMachine) State() ListKind {
	return m.state
}

// Item emits one list item, opening or switching the wrapper as needed.
func (m *ListMachine) Item(kind ListKind, content string) {
	if kind == NoList {
		m.Break()
		return
	}
	if m.state != kind {
		m.Break()
		m.emit("<" + kind.String() + ">\n")
		m.state = kind
	}
	m.emit("    <li>" + content + "</li>\n")
}

// Break closes the open wrapper, if any. It is called for non-item lines,
// block boundaries, and end of document.
func (m *ListMachine) Break() {
	if m.state == NoList {
		return
	}
	m.emit("</" + m.state.String() + ">\n")
	m.state = NoList
}
