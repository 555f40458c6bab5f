// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The main stage is BlockTransformer, which handles a fixed Markdown subset:
//   - headings (# to ######)
//   - unordered lists ("- item") and ordered lists ("* item", "1. item")
//   - paragraphs, with single newlines rendered as <br />
//   - **bold** and __italic__ spans
//   - optional [[digest]] and ((strip)) spans
//
// Input is split into blocks on blank lines. Each block gets its inline
// spans rewritten once, then is classified and emitted as an HTML fragment.
// List wrappers are opened and closed by a single ListMachine shared by the
// block and line processing modes.
//
// GoldmarkConverter is an alternate engine for full CommonMark input.
// WrapDocument and CSSInjection turn a fragment into a standalone page.
package pipeline
