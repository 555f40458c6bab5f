// Package md2html converts a small Markdown subset to HTML.
//
// # Quick Start
//
// The package-level Convert is a total function over the default grammar:
//
//	html := md2html.Convert("# Hello\n\n- one\n- two")
//
// # Converter
//
// Use NewConverter when you need options or a full HTML document:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithCustomSyntax(true),
//	    md2html.WithDigest(md2html.DigestBLAKE3),
//	    md2html.WithStandalone(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{Markdown: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// # Grammar
//
// Input is split into blocks on blank lines. Each block is one of:
//
//   - a heading: "#" to "######" on its first line
//   - an unordered list: every line starts with "- "
//   - an ordered list: every line starts with "* ", "1. " or "1) "
//   - a paragraph: anything else, single newlines become <br />
//
// Inside every block, **bold** becomes <b>bold</b> and __italic__ becomes
// <em>italic</em>. With custom syntax enabled, [[text]] is replaced by the
// hex digest of text and ((text)) by text with every "c" and "C" removed.
//
// Malformed markup is never an error: it is passed through as paragraph text.
//
// # Engines
//
// EngineTransformer (the default) implements the grammar above.
// EngineGoldmark renders full CommonMark with GitHub extensions instead, for
// documents that need links, code blocks or tables.
//
// # Styles
//
// Standalone documents can carry a stylesheet. WithStyle accepts a built-in
// name ("default", "minimal") or a CSS file path. WithAssetPath adds a
// directory whose styles/{name}.css files shadow the built-in ones. WithCSS
// and Input.CSS are appended after the style, in that order.
//
// # Concurrency
//
// A Converter holds configuration only. It is safe for concurrent use.
package md2html
