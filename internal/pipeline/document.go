package pipeline

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// DefaultTitle is used when a standalone document has no heading.
const DefaultTitle = "Document"

// htmlTemplate wraps fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

var (
	// firstHeadingPattern captures the inner HTML of the first h1-h6.
	firstHeadingPattern = regexp.MustCompile(`(?is)<h[1-6][^>]*>(.*?)</h[1-6]>`)

	// htmlTagPattern matches HTML tags for stripping from heading text.
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// WrapDocument embeds an HTML fragment in a standalone HTML5 document.
// An empty title falls back to the first heading, then DefaultTitle.
func WrapDocument(fragment, title string) string {
	if title == "" {
		title = FirstHeading(fragment)
	}
	if title == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf(htmlTemplate, html.EscapeString(title), fragment)
}

// FirstHeading returns the plain text of the first heading in htmlContent,
// or "" when there is none.
func FirstHeading(htmlContent string) string {
	m := firstHeadingPattern.FindStringSubmatch(htmlContent)
	if m == nil {
		return ""
	}
	return stripHTMLTags(m[1])
}

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Decoding avoids double-encoding when the text is
// escaped again for the <title> element.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>\n"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close the <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
