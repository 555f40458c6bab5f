package md2html

import "github.com/alnah/go-md2html/internal/pipeline"

// Digest algorithm names for WithDigest.
const (
	DigestMD5    = pipeline.DigestMD5
	DigestBLAKE3 = pipeline.DigestBLAKE3
)

// Processing mode names for WithMode.
const (
	ModeBlock = pipeline.ModeBlockName
	ModeLine  = pipeline.ModeLineName
)

// Engine names for WithEngine.
const (
	EngineTransformer = pipeline.EngineTransformer
	EngineGoldmark    = pipeline.EngineGoldmark
)

// DefaultTitle is the <title> of a standalone document without headings.
const DefaultTitle = pipeline.DefaultTitle

// Input contains the per-conversion data.
type Input struct {
	Markdown string // Markdown source, never rejected
	Title    string // overrides WithTitle for this conversion
	CSS      string // appended to WithCSS, standalone output only
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	HTML  []byte // fragment, or a complete document when standalone
	Title string // resolved document title, empty for fragments without headings
}

// converterConfig holds the raw option values before validation.
type converterConfig struct {
	customSyntax bool
	digest       string
	mode         string
	engine       string
	standalone   bool
	title        string
	style        string
	assetPath    string
	css          string
}

// Option configures a Converter.
type Option func(*Converter)

// WithCustomSyntax enables the [[digest]] and ((strip)) spans.
func WithCustomSyntax(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.customSyntax = enabled
	}
}

// WithDigest selects the algorithm used for [[...]] spans.
// Accepts DigestMD5 (default) or DigestBLAKE3, case-insensitively.
func WithDigest(name string) Option {
	return func(c *Converter) {
		c.cfg.digest = name
	}
}

// WithMode selects how list items are recognized: ModeBlock (default)
// treats a block as a list only when all its lines are items, ModeLine
// classifies each line on its own.
func WithMode(name string) Option {
	return func(c *Converter) {
		c.cfg.mode = name
	}
}

// WithEngine selects the Markdown engine.
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithStandalone wraps output in a complete HTML5 document.
func WithStandalone(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.standalone = enabled
	}
}

// WithTitle sets the standalone document title.
// Without it the first heading is used, then DefaultTitle.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithCSS sets a stylesheet injected into standalone documents, after
// the WithStyle stylesheet.
func WithCSS(css string) Option {
	return func(c *Converter) {
		c.cfg.css = css
	}
}

// WithStyle selects a stylesheet for standalone documents. A bare name
// ("default", "minimal") is looked up in the asset path first and then in
// the built-in styles. A value containing a path separator or ending in
// .css is read as a CSS file.
func WithStyle(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.style = nameOrPath
	}
}

// WithAssetPath sets a directory whose styles/{name}.css files take
// precedence over the built-in styles.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}
