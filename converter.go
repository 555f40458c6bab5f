package md2html

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.BlockTransformer)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Converter orchestrates the Markdown-to-HTML pipeline.
// Create with NewConverter and call Convert as many times as needed.
type Converter struct {
	cfg           converterConfig
	styleCSS      string
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
}

// NewConverter creates a Converter. Unknown digest, mode, or engine names
// are rejected here so that Convert only fails on cancellation.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			digest: DigestMD5,
			mode:   ModeBlock,
			engine: EngineTransformer,
		},
		preprocessor: &pipeline.LineEndingPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	digest, err := pipeline.DigestFor(c.cfg.digest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}

	mode, err := pipeline.ParseMode(c.cfg.mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}

	switch strings.ToLower(c.cfg.engine) {
	case "", EngineTransformer:
		c.htmlConverter = &pipeline.BlockTransformer{
			Inline: pipeline.InlineTransformer{
				CustomSyntax: c.cfg.customSyntax,
				Digest:       digest,
			},
			Mode: mode,
		}
	case EngineGoldmark:
		c.htmlConverter = pipeline.NewGoldmarkConverter()
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidEngine, c.cfg.engine, EngineTransformer, EngineGoldmark)
	}

	c.styleCSS, err = resolveStyle(c.cfg.style, c.cfg.assetPath)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// resolveStyle returns the CSS for a style name or file path.
// An empty style yields no CSS; the asset path is still validated.
func resolveStyle(style, assetPath string) (string, error) {
	if fileutil.IsFilePath(style) || strings.HasSuffix(strings.ToLower(style), ".css") {
		css, err := fileutil.ReadText(style)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrReadStyle, err)
		}
		return css, nil
	}

	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return "", err
	}
	if style == "" {
		return "", nil
	}
	return resolver.LoadStyle(style)
}

// Convert runs the pipeline and returns the HTML.
// The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title := input.Title
	if title == "" {
		title = c.cfg.title
	}
	if title == "" {
		title = pipeline.FirstHeading(fragment)
	}

	if !c.cfg.standalone {
		return &ConvertResult{HTML: []byte(fragment), Title: title}, nil
	}

	if title == "" {
		title = DefaultTitle
	}
	htmlContent := pipeline.WrapDocument(fragment, title)
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, joinCSS(joinCSS(c.styleCSS, c.cfg.css), input.CSS))
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &ConvertResult{HTML: []byte(htmlContent), Title: title}, nil
}

// joinCSS appends per-conversion CSS after the converter stylesheet so it
// can override it.
func joinCSS(base, extra string) string {
	switch {
	case base == "":
		return extra
	case extra == "":
		return base
	default:
		return base + "\n" + extra
	}
}
