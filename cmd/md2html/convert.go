package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingArgs  = errors.New("expected <input> and <output> arguments")
	ErrMissingInput = errors.New("input not found")
	ErrInvalidFlag  = errors.New("invalid flag")
	ErrReadCSS      = errors.New("failed to read CSS file")
)

// missingInputError reports an input path that does not exist.
// Its message is the bare "Missing <path>" line, plus a hint when a
// similarly named file sits next to it.
type missingInputError struct {
	path string
	hint string
}

func newMissingInputError(path string) *missingInputError {
	return &missingInputError{path: path, hint: hints.ForMissingInput(path)}
}

func (e *missingInputError) Error() string {
	return "Missing " + e.path + e.hint
}

func (e *missingInputError) Unwrap() error {
	return ErrMissingInput
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment, log *zap.Logger) error {
	if !flags.printConfig {
		// Extra positionals after <output> are ignored.
		if len(args) < 2 {
			return fmt.Errorf("%w: got %d", ErrMissingArgs, len(args))
		}
		if !fileutil.PathExists(args[0]) {
			return newMissingInputError(args[0])
		}
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}
	log.Debug("effective config",
		zap.Bool("custom_syntax", cfg.Syntax.Custom),
		zap.String("digest", cfg.Syntax.Digest),
		zap.String("mode", cfg.Mode),
		zap.String("engine", cfg.Engine),
		zap.Bool("standalone", cfg.Output.Standalone),
		zap.String("style", cfg.Output.Style),
		zap.Int("workers", cfg.Workers),
	)

	if flags.printConfig {
		out, err := cfg.Dump()
		if err != nil {
			return fmt.Errorf("rendering config: %w", err)
		}
		fmt.Fprint(env.Stdout, out)
		return nil
	}

	css, err := resolveCSSContent(cfg, log)
	if err != nil {
		return err
	}

	conv, err := md2html.NewConverter(converterOptions(cfg, css)...)
	if err != nil {
		return err
	}

	files, err := discoverFiles(args[0], args[1])
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	log.Debug("discovered files", zap.Int("count", len(files)))

	results := convertBatch(ctx, conv, files, cfg.Workers, env)

	summary := printResults(results, flags.common.quiet, env, log)
	if summary.Failed == 0 {
		return nil
	}
	if len(results) == 1 {
		return results[0].Err
	}
	return fmt.Errorf("%d of %d conversion(s) failed: %w", summary.Failed, len(results), firstError(results))
}

// resolveConfig loads the config file (if any), merges CLI flags over it,
// and validates the result.
func resolveConfig(flags *convertFlags) (*config.Config, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(flags.common.config) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(flags.common.config)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Syntax flags
	if flags.syntax.custom {
		cfg.Syntax.Custom = true
	}
	if flags.syntax.digest != "" {
		cfg.Syntax.Digest = flags.syntax.digest
	}
	if flags.syntax.mode != "" {
		cfg.Mode = flags.syntax.mode
	}
	if flags.syntax.engine != "" {
		cfg.Engine = flags.syntax.engine
	}

	// Document flags
	if flags.document.standalone {
		cfg.Output.Standalone = true
	}
	if flags.document.title != "" {
		cfg.Output.Title = flags.document.title
	}
	if flags.document.style != "" {
		cfg.Output.Style = flags.document.style
	}
	if flags.document.assetPath != "" {
		cfg.Output.AssetPath = flags.document.assetPath
	}
	if flags.document.css != "" {
		cfg.Output.CSS = flags.document.css
	}

	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// resolveCSSContent reads the configured stylesheet. Stylesheets without
// standalone output have nowhere to go and are skipped with a warning.
func resolveCSSContent(cfg *config.Config, log *zap.Logger) (string, error) {
	if !cfg.Output.Standalone {
		if cfg.Output.CSS != "" || cfg.Output.Style != "" {
			log.Warn("stylesheet ignored without standalone output",
				zap.String("css", cfg.Output.CSS),
				zap.String("style", cfg.Output.Style),
			)
		}
		return "", nil
	}
	if cfg.Output.CSS == "" {
		return "", nil
	}

	content, err := fileutil.ReadText(cfg.Output.CSS)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return content, nil
}

// converterOptions translates the effective config into library options.
// Style options are only passed for standalone output.
func converterOptions(cfg *config.Config, css string) []md2html.Option {
	opts := []md2html.Option{
		md2html.WithCustomSyntax(cfg.Syntax.Custom),
		md2html.WithDigest(cfg.Syntax.Digest),
		md2html.WithMode(cfg.Mode),
		md2html.WithEngine(cfg.Engine),
		md2html.WithStandalone(cfg.Output.Standalone),
		md2html.WithTitle(cfg.Output.Title),
		md2html.WithCSS(css),
	}
	if cfg.Output.Standalone {
		opts = append(opts,
			md2html.WithStyle(cfg.Output.Style),
			md2html.WithAssetPath(cfg.Output.AssetPath),
		)
	}
	return opts
}
