package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2html.Input) (*md2html.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2html.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// resolveWorkers returns the number of concurrent conversions for n files.
// Explicit value takes priority, else GOMAXPROCS (adjusted by automaxprocs
// for containers). Never more than n.
func resolveWorkers(workers, n int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// convertBatch converts files concurrently. Results keep the order of files.
// A failed file does not stop the others.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, workers int, env *Environment) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))

	var g errgroup.Group
	g.SetLimit(resolveWorkers(workers, len(files)))

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = ConversionResult{InputPath: f.InputPath, OutputPath: f.OutputPath, Err: err}
				return nil
			}
			results[i] = convertFile(ctx, conv, f, env.Now)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, now func() time.Time) ConversionResult {
	start := now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := fileutil.ReadText(f.InputPath)
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = now().Sub(start)
		return result
	}

	convResult, err := conv.Convert(ctx, md2html.Input{Markdown: content})
	if err != nil {
		result.Err = fmt.Errorf("converting %s: %w", f.InputPath, err)
		result.Duration = now().Sub(start)
		return result
	}
	result.Title = convResult.Title

	if err := fileutil.WriteFileAtomic(f.OutputPath, convResult.HTML); err != nil {
		var hint string
		if errors.Is(err, fileutil.ErrCreateDirectory) {
			hint = hints.ForOutputDirectory()
		}
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hint)
		result.Duration = now().Sub(start)
		return result
	}

	result.Duration = now().Sub(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports each result and returns the summary.
// Successes go to stdout as "Created <path>". Failures of a multi-file run
// are logged one by one; a single failure is left to the caller.
func printResults(results []ConversionResult, quiet bool, env *Environment, log *zap.Logger) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				log.Error("conversion failed", zap.String("input", r.InputPath), zap.Error(r.Err))
			}
			continue
		}

		log.Debug("converted",
			zap.String("input", r.InputPath),
			zap.String("output", r.OutputPath),
			zap.String("title", r.Title),
			zap.Duration("took", r.Duration.Round(time.Millisecond)),
		)
		if !quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

// firstError returns the first failure in results.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
