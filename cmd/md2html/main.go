package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/alnah/go-md2html/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses args, runs the conversion, and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		printShortUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	}

	log := logger.New(env.Stderr, logger.LevelFor(flags.common.quiet, flags.common.verbose))
	defer func() { _ = log.Sync() }()

	if env.AdjustMaxProcs {
		configureMaxProcs(log)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env, log); err != nil {
		fmt.Fprintln(env.Stderr, err)
		if errors.Is(err, ErrMissingArgs) {
			printShortUsage(env.Stderr)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// configureMaxProcs matches GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(log *zap.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(log.Sugar().Debugf))
}
