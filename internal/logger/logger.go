// Package logger builds the zap logger used for diagnostics on stderr.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects how chatty diagnostics are.
type Level int

const (
	// LevelQuiet logs errors only.
	LevelQuiet Level = iota
	// LevelNormal logs warnings and errors.
	LevelNormal
	// LevelVerbose logs everything, including per-file timings.
	LevelVerbose
)

// LevelFor maps the CLI's --quiet/--verbose pair to a Level. Quiet wins.
func LevelFor(quiet, verbose bool) Level {
	switch {
	case quiet:
		return LevelQuiet
	case verbose:
		return LevelVerbose
	default:
		return LevelNormal
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelQuiet:
		return zapcore.ErrorLevel
	case LevelVerbose:
		return zapcore.DebugLevel
	default:
		return zapcore.WarnLevel
	}
}

// New returns a console logger writing to w.
func New(w io.Writer, level Level) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder
	encoderCfg.EncodeCaller = nil
	encoderCfg.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level.zapLevel()),
	)
	return zap.New(core)
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}
