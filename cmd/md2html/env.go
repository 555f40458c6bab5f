package main

import (
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now            func() time.Time
	Stdout         io.Writer
	Stderr         io.Writer
	AdjustMaxProcs bool // false in tests: GOMAXPROCS is process-wide
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:            time.Now,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		AdjustMaxProcs: true,
	}
}
