package main

import (
	"context"
	"os/signal"
)

// notifyContext returns a context canceled on the first shutdown signal.
// In-flight files finish or abort on their own; files not yet started are
// reported as canceled. Call stop() to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
