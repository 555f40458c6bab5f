package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// newTestEnv returns an Environment writing to buffers with a frozen clock.
func newTestEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

// writeFile creates path (and its parents) with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
