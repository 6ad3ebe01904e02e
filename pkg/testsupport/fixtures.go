// Package testsupport holds fixture and golden-file helpers shared by the
// package tests. Set UPDATE_GOLDENS=1 to rewrite goldens in place.
package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formaria/pkg/model"
)

// UpdateGoldens reports whether golden files should be rewritten.
func UpdateGoldens() bool {
	return os.Getenv("UPDATE_GOLDENS") != ""
}

// MustLoadForm loads and validates a form definition fixture.
func MustLoadForm(t *testing.T, path string) model.Form {
	t.Helper()

	form, err := model.LoadFile(path)
	if err != nil {
		t.Fatalf("load form %s: %v", path, err)
	}
	return form
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if !UpdateGoldens() {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got against the golden file at path, rewriting it
// instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got []byte) {
	t.Helper()
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", filepath.Base(path), diff)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
