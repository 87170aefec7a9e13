package testsupport

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-statsstudio/pkg/schema"
)

// LoadRegistry reads a descriptor fixture and parses it. Parse warnings such
// as a missing templates menu fail the test.
func LoadRegistry(t *testing.T, path string) *schema.Registry {
	t.Helper()

	reg, err := LoadRegistryFromPath(path)
	if err != nil {
		t.Fatalf("load registry: %v", err)
	}
	return reg
}

// LoadRegistryFromPath returns a Registry without requiring testing.T, allowing
// callers to wire fixtures in setup functions.
func LoadRegistryFromPath(path string) (*schema.Registry, error) {
	if path == "" {
		return nil, errors.New("testsupport: descriptor path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read descriptor: %w", err)
	}
	reg, err := schema.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse descriptor: %w", err)
	}
	return reg, nil
}

// EmbeddedRegistry parses the bundled descriptor.
func EmbeddedRegistry(t *testing.T) *schema.Registry {
	t.Helper()

	data, err := fs.ReadFile(schema.EmbeddedFS(), schema.DefaultDescriptor)
	if err != nil {
		t.Fatalf("read embedded descriptor: %v", err)
	}
	reg, err := schema.Parse(data)
	if err != nil {
		t.Fatalf("parse embedded descriptor: %v", err)
	}
	return reg
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
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

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
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

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
