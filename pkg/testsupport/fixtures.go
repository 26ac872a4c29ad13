// Package testsupport holds golden-file helpers shared by the package tests.
package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// UpdateEnv names the environment variable that rewrites goldens.
const UpdateEnv = "UPDATE_GOLDENS"

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv(UpdateEnv) == "" {
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

// MarshalGolden encodes value the way goldens are stored.
func MarshalGolden(t *testing.T, value any) []byte {
	t.Helper()
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	return append(payload, '\n')
}

// CompareJSON returns a diff between two JSON payloads after decoding both,
// so formatting and key order do not matter.
func CompareJSON(t *testing.T, want, got []byte) string {
	t.Helper()
	var w, g any
	if err := json.Unmarshal(want, &w); err != nil {
		t.Fatalf("decode golden: %v", err)
	}
	if err := json.Unmarshal(got, &g); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	return cmp.Diff(w, g)
}

// AssertGolden marshals value and compares it with the golden at path,
// rewriting the file instead when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, value any) {
	t.Helper()
	got := MarshalGolden(t, value)
	if WriteMaybeGolden(t, path, got) {
		return
	}
	if diff := CompareJSON(t, MustReadGolden(t, path), got); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
