package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/rowkit/pkg/view"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// UpdateEnv is the environment variable that makes MatchesFile rewrite
// golden files instead of comparing.
const UpdateEnv = "ROWKIT_UPDATE_SNAPSHOTS"

// MatchesFile compares snap against the golden file at path. On mismatch it
// reports a diff and instructions for updating. When ROWKIT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func MatchesFile(t TestingT, snap *view.Snapshot, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := UpdateFile(snap, path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	actual, err := snap.JSON()
	if err != nil {
		t.Fatalf("failed to encode snapshot: %v", err)
		return
	}
	if diff := Diff(string(expected), string(actual)); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes snap to path, creating directories as needed.
func UpdateFile(snap *view.Snapshot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := snap.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line-oriented diff of two snapshot encodings, or the empty
// string when they are equal.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf bytes.Buffer
	buf.WriteString("--- expected\n+++ actual\n")
	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
