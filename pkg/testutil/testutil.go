// Package testutil provides shared testing utilities and fixtures.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
)

// TempFile creates a temp file with content, returns path.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TempFileIn creates a temp file in a specific directory.
func TempFileIn(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TempDirWithFiles creates a temp directory populated with files.
// The files map keys are relative paths, values are file contents. A key
// ending in "/" creates an empty directory.
// The returned path is canonical so it compares equal to resolved paths.
func TempDirWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(path, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// NewSession returns a session whose working and home directory is dir.
func NewSession(t *testing.T, dir string) *core.Session {
	t.Helper()
	sess, err := core.NewSession(dir, dir)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

// CaptureStdio creates a Stdio with captured output buffers.
// Returns the Stdio, stdout buffer, and stderr buffer.
func CaptureStdio(input string) (*core.Stdio, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	return &core.Stdio{
		In:  strings.NewReader(input),
		Out: out,
		Err: errBuf,
	}, out, errBuf
}

// AssertOutput checks that stdout matches expected.
func AssertOutput(t *testing.T, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// AssertOutputContains checks that stdout contains expected substring.
func AssertOutputContains(t *testing.T, got, want string) {
	t.Helper()
	if !strings.Contains(got, want) {
		t.Errorf("output %q does not contain %q", got, want)
	}
}

// AssertKind checks that err carries the expected kind; a zero kind means
// no error is expected.
func AssertKind(t *testing.T, err error, want core.Kind) {
	t.Helper()
	if want == 0 {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Errorf("expected %v error, got nil", want)
		return
	}
	if got := core.KindOf(err); got != want {
		t.Errorf("error kind = %v (%v), want %v", got, err, want)
	}
}

// AssertFileExists checks that a file exists.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("file %s does not exist", path)
	}
}

// AssertFileNotExists checks that a file does not exist.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("file %s should not exist", path)
	}
}

// AssertFileContent checks that a file contains expected content.
func AssertFileContent(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	if string(got) != want {
		t.Errorf("file %s content = %q, want %q", path, got, want)
	}
}

// AssertIsDir checks that path is an existing directory.
func AssertIsDir(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}

// CommandTestCase defines a parameterized test case for a built-in command.
type CommandTestCase struct {
	Name       string                         // Test name
	Args       []string                       // Command arguments
	WantKind   core.Kind                      // Expected error kind (0 = success)
	WantOut    string                         // Expected output (exact match)
	WantEmpty  bool                           // Expect empty output
	WantOutSub string                         // Expected output substring
	WantErr    string                         // Expected error message substring
	Files      map[string]string              // Files to create in temp dir
	Setup      func(t *testing.T, dir string) // Optional setup function
	Check      func(t *testing.T, dir string) // Optional post-run check
}

// RunCommandTests runs a slice of parameterized command test cases, each in
// a fresh session rooted at its own temp directory.
func RunCommandTests(t *testing.T, run core.Handler, tests []CommandTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			dir := TempDirWithFiles(t, tt.Files)

			if tt.Setup != nil {
				tt.Setup(t, dir)
			}

			sess := NewSession(t, dir)
			out, err := run(sess, tt.Args)

			AssertKind(t, err, tt.WantKind)

			if tt.WantOut != "" {
				AssertOutput(t, out, tt.WantOut)
			}
			if tt.WantEmpty {
				AssertOutput(t, out, "")
			}
			if tt.WantOutSub != "" {
				AssertOutputContains(t, out, tt.WantOutSub)
			}
			if tt.WantErr != "" {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.WantErr)
				} else {
					AssertOutputContains(t, err.Error(), tt.WantErr)
				}
			}

			if tt.Check != nil {
				tt.Check(t, dir)
			}
		})
	}
}
