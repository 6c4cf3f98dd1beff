package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRedirection(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{
		"existing.txt": "old",
		"d/":           "",
	})
	sess := testutil.NewSession(t, dir)

	tests := []struct {
		name     string
		args     []string
		wantSink Sink
		wantArgs []string
		wantKind core.Kind
	}{
		{name: "none", args: []string{"a", "b"}, wantSink: ConsoleSink, wantArgs: []string{"a", "b"}},
		{name: "empty", args: []string{}, wantSink: ConsoleSink, wantArgs: []string{}},
		{name: "single", args: []string{">"}, wantSink: ConsoleSink, wantArgs: []string{">"}},
		{
			name:     "truncate",
			args:     []string{"hi", ">", "out.txt"},
			wantSink: Sink{Kind: SinkTruncate, Path: filepath.Join(dir, "out.txt")},
			wantArgs: []string{"hi"},
		},
		{
			name:     "append",
			args:     []string{"hi", ">>", "existing.txt"},
			wantSink: Sink{Kind: SinkAppend, Path: filepath.Join(dir, "existing.txt")},
			wantArgs: []string{"hi"},
		},
		{
			name:     "only_redirect",
			args:     []string{">", "out.txt"},
			wantSink: Sink{Kind: SinkTruncate, Path: filepath.Join(dir, "out.txt")},
			wantArgs: []string{},
		},
		{
			name:     "subdir",
			args:     []string{">", "d/out.txt"},
			wantSink: Sink{Kind: SinkTruncate, Path: filepath.Join(dir, "d", "out.txt")},
			wantArgs: []string{},
		},
		{name: "not_last", args: []string{">", "a", "b"}, wantSink: ConsoleSink, wantArgs: []string{">", "a", "b"}},
		{name: "operator_target", args: []string{"x", ">", ">"}, wantSink: ConsoleSink, wantArgs: []string{"x", ">", ">"}},
		{name: "missing_parent", args: []string{"x", ">", "no/out.txt"}, wantKind: core.PathNotFound},
		{name: "directory_target", args: []string{"x", ">", "d"}, wantKind: core.WrongEntryType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, args, err := ExtractRedirection(sess, "echo", tt.args)
			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, core.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSink, sink)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSinkWrite(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{"f.txt": "old\n"})
	path := filepath.Join(dir, "f.txt")

	var console bytes.Buffer
	require.NoError(t, ConsoleSink.Write(&console, "hi\n"))
	assert.Equal(t, "hi\n", console.String())

	require.NoError(t, Sink{Kind: SinkAppend, Path: path}.Write(&console, "more\n"))
	testutil.AssertFileContent(t, path, "old\nmore\n")

	require.NoError(t, Sink{Kind: SinkTruncate, Path: path}.Write(&console, ""))
	testutil.AssertFileContent(t, path, "")

	newPath := filepath.Join(dir, "new.txt")
	require.NoError(t, Sink{Kind: SinkAppend, Path: newPath}.Write(&console, "x"))
	testutil.AssertFileContent(t, newPath, "x")

	assert.Equal(t, "hi\n", console.String(), "file sinks must not write to the console")
}

func FuzzExtractRedirection(f *testing.F) {
	f.Add("a", ">", "out")
	f.Add(">>", ">>", ">")
	f.Add("x", "y", "z")
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, a, b, c string) {
		c = testutil.ClampString(c, testutil.MaxFuzzBytes)
		dir, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		sess, err := core.NewSession(dir, dir)
		if err != nil {
			t.Fatal(err)
		}
		args := []string{a, b, c}
		sink, rest, err := ExtractRedirection(sess, "echo", args)
		if err != nil {
			return
		}
		if sink.Kind == SinkConsole {
			if len(rest) != len(args) {
				t.Fatalf("console sink changed args: %q -> %q", args, rest)
			}
			return
		}
		if len(rest) != 1 || rest[0] != a {
			t.Fatalf("file sink left args %q", rest)
		}
		if _, err := os.Stat(sink.Path); err == nil {
			return
		}
		if !filepath.IsAbs(sink.Path) {
			t.Fatalf("relative sink path %q", sink.Path)
		}
	})
}
