package shell

import (
	"path/filepath"
	"testing"

	"github.com/Ayman17/OS-Assignment-1/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispatcher(t *testing.T, files map[string]string) (*Dispatcher, string) {
	t.Helper()
	dir := testutil.TempDirWithFiles(t, files)
	stdio, _, _ := testutil.CaptureStdio("")
	return NewDispatcher(testutil.NewSession(t, dir), stdio), dir
}

func TestDefaultRegistry(t *testing.T) {
	want := []string{"cat", "cd", "cp", "echo", "history", "ls", "mkdir", "pwd", "rm", "rmdir", "touch", "wc"}
	assert.Equal(t, want, DefaultRegistry().Names())
}

func TestDispatchEcho(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, nil)
	stdio, out, errOut := testutil.CaptureStdio("")
	d := NewDispatcher(testutil.NewSession(t, dir), stdio)

	assert.False(t, d.Dispatch("echo hello   world"))
	assert.Equal(t, "hello world\n", out.String())
	assert.Empty(t, errOut.String())
	assert.Equal(t, []string{"echo"}, d.Session.History())
}

func TestDispatchBlankLine(t *testing.T) {
	d, _ := newTestDispatcher(t, nil)
	assert.False(t, d.Dispatch(""))
	assert.False(t, d.Dispatch("   "))
	assert.Empty(t, d.Session.History())
}

func TestDispatchExit(t *testing.T) {
	d, _ := newTestDispatcher(t, nil)
	assert.True(t, d.Dispatch("exit"))
	assert.True(t, d.Dispatch("  exit now"))
	assert.Empty(t, d.Session.History())
}

func TestDispatchUnknownCommand(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, nil)
	stdio, out, errOut := testutil.CaptureStdio("")
	d := NewDispatcher(testutil.NewSession(t, dir), stdio)

	assert.False(t, d.Dispatch("frobnicate a b"))
	assert.Empty(t, out.String())
	assert.Equal(t, "This command is not available\n", errOut.String())
	assert.Empty(t, d.Session.History())
	assert.Equal(t, dir, d.Session.Dir())
}

func TestDispatchFailureStillRecorded(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, nil)
	stdio, out, errOut := testutil.CaptureStdio("")
	d := NewDispatcher(testutil.NewSession(t, dir), stdio)

	assert.False(t, d.Dispatch("cat missing.txt"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "missing.txt")
	assert.Equal(t, []string{"cat"}, d.Session.History())
}

func TestDispatchRedirection(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, nil)
	stdio, out, errOut := testutil.CaptureStdio("")
	d := NewDispatcher(testutil.NewSession(t, dir), stdio)
	path := filepath.Join(dir, "out.txt")

	d.Dispatch("echo hi > out.txt")
	testutil.AssertFileContent(t, path, "hi\n")

	d.Dispatch("echo bye >> out.txt")
	testutil.AssertFileContent(t, path, "hi\nbye\n")

	d.Dispatch("cat out.txt >> out2.txt")
	testutil.AssertFileContent(t, filepath.Join(dir, "out2.txt"), "hi\nbye\n\n")

	d.Dispatch("echo again > out.txt")
	testutil.AssertFileContent(t, path, "again\n")

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
	assert.Equal(t, []string{"echo", "echo", "cat", "echo"}, d.Session.History())
}

func TestDispatchRedirectionTruncatesOnEmptyOutput(t *testing.T) {
	d, dir := newTestDispatcher(t, map[string]string{"f.txt": "data"})

	d.Dispatch("touch new.txt > f.txt")
	testutil.AssertFileContent(t, filepath.Join(dir, "f.txt"), "")
	testutil.AssertFileExists(t, filepath.Join(dir, "new.txt"))
}

func TestDispatchBadRedirectTarget(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, nil)
	stdio, out, errOut := testutil.CaptureStdio("")
	d := NewDispatcher(testutil.NewSession(t, dir), stdio)

	d.Dispatch("echo hi > missing/out.txt")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "missing/out.txt")
	assert.Empty(t, d.Session.History())
}

func TestDispatchHistory(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, nil)
	stdio, out, _ := testutil.CaptureStdio("")
	d := NewDispatcher(testutil.NewSession(t, dir), stdio)

	d.Dispatch("echo a")
	d.Dispatch("pwd")
	d.Dispatch("ls")
	out.Reset()

	d.Dispatch("history")
	assert.Equal(t, "1 echo\n2 pwd\n3 ls\n", out.String())
	assert.Equal(t, []string{"echo", "pwd", "ls", "history"}, d.Session.History())
}

func TestDispatchWorkingDirectory(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{"sub/": ""})
	stdio, out, errOut := testutil.CaptureStdio("")
	d := NewDispatcher(testutil.NewSession(t, dir), stdio)

	d.Dispatch("cd sub")
	require.Empty(t, errOut.String())
	assert.Equal(t, filepath.Join(dir, "sub"), d.Session.Dir())

	d.Dispatch("touch f.txt")
	testutil.AssertFileExists(t, filepath.Join(dir, "sub", "f.txt"))

	d.Dispatch("cd ..")
	out.Reset()
	d.Dispatch("pwd")
	assert.Equal(t, dir+"\n", out.String())
}
