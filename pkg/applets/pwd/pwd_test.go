package pwd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Ayman17/OS-Assignment-1/pkg/applets/pwd"
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/testutil"
)

func TestPwd(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, map[string]string{"sub/": ""})
	sess := testutil.NewSession(t, dir)

	out, err := pwd.Run(sess, nil)
	testutil.AssertKind(t, err, 0)
	testutil.AssertOutput(t, out, dir+"\n")

	sess.Chdir(filepath.Join(dir, "sub"))
	out, _ = pwd.Run(sess, nil)
	testutil.AssertOutput(t, out, filepath.Join(dir, "sub")+"\n")
}

func TestPwdIgnoresProcessCwd(t *testing.T) {
	dir := testutil.TempDirWithFiles(t, nil)
	sess := testutil.NewSession(t, dir)

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if cwd == dir {
		t.Skip("process cwd equals temp dir")
	}

	out, _ := pwd.Run(sess, nil)
	testutil.AssertOutput(t, out, dir+"\n")
}

func TestPwdArgs(t *testing.T) {
	testutil.RunCommandTests(t, pwd.Run, []testutil.CommandTestCase{
		{
			Name:     "extra_arg",
			Args:     []string{"-P"},
			WantKind: core.ArgumentCount,
		},
	})
}
