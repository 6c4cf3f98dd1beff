package history_test

import (
	"testing"

	"github.com/Ayman17/OS-Assignment-1/pkg/applets/history"
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/testutil"
)

func TestHistoryEmpty(t *testing.T) {
	testutil.RunCommandTests(t, history.Run, []testutil.CommandTestCase{
		{
			Name:    "empty",
			WantOut: "No commands in history\n",
		},
		{
			Name:     "args",
			Args:     []string{"5"},
			WantKind: core.ArgumentCount,
		},
	})
}

func TestHistoryNumbering(t *testing.T) {
	sess := testutil.NewSession(t, testutil.TempDirWithFiles(t, nil))
	sess.Record("echo")
	sess.Record("pwd")
	sess.Record("ls")

	out, err := history.Run(sess, nil)
	testutil.AssertKind(t, err, 0)
	testutil.AssertOutput(t, out, "1 echo\n2 pwd\n3 ls\n")
}
