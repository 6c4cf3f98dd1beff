// Package cd implements the cd command.
package cd

import (
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Run changes the session's working directory. Without arguments it
// switches to the home directory.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) > 1 {
		return "", core.ArgCountError("cd")
	}

	target := sess.Home()
	if len(args) == 1 {
		target = args[0]
	}

	dir, ok := fileutil.Resolve(sess, target)
	if !ok {
		return "", &core.Error{Kind: core.PathNotFound, Op: "cd", Path: target, Msg: "invalid path"}
	}
	info, err := fs.Stat(dir)
	if err != nil {
		return "", core.IOError("cd", target, err)
	}
	if !info.IsDir() {
		return "", core.NotDirError("cd", target)
	}

	sess.Chdir(dir)
	return "", nil
}
