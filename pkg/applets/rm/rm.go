// Package rm implements the rm command.
package rm

import (
	"os"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Run removes exactly one regular file. A symlink to a regular file is
// removed itself; its target is left alone.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) != 1 {
		return "", core.ArgCountError("rm")
	}

	path, info, err := fileutil.ResolveEntry(sess, "rm", args[0])
	if err != nil {
		return "", err
	}
	if info.Mode()&os.ModeSymlink != 0 {
		target, err := fs.Stat(path)
		if err != nil {
			return "", core.NotFoundError("rm", args[0])
		}
		info = target
	}
	if !info.Mode().IsRegular() {
		return "", core.NotFileError("rm", args[0])
	}

	if err := fs.Remove(path); err != nil {
		return "", core.IOError("rm", args[0], err)
	}
	return "", nil
}
