// Package mkdir implements the mkdir command.
package mkdir

import (
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Run creates each named directory in order. It stops at the first failure
// and leaves directories created before it in place.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", core.ArgCountError("mkdir")
	}

	for _, dir := range args {
		path, err := fileutil.ValidateCreate(sess, "mkdir", dir)
		if err != nil {
			return "", err
		}
		if err := fs.Mkdir(path, 0755); err != nil {
			return "", core.IOError("mkdir", dir, err)
		}
	}

	return "", nil
}
