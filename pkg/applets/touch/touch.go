// Package touch implements the touch command.
package touch

import (
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Run creates an empty file. The arguments are joined with single spaces
// into one path, which is how names containing spaces are written since the
// parser has no quoting.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", core.ArgCountError("touch")
	}

	name := strings.Join(args, " ")
	path, err := fileutil.ValidateCreate(sess, "touch", name)
	if err != nil {
		return "", err
	}
	if err := fs.CreateNew(path); err != nil {
		return "", core.IOError("touch", name, err)
	}
	return "", nil
}
