// Package cat implements the cat command.
package cat

import (
	"io"
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Run concatenates one or two files, each followed by a newline. Every
// argument is checked before anything is read.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) < 1 || len(args) > 2 {
		return "", core.ArgCountError("cat")
	}

	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := fileutil.ResolveFile(sess, "cat", arg)
		if err != nil {
			return "", err
		}
		paths = append(paths, path)
	}

	var b strings.Builder
	for i, path := range paths {
		if err := catFile(&b, path); err != nil {
			return "", core.IOError("cat", args[i], err)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func catFile(b *strings.Builder, path string) error {
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(b, f)
	return err
}
