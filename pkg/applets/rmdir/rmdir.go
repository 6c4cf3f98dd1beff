// Package rmdir implements the rmdir command.
package rmdir

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// All is the sole argument that removes every empty subdirectory of the
// working directory.
const All = "*"

// Run removes an empty directory. The arguments are joined with single
// spaces into one path; a sole "*" removes every empty immediate
// subdirectory of the working directory instead.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) == 0 {
		return "", core.ArgCountError("rmdir")
	}
	if len(args) == 1 && args[0] == All {
		return "", removeEmptyChildren(sess)
	}

	name := strings.Join(args, " ")
	path, info, err := fileutil.ResolveEntry(sess, "rmdir", name)
	if err != nil {
		return "", err
	}
	// A symlink is not a directory even when it points at one.
	if !info.IsDir() {
		return "", core.NotDirError("rmdir", name)
	}
	return "", removeDir(sess, name, path)
}

// removeEmptyChildren visits subdirectories in enumeration order and keeps
// going past failures; every failure is reported.
func removeEmptyChildren(sess *core.Session) error {
	entries, err := fs.ReadDir(sess.Dir())
	if err != nil {
		return core.IOError("rmdir", sess.Dir(), err)
	}

	var errs []error
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(sess.Dir(), entry.Name())
		if err := removeDir(sess, entry.Name(), path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func removeDir(sess *core.Session, name, path string) error {
	if fileutil.Within(sess.Dir(), path) {
		return &core.Error{Kind: core.UnexpectedIO, Op: "rmdir", Path: name, Msg: "contains the working directory"}
	}

	empty, err := fs.IsEmptyDir(path)
	if err != nil {
		return core.IOError("rmdir", name, err)
	}
	if !empty {
		return core.NotEmptyError("rmdir", name)
	}

	if err := fs.Remove(path); err != nil {
		return core.IOError("rmdir", name, err)
	}
	return nil
}
