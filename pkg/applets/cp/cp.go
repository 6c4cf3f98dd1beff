// Package cp implements the cp command.
package cp

import (
	"path/filepath"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Options holds cp command options.
type Options struct {
	Recursive bool // -r: mirror a directory tree
}

// Run copies a file to a file (cp SRC DEST) or mirrors a directory tree
// into a directory (cp -r SRC DEST). Existing files are overwritten.
func Run(sess *core.Session, args []string) (string, error) {
	opts := Options{}

	var src, dest string
	switch {
	case len(args) == 2 && args[0] != "-r":
		src, dest = args[0], args[1]
	case len(args) == 3 && args[0] == "-r":
		opts.Recursive = true
		src, dest = args[1], args[2]
	case len(args) == 3:
		return "", core.InvalidArgError("cp", args[0])
	default:
		return "", core.ArgCountError("cp")
	}

	if opts.Recursive {
		return "", copyTree(sess, src, dest)
	}
	return "", copyFile(sess, src, dest)
}

func copyFile(sess *core.Session, src, dest string) error {
	srcPath, err := fileutil.ResolveFile(sess, "cp", src)
	if err != nil {
		return err
	}
	destPath, err := fileutil.ResolveTarget(sess, "cp", dest)
	if err != nil {
		return err
	}

	if info, err := fs.Stat(destPath); err == nil && info.IsDir() {
		destPath = filepath.Join(destPath, filepath.Base(filepath.Clean(fileutil.Join(sess, src))))
		// The entry inside the directory may itself be a link to src.
		if real, ok := fileutil.Resolve(sess, destPath); ok {
			destPath = real
		}
	}
	if destPath == srcPath {
		return &core.Error{Kind: core.UnexpectedIO, Op: "cp", Path: dest, Msg: "is the same file as '" + src + "'"}
	}

	if err := fs.CopyFile(srcPath, destPath); err != nil {
		return core.IOError("cp", dest, err)
	}
	return nil
}

func copyTree(sess *core.Session, src, dest string) error {
	srcPath, err := fileutil.ResolveDir(sess, "cp", src)
	if err != nil {
		return err
	}
	destPath, err := fileutil.ResolveTarget(sess, "cp", dest)
	if err != nil {
		return err
	}

	if info, err := fs.Stat(destPath); err == nil && !info.IsDir() {
		return core.NotDirError("cp", dest)
	}
	if fileutil.Within(destPath, srcPath) {
		return &core.Error{Kind: core.UnexpectedIO, Op: "cp", Path: dest, Msg: "cannot copy a directory into itself"}
	}

	if err := fs.CopyDir(srcPath, destPath); err != nil {
		return core.IOError("cp", dest, err)
	}
	return nil
}
