// Package fileutil resolves user-supplied paths against a session's virtual
// working directory.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Join returns raw as an absolute path, joined to the working directory when
// relative. The result is not cleaned so that ".." after a symlink is
// interpreted against the link target during canonicalization.
func Join(sess *core.Session, raw string) string {
	if filepath.IsAbs(raw) {
		return raw
	}
	return sess.Dir() + string(filepath.Separator) + raw
}

// Resolve canonicalizes raw. It reports false when the path does not exist
// or cannot be looked up, including paths the sandbox does not expose; all
// of these are ordinary answers.
func Resolve(sess *core.Session, raw string) (string, bool) {
	real, err := filepath.EvalSymlinks(Join(sess, raw))
	if err != nil {
		return "", false
	}
	if _, err := fs.Lstat(real); err != nil {
		return "", false
	}
	return real, true
}

// ResolveEntry locates the entry raw names without following a symlink in
// its last element. The parent is canonicalized; the returned path is the
// canonical parent joined with the final name, along with its Lstat info.
func ResolveEntry(sess *core.Session, op, raw string) (string, os.FileInfo, error) {
	sep := string(filepath.Separator)
	joined := strings.TrimRight(Join(sess, raw), sep)
	i := strings.LastIndex(joined, sep)
	base := joined[i+1:]
	if i < 0 || base == "" || base == "." || base == ".." {
		path, ok := Resolve(sess, raw)
		if !ok {
			return "", nil, core.NotFoundError(op, raw)
		}
		info, err := fs.Lstat(path)
		if err != nil {
			return "", nil, core.IOError(op, raw, err)
		}
		return path, info, nil
	}

	dir := joined[:i]
	if dir == "" {
		dir = sep
	}
	parent, ok := Resolve(sess, dir)
	if !ok {
		return "", nil, core.NotFoundError(op, raw)
	}
	if info, err := fs.Stat(parent); err != nil || !info.IsDir() {
		return "", nil, core.NotFoundError(op, raw)
	}
	path := filepath.Join(parent, base)
	info, err := fs.Lstat(path)
	if os.IsNotExist(err) {
		return "", nil, core.NotFoundError(op, raw)
	}
	if err != nil {
		return "", nil, core.IOError(op, raw, err)
	}
	return path, info, nil
}

// ResolveDir resolves raw and requires it to be a directory.
func ResolveDir(sess *core.Session, op, raw string) (string, error) {
	path, ok := Resolve(sess, raw)
	if !ok {
		return "", core.NotFoundError(op, raw)
	}
	info, err := fs.Stat(path)
	if err != nil {
		return "", core.IOError(op, raw, err)
	}
	if !info.IsDir() {
		return "", core.NotDirError(op, raw)
	}
	return path, nil
}

// ResolveFile resolves raw and requires it to be a regular file.
func ResolveFile(sess *core.Session, op, raw string) (string, error) {
	path, ok := Resolve(sess, raw)
	if !ok {
		return "", core.NotFoundError(op, raw)
	}
	info, err := fs.Stat(path)
	if err != nil {
		return "", core.IOError(op, raw, err)
	}
	if !info.Mode().IsRegular() {
		return "", core.NotFileError(op, raw)
	}
	return path, nil
}

// ResolveTarget returns the canonical location raw names, whether or not it
// exists yet. The parent directory must exist.
func ResolveTarget(sess *core.Session, op, raw string) (string, error) {
	if path, ok := Resolve(sess, raw); ok {
		return path, nil
	}
	joined := filepath.Clean(Join(sess, raw))
	parent, ok := Resolve(sess, filepath.Dir(joined))
	if !ok {
		return "", core.NotFoundError(op, raw)
	}
	info, err := fs.Stat(parent)
	if err != nil {
		return "", core.IOError(op, raw, err)
	}
	if !info.IsDir() {
		return "", core.NotFoundError(op, raw)
	}
	return filepath.Join(parent, filepath.Base(joined)), nil
}

// ValidateCreate checks that raw does not exist yet and that its parent is an
// existing directory. It returns the canonical path to create.
func ValidateCreate(sess *core.Session, op, raw string) (string, error) {
	if _, ok := Resolve(sess, raw); ok {
		return "", core.ExistsError(op, raw)
	}
	if _, err := fs.Lstat(Join(sess, raw)); err == nil {
		// dangling symlink
		return "", core.ExistsError(op, raw)
	}
	return ResolveTarget(sess, op, raw)
}

// Within reports whether path equals root or lies beneath it. Both must be
// canonical.
func Within(path, root string) bool {
	if path == root {
		return true
	}
	if root == string(filepath.Separator) {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
