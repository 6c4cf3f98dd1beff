// Package fs provides filesystem operations that respect sandbox boundaries.
// Commands should use this package instead of direct os calls.
package fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Ayman17/OS-Assignment-1/pkg/sandbox"
)

// Open opens a file for reading.
func Open(path string) (*os.File, error) {
	return sandbox.Open(path)
}

// OpenFile opens a file with flags.
func OpenFile(path string, flag int, perm os.FileMode) (*os.File, error) {
	return sandbox.OpenFile(path, flag, perm)
}

// CreateNew creates an empty file, failing if path already exists.
func CreateNew(path string) error {
	f, err := sandbox.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// Stat returns file info.
func Stat(path string) (os.FileInfo, error) {
	return sandbox.Stat(path)
}

// Lstat returns file info without following a final symlink.
func Lstat(path string) (os.FileInfo, error) {
	return sandbox.Lstat(path)
}

// ReadDir reads directory contents.
func ReadDir(path string) ([]fs.DirEntry, error) {
	return sandbox.ReadDir(path)
}

// Mkdir creates a directory.
func Mkdir(path string, perm os.FileMode) error {
	return sandbox.Mkdir(path, perm)
}

// MkdirAll creates a directory and parents.
func MkdirAll(path string, perm os.FileMode) error {
	return sandbox.MkdirAll(path, perm)
}

// Remove removes a file or empty directory.
func Remove(path string) error {
	return sandbox.Remove(path)
}

// IsEmptyDir reports whether the directory at path has no entries.
func IsEmptyDir(path string) (bool, error) {
	f, err := Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}

// CopyFile copies the contents of src to dst, truncating dst if it exists.
func CopyFile(src, dst string) error {
	srcFile, err := Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}

// CopyDir mirrors the tree rooted at src into dst, creating directories as
// needed and overwriting existing files. The caller must ensure dst does
// not lie inside src.
func CopyDir(src, dst string) error {
	if err := MkdirAll(dst, 0755); err != nil {
		return err
	}

	entries, err := ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		info, err := Stat(srcPath)
		if err != nil {
			return err
		}
		// Symlinked directories are not followed; they could point back
		// into the tree being copied.
		if info.IsDir() {
			continue
		}
		if err := CopyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}
