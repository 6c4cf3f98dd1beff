// Package sandbox provides capability-based filesystem access control.
// It wraps the file operations the shell performs and restricts them to
// pre-authorized path prefixes.
package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Common sandbox errors.
var (
	ErrAccessDenied = errors.New("access denied: path not in sandbox")
	ErrReadOnly     = errors.New("write access denied: sandbox is read-only")
)

// Permission represents file access permissions.
type Permission uint8

const (
	PermNone  Permission = 0
	PermRead  Permission = 1 << iota // Can read files and list directories
	PermWrite                        // Can create, write and remove entries
)

// ParsePermission converts "r", "w" or "rw" into a Permission.
func ParsePermission(s string) (Permission, error) {
	if s == "" {
		return PermNone, fmt.Errorf("empty permission")
	}
	perm := PermNone
	for _, c := range s {
		switch c {
		case 'r':
			perm |= PermRead
		case 'w':
			perm |= PermWrite
		default:
			return PermNone, fmt.Errorf("invalid permission %q", s)
		}
	}
	return perm, nil
}

// PathRule defines access rules for a path prefix.
type PathRule struct {
	Path       string     // Path prefix (resolved to canonical absolute form)
	Permission Permission // Allowed operations
}

// Sandbox provides controlled filesystem access.
type Sandbox struct {
	mu      sync.RWMutex
	rules   []PathRule
	enabled bool
}

// Config holds sandbox configuration.
type Config struct {
	// Paths to allow access to (with permissions)
	AllowedPaths []PathRule
	// StartDir is the shell's initial working directory.
	StartDir string
	// Allow access to StartDir
	AllowStartDir bool
	// Permission for StartDir if AllowStartDir is true (default read/write)
	StartDirPermission Permission
}

// Global sandbox instance (disabled unless configured).
var globalSandbox = &Sandbox{enabled: false}

// Init initializes the global sandbox with the given configuration.
func Init(cfg *Config) error {
	globalSandbox.mu.Lock()
	defer globalSandbox.mu.Unlock()

	globalSandbox.rules = nil
	globalSandbox.enabled = true

	if cfg.AllowStartDir {
		if cfg.StartDir == "" {
			return errors.New("sandbox: start directory not set")
		}
		perm := cfg.StartDirPermission
		if perm == PermNone {
			perm = PermRead | PermWrite
		}
		globalSandbox.rules = append(globalSandbox.rules, PathRule{
			Path:       canonical(cfg.StartDir),
			Permission: perm,
		})
	}

	for _, rule := range cfg.AllowedPaths {
		globalSandbox.rules = append(globalSandbox.rules, PathRule{
			Path:       canonical(rule.Path),
			Permission: rule.Permission,
		})
	}

	return nil
}

// canonical resolves symlinks in a rule path so that rules compare against
// the canonical paths produced by the shell's resolver.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}

// Disable disables the sandbox (allows all operations).
func Disable() {
	globalSandbox.mu.Lock()
	defer globalSandbox.mu.Unlock()
	globalSandbox.enabled = false
	globalSandbox.rules = nil
}

// IsEnabled returns whether the sandbox is enabled.
func IsEnabled() bool {
	globalSandbox.mu.RLock()
	defer globalSandbox.mu.RUnlock()
	return globalSandbox.enabled
}

// Check verifies if the given path can be accessed with the requested permission.
func Check(path string, perm Permission) error {
	globalSandbox.mu.RLock()
	defer globalSandbox.mu.RUnlock()

	if !globalSandbox.enabled {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return ErrAccessDenied
	}

	// Clean the path to prevent traversal attacks
	absPath = filepath.Clean(absPath)

	// Access is granted when any matching rule carries perm.
	matched := false
	for _, rule := range globalSandbox.rules {
		if !within(absPath, rule.Path) {
			continue
		}
		if rule.Permission&perm == perm {
			return nil
		}
		matched = true
	}

	if matched && perm&PermWrite != 0 {
		return ErrReadOnly
	}
	return ErrAccessDenied
}

func within(path, prefix string) bool {
	if path == prefix {
		return true
	}
	if prefix == string(filepath.Separator) {
		return strings.HasPrefix(path, prefix)
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

// Open opens a file for reading within the sandbox.
func Open(path string) (*os.File, error) {
	if err := Check(path, PermRead); err != nil {
		return nil, err
	}
	return os.Open(path) // #nosec G304 -- sandbox Check enforces allowed paths
}

// OpenFile opens a file with the given flags within the sandbox.
func OpenFile(path string, flag int, perm os.FileMode) (*os.File, error) {
	required := PermRead
	if flag&(os.O_WRONLY|os.O_RDWR|os.O_CREATE|os.O_TRUNC|os.O_APPEND) != 0 {
		required = PermWrite
	}
	if err := Check(path, required); err != nil {
		return nil, err
	}
	return os.OpenFile(path, flag, perm) // #nosec G304 -- sandbox Check enforces allowed paths
}

// Stat returns file info within the sandbox.
func Stat(path string) (os.FileInfo, error) {
	if err := Check(path, PermRead); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

// Lstat returns file info without following a final symlink.
func Lstat(path string) (os.FileInfo, error) {
	if err := Check(path, PermRead); err != nil {
		return nil, err
	}
	return os.Lstat(path)
}

// ReadDir reads a directory within the sandbox.
func ReadDir(path string) ([]fs.DirEntry, error) {
	if err := Check(path, PermRead); err != nil {
		return nil, err
	}
	return os.ReadDir(path)
}

// Mkdir creates a directory within the sandbox.
func Mkdir(path string, perm os.FileMode) error {
	if err := Check(path, PermWrite); err != nil {
		return err
	}
	return os.Mkdir(path, perm)
}

// MkdirAll creates a directory and parents within the sandbox.
func MkdirAll(path string, perm os.FileMode) error {
	if err := Check(path, PermWrite); err != nil {
		return err
	}
	return os.MkdirAll(path, perm)
}

// Remove removes a file or empty directory within the sandbox.
func Remove(path string) error {
	if err := Check(path, PermWrite); err != nil {
		return err
	}
	return os.Remove(path)
}
