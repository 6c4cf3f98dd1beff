package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// Session holds the virtual working directory and command history of one
// interpreter. It is the only mutable state shared between commands and is
// used from a single goroutine.
type Session struct {
	dir     string
	home    string
	history []string
}

// NewSession returns a session rooted at dir, which must be an existing
// directory. home is the target of a bare cd; it is canonicalized when it
// exists and kept as given otherwise.
func NewSession(dir, home string) (*Session, error) {
	canon, err := canonicalDir(dir)
	if err != nil {
		return nil, err
	}
	if h, err := canonicalDir(home); err == nil {
		home = h
	}
	return &Session{dir: canon, home: home}, nil
}

func canonicalDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(real)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: not a directory", dir)
	}
	return real, nil
}

// Dir returns the canonical working directory.
func (s *Session) Dir() string { return s.dir }

// Home returns the directory a bare cd switches to.
func (s *Session) Home() string { return s.home }

// Chdir sets the working directory. dir must already be a canonical path
// to an existing directory.
func (s *Session) Chdir(dir string) { s.dir = dir }

// Record appends a dispatched command name to the history.
func (s *Session) Record(name string) { s.history = append(s.history, name) }

// History returns a copy of the dispatched command names, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}
