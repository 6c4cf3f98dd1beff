package core

import (
	"errors"
	"fmt"
)

// Kind classifies a command failure. Kinds are themselves errors so callers
// can test for them with errors.Is(err, core.NotEmpty).
type Kind int

const (
	ArgumentCount Kind = iota + 1
	PathNotFound
	AlreadyExists
	WrongEntryType
	NotEmpty
	UnexpectedIO
	UnknownCommand
)

var kindMessages = map[Kind]string{
	ArgumentCount:  "wrong number of arguments",
	PathNotFound:   "no such file or directory",
	AlreadyExists:  "already exists",
	WrongEntryType: "wrong entry type",
	NotEmpty:       "is not empty",
	UnexpectedIO:   "an unexpected error occurred",
	UnknownCommand: "This command is not available",
}

func (k Kind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("error kind %d", int(k))
}

// Error is the failure value returned by command handlers.
type Error struct {
	Kind Kind
	Op   string // command name
	Path string // path argument as typed by the user, if any
	Msg  string // overrides the Kind's default message
	Err  error  // underlying cause
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Kind == UnknownCommand {
		return msg
	}
	if e.Kind == UnexpectedIO && e.Err != nil && e.Msg == "" {
		msg = e.Err.Error()
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: '%s': %s", e.Op, e.Path, msg)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is this error's Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ArgCountError reports a wrong number of arguments for op.
func ArgCountError(op string) error {
	return &Error{Kind: ArgumentCount, Op: op}
}

// InvalidArgError reports an argument op does not understand, such as an
// unknown flag. It is classified as an argument-count failure.
func InvalidArgError(op, arg string) error {
	return &Error{Kind: ArgumentCount, Op: op, Msg: "invalid argument '" + arg + "'"}
}

// NotFoundError reports that path does not resolve to an existing entry.
func NotFoundError(op, path string) error {
	return &Error{Kind: PathNotFound, Op: op, Path: path}
}

// ExistsError reports that a creation target already exists.
func ExistsError(op, path string) error {
	return &Error{Kind: AlreadyExists, Op: op, Path: path}
}

// NotDirError reports that path was expected to be a directory.
func NotDirError(op, path string) error {
	return &Error{Kind: WrongEntryType, Op: op, Path: path, Msg: "is not a directory"}
}

// NotFileError reports that path was expected to be a regular file.
func NotFileError(op, path string) error {
	return &Error{Kind: WrongEntryType, Op: op, Path: path, Msg: "is not a file"}
}

// NotEmptyError reports that a directory to delete still has entries.
func NotEmptyError(op, path string) error {
	return &Error{Kind: NotEmpty, Op: op, Path: path}
}

// IOError wraps an unexpected filesystem failure.
func IOError(op, path string, err error) error {
	return &Error{Kind: UnexpectedIO, Op: op, Path: path, Err: err}
}

// UnknownCommandError reports a command name missing from the registry.
func UnknownCommandError(name string) error {
	return &Error{Kind: UnknownCommand, Op: name}
}
