package shell

import (
	"io"
	"os"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// SinkKind selects where a command's output goes.
type SinkKind int

const (
	SinkConsole SinkKind = iota
	SinkTruncate
	SinkAppend
)

// Sink is the destination of a command's textual result.
type Sink struct {
	Kind SinkKind
	Path string // canonical target for file sinks
}

// ConsoleSink is the sink used when a line carries no redirection.
var ConsoleSink = Sink{Kind: SinkConsole}

// ExtractRedirection looks for a trailing "> FILE" or ">> FILE" in args. When
// present both tokens are stripped and a file sink resolved against the
// working directory is returned; otherwise args are returned unchanged with
// the console sink.
func ExtractRedirection(sess *core.Session, op string, args []string) (Sink, []string, error) {
	n := len(args)
	if n < 2 {
		return ConsoleSink, args, nil
	}

	var kind SinkKind
	switch args[n-2] {
	case ">":
		kind = SinkTruncate
	case ">>":
		kind = SinkAppend
	default:
		return ConsoleSink, args, nil
	}
	target := args[n-1]
	if target == ">" || target == ">>" {
		return ConsoleSink, args, nil
	}

	path, err := fileutil.ResolveTarget(sess, op, target)
	if err != nil {
		return ConsoleSink, args, err
	}
	if info, err := fs.Stat(path); err == nil && info.IsDir() {
		return ConsoleSink, args, &core.Error{Kind: core.WrongEntryType, Op: op, Path: target, Msg: "is a directory"}
	}

	return Sink{Kind: kind, Path: path}, args[:n-2], nil
}

// Write delivers text to the sink. File sinks are opened on every call, so a
// truncating sink empties the file even when text is empty.
func (s Sink) Write(console io.Writer, text string) error {
	if s.Kind == SinkConsole {
		if text == "" {
			return nil
		}
		_, err := io.WriteString(console, text)
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY
	if s.Kind == SinkAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := fs.OpenFile(s.Path, flags, 0644)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, text); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
