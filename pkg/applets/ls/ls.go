// Package ls implements the ls command.
package ls

import (
	"sort"
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Options holds ls command options.
type Options struct {
	Reverse bool // -r: reverse sort order
}

// Run lists the entries of the working directory, one per line, ordered by
// a plain byte-wise comparison of their names.
//
// Supported flags:
//
//	-r    Reverse sort order
func Run(sess *core.Session, args []string) (string, error) {
	opts := Options{}

	if len(args) > 1 {
		return "", core.ArgCountError("ls")
	}
	if len(args) == 1 {
		if args[0] != "-r" {
			return "", core.InvalidArgError("ls", args[0])
		}
		opts.Reverse = true
	}

	entries, err := fs.ReadDir(sess.Dir())
	if err != nil {
		return "", core.IOError("ls", sess.Dir(), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sortNames(names, &opts)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func sortNames(names []string, opts *Options) {
	sort.Strings(names)
	if opts.Reverse {
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
	}
}
