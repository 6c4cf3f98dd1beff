// Package wc implements the wc (word count) command.
package wc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fileutil"
	"github.com/Ayman17/OS-Assignment-1/pkg/core/fs"
)

// Counts holds the counts for a file.
type Counts struct {
	Lines int64
	Words int64
	Chars int64
}

// Run reports "<lines> <words> <chars> <path>" for exactly one file.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) != 1 {
		return "", core.ArgCountError("wc")
	}

	path, err := fileutil.ResolveFile(sess, "wc", args[0])
	if err != nil {
		return "", err
	}

	f, err := fs.Open(path)
	if err != nil {
		return "", core.IOError("wc", args[0], err)
	}
	defer f.Close()

	counts, err := Count(f)
	if err != nil {
		return "", core.IOError("wc", args[0], err)
	}
	return fmt.Sprintf("%d %d %d %s\n", counts.Lines, counts.Words, counts.Chars, args[0]), nil
}

// Count reads r line by line. Words are the non-empty fields left after
// splitting a line on single spaces; characters are runes, excluding line
// terminators.
func Count(r io.Reader) (*Counts, error) {
	counts := &Counts{}
	br := bufio.NewReader(r)

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			countLine(counts, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
	}

	return counts, nil
}

func countLine(c *Counts, line string) {
	c.Lines++
	c.Chars += int64(utf8.RuneCountInString(line))
	for _, field := range strings.Split(line, " ") {
		if field != "" {
			c.Words++
		}
	}
}
