// Package history implements the history command.
package history

import (
	"fmt"
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
)

// Run lists previously dispatched command names, numbered from 1.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) != 0 {
		return "", core.ArgCountError("history")
	}

	names := sess.History()
	if len(names) == 0 {
		return "No commands in history\n", nil
	}

	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%d %s\n", i+1, name)
	}
	return b.String(), nil
}
