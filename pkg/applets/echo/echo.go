// Package echo implements the echo command.
package echo

import (
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/core"
)

// Run joins its arguments with single spaces and terminates the line.
func Run(sess *core.Session, args []string) (string, error) {
	return strings.Join(args, " ") + "\n", nil
}
