// Package pwd implements the pwd command.
package pwd

import (
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
)

// Run prints the session's working directory.
func Run(sess *core.Session, args []string) (string, error) {
	if len(args) != 0 {
		return "", core.ArgCountError("pwd")
	}
	return sess.Dir() + "\n", nil
}
