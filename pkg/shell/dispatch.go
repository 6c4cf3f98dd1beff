// Package shell implements the interpreter's read-eval loop: line parsing,
// output redirection and dispatch to the built-in commands.
package shell

import (
	"sort"

	"github.com/Ayman17/OS-Assignment-1/pkg/applets/cat"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/cd"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/cp"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/echo"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/history"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/ls"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/mkdir"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/pwd"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/rm"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/rmdir"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/touch"
	"github.com/Ayman17/OS-Assignment-1/pkg/applets/wc"
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
)

// ExitCommand ends the read loop. It is handled before registry lookup.
const ExitCommand = "exit"

// Registry maps command names to their handlers.
type Registry map[string]core.Handler

// DefaultRegistry returns the table of built-in commands.
func DefaultRegistry() Registry {
	return Registry{
		"echo":    echo.Run,
		"pwd":     pwd.Run,
		"cd":      cd.Run,
		"ls":      ls.Run,
		"mkdir":   mkdir.Run,
		"rmdir":   rmdir.Run,
		"touch":   touch.Run,
		"cp":      cp.Run,
		"rm":      rm.Run,
		"cat":     cat.Run,
		"wc":      wc.Run,
		"history": history.Run,
	}
}

// Names returns the registered command names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatcher runs input lines against a session.
type Dispatcher struct {
	Session  *core.Session
	Registry Registry
	Stdio    *core.Stdio
}

// NewDispatcher returns a dispatcher over the built-in commands.
func NewDispatcher(sess *core.Session, stdio *core.Stdio) *Dispatcher {
	return &Dispatcher{
		Session:  sess,
		Registry: DefaultRegistry(),
		Stdio:    stdio,
	}
}

// Dispatch parses and executes one line. It reports true when the line asks
// the loop to exit. Failures are written to stderr and never end the loop.
//
// A command that is found is recorded in the history after it runs, whether
// or not it failed. Unknown commands and unusable redirection targets leave
// the history untouched.
func (d *Dispatcher) Dispatch(line string) bool {
	cmd, ok := Parse(line)
	if !ok {
		return false
	}
	if cmd.Name == ExitCommand {
		return true
	}

	run, ok := d.Registry[cmd.Name]
	if !ok {
		d.report(core.UnknownCommandError(cmd.Name))
		return false
	}

	sink, args, err := ExtractRedirection(d.Session, cmd.Name, cmd.Args)
	if err != nil {
		d.report(err)
		return false
	}

	out, runErr := run(d.Session, args)
	if err := sink.Write(d.Stdio.Out, out); err != nil {
		d.report(core.IOError(cmd.Name, sink.Path, err))
	}
	if runErr != nil {
		d.report(runErr)
	}

	d.Session.Record(cmd.Name)
	return false
}

func (d *Dispatcher) report(err error) {
	d.Stdio.Errorf("%v\n", err)
}
