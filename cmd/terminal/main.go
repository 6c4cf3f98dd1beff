// Command terminal is an interactive command interpreter that keeps its own
// working directory, independent of the process working directory.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/config"
	"github.com/Ayman17/OS-Assignment-1/pkg/core"
	"github.com/Ayman17/OS-Assignment-1/pkg/shell"
	"github.com/spf13/cobra"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(run(os.Args[1:], stdio.In, stdio.Out, stdio.Err))
}

// run executes the CLI with the given args and streams. Returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := core.ExitSuccess
	root := newRootCmd(&core.Stdio{In: stdin, Out: stdout, Err: stderr}, &code)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "terminal: %v\n", err) //nolint:errcheck // best-effort stderr
		return core.ExitFailure
	}
	return code
}

func newRootCmd(stdio *core.Stdio, code *int) *cobra.Command {
	var dirFlag, configFlag string
	commands := append(shell.DefaultRegistry().Names(), shell.ExitCommand)
	root := &cobra.Command{
		Use:           "terminal",
		Short:         "Interactive shell with a virtual working directory",
		Long:          "Interactive shell with a virtual working directory.\n\nBuilt-in commands: " + strings.Join(commands, ", "),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFlag)
			if err != nil {
				return err
			}
			if dirFlag != "" {
				cfg.StartDir = dirFlag
			}
			if err := cfg.ApplySandbox(); err != nil {
				return err
			}
			sess, err := core.NewSession(cfg.StartDir, cfg.Home)
			if err != nil {
				return err
			}
			*code = shell.Run(stdio, sess)
			return nil
		},
	}
	root.Flags().StringVar(&dirFlag, "dir", "", "initial working directory (default: current directory)")
	root.Flags().StringVar(&configFlag, "config", "", "path to a TOML configuration file")
	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
