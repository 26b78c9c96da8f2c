package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/runner"
	"github.com/projexts/projexts/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run <name> [-- extra args...]",
	Short: "Run a shortcut's command",
	Long: `Run the command stored for a shortcut.

Extra arguments after -- are appended to the stored arguments. The
child process runs in the foreground with the terminal attached, and
its exit code becomes the projexts exit code.

Examples:
  projexts run build
  projexts run build -- --verbose`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	return runShortcut(st, runner.NewLocal(), args[0], args[1:])
}

// runShortcut fetches a shortcut and executes its command in the
// foreground, with extra arguments appended after the stored ones.
// The lookup happens before any process is spawned.
func runShortcut(st *store.Store, r runner.Runner, name string, extra []string) error {
	s, err := st.Get(name)
	if err != nil {
		return err
	}

	argv := append([]string{}, s.Args...)
	argv = append(argv, extra...)

	fmt.Printf("Running command: %s\n",
		strings.Join(append([]string{s.Command}, argv...), " "))
	if err := r.RunInteractive("", s.Command, argv...); err != nil {
		return spawnError(err)
	}
	return nil
}
