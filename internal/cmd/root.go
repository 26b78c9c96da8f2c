// Package cmd implements the projexts command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/config"
	"github.com/projexts/projexts/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "projexts",
	Short: "Shortcut manager for project commands",
	Long: `projexts associates project names with shell commands, persists
them in a local configuration file, and runs, opens, or pushes the
projects they point to.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a child process's exit status up to Execute.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute runs the root command and returns the process exit code.
// A run child's exit code is forwarded as-is; store and spawn failures
// exit 1.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// openStore resolves the configuration and returns the shortcut store
// for this invocation.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	return store.New(cfg.StorePath), cfg, nil
}

// spawnError normalizes process launch failures. A child that ran but
// exited non-zero has its code forwarded silently; a child that never
// launched surfaces the OS error.
func spawnError(err error) error {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &exitError{code: ee.ExitCode()}
	}
	return fmt.Errorf("execution failed: %w", err)
}
