// Package runner provides command execution for the projexts CLI.
package runner

import (
	"os"
	"os/exec"
)

// Runner executes external commands on behalf of the dispatcher.
type Runner interface {
	// Run executes a command in the given directory.
	// If dir is empty, uses the current working directory.
	Run(dir, name string, args ...string) error

	// Output executes a command and returns its stdout.
	Output(dir, name string, args ...string) ([]byte, error)

	// RunInteractive runs a command with stdin/stdout/stderr attached.
	// Used for foreground shortcut runs.
	RunInteractive(dir, name string, args ...string) error
}

// Local executes commands on the local machine.
type Local struct{}

// NewLocal creates a new local runner.
func NewLocal() *Local {
	return &Local{}
}

func (r *Local) Run(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	return cmd.Run()
}

func (r *Local) Output(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	return cmd.Output()
}

func (r *Local) RunInteractive(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
