// Package git wraps the git subcommands projexts shells out to.
package git

import (
	"fmt"
	"strings"

	"github.com/projexts/projexts/internal/runner"
)

// Ops provides git operations using a Runner. The repository directory
// is a parameter on every method so one Ops serves any shortcut.
type Ops struct {
	runner runner.Runner
}

// NewOps creates a new Ops with the given runner.
func NewOps(r runner.Runner) *Ops {
	return &Ops{runner: r}
}

// AddAll stages every change in the repository.
func (g *Ops) AddAll(repoDir string) error {
	return g.runner.Run(repoDir, "git", "add", "-A")
}

// Commit records staged changes with the given message.
func (g *Ops) Commit(repoDir, message string) error {
	return g.runner.Run(repoDir, "git", "commit", "-m", message)
}

// Push pushes the current branch to its upstream.
func (g *Ops) Push(repoDir string) error {
	return g.runner.Run(repoDir, "git", "push")
}

// CurrentBranch returns the current branch name.
func (g *Ops) CurrentBranch(repoDir string) (string, error) {
	out, err := g.runner.Output(repoDir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// HasChanges reports whether the repository has uncommitted changes,
// staged or not.
func (g *Ops) HasChanges(repoDir string) (bool, error) {
	out, err := g.runner.Output(repoDir, "git", "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status: %w", err)
	}
	return len(strings.TrimSpace(string(out))) > 0, nil
}

// CommitAndPush stages everything, commits with the message, and
// pushes. The commit step is skipped when the tree is already clean so
// a re-push after a failed network call still works.
func (g *Ops) CommitAndPush(repoDir, message string) error {
	if err := g.AddAll(repoDir); err != nil {
		return fmt.Errorf("git add: %w", err)
	}

	hasChanges, err := g.HasChanges(repoDir)
	if err != nil {
		return err
	}
	if hasChanges {
		if err := g.Commit(repoDir, message); err != nil {
			return fmt.Errorf("git commit: %w", err)
		}
	}

	if err := g.Push(repoDir); err != nil {
		return fmt.Errorf("git push: %w", err)
	}
	return nil
}
