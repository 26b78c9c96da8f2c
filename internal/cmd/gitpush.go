package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/git"
	"github.com/projexts/projexts/internal/project"
	"github.com/projexts/projexts/internal/runner"
	"github.com/projexts/projexts/internal/store"
	"github.com/projexts/projexts/internal/style"
)

var gitPushCmd = &cobra.Command{
	Use:   "git-push <name> <message>",
	Short: "Commit and push a shortcut's repository",
	Long: `Stage, commit, and push the repository behind a shortcut.

Runs git add -A, git commit -m <message>, and git push inside the
shortcut's project directory. The commit step is skipped when the tree
is already clean, so a push that failed on the network can be retried.

Example:
  projexts git-push blog "publish friday post"`,
	Args: cobra.ExactArgs(2),
	RunE: runGitPush,
}

func init() {
	rootCmd.AddCommand(gitPushCmd)
}

func runGitPush(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	return gitPush(st, runner.NewLocal(), args[0], args[1])
}

// gitPush resolves the shortcut's repository directory and runs the
// add/commit/push sequence in it.
func gitPush(st *store.Store, r runner.Runner, name, message string) error {
	s, err := st.Get(name)
	if err != nil {
		return err
	}
	dir, err := project.Dir(s)
	if err != nil {
		return err
	}

	ops := git.NewOps(r)
	if branch, err := ops.CurrentBranch(dir); err == nil {
		fmt.Printf("Pushing %s (%s)...\n", style.Name.Render(name), branch)
	}
	if err := ops.CommitAndPush(dir, message); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	fmt.Printf("%s Pushed %s\n", style.Bold.Render("✓"), style.Name.Render(name))
	return nil
}
