package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/opener"
	"github.com/projexts/projexts/internal/project"
	"github.com/projexts/projexts/internal/runner"
	"github.com/projexts/projexts/internal/store"
	"github.com/projexts/projexts/internal/style"
)

var openCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a shortcut's project folder",
	Long: `Open the project folder behind a shortcut with the platform's
folder-opening facility.

The folder is derived from the shortcut's stored command and arguments:
the first token that names an existing directory is used, and a token
naming an existing file yields its parent directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

var openFileCmd = &cobra.Command{
	Use:   "open-file <name>",
	Short: "Open the first file in a shortcut's project folder",
	Long: `Open the first file found in a shortcut's project folder.

The folder is derived the same way as for open; the first regular file
in it (lexical order) is handed to the platform opener.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpenFile,
}

func init() {
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(openFileCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	return openFromCLI(args[0], false)
}

func runOpenFile(cmd *cobra.Command, args []string) error {
	return openFromCLI(args[0], true)
}

func openFromCLI(name string, firstFile bool) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	op := opener.NewDesktop(runner.NewLocal(), cfg.Opener)
	return openProject(st, op, name, firstFile)
}

// openProject reveals a shortcut's project directory, or its first
// file when firstFile is set.
func openProject(st *store.Store, op opener.Opener, name string, firstFile bool) error {
	s, err := st.Get(name)
	if err != nil {
		return err
	}
	dir, err := project.Dir(s)
	if err != nil {
		return err
	}

	path := dir
	if firstFile {
		path, err = project.FirstFile(dir)
		if err != nil {
			return err
		}
	}

	if err := op.Open(path); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	fmt.Printf("%s Opened %s\n", style.Bold.Render("✓"), path)
	return nil
}
