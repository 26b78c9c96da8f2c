package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/style"
)

var addCmd = &cobra.Command{
	Use:   "add <name> -- <command> [args...]",
	Short: "Add a new shortcut",
	Long: `Add a shortcut associating a project name with a command.

The command and any default arguments follow the name. Use -- to keep
flags intended for the stored command away from projexts itself.

Examples:
  projexts add build -- make -j8
  projexts add serve -- npm run dev
  projexts add notes -- vim /home/me/notes/todo.md`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, command, cmdArgs := args[0], args[1], args[2:]

	st, _, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Add(name, command, cmdArgs); err != nil {
		return err
	}

	fmt.Printf("%s Added %s: %s\n", style.Bold.Render("✓"),
		style.Name.Render(name), strings.Join(args[1:], " "))
	fmt.Printf("Run with: %s\n", style.Dim.Render("projexts run "+name))
	return nil
}
