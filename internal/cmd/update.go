package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/style"
)

var updateCmd = &cobra.Command{
	Use:   "update <name> -- <command> [args...]",
	Short: "Replace an existing shortcut's command",
	Long: `Replace the command stored for an existing shortcut.

The shortcut keeps its position in the list. Fails if the name has not
been added yet.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	name, command, cmdArgs := args[0], args[1], args[2:]

	st, _, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Update(name, command, cmdArgs); err != nil {
		return err
	}

	fmt.Printf("%s Updated %s: %s\n", style.Bold.Render("✓"),
		style.Name.Render(name), strings.Join(args[1:], " "))
	return nil
}
