package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/style"
)

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a shortcut",
	Long:    `Remove a single shortcut by name.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Remove(args[0]); err != nil {
		return err
	}

	fmt.Printf("%s Removed %s\n", style.Bold.Render("✓"), style.Name.Render(args[0]))
	return nil
}
