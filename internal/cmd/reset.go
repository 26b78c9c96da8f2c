package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/style"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove all shortcuts",
	Long: `Delete the shortcut store file, removing every shortcut.

Resetting an already-empty store succeeds.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	if err := st.Reset(); err != nil {
		return err
	}

	fmt.Printf("%s Removed all shortcuts\n", style.Bold.Render("✓"))
	return nil
}
