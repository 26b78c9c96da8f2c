package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/projexts/projexts/internal/style"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all shortcuts",
	Long:    `List every stored shortcut with its command, in the order added.`,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	shortcuts, err := st.List()
	if err != nil {
		return err
	}

	if len(shortcuts) == 0 {
		fmt.Println("No shortcuts found")
		fmt.Printf("Add one with: %s\n", style.Dim.Render("projexts add <name> -- <command>"))
		return nil
	}

	for _, s := range shortcuts {
		fmt.Printf("%s: %s\n", style.Name.Render(s.Name),
			strings.Join(s.CommandLine(), " "))
	}
	return nil
}
