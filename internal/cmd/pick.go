package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/projexts/projexts/internal/picker"
	"github.com/projexts/projexts/internal/runner"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a shortcut interactively and run it",
	Long: `Browse all shortcuts in an interactive list and run the selected
one. Type / to filter, Enter to run, q or Esc to cancel.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pick needs an interactive terminal")
	}

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
		return nil
	}

	final, err := tea.NewProgram(picker.New(shortcuts), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}

	m := final.(picker.Model)
	if m.Choice == nil {
		return nil
	}
	return runShortcut(st, runner.NewLocal(), m.Choice.Name, nil)
}
