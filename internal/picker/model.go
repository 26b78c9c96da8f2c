// Package picker implements the interactive shortcut selector.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/projexts/projexts/internal/store"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// item adapts a Shortcut to the bubbles list.
type item struct {
	shortcut store.Shortcut
}

func (i item) Title() string       { return i.shortcut.Name }
func (i item) Description() string { return strings.Join(i.shortcut.CommandLine(), " ") }
func (i item) FilterValue() string { return i.shortcut.Name }

// Model drives the picker UI. After the program finishes, Choice holds
// the selected shortcut, or nil if the user cancelled.
type Model struct {
	list   list.Model
	Choice *store.Shortcut
}

// New creates a picker over the given shortcuts, in stored order.
func New(shortcuts []store.Shortcut) Model {
	items := make([]list.Item, len(shortcuts))
	for i, s := range shortcuts {
		items[i] = item{shortcut: s}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "projexts"
	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case tea.KeyMsg:
		// Keys pass through to the list while the filter input is open
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				chosen := it.shortcut
				m.Choice = &chosen
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return docStyle.Render(m.list.View())
}
