package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("36")).
	Padding(1, 2)

const (
	helpWidth  = 44
	helpHeight = 8
)

// helpModel is the foreground half of the overlay.New pair shown when
// the user presses "?": the keybinding reference plus the last Check()
// verdict, scrollable the same way hiveexplorer's valuedetail panel is.
type helpModel struct {
	viewport viewport.Model
	keys     KeyMap
}

func newHelpModel(keys KeyMap) helpModel {
	return helpModel{viewport: viewport.New(helpWidth, helpHeight), keys: keys}
}

// setContent refreshes the panel text from the current check verdict.
// It does not reset scroll position.
func (h *helpModel) setContent(checkOK bool, checkErr error) {
	status := "heap consistent"
	if !checkOK {
		status = fmt.Sprintf("invariant violated: %v", checkErr)
	}

	var b strings.Builder
	for _, row := range h.keys.FullHelp() {
		for _, binding := range row {
			fmt.Fprintf(&b, "%-12s %s\n", binding.Help().Key, binding.Help().Desc)
		}
	}
	fmt.Fprintf(&b, "\nlast check: %s", status)
	h.viewport.SetContent(b.String())
}

func (h helpModel) Init() tea.Cmd { return nil }

func (h helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h helpModel) View() string {
	return helpBoxStyle.Render(h.viewport.View())
}
