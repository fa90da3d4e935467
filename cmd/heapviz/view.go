package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	opStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func (m model) View() string {
	main := m.renderMain()
	if !m.showHelp {
		return main
	}

	help := m.help
	help.setContent(m.checkOK, m.checkErr)

	ov := overlay.New(
		help,
		staticModel{main},
		overlay.Center,
		overlay.Center,
		0,
		0,
	)
	return ov.View()
}

func (m model) renderMain() string {
	mm := m.heap.Metrics()

	header := titleStyle.Render(fmt.Sprintf("heapviz — step %d/%d", m.cursor, len(m.ops)))

	opLine := "(no operation applied yet)"
	if op, ok := m.currentOp(); ok {
		opLine = fmt.Sprintf("last: %s %s %d", op.Kind, op.ID, op.Size)
	}
	if m.lastErr != nil {
		opLine += fmt.Sprintf("  [error: %v]", m.lastErr)
	}

	status := "check: ok"
	if !m.checkOK {
		status = fmt.Sprintf("check: FAILED (%v)", m.checkErr)
	}

	footer := footerStyle.Render("space/→ step  ←/h back  ? help  y yank  q quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		opStyle.Render(opLine),
		"",
		renderBars(mm),
		"",
		opStyle.Render(status),
		footer,
	)
}

// staticModel adapts a pre-rendered string into a tea.Model so it can
// serve as overlay.New's background half.
type staticModel struct{ rendered string }

func (s staticModel) Init() tea.Cmd                       { return nil }
func (s staticModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s staticModel) View() string                        { return s.rendered }
