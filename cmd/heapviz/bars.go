package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lsw8075/malloc-lab/malloc"
)

const barWidth = 40

var (
	barFilledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	barEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	classLabel     = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	byteLabel      = lipgloss.NewStyle().Width(10)
)

// renderBars draws one horizontal bar per size class: free bytes in
// that class relative to the heap's total free bytes.
func renderBars(m malloc.HeapMetrics) string {
	var b strings.Builder
	total := m.BytesFree
	for i, free := range m.FreeByClass {
		filled := 0
		if total > 0 {
			filled = free * barWidth / total
			if filled == 0 && free > 0 {
				filled = 1
			}
		}
		bar := barFilledStyle.Render(strings.Repeat("█", filled)) +
			barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

		fmt.Fprintf(&b, "%s %s %s\n",
			classLabel.Render(fmt.Sprintf("class %2d", i)),
			bar,
			byteLabel.Render(fmt.Sprintf("%d B", free)),
		)
	}
	return b.String()
}
