// Package render turns steady display projections into styled terminal
// strings. It is a presentation collaborator: the core never imports it.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AltuisticIsopod/steady"
)

// Badge renders the display as a colored dot followed by its label.
func Badge(d steady.Display) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Gradient[0])).Render("●")
	label := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Gradient[1])).Render(d.Label)
	return dot + " " + label
}

// Swatch renders the gradient stops as colored blocks, in order.
func Swatch(d steady.Display) string {
	var b strings.Builder
	for _, stop := range d.Gradient {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(stop)).Render("██"))
	}
	return b.String()
}

// Line renders a full status line, or an empty string while the indicator
// should stay hidden.
func Line(shouldDisplay bool, d steady.Display) string {
	if !shouldDisplay {
		return ""
	}
	return Badge(d)
}
