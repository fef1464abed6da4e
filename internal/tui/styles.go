package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// MinLeftWidth is the minimum character width for the list pane.
const MinLeftWidth = 24

// mutedText renders secondary information like phone numbers and the
// page indicator.
var mutedText = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

// errorText renders failure messages in the status line.
var errorText = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})

// DueBadge returns a styled countdown label like "today" or "12d" for
// a birthday days days away. Nearer dates get hotter colors.
func DueBadge(days int) string {
	var color lipgloss.AdaptiveColor
	label := fmt.Sprintf("%dd", days)
	switch {
	case days == 0:
		label = "today"
		color = lipgloss.AdaptiveColor{Light: "1", Dark: "9"} // red
	case days <= 7:
		color = lipgloss.AdaptiveColor{Light: "208", Dark: "208"} // orange
	case days <= 30:
		color = lipgloss.AdaptiveColor{Light: "3", Dark: "11"} // yellow
	default:
		color = lipgloss.AdaptiveColor{Light: "240", Dark: "245"} // gray
	}
	return lipgloss.NewStyle().Foreground(color).Render(label)
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
}

// PaneWidths calculates the list and detail pane widths from a total width.
// The list pane gets 1/3 (minimum MinLeftWidth), the detail pane the rest.
func PaneWidths(totalWidth int) (left, right int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	left = totalWidth / 3
	if left < MinLeftWidth {
		left = MinLeftWidth
	}
	right = totalWidth - left
	if right < 0 {
		right = 0
	}
	return left, right
}
