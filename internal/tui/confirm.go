package tui

import (
	"fmt"
	"strings"
)

// confirmState holds the data for the delete confirmation screen.
type confirmState struct {
	name string
}

// View renders the confirmation screen for the given dimensions.
func (cs confirmState) View(width, height int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delete contact '%s'?\n", cs.name)
	b.WriteString("\n  The contact is removed from the book in memory.")
	b.WriteString("\n  The file on disk is untouched until the next save.")
	b.WriteString("\n\n  [Enter] Confirm   [Esc] Cancel")
	return b.String()
}
