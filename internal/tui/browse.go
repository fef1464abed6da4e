package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolo/internal/book"
	"github.com/smileynet/rolo/internal/contact"
)

// CursorMarker is the prefix shown on the selected contact row.
const CursorMarker = "▸ "

// browseState manages the contact list cursor and the search filter
// for browse mode's left pane.
type browseState struct {
	cursor    int
	filter    textinput.Model
	filtering bool // filter input has keyboard focus
}

// newBrowseState returns a browseState with an idle filter input.
func newBrowseState() browseState {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "search"
	ti.CharLimit = 64
	return browseState{filter: ti}
}

// visible returns the records the list shows: the whole book in
// insertion order, or the search matches when a filter query is set.
func (bs browseState) visible(b *book.Book) []*contact.Record {
	query := bs.filter.Value()
	if query == "" {
		return b.Records()
	}
	return b.Search(query)
}

// Update processes key messages for the browse state. n is the length
// of the currently visible list.
func (bs browseState) Update(msg tea.KeyMsg, n int) (browseState, tea.Cmd) {
	if bs.filtering {
		switch msg.String() {
		case "enter":
			bs.filtering = false
			bs.filter.Blur()
			return bs, nil
		case "esc":
			bs.filtering = false
			bs.filter.Blur()
			bs.filter.SetValue("")
			bs.cursor = 0
			return bs, nil
		}
		var cmd tea.Cmd
		bs.filter, cmd = bs.filter.Update(msg)
		// The visible list changes with every keystroke.
		bs.cursor = 0
		return bs, cmd
	}

	switch msg.String() {
	case "up", "k":
		if n > 0 {
			bs.cursor--
			if bs.cursor < 0 {
				bs.cursor = n - 1
			}
		}
	case "down", "j":
		if n > 0 {
			bs.cursor++
			if bs.cursor >= n {
				bs.cursor = 0
			}
		}
	case "/":
		bs.filtering = true
		return bs, bs.filter.Focus()
	}
	return bs, nil
}

// clampCursor pulls the cursor back into [0, n-1] after the list shrinks.
func (bs browseState) clampCursor(n int) browseState {
	if n == 0 {
		bs.cursor = 0
		return bs
	}
	if bs.cursor >= n {
		bs.cursor = n - 1
	}
	if bs.cursor < 0 {
		bs.cursor = 0
	}
	return bs
}

// selected returns the record under the cursor, or nil for an empty list.
func (bs browseState) selected(records []*contact.Record) *contact.Record {
	if len(records) == 0 || bs.cursor < 0 || bs.cursor >= len(records) {
		return nil
	}
	return records[bs.cursor]
}

// View renders the list pane: a pageSize window of rows that follows
// the cursor, with a page indicator when the list spans pages.
func (bs browseState) View(records []*contact.Record, pageSize int, now time.Time) string {
	var b strings.Builder

	if bs.filtering || bs.filter.Value() != "" {
		b.WriteString(bs.filter.View())
		b.WriteByte('\n')
	}

	if len(records) == 0 {
		if bs.filter.Value() != "" {
			b.WriteString("No contacts match")
		} else {
			b.WriteString("No contacts — press a to add one")
		}
		return b.String()
	}

	if pageSize < 1 {
		pageSize = len(records)
	}
	start := (bs.cursor / pageSize) * pageSize
	end := min(start+pageSize, len(records))

	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		r := records[i]
		if i == bs.cursor {
			b.WriteString(CursorMarker)
		} else {
			b.WriteString("  ")
		}
		b.WriteString(r.Name())
		if phones := r.Phones(); len(phones) > 0 {
			b.WriteString(" " + mutedText.Render(phones[0]))
		}
		if days, ok := r.DaysToBirthday(now); ok && days <= 30 {
			b.WriteString(" " + DueBadge(days))
		}
	}

	if len(records) > pageSize {
		page := bs.cursor/pageSize + 1
		pages := (len(records) + pageSize - 1) / pageSize
		fmt.Fprintf(&b, "\n%s", mutedText.Render(fmt.Sprintf("page %d/%d", page, pages)))
	}

	return b.String()
}
