package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolo/internal/book"
	"github.com/smileynet/rolo/internal/contact"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// statusBarHeight is the number of lines reserved for the status line.
const statusBarHeight = 1

// borderChrome is the number of lines consumed by top + bottom borders.
const borderChrome = 2

// Model is the root Bubble Tea model for the address book browser.
// It manages a two-pane layout with mode-based routing and focus
// management; the book is mutated only from Update.
type Model struct {
	mode      Mode
	focus     Focus
	width     int
	height    int
	book      *book.Book
	store     Storer
	path      string
	pageSize  int
	browse    browseState
	form      formState
	confirm   confirmState
	viewport  viewport.Model
	help      help.Model
	status    string
	statusErr bool
	loading   bool
	now       func() time.Time
}

// NewModel creates a Model in browse mode that loads the book from
// path on startup. pageSize is the number of list rows per page.
func NewModel(st Storer, path string, pageSize int) Model {
	return Model{
		book:     book.New(),
		store:    st,
		path:     path,
		pageSize: pageSize,
		browse:   newBrowseState(),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		loading:  true,
		now:      time.Now,
	}
}

// Init starts the book load.
func (m Model) Init() tea.Cmd {
	return loadBook(m.store, m.path)
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		_, rightWidth := PaneWidths(msg.Width)
		vpWidth := rightWidth - borderChrome
		if vpWidth < 0 {
			vpWidth = 0
		}
		m.viewport.Width = vpWidth
		m.viewport.Height = m.contentHeight()
		return m, nil

	case BookLoadedMsg:
		// Only the startup load may replace the book.
		if !m.loading {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.statusErr = true
			return m, nil
		}
		if err := m.book.Restore(msg.Payloads); err != nil {
			m.status = errorMessage(err)
			m.statusErr = true
			return m, nil
		}
		m.syncDetail()
		return m, nil

	case BookSavedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.statusErr = true
			return m, nil
		}
		m.status = fmt.Sprintf("Address book saved to %s", msg.Path)
		m.statusErr = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key messages with global and mode-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from any mode, even while typing in an input.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Only quit works while the book is loading.
	if m.loading {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	// While the filter input has focus every key belongs to it.
	if m.browse.filtering {
		var cmd tea.Cmd
		m.browse, cmd = m.browse.Update(msg, len(m.browse.visible(m.book)))
		m.syncDetail()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		if m.focus == PaneLeft {
			m.focus = PaneRight
		} else {
			m.focus = PaneLeft
		}
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case "a":
		m.mode = ModeForm
		m.form = newFormState()
		return m, nil
	case "d":
		if r := m.browse.selected(m.browse.visible(m.book)); r != nil {
			m.mode = ModeConfirm
			m.confirm = confirmState{name: r.Name()}
		}
		return m, nil
	case "s":
		return m, saveBook(m.store, m.path, m.book.Snapshot())
	}

	if m.focus == PaneRight {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.browse, cmd = m.browse.Update(msg, len(m.browse.visible(m.book)))
	m.syncDetail()
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		return m, nil
	case "enter":
		if m.form.onLastField() {
			return m.submitForm()
		}
		m.form = m.form.next()
		return m, nil
	case "tab", "down":
		m.form = m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form = m.form.prev()
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.updateInputs(msg)
	return m, cmd
}

// submitForm validates the form and inserts the new record. Validation
// failures keep the form open with the message shown inline.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	r, err := m.form.record()
	if err != nil {
		m.form.errMsg = errorMessage(err)
		return m, nil
	}
	m.book.Add(r)
	m.mode = ModeBrowse
	m.status = "Contact added successfully"
	m.statusErr = false
	m.syncDetail()
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.confirm.name
		if m.book.Delete(name) {
			m.status = fmt.Sprintf("Contact '%s' deleted successfully", name)
			m.statusErr = false
		}
		m.mode = ModeBrowse
		m.syncDetail()
		return m, nil
	case "esc":
		m.mode = ModeBrowse
		return m, nil
	}
	return m, nil
}

// syncDetail clamps the cursor and refreshes the detail viewport for
// the record under it.
func (m *Model) syncDetail() {
	records := m.browse.visible(m.book)
	m.browse = m.browse.clampCursor(len(records))
	r := m.browse.selected(records)
	if r == nil {
		m.viewport.SetContent("Select a contact")
		return
	}
	m.viewport.SetContent(m.detailContent(r))
}

// detailContent renders the right-pane text for r.
func (m Model) detailContent(r *contact.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", r.Name())
	if phones := r.Phones(); len(phones) > 0 {
		fmt.Fprintf(&b, "Phones: %s\n", strings.Join(phones, ", "))
	} else {
		b.WriteString("Phones: none\n")
	}
	if bd := r.Birthday(); bd != "" {
		fmt.Fprintf(&b, "Birthday: %s", bd)
		if days, ok := r.DaysToBirthday(m.now()); ok {
			if days == 0 {
				b.WriteString(" (today)")
			} else {
				fmt.Fprintf(&b, " (in %d days)", days)
			}
		}
		b.WriteByte('\n')
	} else {
		b.WriteString("Birthday: none\n")
	}
	return b.String()
}

// errorMessage converts a domain error to display text.
func errorMessage(err error) string {
	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

// contentHeight returns the usable height for pane content,
// accounting for border chrome, the status line, and the help bar.
func (m Model) contentHeight() int {
	h := m.height - borderChrome - statusBarHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// View renders the current mode with status line and help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var body string
	switch m.mode {
	case ModeForm:
		body = m.viewSingle(m.form.View(m.width-borderChrome, m.contentHeight()))
	case ModeConfirm:
		body = m.viewSingle(m.confirm.View(m.width-borderChrome, m.contentHeight()))
	default:
		body = m.viewBrowse()
	}

	helpView := m.help.View(HelpBindings(m.mode))
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusView(), helpView)
}

// viewBrowse renders the two-pane list + detail layout.
func (m Model) viewBrowse() string {
	leftWidth, rightWidth := PaneWidths(m.width)
	contentHeight := m.contentHeight()

	var leftStyle, rightStyle lipgloss.Style
	if m.focus == PaneLeft {
		leftStyle, rightStyle = FocusedBorder(), UnfocusedBorder()
	} else {
		leftStyle, rightStyle = UnfocusedBorder(), FocusedBorder()
	}

	leftStyle = leftStyle.
		Width(leftWidth - borderChrome).
		Height(contentHeight)
	rightStyle = rightStyle.
		Width(rightWidth - borderChrome).
		Height(contentHeight)

	var left string
	if m.loading {
		left = "Loading contacts..."
	} else {
		left = m.browse.View(m.browse.visible(m.book), m.pageSize, m.now())
	}

	leftPane := leftStyle.Render(left)
	rightPane := rightStyle.Render(m.viewport.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewSingle renders content in one full-width focused pane.
func (m Model) viewSingle(content string) string {
	return FocusedBorder().
		Width(m.width - borderChrome).
		Height(m.contentHeight()).
		Render(content)
}

// statusView renders the one-line status bar.
func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return errorText.Render(m.status)
	}
	return m.status
}
