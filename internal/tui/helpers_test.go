package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolo/internal/contact"
)

// fixedNow is the reference clock for model tests.
var fixedNow = time.Date(2026, 5, 15, 12, 0, 0, 0, time.UTC)

// memStore is an in-memory Storer for model tests.
type memStore struct {
	payloads []contact.Payload
	lastPath string
	saveErr  error
	loadErr  error
}

func (s *memStore) Save(path string, contacts []contact.Payload) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.lastPath = path
	s.payloads = append([]contact.Payload(nil), contacts...)
	return nil
}

func (s *memStore) Load(path string) ([]contact.Payload, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.payloads, nil
}

// payload builds a contact payload for seeding test models.
func payload(name, birthday string, phones ...string) contact.Payload {
	p := contact.Payload{Name: name, Phones: phones}
	if p.Phones == nil {
		p.Phones = []string{}
	}
	if birthday != "" {
		p.Birthday = &birthday
	}
	return p
}

// newTestModel returns a sized model with the given payloads loaded
// and a fixed clock.
func newTestModel(st Storer, payloads ...contact.Payload) Model {
	m := NewModel(st, "/tmp/rolo-test/contacts.json", 5)
	m.now = func() time.Time { return fixedNow }
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = updated.(Model)
	updated, _ = m.Update(BookLoadedMsg{Payloads: payloads})
	return updated.(Model)
}

// keyRunes constructs a rune key message, as produced by typing s.
func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds one key message through Update.
func press(m Model, msg tea.KeyMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// stripANSI removes ANSI escape sequences from a string.
func stripANSI(s string) string {
	var out []byte
	i := 0
	for i < len(s) {
		if s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 'A' || s[j] > 'Z') && (s[j] < 'a' || s[j] > 'z') {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		} else {
			out = append(out, s[i])
			i++
		}
	}
	return string(out)
}

// containsPlainText checks if s contains sub after stripping ANSI escapes.
func containsPlainText(s, sub string) bool {
	return strings.Contains(stripANSI(s), sub)
}
