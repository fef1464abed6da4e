package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolo/internal/contact"
)

// Form field indexes.
const (
	fieldName = iota
	fieldPhone
	fieldBirthday
	fieldCount
)

// formState holds the input fields for a new contact.
type formState struct {
	inputs   []textinput.Model
	focusIdx int
	errMsg   string
}

// newFormState returns a formState with the name field focused.
func newFormState() formState {
	placeholders := [fieldCount]string{"name", "phone (10 digits)", "birthday (YYYY-MM-DD, optional)"}
	inputs := make([]textinput.Model, fieldCount)
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 64
		inputs[i] = ti
	}
	inputs[fieldName].Focus()
	return formState{inputs: inputs}
}

// next moves focus to the following field, wrapping at the end.
func (f formState) next() formState {
	return f.focusField((f.focusIdx + 1) % fieldCount)
}

// prev moves focus to the preceding field, wrapping at the start.
func (f formState) prev() formState {
	return f.focusField((f.focusIdx + fieldCount - 1) % fieldCount)
}

func (f formState) focusField(idx int) formState {
	f.inputs[f.focusIdx].Blur()
	f.focusIdx = idx
	f.inputs[f.focusIdx].Focus()
	return f
}

// onLastField reports whether focus sits on the final input.
func (f formState) onLastField() bool {
	return f.focusIdx == fieldCount-1
}

// updateInputs forwards a key message to the focused field.
func (f formState) updateInputs(msg tea.Msg) (formState, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focusIdx], cmd = f.inputs[f.focusIdx].Update(msg)
	return f, cmd
}

// record builds a validated Record from the form fields. Validation
// failures surface as *contact.ValidationError. Names are folded to
// lower case to match the shell's case-insensitive key space.
func (f formState) record() (*contact.Record, error) {
	name := strings.ToLower(strings.TrimSpace(f.inputs[fieldName].Value()))
	if name == "" {
		return nil, &contact.ValidationError{Field: "name", Message: "Name is missing"}
	}
	phone := strings.TrimSpace(f.inputs[fieldPhone].Value())
	if phone == "" {
		return nil, &contact.ValidationError{Field: "phone", Message: "Phone is missing"}
	}
	r, err := contact.NewRecord(name, strings.TrimSpace(f.inputs[fieldBirthday].Value()))
	if err != nil {
		return nil, err
	}
	if err := r.AddPhone(phone); err != nil {
		return nil, err
	}
	return r, nil
}

// View renders the form fields with the current validation message.
func (f formState) View(width, height int) string {
	var b strings.Builder
	b.WriteString("New contact\n\n")
	for i := range f.inputs {
		b.WriteString("  " + f.inputs[i].View() + "\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n  " + errorText.Render(f.errMsg))
	}
	b.WriteString("\n\n  [Enter] Save   [Esc] Cancel")
	return b.String()
}
