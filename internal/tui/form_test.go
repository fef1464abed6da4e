package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/smileynet/rolo/internal/contact"
)

// fillForm types values into the three fields in order.
func fillForm(f formState, name, phone, birthday string) formState {
	f.inputs[fieldName].SetValue(name)
	f.inputs[fieldPhone].SetValue(phone)
	f.inputs[fieldBirthday].SetValue(birthday)
	return f
}

func TestFormState_FocusStartsOnName(t *testing.T) {
	f := newFormState()

	if f.focusIdx != fieldName {
		t.Errorf("focusIdx = %d, want fieldName (%d)", f.focusIdx, fieldName)
	}
	if !f.inputs[fieldName].Focused() {
		t.Error("name field not focused")
	}
}

func TestFormState_NextPrevWrap(t *testing.T) {
	f := newFormState()

	f = f.next()
	if f.focusIdx != fieldPhone {
		t.Errorf("focusIdx = %d after next, want fieldPhone (%d)", f.focusIdx, fieldPhone)
	}
	f = f.next()
	f = f.next()
	if f.focusIdx != fieldName {
		t.Errorf("focusIdx = %d after wrapping next, want fieldName (%d)", f.focusIdx, fieldName)
	}

	f = f.prev()
	if f.focusIdx != fieldBirthday {
		t.Errorf("focusIdx = %d after wrapping prev, want fieldBirthday (%d)", f.focusIdx, fieldBirthday)
	}
	if !f.onLastField() {
		t.Error("onLastField() = false on birthday field")
	}
}

func TestFormState_Record(t *testing.T) {
	f := fillForm(newFormState(), "  Alice ", "1234567890", "1990-05-20")

	r, err := f.record()
	if err != nil {
		t.Fatalf("record() error = %v", err)
	}
	if r.Name() != "alice" {
		t.Errorf("name = %q, want folded and trimmed %q", r.Name(), "alice")
	}
	if r.Phones()[0] != "1234567890" {
		t.Errorf("phone = %q, want %q", r.Phones()[0], "1234567890")
	}
	if r.Birthday() != "1990-05-20" {
		t.Errorf("birthday = %q, want %q", r.Birthday(), "1990-05-20")
	}
}

func TestFormState_RecordOptionalBirthday(t *testing.T) {
	f := fillForm(newFormState(), "bob", "1234567890", "")

	r, err := f.record()
	if err != nil {
		t.Fatalf("record() error = %v", err)
	}
	if r.Birthday() != "" {
		t.Errorf("birthday = %q, want empty", r.Birthday())
	}
}

func TestFormState_RecordValidation(t *testing.T) {
	tests := []struct {
		name     string
		formName string
		phone    string
		birthday string
		wantMsg  string
	}{
		{name: "missing name", formName: "", phone: "1234567890", wantMsg: "Name is missing"},
		{name: "missing phone", formName: "alice", phone: "", wantMsg: "Phone is missing"},
		{name: "short phone", formName: "alice", phone: "123", wantMsg: "Phone number must be 10 digits"},
		{name: "bad birthday", formName: "alice", phone: "1234567890", birthday: "20.05.1990", wantMsg: "Invalid birthday format. Use YYYY-MM-DD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fillForm(newFormState(), tt.formName, tt.phone, tt.birthday)

			_, err := f.record()

			var verr *contact.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("record() error = %v, want a validation error", err)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestFormState_View(t *testing.T) {
	f := newFormState()
	f.errMsg = "Phone number must be 10 digits"

	view := stripANSI(f.View(80, 20))

	if !strings.Contains(view, "New contact") {
		t.Errorf("view = %q, want title", view)
	}
	if !strings.Contains(view, "Phone number must be 10 digits") {
		t.Errorf("view = %q, want inline error", view)
	}
	if !strings.Contains(view, "[Enter] Save") {
		t.Errorf("view = %q, want key hints", view)
	}
}
