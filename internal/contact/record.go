package contact

import (
	"fmt"
	"strings"
	"time"
)

// Record is a single contact. Phones keep insertion order and may hold
// duplicates; the birthday is optional.
type Record struct {
	name     string
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a Record with the given name and an optional
// birthday. An empty birthday leaves the field unset.
func NewRecord(name, birthday string) (*Record, error) {
	b, err := NewBirthday(birthday)
	if err != nil {
		return nil, err
	}
	return &Record{name: name, birthday: b}, nil
}

// Name returns the contact's name.
func (r *Record) Name() string { return r.name }

// Phones returns the phone values in insertion order.
func (r *Record) Phones() []string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return values
}

// Birthday returns the birthday string, or "" when unset.
func (r *Record) Birthday() string { return r.birthday.value }

// SetBirthday assigns a birthday. Empty values clear it.
func (r *Record) SetBirthday(value string) error {
	return r.birthday.Set(value)
}

// AddPhone validates value and appends it to the phone list.
// An empty value is a no-op, not an error.
func (r *Record) AddPhone(value string) error {
	if value == "" {
		return nil
	}
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value. Absent values
// are a no-op.
func (r *Record) RemovePhone(value string) {
	for i, p := range r.phones {
		if p.value == value {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces the first phone equal to old with value, which may
// be empty to clear the slot in place. Returns a NotFoundError when no
// phone equals old, a ValidationError when value is invalid.
func (r *Record) EditPhone(old, value string) error {
	for i, p := range r.phones {
		if p.value == old {
			return r.phones[i].Set(value)
		}
	}
	return &NotFoundError{Kind: KindPhone, Name: old}
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == value {
			return p, true
		}
	}
	return Phone{}, false
}

// DaysToBirthday returns the whole days from now's date to the next
// occurrence of the birthday, and false when no birthday is set. The
// birthday itself yields 0. Out-of-range day components normalize
// forward per time.Date, so a February 29 birthday resolves to March 1
// in non-leap years.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if r.birthday.IsZero() {
		return 0, false
	}
	month, day := r.birthday.Date()

	// Compare at date granularity in UTC so the difference is an exact
	// multiple of 24 hours.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	candidate := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(now.Year()+1, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	}
	return int(candidate.Sub(today) / (24 * time.Hour)), true
}

// String renders the contact in display form.
func (r *Record) String() string {
	birthday := r.birthday.value
	if birthday == "" {
		birthday = "none"
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(r.Phones(), ", "), birthday)
}

// Payload is the wire form of a Record for persistence.
type Payload struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}

// Payload returns the record's wire form. Phones is never nil so an
// empty list round-trips as [] rather than null.
func (r *Record) Payload() Payload {
	p := Payload{Name: r.name, Phones: r.Phones()}
	if !r.birthday.IsZero() {
		value := r.birthday.value
		p.Birthday = &value
	}
	return p
}

// FromPayload reconstructs a Record through the validated constructors,
// so invalid persisted fields fail exactly like direct assignment.
func FromPayload(p Payload) (*Record, error) {
	birthday := ""
	if p.Birthday != nil {
		birthday = *p.Birthday
	}
	r, err := NewRecord(p.Name, birthday)
	if err != nil {
		return nil, err
	}
	for _, value := range p.Phones {
		if err := r.AddPhone(value); err != nil {
			return nil, err
		}
	}
	return r, nil
}
