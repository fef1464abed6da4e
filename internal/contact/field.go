// Package contact defines the validated contact record: a name, an
// ordered list of phone numbers, and an optional birthday. Phone and
// birthday values are checked on every assignment, not just at
// construction, so a Record can never hold an invalid field.
package contact

import "strings"

// User-facing validation messages, carried verbatim by ValidationError.
const (
	phoneMessage    = "Phone number must be 10 digits"
	birthdayMessage = "Invalid birthday format. Use YYYY-MM-DD"
)

// Birthday year bounds.
const (
	minYear = 1900
	maxYear = 2100
)

// ValidPhone reports whether value is exactly 10 ASCII decimal digits.
func ValidPhone(value string) bool {
	if len(value) != 10 {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// ValidBirthday reports whether value has the YYYY-MM-DD shape with
// year in [1900, 2100], month in [1, 12], and day in [1, 31].
// Day-of-month is deliberately not checked against the month, so
// "2021-02-30" is accepted.
func ValidBirthday(value string) bool {
	parts := strings.Split(value, "-")
	if len(parts) != 3 {
		return false
	}
	year, ok := numeric(parts[0], 4)
	if !ok {
		return false
	}
	month, ok := numeric(parts[1], 2)
	if !ok {
		return false
	}
	day, ok := numeric(parts[2], 2)
	if !ok {
		return false
	}
	return year >= minYear && year <= maxYear &&
		month >= 1 && month <= 12 &&
		day >= 1 && day <= 31
}

// numeric parses a non-empty string of at most maxLen ASCII digits.
func numeric(s string, maxLen int) (int, bool) {
	if s == "" || len(s) > maxLen {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// Phone is a validated phone number. The zero value is empty.
type Phone struct {
	value string
}

// NewPhone creates a Phone from value. An empty value yields an empty
// Phone; anything else must pass ValidPhone.
func NewPhone(value string) (Phone, error) {
	var p Phone
	if err := p.Set(value); err != nil {
		return Phone{}, err
	}
	return p, nil
}

// Set assigns value. Empty values clear the field and bypass validation.
func (p *Phone) Set(value string) error {
	if value != "" && !ValidPhone(value) {
		return &ValidationError{Field: "phone", Message: phoneMessage}
	}
	p.value = value
	return nil
}

// Value returns the stored phone number, or "" when unset.
func (p Phone) Value() string { return p.value }

// IsZero reports whether the phone is unset.
func (p Phone) IsZero() bool { return p.value == "" }

// Birthday is a validated YYYY-MM-DD date string. The zero value is
// empty (no birthday).
type Birthday struct {
	value string
}

// NewBirthday creates a Birthday from value. An empty value yields an
// empty Birthday; anything else must pass ValidBirthday.
func NewBirthday(value string) (Birthday, error) {
	var b Birthday
	if err := b.Set(value); err != nil {
		return Birthday{}, err
	}
	return b, nil
}

// Set assigns value. Empty values clear the field and bypass validation.
func (b *Birthday) Set(value string) error {
	if value != "" && !ValidBirthday(value) {
		return &ValidationError{Field: "birthday", Message: birthdayMessage}
	}
	b.value = value
	return nil
}

// Value returns the stored date string, or "" when unset.
func (b Birthday) Value() string { return b.value }

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool { return b.value == "" }

// Date returns the stored month and day, or zeros when unset. The
// stored value is guaranteed numeric by Set.
func (b Birthday) Date() (month, day int) {
	parts := strings.Split(b.value, "-")
	if len(parts) != 3 {
		return 0, 0
	}
	month, _ = numeric(parts[1], 2)
	day, _ = numeric(parts[2], 2)
	return month, day
}
