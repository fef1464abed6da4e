package contact

import (
	"errors"
	"fmt"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrValidation = errors.New("contact: validation failed")
	ErrNotFound   = errors.New("contact: not found")
)

// Referent kinds a NotFoundError can name.
const (
	KindContact = "contact"
	KindPhone   = "phone"
)

// ValidationError reports a field value that failed validation.
// Message is the user-facing text shown at the command boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap returns ErrValidation for errors.Is checks.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports a missing contact or phone.
type NotFoundError struct {
	Kind string // KindContact or KindPhone
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// Unwrap returns ErrNotFound for errors.Is checks.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }
