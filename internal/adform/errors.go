package adform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownField   = errors.New("unknown field")
	ErrUnknownOption  = errors.New("option not offered for field")
	ErrNotToggleField = errors.New("field is not a toggle field")
	ErrSlotOutOfRange = errors.New("photo slot out of range")
	ErrInvalidPrice   = errors.New("price must be a number")
	ErrClosed         = errors.New("form is closed")
	ErrTooManySlots   = errors.New("photo slot count exceeds limit")
)

const (
	CodeUnsupportedType = "unsupported-type"
	CodeTooLarge        = "too-large"
)

// ValidationError is a rejected photo upload. The slot is left as it was.
type ValidationError struct {
	Code    string
	Slot    int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("photo slot %d: %s", e.Slot, e.Code)
}

// MissingFieldError names one required field that has no value.
type MissingFieldError struct {
	Field   string
	Message string
}

func (e MissingFieldError) Error() string { return e.Message }

// ValidationErrors is every missing field of a draft, in display order.
type ValidationErrors []MissingFieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, ", ")
}
