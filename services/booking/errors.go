package booking

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a single invalid field on an incoming booking.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when an incoming booking fails the schema rules.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "booking validation failed: " + strings.Join(msgs, "; ")
}

// InvalidInputError signals a contract violation by the caller, e.g. requesting
// cancellation math on a booking without a check-in date.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// ErrNotCancellable is returned when a cancellation request fails the
// cancellation rule (wrong status or inside the 24-hour window).
var ErrNotCancellable = errors.New("booking cannot be cancelled")

// ErrBookingNotFound is returned when no booking matches the given ID or reference.
var ErrBookingNotFound = errors.New("booking not found")

// ErrStatusConflict is returned when a status transition lost a race with a
// concurrent update.
var ErrStatusConflict = errors.New("booking status changed concurrently")
