package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the field message for a missing value.
const MsgRequired = "is required"

// Error categories shared by the delivery API translation and the host
// shell. Match them with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError maps field names to what is wrong with them. It matches
// ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

// Error lists the fields in name order so the text is stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		sep := "; "
		if i == 0 {
			sep = ": "
		}
		b.WriteString(sep + field + " " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
