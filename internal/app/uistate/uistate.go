// Package uistate models the lifecycle of one asynchronously loaded
// collection shown on a screen.
//
// A field starts as Loading, becomes Empty or Value once data arrives, and
// may move to Error when loading fails. ValueWithLoading keeps already shown
// data visible while a further load is pending.
package uistate

import "fmt"

// Kind enumerates the lifecycle phases of a UI field.
type Kind uint8

const (
	Loading Kind = iota
	Empty
	Error
	Value
	ValueWithLoading
)

var kindNames = [...]string{
	Loading:          "loading",
	Empty:            "empty",
	Error:            "error",
	Value:            "value",
	ValueWithLoading: "value_with_loading",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("uistate: unknown kind %d", k)
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("uistate: unknown kind %q", b)
}

// UI is one UI-state field. Data is only meaningful for Value and
// ValueWithLoading. The zero value is Loading.
type UI[T any] struct {
	Kind Kind `json:"kind"`
	Data T    `json:"data,omitzero"`
}

// NewLoading returns a field in the Loading phase.
func NewLoading[T any]() UI[T] { return UI[T]{Kind: Loading} }

// NewEmpty returns a field in the Empty phase.
func NewEmpty[T any]() UI[T] { return UI[T]{Kind: Empty} }

// NewError returns a field in the Error phase.
func NewError[T any]() UI[T] { return UI[T]{Kind: Error} }

// Of returns a field holding v.
func Of[T any](v T) UI[T] { return UI[T]{Kind: Value, Data: v} }

// Pending returns a field that keeps showing v while another load runs.
func Pending[T any](v T) UI[T] { return UI[T]{Kind: ValueWithLoading, Data: v} }

// FromList maps an empty list to Empty and anything else to Value.
func FromList[E any](list []E) UI[[]E] {
	if len(list) == 0 {
		return NewEmpty[[]E]()
	}
	return Of(list)
}

// FromMap maps an empty map to Empty and anything else to Value.
func FromMap[K comparable, V any](m map[K]V) UI[map[K]V] {
	if len(m) == 0 {
		return NewEmpty[map[K]V]()
	}
	return Of(m)
}

// Get returns the held data and whether the field carries any.
func (u UI[T]) Get() (T, bool) {
	switch u.Kind {
	case Value, ValueWithLoading:
		return u.Data, true
	default:
		var zero T
		return zero, false
	}
}

// IsLoading reports whether a load is in flight for the field.
func (u UI[T]) IsLoading() bool {
	return u.Kind == Loading || u.Kind == ValueWithLoading
}
