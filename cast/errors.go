package cast

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"typewire/shape"
)

// ErrNotNil reports a non-nil value cast against the null marker shape.
var ErrNotNil = errors.New("value is not none")

// UnionError reports a value rejected by every member of a union. Members
// keep their declaration order, which is also the order they were tried.
type UnionError struct {
	Value   any
	Members []shape.Descriptor
}

func (e *UnionError) Error() string {
	parts := make([]string, len(e.Members))
	for i, m := range e.Members {
		parts[i] = m.String()
	}

	return spew.Sprintf("Value '%v' does not match any type in (%s)", e.Value, strings.Join(parts, " | "))
}

// LiteralError reports a value that equals none of the allowed literals.
type LiteralError struct {
	Value    any
	Literals []any
}

func (e *LiteralError) Error() string {
	return spew.Sprintf("Value '%v' does not match any literal in %v", e.Value, e.Literals)
}

// ArityError reports a fixed-tuple input whose length differs from the
// declared arity.
type ArityError struct {
	Want, Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected a sequence of %d elements, got %d", e.Want, e.Got)
}

// SequenceError reports a value that could not be interpreted as an
// ordered sequence.
type SequenceError struct {
	Value any
}

func (e *SequenceError) Error() string {
	return spew.Sprintf("Value '%v' is not a sequence", e.Value)
}

// MappingError reports a value that could not be interpreted as a mapping
// or a sequence of key/value pairs.
type MappingError struct {
	Value  any
	Reason string
}

func (e *MappingError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}

	return spew.Sprintf("Value '%v' is not a mapping", e.Value)
}

// ConstructError wraps a record constructor failure.
type ConstructError struct {
	Value any
	Err   error
}

func (e *ConstructError) Error() string {
	return spew.Sprintf("cannot construct record from '%v': %v", e.Value, e.Err)
}

func (e *ConstructError) Unwrap() error { return e.Err }

// DepthError reports shape recursion beyond the engine ceiling.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("shape recursion exceeds %d levels", e.Limit)
}
