package scalar

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// NumericError reports a textual value that did not parse as the requested
// numeric kind.
type NumericError struct {
	Value any
	Kind  KindEnum
	Err   error
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("invalid literal for %s: '%v'", e.Kind.Name(), e.Value)
}

func (e *NumericError) Unwrap() error { return e.Err }

// ConvertError reports a value whose representation has no conversion to
// the requested scalar kind.
type ConvertError struct {
	Value any
	Kind  KindEnum
	Err   error
}

func (e *ConvertError) Error() string {
	return spew.Sprintf("cannot convert %#v to %s", e.Value, e.Kind.Name())
}

func (e *ConvertError) Unwrap() error { return e.Err }
