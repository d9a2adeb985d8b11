// Package shape defines the normalized representation of a target shape
// and the constructors used to declare one. A descriptor is a closed
// tagged variant; the cast engine interprets it with a single dispatch
// switch and never inspects host type declarations directly.
package shape

import (
	"fmt"
	"strings"

	"typewire/scalar"
)

// Descriptor is the normalized target shape. Tag selects the variant; the
// remaining fields are meaningful only for the tags documented on them.
// Descriptors are immutable once built and safe to share between casts.
type Descriptor struct {
	Tag TagEnum

	// Kind is the scalar kind (TagScalar).
	Kind scalar.KindEnum
	// Members are union alternatives in declaration order (TagUnion).
	// Order determines first-match precedence.
	Members []Descriptor
	// Literals are the allowed values in declaration order (TagLiteral);
	// each value keeps its own concrete type.
	Literals []any
	// Elem is the element shape (TagList, TagTupleVariadic) or the wrapped
	// shape (TagAnnotated).
	Elem *Descriptor
	// Elems are position-wise element shapes (TagTupleFixed).
	Elems []Descriptor
	// Key and Value are the entry shapes (TagMapping).
	Key, Value *Descriptor
	// Meta is the annotation payload (TagAnnotated). It is informational
	// only and never affects casting.
	Meta []any
	// Construct builds a record from a raw value (TagRecord).
	Construct func(any) (any, error)
}

// Any returns the passthrough shape: no coercion is performed.
func Any() Descriptor { return Descriptor{Tag: TagAny} }

// None returns the null marker shape, matched only by a nil value.
func None() Descriptor { return Descriptor{Tag: TagNone} }

func String() Descriptor   { return Descriptor{Tag: TagScalar, Kind: scalar.KindString} }
func Int() Descriptor      { return Descriptor{Tag: TagScalar, Kind: scalar.KindInt} }
func Float() Descriptor    { return Descriptor{Tag: TagScalar, Kind: scalar.KindFloat} }
func Bool() Descriptor     { return Descriptor{Tag: TagScalar, Kind: scalar.KindBool} }
func Bytes() Descriptor    { return Descriptor{Tag: TagScalar, Kind: scalar.KindBytes} }
func Time() Descriptor     { return Descriptor{Tag: TagScalar, Kind: scalar.KindTime} }
func Duration() Descriptor { return Descriptor{Tag: TagScalar, Kind: scalar.KindDuration} }

// ScalarOf returns the shape of an arbitrary scalar kind.
func ScalarOf(kind scalar.KindEnum) Descriptor {
	if kind <= 0 || int(kind) >= scalar.KindTotal {
		panic("invalid scalar kind: " + kind.String())
	}

	return Descriptor{Tag: TagScalar, Kind: kind}
}

// Union returns the ordered union of members. Declaration order is
// preserved exactly; nested unions flatten in place without reordering.
func Union(members ...Descriptor) Descriptor {
	if len(members) == 0 {
		panic("a union requires at least one member")
	}

	flat := make([]Descriptor, 0, len(members))
	for _, m := range members {
		if m.Tag == TagUnion {
			flat = append(flat, m.Members...)
			continue
		}

		flat = append(flat, m)
	}

	return Descriptor{Tag: TagUnion, Members: flat}
}

// Optional returns d extended with the null marker, i.e. a two-member
// union accepting either d or nil.
func Optional(d Descriptor) Descriptor {
	return Union(d, None())
}

// Literals returns the closed set of allowed values in declaration order.
// Every value must classify as a scalar; each keeps its own concrete type.
func Literals(values ...any) Descriptor {
	if len(values) == 0 {
		panic("a literal set requires at least one value")
	}

	for _, v := range values {
		if scalar.FromValue(v) == 0 {
			panic(fmt.Sprintf("literal %v is not a scalar value", v))
		}
	}

	return Descriptor{Tag: TagLiteral, Literals: values}
}

// ListOf returns the shape of a homogeneous ordered sequence.
func ListOf(elem Descriptor) Descriptor {
	return Descriptor{Tag: TagList, Elem: &elem}
}

// Etc is the terminal marker turning a tuple declaration variadic:
// TupleOf(Int(), Etc()) accepts any number of integer elements. It is
// consumed at declaration time and never appears in a built descriptor.
func Etc() Descriptor { return Descriptor{Tag: TagEtc} }

// TupleOf returns a fixed-arity tuple shape with position-wise elements.
// A terminal Etc() marker after a single element shape declares a variadic
// tuple instead; Etc() anywhere else panics.
func TupleOf(elems ...Descriptor) Descriptor {
	for i, e := range elems {
		if e.Tag != TagEtc {
			continue
		}

		if len(elems) != 2 || i != 1 {
			panic("the variadic marker must terminate a two-element tuple declaration")
		}

		elem := elems[0]

		return Descriptor{Tag: TagTupleVariadic, Elem: &elem}
	}

	return Descriptor{Tag: TagTupleFixed, Elems: elems}
}

// MapOf returns the shape of a key/value mapping.
func MapOf(key, value Descriptor) Descriptor {
	return Descriptor{Tag: TagMapping, Key: &key, Value: &value}
}

// Annotate wraps inner with informational metadata. Arbitrarily nested
// annotation layers collapse into a single one around the innermost
// non-annotated shape, outermost metadata first.
func Annotate(inner Descriptor, meta ...any) Descriptor {
	collected := append([]any(nil), meta...)
	for inner.Tag == TagAnnotated {
		collected = append(collected, inner.Meta...)
		inner = *inner.Elem
	}

	return Descriptor{Tag: TagAnnotated, Elem: &inner, Meta: collected}
}

// Record returns the fallback shape for a user-defined type the engine
// does not otherwise understand. The engine knows nothing about the
// record's layout, only that construct builds one from a raw value.
func Record(construct func(any) (any, error)) Descriptor {
	if construct == nil {
		panic("a record shape requires a constructor")
	}

	return Descriptor{Tag: TagRecord, Construct: construct}
}

// String renders the shape the way it would be declared, e.g.
// "int | float", "Literal[80, 443]" or "map[string]tuple[int, ...]".
func (d Descriptor) String() string {
	switch d.Tag {
	default:
		return d.Tag.String()

	case TagAny:
		return "any"

	case TagNone:
		return "none"

	case TagScalar:
		return d.Kind.Name()

	case TagUnion:
		parts := make([]string, len(d.Members))
		for i, m := range d.Members {
			parts[i] = m.String()
		}
		return strings.Join(parts, " | ")

	case TagLiteral:
		parts := make([]string, len(d.Literals))
		for i, v := range d.Literals {
			parts[i] = fmt.Sprintf("%v", v)
		}
		return "Literal[" + strings.Join(parts, ", ") + "]"

	case TagList:
		return "[]" + d.Elem.String()

	case TagTupleFixed:
		parts := make([]string, len(d.Elems))
		for i, e := range d.Elems {
			parts[i] = e.String()
		}
		return "tuple[" + strings.Join(parts, ", ") + "]"

	case TagTupleVariadic:
		return "tuple[" + d.Elem.String() + ", ...]"

	case TagMapping:
		return "map[" + d.Key.String() + "]" + d.Value.String()

	case TagAnnotated:
		return d.Elem.String()

	case TagRecord:
		return "record"
	}
}
