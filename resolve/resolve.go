// Package resolve normalizes Go type declarations into shape descriptors.
// It is the reflect-facing half of the descriptor normalizer; the
// constructors in package shape cover declarations Go's type system cannot
// express directly (unions, literal sets, variadic tuples, annotations).
//
// Resolution is pure and happens once per distinct type; callers may cache
// the resulting descriptor, which is immutable.
package resolve

import (
	"errors"
	"fmt"
	"reflect"

	"typewire/scalar"
	"typewire/shape"
)

// ErrUnresolvable reports a Go type with no castable shape interpretation.
var ErrUnresolvable = errors.New("type does not resolve to a castable shape")

// TypeFor resolves the Go type T into a normalized shape descriptor.
func TypeFor[T any]() (shape.Descriptor, error) {
	return FromReflectType(reflect.TypeOf((*T)(nil)).Elem())
}

// FromReflectType resolves rtype into a normalized shape descriptor:
// scalars per scalar.FromReflectType, pointers as optionals, slices as
// lists, arrays as fixed tuples, maps as mappings, the empty interface as
// the passthrough shape and structs as records with a synthesized factory.
func FromReflectType(rtype reflect.Type) (shape.Descriptor, error) {
	if rtype == nil {
		return shape.Any(), nil
	}

	if kind := scalar.FromReflectType(rtype); kind != 0 {
		return shape.ScalarOf(kind), nil
	}

	switch rtype.Kind() {
	default:
		return shape.Descriptor{}, fmt.Errorf("%w: %s", ErrUnresolvable, rtype)

	case reflect.Pointer:
		inner, err := FromReflectType(rtype.Elem())
		if err != nil {
			return shape.Descriptor{}, err
		}

		return shape.Optional(inner), nil

	case reflect.Slice:
		elem, err := FromReflectType(rtype.Elem())
		if err != nil {
			return shape.Descriptor{}, err
		}

		return shape.ListOf(elem), nil

	case reflect.Array:
		elem, err := FromReflectType(rtype.Elem())
		if err != nil {
			return shape.Descriptor{}, err
		}

		elems := make([]shape.Descriptor, rtype.Len())
		for i := range elems {
			elems[i] = elem
		}

		return shape.TupleOf(elems...), nil

	case reflect.Map:
		key, err := FromReflectType(rtype.Key())
		if err != nil {
			return shape.Descriptor{}, err
		}

		value, err := FromReflectType(rtype.Elem())
		if err != nil {
			return shape.Descriptor{}, err
		}

		return shape.MapOf(key, value), nil

	case reflect.Interface:
		if rtype.NumMethod() == 0 {
			return shape.Any(), nil
		}

		return shape.Descriptor{}, fmt.Errorf("%w: interface %s has methods", ErrUnresolvable, rtype)

	case reflect.Struct:
		return structShape(rtype)
	}
}

func structShape(rtype reflect.Type) (shape.Descriptor, error) {
	fields, err := exportedFields(rtype)
	if err != nil {
		return shape.Descriptor{}, err
	}

	return shape.Record(newStructFactory(rtype, fields)), nil
}
