// Package cast implements the recursive coercion engine: given a runtime
// value and a normalized shape descriptor it produces a conforming value
// or the first structured failure encountered.
//
// The engine is a pure function of its inputs. It holds no state, performs
// no I/O and is safe to call concurrently, provided record constructors
// reached through shape.Record are themselves safe for concurrent use.
package cast

import (
	"bytes"
	"fmt"
	"reflect"

	"typewire/options"
	"typewire/scalar"
	"typewire/shape"
	"typewire/utils"
)

// MaxDepth bounds shape recursion. Descriptor trees are finite, so the
// ceiling only trips on pathological declarations; exceeding it fails with
// DepthError instead of exhausting the stack.
const MaxDepth = 256

// As casts value to the shape described by to. It returns a value
// conforming to the descriptor or the first failure encountered during
// recursion; composite casts never return partial results.
func As(value any, to shape.Descriptor, opts options.CastOptions) (any, error) {
	return castValue(value, to, opts, 0)
}

func castValue(value any, to shape.Descriptor, opts options.CastOptions, depth int) (any, error) {
	if depth >= MaxDepth {
		return nil, &DepthError{Limit: MaxDepth}
	}

	switch to.Tag {
	default:
		panic("invalid shape descriptor: " + to.Tag.String())

	case shape.TagAny:
		return value, nil

	case shape.TagNone:
		if value == nil {
			return nil, nil
		}
		return nil, ErrNotNil

	case shape.TagAnnotated:
		// Metadata is never inspected.
		return castValue(value, *to.Elem, opts, depth+1)

	case shape.TagScalar:
		return scalar.Convert(value, to.Kind, opts)

	case shape.TagUnion:
		return castUnion(value, to, opts, depth)

	case shape.TagLiteral:
		return castLiteral(value, to, opts)

	case shape.TagList:
		return castList(value, to, opts, depth)

	case shape.TagTupleFixed, shape.TagTupleVariadic:
		return castTuple(value, to, opts, depth)

	case shape.TagMapping:
		return castMapping(value, to, opts, depth)

	case shape.TagRecord:
		out, err := to.Construct(value)
		if err != nil {
			return nil, &ConstructError{Value: value, Err: err}
		}
		return out, nil
	}
}

// castUnion tries members in declaration order; the first success wins and
// keeps its own type. A nil value short-circuits to nil when a null marker
// member exists, without attempting the other members.
func castUnion(value any, to shape.Descriptor, opts options.CastOptions, depth int) (any, error) {
	if value == nil {
		for _, member := range to.Members {
			if member.Tag == shape.TagNone {
				return nil, nil
			}
		}
	}

	for _, member := range to.Members {
		out, err := castValue(value, member, opts, depth+1)
		if err == nil {
			return out, nil
		}
	}

	return nil, &UnionError{Value: value, Members: to.Members}
}

// castLiteral matches the value against each allowed literal in order,
// coercing per the literal's own kind. Coercion unifies representations of
// the same kind (an int32 input matches an int literal) and the numeric
// kinds unify with each other without truncation (80.0 matches the integer
// literal 80, 80.5 does not), but nothing crosses a non-numeric kind: the
// string "80" does not match the integer literal 80.
func castLiteral(value any, to shape.Descriptor, opts options.CastOptions) (any, error) {
	kind := scalar.FromValue(value)

	for _, lit := range to.Literals {
		litKind := scalar.FromValue(lit)

		if litKind != kind {
			if litKind.IsNumber() && kind.IsNumber() && asFloat(value) == asFloat(lit) {
				return lit, nil
			}

			continue
		}

		got, err := scalar.Convert(value, kind, opts)
		if err != nil {
			continue
		}

		if equalScalar(kind, got, lit) {
			return lit, nil
		}
	}

	return nil, &LiteralError{Value: value, Literals: to.Literals}
}

// asFloat widens a numeric value for cross-kind literal comparison.
func asFloat(v any) float64 {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	default:
		return rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	}
}

func castList(value any, to shape.Descriptor, opts options.CastOptions, depth int) (any, error) {
	// Strings and byte slices are scalars here, never sequences of their
	// characters or bytes.
	switch scalar.FromValue(value) {
	case scalar.KindString, scalar.KindBytes:
		return castValue(value, *to.Elem, opts, depth+1)
	}

	items, ok := sequenceOf(value)
	if !ok {
		return nil, &SequenceError{Value: value}
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		el, err := castValue(item, *to.Elem, opts, depth+1)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out = append(out, el)
	}

	return out, nil
}

func castTuple(value any, to shape.Descriptor, opts options.CastOptions, depth int) (any, error) {
	items, ok := sequenceOf(value)
	if !ok {
		return nil, &SequenceError{Value: value}
	}

	if to.Tag == shape.TagTupleVariadic {
		out := make([]any, 0, len(items))
		for i, item := range items {
			el, err := castValue(item, *to.Elem, opts, depth+1)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			out = append(out, el)
		}

		return out, nil
	}

	if len(items) != len(to.Elems) {
		return nil, &ArityError{Want: len(to.Elems), Got: len(items)}
	}

	out := make([]any, 0, len(items))
	for i, item := range items {
		el, err := castValue(item, to.Elems[i], opts, depth+1)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}

		out = append(out, el)
	}

	return out, nil
}

// castMapping accepts a native map or a sequence of two-element pairs and
// casts every key and value independently.
func castMapping(value any, to shape.Descriptor, opts options.CastOptions, depth int) (any, error) {
	keys, vals, ok := pairsOf(value)
	if !ok {
		return nil, &MappingError{Value: value}
	}

	out := make(map[any]any, len(keys))
	for i := range keys {
		k, err := castValue(keys[i], *to.Key, opts, depth+1)
		if err != nil {
			return nil, fmt.Errorf("key '%v': %w", keys[i], err)
		}

		if k != nil && !reflect.TypeOf(k).Comparable() {
			return nil, &MappingError{
				Value:  value,
				Reason: fmt.Sprintf("key '%v' does not cast to a comparable value", keys[i]),
			}
		}

		v, err := castValue(vals[i], *to.Value, opts, depth+1)
		if err != nil {
			return nil, fmt.Errorf("value of '%v': %w", keys[i], err)
		}

		out[k] = v
	}

	return out, nil
}

// equalScalar compares two values already unified under the same scalar
// kind, ignoring representation width (int8 vs int64, float32 vs float64).
func equalScalar(kind scalar.KindEnum, a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)

	switch kind {
	default:
		return a == b

	case scalar.KindString:
		return av.String() == bv.String()

	case scalar.KindBool:
		return av.Bool() == bv.Bool()

	case scalar.KindFloat:
		return av.Float() == bv.Float()

	case scalar.KindInt:
		return intEqual(av, bv)

	case scalar.KindBytes:
		return bytes.Equal(av.Bytes(), bv.Bytes())
	}
}

// intEqual compares integers across the signed/unsigned boundary.
func intEqual(a, b reflect.Value) bool {
	asgn, bsgn := isSigned(a), isSigned(b)

	switch {
	case asgn && bsgn:
		return a.Int() == b.Int()
	case !asgn && !bsgn:
		return a.Uint() == b.Uint()
	case asgn:
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
}

// sequenceOf flattens slice and array inputs into []any. Strings and byte
// slices are scalars and are never decomposed.
func sequenceOf(value any) ([]any, bool) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	default:
		return nil, false
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

// pairsOf extracts key/value pairs from a native map or a sequence of
// two-element pairs, preserving encounter order for sequences.
func pairsOf(value any) (keys, vals []any, ok bool) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	default:
		return nil, nil, false

	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, iter.Key().Interface())
			vals = append(vals, iter.Value().Interface())
		}

		return keys, vals, true

	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			pair, pok := sequenceOf(rv.Index(i).Interface())
			if !pok || len(pair) != 2 {
				return nil, nil, false
			}

			k, v := utils.Unpack2(pair)
			keys = append(keys, k)
			vals = append(vals, v)
		}

		return keys, vals, true
	}
}
