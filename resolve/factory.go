package resolve

import (
	"errors"
	"fmt"
	"reflect"

	"typewire/cast"
	"typewire/options"
	"typewire/shape"
)

var errNoFields = errors.New("struct has no exported fields")

type fieldShape struct {
	index int
	name  string
	to    shape.Descriptor
}

// exportedFields resolves the shape of every exported field up front so
// the factory performs no reflection-over-declarations at cast time.
func exportedFields(rtype reflect.Type) ([]fieldShape, error) {
	var fields []fieldShape

	for i := 0; i < rtype.NumField(); i++ {
		f := rtype.Field(i)
		if !f.IsExported() {
			continue
		}

		to, err := FromReflectType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", rtype, f.Name, err)
		}

		fields = append(fields, fieldShape{index: i, name: f.Name, to: to})
	}

	return fields, nil
}

// newStructFactory synthesizes the record constructor for a struct type:
// a map raw value fills fields by exact name, a scalar raw value fills a
// single-field struct. Field values are cast against the field's resolved
// shape before assignment.
func newStructFactory(rtype reflect.Type, fields []fieldShape) func(any) (any, error) {
	return func(raw any) (any, error) {
		out := reflect.New(rtype).Elem()

		byName, ok := stringKeyed(raw)
		if !ok {
			if len(fields) != 1 {
				if len(fields) == 0 {
					return nil, fmt.Errorf("cannot construct %s: %w", rtype, errNoFields)
				}

				return nil, fmt.Errorf("cannot construct %s from a single value: %d fields", rtype, len(fields))
			}

			if err := fillField(out, fields[0], raw); err != nil {
				return nil, err
			}

			return out.Interface(), nil
		}

		known := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			known[f.name] = struct{}{}

			v, present := byName[f.name]
			if !present {
				continue
			}

			if err := fillField(out, f, v); err != nil {
				return nil, err
			}
		}

		for name := range byName {
			if _, ok := known[name]; !ok {
				return nil, fmt.Errorf("unknown field %s.%s", rtype, name)
			}
		}

		return out.Interface(), nil
	}
}

func fillField(out reflect.Value, f fieldShape, raw any) error {
	got, err := cast.As(raw, f.to, options.CastOptions{})
	if err != nil {
		return fmt.Errorf("field %s: %w", f.name, err)
	}

	if err := materialize(out.Field(f.index), got); err != nil {
		return fmt.Errorf("field %s: %w", f.name, err)
	}

	return nil
}

// stringKeyed views raw as a field-name lookup when it is a map with
// string-kinded keys.
func stringKeyed(raw any) (map[string]any, bool) {
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// materialize assigns an engine result to a concrete destination,
// rebuilding []any and map[any]any composites element-wise.
func materialize(dst reflect.Value, v any) error {
	if v == nil {
		dst.SetZero()
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(dst.Type()) {
		dst.Set(rv)
		return nil
	}

	if dst.Kind() == reflect.Pointer {
		p := reflect.New(dst.Type().Elem())
		if err := materialize(p.Elem(), v); err != nil {
			return err
		}
		dst.Set(p)

		return nil
	}

	// Guard the integer-to-string rune conversion; everything else
	// convertible (numeric widths, named types) converts directly.
	if rv.Type().ConvertibleTo(dst.Type()) && (dst.Kind() != reflect.String || rv.Kind() == reflect.String) {
		dst.Set(rv.Convert(dst.Type()))
		return nil
	}

	switch items := v.(type) {
	case []any:
		switch dst.Kind() {
		default:
			return fmt.Errorf("cannot assign a sequence to %s", dst.Type())

		case reflect.Slice:
			out := reflect.MakeSlice(dst.Type(), len(items), len(items))
			for i, item := range items {
				if err := materialize(out.Index(i), item); err != nil {
					return err
				}
			}
			dst.Set(out)

		case reflect.Array:
			if dst.Len() != len(items) {
				return fmt.Errorf("cannot assign %d elements to %s", len(items), dst.Type())
			}
			for i, item := range items {
				if err := materialize(dst.Index(i), item); err != nil {
					return err
				}
			}
		}

		return nil

	case map[any]any:
		if dst.Kind() != reflect.Map {
			return fmt.Errorf("cannot assign a mapping to %s", dst.Type())
		}

		out := reflect.MakeMapWithSize(dst.Type(), len(items))
		for k, item := range items {
			key := reflect.New(dst.Type().Key()).Elem()
			if err := materialize(key, k); err != nil {
				return err
			}

			val := reflect.New(dst.Type().Elem()).Elem()
			if err := materialize(val, item); err != nil {
				return err
			}

			out.SetMapIndex(key, val)
		}
		dst.Set(out)

		return nil
	}

	return fmt.Errorf("cannot assign %s to %s", rv.Type(), dst.Type())
}
