// Package scalar implements primitive-to-primitive coercion between the
// closed set of scalar kinds: string, int, float, bool, bytes, time and
// duration.
package scalar

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"typewire/options"
)

// Convert coerces value into the requested scalar kind. A value that
// already classifies as kind passes through unchanged, keeping its original
// representation (an int32 stays an int32). Conversions always produce the
// canonical Go representation: string, int, float64, bool, []byte,
// time.Time or time.Duration.
func Convert(value any, kind KindEnum, opts options.CastOptions) (any, error) {
	if FromValue(value) == kind {
		return value, nil
	}

	switch kind {
	default:
		panic("invalid scalar kind: " + kind.String())

	case KindString:
		return toString(value)

	case KindInt:
		return toInt(value, opts)

	case KindFloat:
		return toFloat(value)

	case KindBool:
		return toBool(value, opts)

	case KindBytes:
		// Identity is handled above; no implicit encoding is performed.
		return nil, &ConvertError{Value: value, Kind: KindBytes}

	case KindTime:
		return toTime(value)

	case KindDuration:
		return toDuration(value)
	}
}

func toString(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case time.Duration:
		return v.String(), nil
	}

	switch v := reflect.ValueOf(value); v.Kind() {
	default:
		return nil, &ConvertError{Value: value, Kind: KindString}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	}
}

func toInt(value any, opts options.CastOptions) (any, error) {
	if d, ok := value.(time.Duration); ok {
		return int(d), nil
	}

	switch v := reflect.ValueOf(value); v.Kind() {
	default:
		return nil, &ConvertError{Value: value, Kind: KindInt}

	case reflect.String:
		s := v.String()

		n, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return int(n), nil
		}

		if !opts.TransparentInt {
			return nil, &NumericError{Value: s, Kind: KindInt, Err: err}
		}

		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return nil, &NumericError{Value: s, Kind: KindInt, Err: ferr}
		}

		return truncate(f)

	case reflect.Float32, reflect.Float64:
		return truncate(v.Float())

	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}
}

// truncate narrows a float to int toward zero. The upper bound is
// exclusive: MaxInt64 rounds up to exactly 2^63 as a float64, and letting
// it through would wrap the conversion to MinInt64.
func truncate(f float64) (any, error) {
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, &NumericError{Value: f, Kind: KindInt, Err: strconv.ErrRange}
	}

	return int(f), nil
}

func toFloat(value any) (any, error) {
	if d, ok := value.(time.Duration); ok {
		return d.Seconds(), nil
	}

	switch v := reflect.ValueOf(value); v.Kind() {
	default:
		return nil, &ConvertError{Value: value, Kind: KindFloat}

	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return nil, &NumericError{Value: v.String(), Kind: KindFloat, Err: err}
		}
		return f, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil

	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}
}

func toBool(value any, opts options.CastOptions) (any, error) {
	switch v := reflect.ValueOf(value); v.Kind() {
	default:
		return nil, &ConvertError{Value: value, Kind: KindBool}

	case reflect.String:
		s := v.String()
		if !opts.SemanticBool {
			return s != "", nil
		}

		switch strings.ToLower(s) {
		case "", "0", "false", "no", "off":
			return false, nil
		}
		return true, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil

	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}
}

func toTime(value any) (any, error) {
	switch v := reflect.ValueOf(value); v.Kind() {
	default:
		return nil, &ConvertError{Value: value, Kind: KindTime}

	case reflect.String:
		t, err := time.Parse(time.RFC3339Nano, v.String())
		if err != nil {
			return nil, &ConvertError{Value: value, Kind: KindTime, Err: err}
		}
		return t, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Integers are unix seconds.
		return time.Unix(v.Int(), 0).UTC(), nil
	}
}

func toDuration(value any) (any, error) {
	switch v := reflect.ValueOf(value); v.Kind() {
	default:
		return nil, &ConvertError{Value: value, Kind: KindDuration}

	case reflect.String:
		d, err := time.ParseDuration(v.String())
		if err != nil {
			return nil, &ConvertError{Value: value, Kind: KindDuration, Err: err}
		}
		return d, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Integers are nanoseconds.
		return time.Duration(v.Int()), nil

	case reflect.Float32, reflect.Float64:
		// Floats are seconds.
		return time.Duration(v.Float() * float64(time.Second)), nil
	}
}
