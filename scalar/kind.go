package scalar

import (
	"reflect"
	"strings"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindString
	KindInt
	KindFloat
	KindBool
	KindBytes
	KindTime
	KindDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat:
		return true
	}
}

// Name returns the lowercase kind name used by shape renderings and error messages.
func (k KindEnum) Name() string {
	return strings.ToLower(strings.TrimPrefix(k.String(), "Kind"))
}

var (
	timeType     = reflect.TypeOf(time.Time{})
	durationType = reflect.TypeOf(time.Duration(0))
)

// FromReflectType classifies rtype into a scalar kind. Named types classify
// by their underlying reflect kind, byte slices count as KindBytes, and
// time.Time / time.Duration are recognized as their own kinds. Types with
// no scalar interpretation return the invalid zero KindEnum.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	case timeType:
		return KindTime
	case durationType:
		return KindDuration
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Slice:
		if rtype.Elem().Kind() == reflect.Uint8 {
			return KindBytes
		}
		return 0
	}
}

// FromValue classifies a runtime value into a scalar kind.
func FromValue(value any) KindEnum {
	if value == nil {
		return 0
	}

	return FromReflectType(reflect.TypeOf(value))
}
