package scalar_test

import (
	"fmt"
	"reflect"
	"time"

	"typewire/scalar"
)

func Example() {
	type Port int
	type Label string
	type Empty struct{}

	fmt.Println(scalar.FromReflectType(reflect.TypeOf((*string)(nil)).Elem()))
	fmt.Println(scalar.FromReflectType(reflect.TypeOf((*Port)(nil)).Elem()))
	fmt.Println(scalar.FromReflectType(reflect.TypeOf((*Label)(nil)).Elem()))
	fmt.Println(scalar.FromReflectType(reflect.TypeOf((*[]byte)(nil)).Elem()))
	fmt.Println(scalar.FromReflectType(reflect.TypeOf((*time.Duration)(nil)).Elem()))
	fmt.Println(scalar.FromReflectType(reflect.TypeOf((*time.Time)(nil)).Elem()))
	fmt.Println(scalar.FromReflectType(reflect.TypeOf((*Empty)(nil)).Elem()))
	// Output:
	// KindString
	// KindInt
	// KindString
	// KindBytes
	// KindDuration
	// KindTime
	// KindEnum(0)
}

func ExampleKindEnum_Name() {
	fmt.Println(scalar.KindInt.Name())
	fmt.Println(scalar.KindBytes.Name())
	fmt.Println(scalar.KindDuration.Name())
	// Output:
	// int
	// bytes
	// duration
}
