package shape_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typewire/shape"
)

func Example() {
	fmt.Println(shape.Union(shape.Int(), shape.Float()))
	fmt.Println(shape.Optional(shape.String()))
	fmt.Println(shape.Literals(80, 443))
	fmt.Println(shape.ListOf(shape.Float()))
	fmt.Println(shape.TupleOf(shape.Int(), shape.String(), shape.Float()))
	fmt.Println(shape.MapOf(shape.String(), shape.TupleOf(shape.Int(), shape.Etc())))
	fmt.Println(shape.Annotate(shape.Int(), "some metadata"))
	// Output:
	// int | float
	// string | none
	// Literal[80, 443]
	// []float
	// tuple[int, string, float]
	// map[string]tuple[int, ...]
	// int
}

func TestUnionFlattens(t *testing.T) {
	t.Parallel()

	d := shape.Union(shape.Int(), shape.Union(shape.Float(), shape.String()))
	require.Equal(t, shape.TagUnion, d.Tag)
	require.Len(t, d.Members, 3)
	assert.Equal(t, shape.TagScalar, d.Members[0].Tag)
	assert.Equal(t, "int | float | string", d.String())
}

func TestOptionalIsUnionWithNone(t *testing.T) {
	t.Parallel()

	d := shape.Optional(shape.Int())
	require.Equal(t, shape.TagUnion, d.Tag)
	require.Len(t, d.Members, 2)
	assert.Equal(t, shape.TagNone, d.Members[1].Tag)
}

func TestAnnotateCollapses(t *testing.T) {
	t.Parallel()

	d := shape.Annotate(shape.Annotate(shape.Annotate(shape.Int(), "m3"), "m2"), "m1")
	require.Equal(t, shape.TagAnnotated, d.Tag)
	assert.Equal(t, shape.TagScalar, d.Elem.Tag)
	assert.Equal(t, []any{"m1", "m2", "m3"}, d.Meta)
}

func TestTupleVariadicMarker(t *testing.T) {
	t.Parallel()

	d := shape.TupleOf(shape.Int(), shape.Etc())
	require.Equal(t, shape.TagTupleVariadic, d.Tag)
	assert.Equal(t, shape.TagScalar, d.Elem.Tag)

	d = shape.TupleOf(shape.Int(), shape.String())
	assert.Equal(t, shape.TagTupleFixed, d.Tag)

	assert.Panics(t, func() { shape.TupleOf(shape.Etc(), shape.Int()) })
	assert.Panics(t, func() { shape.TupleOf(shape.Int(), shape.String(), shape.Etc()) })
}

func TestConstructorMisuse(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { shape.Union() })
	assert.Panics(t, func() { shape.Literals() })
	assert.Panics(t, func() { shape.Literals(struct{}{}) })
	assert.Panics(t, func() { shape.Record(nil) })
	assert.Panics(t, func() { shape.ScalarOf(0) })
}
