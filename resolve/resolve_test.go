package resolve_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typewire/cast"
	"typewire/options"
	"typewire/resolve"
	"typewire/scalar"
	"typewire/shape"
)

var noOpts = options.CastOptions{}

func TestScalars(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		got  func() (shape.Descriptor, error)
		want scalar.KindEnum
	}{
		{"int", resolve.TypeFor[int], scalar.KindInt},
		{"named int", resolve.TypeFor[time.Month], scalar.KindInt},
		{"string", resolve.TypeFor[string], scalar.KindString},
		{"bytes", resolve.TypeFor[[]byte], scalar.KindBytes},
		{"float", resolve.TypeFor[float32], scalar.KindFloat},
		{"bool", resolve.TypeFor[bool], scalar.KindBool},
		{"time", resolve.TypeFor[time.Time], scalar.KindTime},
		{"duration", resolve.TypeFor[time.Duration], scalar.KindDuration},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d, err := tc.got()
			require.NoError(t, err)
			require.Equal(t, shape.TagScalar, d.Tag)
			assert.Equal(t, tc.want, d.Kind)
		})
	}
}

func TestPointerIsOptional(t *testing.T) {
	t.Parallel()

	d, err := resolve.TypeFor[*string]()
	require.NoError(t, err)
	require.Equal(t, shape.TagUnion, d.Tag)
	require.Len(t, d.Members, 2)
	assert.Equal(t, shape.TagNone, d.Members[1].Tag)

	got, err := cast.As(nil, d, noOpts)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = cast.As("abc", d, noOpts)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestContainers(t *testing.T) {
	t.Parallel()

	t.Run("slice", func(t *testing.T) {
		t.Parallel()

		d, err := resolve.TypeFor[[]float64]()
		require.NoError(t, err)
		require.Equal(t, shape.TagList, d.Tag)

		got, err := cast.As([]string{"1", "2.5"}, d, noOpts)
		require.NoError(t, err)
		assert.Equal(t, []any{1.0, 2.5}, got)
	})

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		d, err := resolve.TypeFor[[3]int]()
		require.NoError(t, err)
		require.Equal(t, shape.TagTupleFixed, d.Tag)
		require.Len(t, d.Elems, 3)

		_, err = cast.As([]string{"1", "2"}, d, noOpts)
		var arityErr *cast.ArityError
		assert.ErrorAs(t, err, &arityErr)
	})

	t.Run("map", func(t *testing.T) {
		t.Parallel()

		d, err := resolve.TypeFor[map[string]int]()
		require.NoError(t, err)
		require.Equal(t, shape.TagMapping, d.Tag)

		got, err := cast.As(map[string]string{"a": "1"}, d, noOpts)
		require.NoError(t, err)
		assert.Equal(t, map[any]any{"a": 1}, got)
	})
}

func TestInterfaces(t *testing.T) {
	t.Parallel()

	d, err := resolve.TypeFor[any]()
	require.NoError(t, err)
	assert.Equal(t, shape.TagAny, d.Tag)

	_, err = resolve.TypeFor[error]()
	assert.ErrorIs(t, err, resolve.ErrUnresolvable)
}

func TestUnresolvable(t *testing.T) {
	t.Parallel()

	_, err := resolve.TypeFor[func()]()
	assert.ErrorIs(t, err, resolve.ErrUnresolvable)

	_, err = resolve.TypeFor[chan int]()
	assert.ErrorIs(t, err, resolve.ErrUnresolvable)

	// Unresolvable fields surface at resolution time, not cast time.
	type withChan struct {
		C chan int
	}
	_, err = resolve.TypeFor[withChan]()
	assert.ErrorIs(t, err, resolve.ErrUnresolvable)
}

type credential struct {
	Value string
}

type endpoint struct {
	Host string
	Port int
	Tags []string
}

func TestStructFromScalar(t *testing.T) {
	t.Parallel()

	d, err := resolve.TypeFor[credential]()
	require.NoError(t, err)
	require.Equal(t, shape.TagRecord, d.Tag)

	got, err := cast.As("abc", d, noOpts)
	require.NoError(t, err)
	assert.Equal(t, credential{Value: "abc"}, got)
}

func TestStructFromMap(t *testing.T) {
	t.Parallel()

	d, err := resolve.TypeFor[endpoint]()
	require.NoError(t, err)

	raw := map[string]any{
		"Host": "db",
		"Port": "5432",
		"Tags": []string{"primary", "eu"},
	}

	got, err := cast.As(raw, d, noOpts)
	require.NoError(t, err)
	assert.Equal(t, endpoint{Host: "db", Port: 5432, Tags: []string{"primary", "eu"}}, got)
}

func TestStructPartialMap(t *testing.T) {
	t.Parallel()

	d, err := resolve.TypeFor[endpoint]()
	require.NoError(t, err)

	got, err := cast.As(map[string]string{"Host": "db"}, d, noOpts)
	require.NoError(t, err)
	assert.Equal(t, endpoint{Host: "db"}, got)
}

func TestStructUnknownField(t *testing.T) {
	t.Parallel()

	d, err := resolve.TypeFor[endpoint]()
	require.NoError(t, err)

	_, err = cast.As(map[string]string{"Nope": "x"}, d, noOpts)
	require.Error(t, err)

	var conErr *cast.ConstructError
	require.ErrorAs(t, err, &conErr)
	assert.ErrorContains(t, err, "unknown field")
}

func TestStructScalarNeedsSingleField(t *testing.T) {
	t.Parallel()

	d, err := resolve.TypeFor[endpoint]()
	require.NoError(t, err)

	_, err = cast.As("abc", d, noOpts)
	require.Error(t, err)

	var conErr *cast.ConstructError
	assert.ErrorAs(t, err, &conErr)
}

func TestNestedStructField(t *testing.T) {
	t.Parallel()

	type service struct {
		Name string
		Cred credential
	}

	d, err := resolve.TypeFor[service]()
	require.NoError(t, err)

	got, err := cast.As(map[string]any{"Name": "api", "Cred": "s3cr3t"}, d, noOpts)
	require.NoError(t, err)
	assert.Equal(t, service{Name: "api", Cred: credential{Value: "s3cr3t"}}, got)
}

func TestPointerField(t *testing.T) {
	t.Parallel()

	type config struct {
		Limit *int
	}

	d, err := resolve.TypeFor[config]()
	require.NoError(t, err)

	got, err := cast.As(map[string]string{"Limit": "10"}, d, noOpts)
	require.NoError(t, err)

	cfg, ok := got.(config)
	require.True(t, ok)
	require.NotNil(t, cfg.Limit)
	assert.Equal(t, 10, *cfg.Limit)

	got, err = cast.As(map[string]any{"Limit": nil}, d, noOpts)
	require.NoError(t, err)
	assert.Nil(t, got.(config).Limit)
}
