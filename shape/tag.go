package shape

//go:generate go tool stringer -type=TagEnum -output=tag_string.go

type TagEnum int

const (
	_ TagEnum = iota // skip zero value, use it as a default (invalid) value for TagEnum

	TagAny
	TagNone
	TagScalar
	TagUnion
	TagLiteral
	TagList
	TagTupleFixed
	TagTupleVariadic
	TagMapping
	TagAnnotated
	TagRecord
	TagEtc // terminal variadic marker, never appears in a normalized descriptor

	// TagTotal is a constant that represents the total number of tags defined
	TagTotal = int(iota)
)
