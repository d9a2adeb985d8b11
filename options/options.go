// Package options defines the per-call toggles of the cast engine.
package options

// CastOptions tunes scalar coercion. The zero value is the default
// behavior: strict base-10 integer parsing and non-semantic booleans.
// Options are passed through every recursive cast call unchanged.
type CastOptions struct {
	// TransparentInt allows an integer-targeted string to parse through
	// floating point and truncate toward zero ("4.22e3" becomes 4220).
	TransparentInt bool
	// SemanticBool maps recognized falsy string tokens ("", "0", "false",
	// "no", "off") to false. Without it any non-empty string is true, so
	// the string "false" converts to true.
	SemanticBool bool
}
