package domain

import "fmt"

// FontSpec identifies a concrete font face.
// It is comparable and is used both as a map key and as a mutation payload.
type FontSpec struct {
	Family string
	Style  string
}

func (f FontSpec) String() string {
	return fmt.Sprintf("%q %q", f.Family, f.Style)
}

// IsZero reports whether the spec has neither family nor style.
func (f FontSpec) IsZero() bool {
	return f.Family == "" && f.Style == ""
}

// Unit is the unit of a letter spacing value.
type Unit string

const (
	UnitPixels  Unit = "PIXELS"
	UnitPercent Unit = "PERCENT"
)

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == UnitPixels || u == UnitPercent
}

// LetterSpacing is a per-character horizontal spacing adjustment.
type LetterSpacing struct {
	Value float64
	Unit  Unit
}

// Pixels returns a letter spacing of v pixels.
func Pixels(v float64) LetterSpacing {
	return LetterSpacing{Value: v, Unit: UnitPixels}
}
