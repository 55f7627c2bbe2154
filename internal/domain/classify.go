package domain

import (
	"math"
	"sort"
)

// Family names used as substitution targets.
const (
	FamilyKorean = "Apple SD Gothic Neo"
	FamilyLatin  = "SF Pro"
)

// DefaultStyle is returned when no breakpoint matches a weight.
const DefaultStyle = "Regular"

// breakpoint maps weights up to and including max onto a style name.
type breakpoint struct {
	max   float64
	style string
}

// StyleTable is the weight classification for one script.
type StyleTable struct {
	Family string
	// Tracked reports whether letter spacing from the tracking table applies.
	Tracked     bool
	breakpoints []breakpoint
}

// Style returns the style of the first breakpoint whose bound is >= weight.
func (t StyleTable) Style(weight float64) string {
	i := sort.Search(len(t.breakpoints), func(i int) bool {
		return t.breakpoints[i].max >= weight
	})
	if i == len(t.breakpoints) {
		return DefaultStyle
	}
	return t.breakpoints[i].style
}

var styleTables = map[Script]StyleTable{
	ScriptKorean: {
		Family: FamilyKorean,
		breakpoints: []breakpoint{
			{149, "Thin"},
			{249, "UltraLight"},
			{349, "Light"},
			{449, "Regular"},
			{549, "Medium"},
			{649, "SemiBold"},
			{749, "Bold"},
			{849, "ExtraBold"},
			{math.Inf(1), "Heavy"},
		},
	},
	ScriptLatin: {
		Family:  FamilyLatin,
		Tracked: true,
		breakpoints: []breakpoint{
			{149, "Ultralight"},
			{249, "Thin"},
			{349, "Light"},
			{449, "Regular"},
			{549, "Medium"},
			{649, "Semibold"},
			{749, "Bold"},
			{849, "Heavy"},
			{math.Inf(1), "Black"},
		},
	},
}

// TableFor returns the classification table of a script.
// Unknown scripts use the Latin table.
func TableFor(s Script) StyleTable {
	if t, ok := styleTables[s]; ok {
		return t
	}
	return styleTables[ScriptLatin]
}

// Classify maps a font weight and script onto the target font face.
// Weights are not validated; values above the last finite bound fall into the
// last bucket and NaN yields DefaultStyle.
func Classify(weight float64, s Script) FontSpec {
	t := TableFor(s)
	return FontSpec{Family: t.Family, Style: t.Style(weight)}
}
