package domain

import (
	"sort"

	"github.com/maruel/natural"
)

// FontPreloadSet collects the fonts already used in a document, deduplicated
// by value.
type FontPreloadSet struct {
	fonts map[FontSpec]struct{}
}

// NewFontPreloadSet creates an empty set.
func NewFontPreloadSet() *FontPreloadSet {
	return &FontPreloadSet{fonts: make(map[FontSpec]struct{})}
}

// Add inserts spec. Zero specs are ignored.
func (s *FontPreloadSet) Add(spec FontSpec) {
	if spec.IsZero() {
		return
	}
	s.fonts[spec] = struct{}{}
}

// Len returns the number of distinct fonts.
func (s *FontPreloadSet) Len() int {
	return len(s.fonts)
}

// Sorted returns the fonts ordered naturally by family, then style.
func (s *FontPreloadSet) Sorted() []FontSpec {
	out := make([]FontSpec, 0, len(s.fonts))
	for f := range s.fonts {
		out = append(out, f)
	}
	SortFonts(out)
	return out
}

// SortFonts orders fonts naturally by family, then style.
func SortFonts(fonts []FontSpec) {
	sort.Slice(fonts, func(i, j int) bool {
		if fonts[i].Family != fonts[j].Family {
			return natural.Less(fonts[i].Family, fonts[j].Family)
		}
		return natural.Less(fonts[i].Style, fonts[j].Style)
	})
}
