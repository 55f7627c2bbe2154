package docfile

import (
	"fmt"
	"sync"

	"github.com/bft-labs/sftype/internal/domain"
)

type charStyle struct {
	font    domain.FontSpec
	weight  float64
	size    float64
	spacing *domain.LetterSpacing
}

func (s charStyle) equal(o charStyle) bool {
	if s.font != o.font || s.weight != o.weight || s.size != o.size {
		return false
	}
	if s.spacing == nil || o.spacing == nil {
		return s.spacing == nil && o.spacing == nil
	}
	return *s.spacing == *o.spacing
}

// TextNode is a text leaf with one style per character.
// It is safe for concurrent use.
type TextNode struct {
	baseNode

	mu     sync.RWMutex
	chars  []rune
	styles []charStyle
}

func newTextNode(base baseNode, characters string, runs []StyleRun) *TextNode {
	t := &TextNode{baseNode: base, chars: []rune(characters)}
	t.styles = make([]charStyle, len(t.chars))
	for i := range t.styles {
		t.styles[i] = charStyle{font: DefaultFont, weight: DefaultWeight, size: DefaultSize}
	}
	// later runs win where they overlap
	for _, r := range runs {
		s := charStyle{font: DefaultFont, weight: DefaultWeight, size: DefaultSize}
		if r.Family != "" {
			s.font.Family = r.Family
		}
		if r.Style != "" {
			s.font.Style = r.Style
		}
		if r.Weight != 0 {
			s.weight = r.Weight
		}
		if r.Size != 0 {
			s.size = r.Size
		}
		if r.LetterSpacing != nil {
			s.spacing = &domain.LetterSpacing{Value: r.LetterSpacing.Value, Unit: domain.Unit(r.LetterSpacing.Unit)}
		}
		for i := r.Start; i < r.End; i++ {
			t.styles[i] = s
		}
	}
	return t
}

// Characters returns the text as runes.
func (t *TextNode) Characters() []rune {
	return t.chars
}

func (t *TextNode) check(start, end int) error {
	if start < 0 || end > len(t.chars) || start >= end {
		return fmt.Errorf("node %q: range [%d,%d) outside [0,%d)", t.id, start, end, len(t.chars))
	}
	return nil
}

// uniform returns the value of get over [start, end), or domain.ErrMixed.
func uniform[T comparable](t *TextNode, start, end int, get func(charStyle) T) (T, error) {
	var zero T
	t.mu.RLock()
	defer t.mu.RUnlock()

	if err := t.check(start, end); err != nil {
		return zero, err
	}
	v := get(t.styles[start])
	for i := start + 1; i < end; i++ {
		if get(t.styles[i]) != v {
			return zero, domain.ErrMixed
		}
	}
	return v, nil
}

// RangeFontName returns the font of [start, end).
func (t *TextNode) RangeFontName(start, end int) (domain.FontSpec, error) {
	return uniform(t, start, end, func(s charStyle) domain.FontSpec { return s.font })
}

// RangeFontWeight returns the font weight of [start, end).
func (t *TextNode) RangeFontWeight(start, end int) (float64, error) {
	return uniform(t, start, end, func(s charStyle) float64 { return s.weight })
}

// RangeFontSize returns the font size of [start, end).
func (t *TextNode) RangeFontSize(start, end int) (float64, error) {
	return uniform(t, start, end, func(s charStyle) float64 { return s.size })
}

// RangeLetterSpacing returns the letter spacing of [start, end); ok is false
// when none is set.
func (t *TextNode) RangeLetterSpacing(start, end int) (spacing domain.LetterSpacing, ok bool, err error) {
	v, err := uniform(t, start, end, func(s charStyle) domain.LetterSpacing {
		if s.spacing == nil {
			return domain.LetterSpacing{}
		}
		return *s.spacing
	})
	if err != nil {
		return domain.LetterSpacing{}, false, err
	}
	return v, v.Unit != "", nil
}

// SetRangeFontName sets the font of [start, end).
func (t *TextNode) SetRangeFontName(start, end int, font domain.FontSpec) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.check(start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		t.styles[i].font = font
	}
	return nil
}

// SetRangeLetterSpacing sets the letter spacing of [start, end).
func (t *TextNode) SetRangeLetterSpacing(start, end int, spacing domain.LetterSpacing) error {
	if !spacing.Unit.Valid() {
		return fmt.Errorf("node %q: unknown letter spacing unit %q", t.id, spacing.Unit)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.check(start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		s := spacing
		t.styles[i].spacing = &s
	}
	return nil
}

// runs returns the characters and their coalesced style runs.
func (t *TextNode) runs() (string, []StyleRun) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []StyleRun
	for start := 0; start < len(t.styles); {
		end := start + 1
		for end < len(t.styles) && t.styles[end].equal(t.styles[start]) {
			end++
		}
		s := t.styles[start]
		run := StyleRun{
			Start:  start,
			End:    end,
			Family: s.font.Family,
			Style:  s.font.Style,
			Weight: s.weight,
			Size:   s.size,
		}
		if s.spacing != nil {
			run.LetterSpacing = &Spacing{Value: s.spacing.Value, Unit: string(s.spacing.Unit)}
		}
		out = append(out, run)
		start = end
	}
	return string(t.chars), out
}
