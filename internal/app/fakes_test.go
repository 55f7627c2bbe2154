package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// fakeStyle is the per-character style of a fakeText.
type fakeStyle struct {
	font    domain.FontSpec
	weight  float64
	size    float64
	spacing *domain.LetterSpacing
	mixed   bool
}

// fakeText is an in-memory text leaf.
type fakeText struct {
	id      string
	hidden  bool
	locked  bool
	removed bool
	chars   []rune

	mu      sync.Mutex
	styles  []fakeStyle
	setErr  error
	setCall int
	fontErr error
}

func newText(id, text string, font domain.FontSpec, weight, size float64) *fakeText {
	chars := []rune(text)
	styles := make([]fakeStyle, len(chars))
	for i := range styles {
		styles[i] = fakeStyle{font: font, weight: weight, size: size}
	}
	return &fakeText{id: id, chars: chars, styles: styles}
}

func (n *fakeText) ID() string           { return n.id }
func (n *fakeText) Name() string         { return n.id }
func (n *fakeText) Type() ports.NodeType { return ports.TypeText }
func (n *fakeText) Visible() bool        { return !n.hidden }
func (n *fakeText) Locked() bool         { return n.locked }
func (n *fakeText) Removed() bool        { return n.removed }
func (n *fakeText) Characters() []rune   { return n.chars }

func (n *fakeText) check(start, end int) error {
	if start < 0 || end > len(n.chars) || start >= end {
		return fmt.Errorf("range [%d,%d) out of bounds", start, end)
	}
	return nil
}

func (n *fakeText) RangeFontName(start, end int) (domain.FontSpec, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.check(start, end); err != nil {
		return domain.FontSpec{}, err
	}
	if n.fontErr != nil {
		return domain.FontSpec{}, n.fontErr
	}
	if n.styles[start].mixed {
		return domain.FontSpec{}, domain.ErrMixed
	}
	return n.styles[start].font, nil
}

func (n *fakeText) RangeFontWeight(start, end int) (float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.check(start, end); err != nil {
		return 0, err
	}
	return n.styles[start].weight, nil
}

func (n *fakeText) RangeFontSize(start, end int) (float64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.check(start, end); err != nil {
		return 0, err
	}
	return n.styles[start].size, nil
}

func (n *fakeText) SetRangeFontName(start, end int, font domain.FontSpec) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setCall++
	if n.setErr != nil {
		return n.setErr
	}
	if err := n.check(start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		n.styles[i].font = font
		n.styles[i].mixed = false
	}
	return nil
}

func (n *fakeText) SetRangeLetterSpacing(start, end int, spacing domain.LetterSpacing) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err := n.check(start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		s := spacing
		n.styles[i].spacing = &s
	}
	return nil
}

func (n *fakeText) style(i int) fakeStyle {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.styles[i]
}

// fakeFrame is an in-memory container.
type fakeFrame struct {
	id       string
	hidden   bool
	locked   bool
	children []ports.Node
}

func newFrame(id string, children ...ports.Node) *fakeFrame {
	return &fakeFrame{id: id, children: children}
}

func (n *fakeFrame) ID() string           { return n.id }
func (n *fakeFrame) Name() string         { return n.id }
func (n *fakeFrame) Type() ports.NodeType { return "FRAME" }
func (n *fakeFrame) Visible() bool        { return !n.hidden }
func (n *fakeFrame) Locked() bool         { return n.locked }
func (n *fakeFrame) Removed() bool        { return false }
func (n *fakeFrame) Children() []ports.Node {
	return n.children
}

// fakeShape is a node that is neither text nor container.
type fakeShape struct{ id string }

func (n fakeShape) ID() string           { return n.id }
func (n fakeShape) Name() string         { return n.id }
func (n fakeShape) Type() ports.NodeType { return "RECTANGLE" }
func (n fakeShape) Visible() bool        { return true }
func (n fakeShape) Locked() bool         { return false }
func (n fakeShape) Removed() bool        { return false }

// fakeDocument implements ports.Document.
type fakeDocument struct {
	selection []ports.Node
	texts     []ports.TextNode
}

func (d *fakeDocument) Selection() []ports.Node     { return d.selection }
func (d *fakeDocument) TextNodes() []ports.TextNode { return d.texts }

// fakeLoader implements ports.FontLoader. Every family loads unless listed as missing.
type fakeLoader struct {
	mu sync.Mutex
	// missingFamilies fail regardless of style.
	missingFamilies map[string]bool
	loads           []domain.FontSpec
}

func newLoader(missing ...string) *fakeLoader {
	l := &fakeLoader{missingFamilies: make(map[string]bool)}
	for _, f := range missing {
		l.missingFamilies[f] = true
	}
	return l
}

func (l *fakeLoader) Load(ctx context.Context, font domain.FontSpec) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loads = append(l.loads, font)
	if err := ctx.Err(); err != nil {
		return err
	}
	if l.missingFamilies[font.Family] {
		return domain.ErrFontNotInstalled
	}
	return nil
}

func (l *fakeLoader) loadCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.loads)
}

// recordingNotifier implements ports.Notifier.
type recordingNotifier struct {
	mu       sync.Mutex
	notices  []string
	timeouts []time.Duration
	closed   []string
}

func (n *recordingNotifier) Notify(message string, timeout time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, message)
	n.timeouts = append(n.timeouts, timeout)
}

func (n *recordingNotifier) Close(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = append(n.closed, message)
}

var (
	interRegular = domain.FontSpec{Family: "Inter", Style: "Regular"}
	interBold    = domain.FontSpec{Family: "Inter", Style: "Bold"}
)
