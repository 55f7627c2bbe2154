package docfile

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/multierr"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// Validate checks f and reports every problem found, not just the first.
func Validate(f *File) error {
	v := validator{ids: make(map[string]string)}
	for i := range f.Nodes {
		v.node(&f.Nodes[i], fmt.Sprintf("nodes[%d]", i))
	}
	for _, id := range f.Selection {
		if _, ok := v.ids[id]; !ok {
			v.errorf("selection: unknown node id %q", id)
		}
	}
	if v.err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidDocument, v.err)
	}
	return nil
}

type validator struct {
	ids map[string]string
	err error
}

func (v *validator) errorf(format string, args ...interface{}) {
	v.err = multierr.Append(v.err, fmt.Errorf(format, args...))
}

func (v *validator) node(n *Node, path string) {
	switch prev, dup := v.ids[n.ID]; {
	case n.ID == "":
		v.errorf("%s: missing id", path)
	case dup:
		v.errorf("%s: duplicate id %q (first at %s)", path, n.ID, prev)
	default:
		v.ids[n.ID] = path
	}

	typ := ports.NodeType(n.Type)
	if !knownType(typ) {
		v.errorf("%s: unknown node type %q", path, n.Type)
	}

	if typ == ports.TypeText {
		v.text(n, path)
	} else {
		if n.Characters != "" || len(n.Styles) > 0 {
			v.errorf("%s: characters and styles are only allowed on TEXT nodes", path)
		}
		if len(n.Children) > 0 && knownType(typ) && !isContainer(typ) {
			v.errorf("%s: %s nodes cannot have children", path, n.Type)
		}
	}

	for i := range n.Children {
		v.node(&n.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
	}
}

func (v *validator) text(n *Node, path string) {
	if len(n.Children) > 0 {
		v.errorf("%s: TEXT nodes cannot have children", path)
	}
	if !utf8.ValidString(n.Characters) {
		v.errorf("%s: characters are not valid UTF-8", path)
	}
	length := utf8.RuneCountInString(n.Characters)
	for i, s := range n.Styles {
		if s.Start < 0 || s.End > length || s.Start >= s.End {
			v.errorf("%s.styles[%d]: range [%d,%d) outside characters [0,%d)", path, i, s.Start, s.End, length)
		}
		if s.LetterSpacing != nil && !domain.Unit(s.LetterSpacing.Unit).Valid() {
			v.errorf("%s.styles[%d]: unknown letter spacing unit %q", path, i, s.LetterSpacing.Unit)
		}
		if s.Weight < 0 || s.Size < 0 {
			v.errorf("%s.styles[%d]: weight and size must not be negative", path, i)
		}
	}
}
