package docfile

import (
	"fmt"
	"sync"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// Defaults for characters without an explicit style.
var (
	DefaultFont   = domain.FontSpec{Family: "Inter", Style: "Regular"}
	DefaultWeight = 400.0
	DefaultSize   = 12.0
)

// Document is an in-memory document built from a File.
// It implements ports.Document.
type Document struct {
	mu        sync.RWMutex
	name      string
	roots     []ports.Node
	index     map[string]ports.Node
	texts     []*TextNode
	selection []string
}

// New validates f and builds a Document from it.
func New(f *File) (*Document, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	d := &Document{
		name:      f.Name,
		index:     make(map[string]ports.Node),
		selection: append([]string(nil), f.Selection...),
	}
	for _, n := range f.Nodes {
		d.roots = append(d.roots, d.build(n))
	}
	return d, nil
}

func (d *Document) build(n Node) ports.Node {
	base := baseNode{
		id:      n.ID,
		name:    n.Name,
		typ:     ports.NodeType(n.Type),
		visible: n.Visible == nil || *n.Visible,
		locked:  n.Locked,
		removed: n.Removed,
	}

	var node ports.Node
	switch {
	case base.typ == ports.TypeText:
		t := newTextNode(base, n.Characters, n.Styles)
		d.texts = append(d.texts, t)
		node = t
	case isContainer(base.typ):
		c := &ContainerNode{baseNode: base}
		for _, child := range n.Children {
			c.children = append(c.children, d.build(child))
		}
		node = c
	default:
		node = &ShapeNode{baseNode: base}
	}
	d.index[n.ID] = node
	return node
}

// Name returns the document name.
func (d *Document) Name() string {
	return d.name
}

func (d *Document) lookup(id string) (ports.Node, bool) {
	n, ok := d.index[id]
	return n, ok
}

// Select replaces the stored selection. Every id must exist.
func (d *Document) Select(ids []string) error {
	for _, id := range ids {
		if _, ok := d.index[id]; !ok {
			return fmt.Errorf("select: unknown node id %q", id)
		}
	}
	d.mu.Lock()
	d.selection = append([]string(nil), ids...)
	d.mu.Unlock()
	return nil
}

// Selection returns the selected nodes in selection order.
func (d *Document) Selection() []ports.Node {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]ports.Node, 0, len(d.selection))
	for _, id := range d.selection {
		out = append(out, d.index[id])
	}
	return out
}

// TextNodes returns every text node of the document in document order.
func (d *Document) TextNodes() []ports.TextNode {
	out := make([]ports.TextNode, 0, len(d.texts))
	for _, t := range d.texts {
		out = append(out, t)
	}
	return out
}

// Export converts the document back into a File. Consecutive characters with
// identical styles are written as one run.
func (d *Document) Export() *File {
	d.mu.RLock()
	f := &File{
		Name:      d.name,
		Selection: append([]string(nil), d.selection...),
	}
	d.mu.RUnlock()

	for _, n := range d.roots {
		f.Nodes = append(f.Nodes, export(n))
	}
	return f
}

func export(n ports.Node) Node {
	out := Node{
		ID:      n.ID(),
		Type:    string(n.Type()),
		Name:    n.Name(),
		Locked:  n.Locked(),
		Removed: n.Removed(),
	}
	if !n.Visible() {
		hidden := false
		out.Visible = &hidden
	}

	switch v := n.(type) {
	case *TextNode:
		out.Characters, out.Styles = v.runs()
	case *ContainerNode:
		for _, c := range v.children {
			out.Children = append(out.Children, export(c))
		}
	}
	return out
}

type baseNode struct {
	id      string
	name    string
	typ     ports.NodeType
	visible bool
	locked  bool
	removed bool
}

func (n *baseNode) ID() string           { return n.id }
func (n *baseNode) Name() string         { return n.name }
func (n *baseNode) Type() ports.NodeType { return n.typ }
func (n *baseNode) Visible() bool        { return n.visible }
func (n *baseNode) Locked() bool         { return n.locked }
func (n *baseNode) Removed() bool        { return n.removed }

// ContainerNode is a node whose content is its children.
type ContainerNode struct {
	baseNode
	children []ports.Node
}

// Children returns the child nodes in document order.
func (n *ContainerNode) Children() []ports.Node {
	return n.children
}

// ShapeNode is a node with neither characters nor children.
type ShapeNode struct {
	baseNode
}

var (
	_ ports.Document  = (*Document)(nil)
	_ ports.Container = (*ContainerNode)(nil)
	_ ports.TextNode  = (*TextNode)(nil)
	_ ports.Node      = (*ShapeNode)(nil)
)
