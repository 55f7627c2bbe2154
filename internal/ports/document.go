package ports

import "github.com/bft-labs/sftype/internal/domain"

// NodeType is the host's node kind, e.g. "TEXT" or "FRAME".
type NodeType string

// TypeText marks nodes holding directly editable characters.
const TypeText NodeType = "TEXT"

// Node is a host-owned document node. The application never copies or owns
// the underlying structure; it reads and writes through these accessors only.
type Node interface {
	ID() string
	Name() string
	Type() NodeType
	Visible() bool
	Locked() bool
	Removed() bool
}

// Container is a node whose content is expressed through child nodes.
type Container interface {
	Node

	// Children returns the child nodes in the document's native order.
	Children() []Node
}

// TextNode is a node with character content and per-range style accessors.
// Ranges are half-open [start, end) rune indexes into Characters.
// Implementations must be safe for concurrent use on disjoint ranges.
type TextNode interface {
	Node

	Characters() []rune

	// RangeFontName returns domain.ErrMixed if the range uses more than one font.
	RangeFontName(start, end int) (domain.FontSpec, error)
	RangeFontWeight(start, end int) (float64, error)
	RangeFontSize(start, end int) (float64, error)

	SetRangeFontName(start, end int, font domain.FontSpec) error
	SetRangeLetterSpacing(start, end int, spacing domain.LetterSpacing) error
}

// Document is the host document scope of a run.
type Document interface {
	// Selection returns the selected root nodes in selection order.
	Selection() []Node

	// TextNodes returns every text node in the working scope, regardless of
	// selection, visibility or lock state.
	TextNodes() []TextNode
}
