package app

import (
	"context"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// TreeWalker visits a root node and its descendants depth first.
type TreeWalker struct {
	leaves *LeafProcessor
}

// NewTreeWalker creates a walker delegating text leaves to leaves.
func NewTreeWalker(leaves *LeafProcessor) *TreeWalker {
	return &TreeWalker{leaves: leaves}
}

// Walk processes node if it is an eligible text leaf, otherwise descends into
// its children one subtree at a time. Nodes that are neither are skipped.
func (w *TreeWalker) Walk(ctx context.Context, node ports.Node, counters *domain.RunCounters) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if leaf, ok := Eligible(node); ok {
		return w.leaves.Process(ctx, leaf, counters)
	}

	container, ok := node.(ports.Container)
	if !ok {
		return nil
	}
	for _, child := range container.Children() {
		if err := w.Walk(ctx, child, counters); err != nil {
			return err
		}
	}
	return nil
}
