package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// Eligible returns node as a text leaf if it is visible, unlocked and not removed.
func Eligible(node ports.Node) (ports.TextNode, bool) {
	leaf, ok := node.(ports.TextNode)
	if !ok || leaf.Type() != ports.TypeText {
		return nil, false
	}
	if !leaf.Visible() || leaf.Locked() || leaf.Removed() {
		return nil, false
	}
	return leaf, true
}

// LeafProcessor rewrites the fonts and tracking of one text leaf.
type LeafProcessor struct {
	fonts  ports.FontLoader
	logger ports.Logger
	limit  int
}

// NewLeafProcessor creates a processor. A positive limit caps the number of
// characters processed at once; zero or less launches every character together.
func NewLeafProcessor(fonts ports.FontLoader, logger ports.Logger, limit int) *LeafProcessor {
	return &LeafProcessor{
		fonts:  fonts,
		logger: logger,
		limit:  limit,
	}
}

// Process fans out over the characters of leaf and joins them. The first
// failure cancels the remaining characters and is returned; characters that
// already changed stay changed.
func (p *LeafProcessor) Process(ctx context.Context, leaf ports.TextNode, counters *domain.RunCounters) error {
	counters.LayerStarted()

	chars := leaf.Characters()
	g, gctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}
	for i, r := range chars {
		g.Go(func() error {
			return p.processChar(gctx, leaf, i, r, counters)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("layer %q: %w", leaf.ID(), err)
	}

	counters.LayerProcessed()
	p.logger.Debug("layer processed",
		ports.String("layer", leaf.ID()),
		ports.Int("characters", len(chars)),
	)
	return nil
}

func (p *LeafProcessor) processChar(ctx context.Context, leaf ports.TextNode, i int, r rune, counters *domain.RunCounters) error {
	script := domain.ScriptOf(r)
	table := domain.TableFor(script)

	weight, err := leaf.RangeFontWeight(i, i+1)
	if err != nil {
		return fmt.Errorf("read weight at %d: %w", i, err)
	}
	target := domain.Classify(weight, script)

	current, err := leaf.RangeFontName(i, i+1)
	if err != nil && !errors.Is(err, domain.ErrMixed) {
		return fmt.Errorf("read font at %d: %w", i, err)
	}
	if err != nil || current != target {
		if err := p.fonts.Load(ctx, target); err != nil {
			return &domain.FontLoadError{Spec: target, Phase: domain.PhaseSubstitution, Err: err}
		}
		if err := leaf.SetRangeFontName(i, i+1, target); err != nil {
			return fmt.Errorf("set font at %d: %w", i, err)
		}
		counters.CharacterChanged()
	}

	if !table.Tracked {
		return nil
	}
	size, err := leaf.RangeFontSize(i, i+1)
	if err != nil {
		return fmt.Errorf("read size at %d: %w", i, err)
	}
	if tracking, ok := domain.TrackingFor(size); ok {
		if err := leaf.SetRangeLetterSpacing(i, i+1, domain.Pixels(tracking)); err != nil {
			return fmt.Errorf("set letter spacing at %d: %w", i, err)
		}
	}
	return nil
}
