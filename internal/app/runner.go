package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// User-visible messages.
const (
	EmptySelectionMessage = "Please select one or more layers"
	StartedMessage        = "Execution started"
)

// EmptySelectionTimeout is the display hint for the empty selection message.
const EmptySelectionTimeout = 1500 * time.Millisecond

// RunnerConfig contains configuration for the run controller.
type RunnerConfig struct {
	// Concurrency caps per-leaf character workers. Zero means unlimited.
	Concurrency int
}

// Result describes a finished run.
type Result struct {
	RunID string
	// Phase is PhaseDone or PhaseAborted.
	Phase  Phase
	Counts domain.Counts
	// Message is the terminal message handed to the notifier.
	Message string
	// EmptySelection is set when the run ended early with nothing selected.
	EmptySelection bool
}

// Runner orchestrates one conversion run over a document.
type Runner struct {
	doc       ports.Document
	fonts     ports.FontLoader
	notifier  ports.Notifier
	logger    ports.Logger
	lifecycle *Lifecycle
	walker    *TreeWalker
}

// NewRunner creates a new runner with the given dependencies.
func NewRunner(
	config RunnerConfig,
	doc ports.Document,
	fonts ports.FontLoader,
	notifier ports.Notifier,
	logger ports.Logger,
	emitter EventEmitter,
) *Runner {
	return &Runner{
		doc:       doc,
		fonts:     fonts,
		notifier:  notifier,
		logger:    logger,
		lifecycle: NewLifecycle(logger, emitter),
		walker:    NewTreeWalker(NewLeafProcessor(fonts, logger, config.Concurrency)),
	}
}

// Run validates the selection, preloads the fonts in scope, rewrites every
// selected subtree and reports the outcome through the notifier.
// An empty selection is not an error. Any font or host failure aborts the run
// without rolling back changes already applied.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if err := r.lifecycle.Begin("run requested"); err != nil {
		return Result{}, err
	}

	res := Result{RunID: newRunID()}
	var counters domain.RunCounters

	selection := r.doc.Selection()
	if len(selection) == 0 {
		r.notifier.Notify(EmptySelectionMessage, EmptySelectionTimeout)
		r.notifier.Close("")
		res.EmptySelection = true
		res.Message = EmptySelectionMessage
		return r.finish(res, counters.Snapshot(), PhaseDone, "empty selection")
	}

	r.notifier.Notify(StartedMessage, 0)
	r.logger.Info("run started",
		ports.String("run_id", res.RunID),
		ports.Int("roots", len(selection)),
	)

	if err := r.lifecycle.TransitionTo(PhasePreloading, "selection ok"); err != nil {
		return res, err
	}
	if err := r.preload(ctx); err != nil {
		return r.abort(res, &counters, err)
	}

	if err := r.lifecycle.TransitionTo(PhaseProcessing, "fonts preloaded"); err != nil {
		return res, err
	}
	for _, root := range selection {
		if err := r.walker.Walk(ctx, root, &counters); err != nil {
			return r.abort(res, &counters, err)
		}
	}

	if err := r.lifecycle.TransitionTo(PhaseReporting, "walk complete"); err != nil {
		return res, err
	}
	counts := counters.Snapshot()
	res.Message = counts.Summary()
	r.notifier.Close(res.Message)
	r.logger.Info("run complete",
		ports.String("run_id", res.RunID),
		ports.Int("total_layers", counts.TotalLayers),
		ports.Int("processed_layers", counts.ProcessedLayers),
		ports.Int("changed_characters", counts.ChangedCharacters),
	)
	return r.finish(res, counts, PhaseDone, "reported")
}

// preload loads every font already used by text in the document scope, in
// natural order, stopping at the first failure.
func (r *Runner) preload(ctx context.Context) error {
	set := domain.NewFontPreloadSet()
	for _, node := range r.doc.TextNodes() {
		chars := node.Characters()
		for i := range chars {
			font, err := node.RangeFontName(i, i+1)
			if err != nil && !errors.Is(err, domain.ErrMixed) {
				return fmt.Errorf("read font of %q at %d: %w", node.ID(), i, err)
			}
			if err != nil {
				r.logger.Debug("skipping mixed font in preload",
					ports.String("layer", node.ID()),
					ports.Int("index", i),
					ports.Err(err),
				)
				continue
			}
			set.Add(font)
		}
	}

	r.logger.Debug("preloading fonts", ports.Int("fonts", set.Len()))
	for _, font := range set.Sorted() {
		if err := r.fonts.Load(ctx, font); err != nil {
			return &domain.FontLoadError{Spec: font, Phase: domain.PhasePreload, Err: err}
		}
	}
	return nil
}

func (r *Runner) abort(res Result, counters *domain.RunCounters, err error) (Result, error) {
	res.Message = userMessage(err)
	r.notifier.Close(res.Message)
	r.logger.Error("run aborted",
		ports.String("run_id", res.RunID),
		ports.Err(err),
	)
	res, ferr := r.finish(res, counters.Snapshot(), PhaseAborted, err.Error())
	if ferr != nil {
		r.logger.Error("abort transition failed", ports.Err(ferr))
		err = multierr.Append(err, ferr)
	}
	return res, err
}

func (r *Runner) finish(res Result, counts domain.Counts, phase Phase, reason string) (Result, error) {
	res.Counts = counts
	res.Phase = phase
	if err := r.lifecycle.TransitionTo(phase, reason); err != nil {
		return res, err
	}
	return res, nil
}

func userMessage(err error) string {
	var fle *domain.FontLoadError
	if errors.As(err, &fle) {
		return fle.UserMessage()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "Execution canceled"
	}
	return fmt.Sprintf("Execution failed: %v", err)
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
