package app

import (
	"sync"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// Phase represents the lifecycle phase of a conversion run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidatingSelection
	PhasePreloading
	PhaseProcessing
	PhaseReporting
	PhaseDone
	PhaseAborted
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseValidatingSelection:
		return "ValidatingSelection"
	case PhasePreloading:
		return "Preloading"
	case PhaseProcessing:
		return "Processing"
	case PhaseReporting:
		return "Reporting"
	case PhaseDone:
		return "Done"
	case PhaseAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Active reports whether a run is in progress in this phase.
func (p Phase) Active() bool {
	switch p {
	case PhaseValidatingSelection, PhasePreloading, PhaseProcessing, PhaseReporting:
		return true
	default:
		return false
	}
}

// Lifecycle manages the phase machine of a run.
type Lifecycle struct {
	mu           sync.RWMutex
	phase        Phase
	logger       ports.Logger
	eventEmitter EventEmitter
}

// EventEmitter is called when the run phase changes.
type EventEmitter interface {
	OnPhaseChange(previous, current Phase, reason string)
}

// NewLifecycle creates a new lifecycle in PhaseIdle.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		phase:        PhaseIdle,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() Phase {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.phase
}

// Begin starts a new run. It fails with domain.ErrRunInProgress while a run is active.
func (l *Lifecycle) Begin(reason string) error {
	err := l.TransitionTo(PhaseValidatingSelection, reason)
	if err != nil && l.Phase().Active() {
		return domain.ErrRunInProgress
	}
	return err
}

// TransitionTo attempts to move to a new phase.
// Returns domain.ErrInvalidTransition if the transition is not valid.
func (l *Lifecycle) TransitionTo(next Phase, reason string) error {
	l.mu.Lock()
	prev := l.phase

	if !validTransition(prev, next) {
		l.mu.Unlock()
		return domain.ErrInvalidTransition
	}

	l.phase = next
	l.mu.Unlock()

	// Emit event outside of lock
	if l.eventEmitter != nil {
		l.eventEmitter.OnPhaseChange(prev, next, reason)
	}

	l.logger.Debug("phase transition",
		ports.String("from", prev.String()),
		ports.String("to", next.String()),
		ports.String("reason", reason),
	)

	return nil
}

func validTransition(from, to Phase) bool {
	switch from {
	case PhaseIdle, PhaseDone, PhaseAborted:
		return to == PhaseValidatingSelection
	case PhaseValidatingSelection:
		return to == PhasePreloading || to == PhaseDone || to == PhaseAborted
	case PhasePreloading:
		return to == PhaseProcessing || to == PhaseAborted
	case PhaseProcessing:
		return to == PhaseReporting || to == PhaseAborted
	case PhaseReporting:
		return to == PhaseDone || to == PhaseAborted
	}
	return false
}
