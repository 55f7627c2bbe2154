package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the sftype domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrMixed is returned by range accessors when a range holds more than one value.
	ErrMixed = errors.New("sftype: mixed values in range")

	// ErrFontNotInstalled is returned by font loaders for faces they cannot provide.
	ErrFontNotInstalled = errors.New("sftype: font not installed")

	// ErrRunInProgress is returned when a run is started while another is active.
	ErrRunInProgress = errors.New("sftype: run in progress")

	// ErrInvalidTransition is returned when a run phase change is not allowed.
	ErrInvalidTransition = errors.New("sftype: invalid phase transition")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("sftype: invalid configuration")

	// ErrInvalidDocument is returned when a document fails validation.
	ErrInvalidDocument = errors.New("sftype: invalid document")
)

// LoadPhase tells where a font load was requested.
type LoadPhase int

const (
	PhasePreload LoadPhase = iota
	PhaseSubstitution
)

// String returns a human-readable representation of the phase.
func (p LoadPhase) String() string {
	switch p {
	case PhasePreload:
		return "preload"
	case PhaseSubstitution:
		return "substitution"
	default:
		return "unknown"
	}
}

// FontLoadError reports a font that could not be loaded. It is fatal for the run.
type FontLoadError struct {
	Spec  FontSpec
	Phase LoadPhase
	Err   error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("load %s font %s: %v", e.Phase, e.Spec, e.Err)
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// UserMessage is the notification shown when the run aborts on this error.
func (e *FontLoadError) UserMessage() string {
	return fmt.Sprintf("Failed to load fonts. Please check if the %s is installed and try again.", e.Spec.Family)
}
