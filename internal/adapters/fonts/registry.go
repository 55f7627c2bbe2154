// Package fonts provides a ports.FontLoader backed by font files found on
// disk and faces declared in configuration.
package fonts

import (
	"context"
	"fmt"
	"sync"

	"github.com/bft-labs/sftype/internal/domain"
	"github.com/bft-labs/sftype/internal/ports"
)

// Stats reports load activity.
type Stats struct {
	Available int // faces known to the registry
	Loaded    int // distinct faces loaded at least once
	Requests  int // Load calls, including repeats and misses
	Misses    int // Load calls for unknown faces
}

// Registry is a font loader over a fixed set of known faces.
// It is safe for concurrent use.
type Registry struct {
	logger ports.Logger

	mu        sync.RWMutex
	available map[domain.FontSpec]string // face -> source ("" for declared faces)
	loaded    map[domain.FontSpec]struct{}
	requests  int
	misses    int
}

// NewRegistry creates a registry knowing the given faces.
func NewRegistry(logger ports.Logger, specs ...domain.FontSpec) *Registry {
	r := &Registry{
		logger:    logger,
		available: make(map[domain.FontSpec]string),
		loaded:    make(map[domain.FontSpec]struct{}),
	}
	for _, s := range specs {
		r.Add(s, "")
	}
	return r
}

// Add makes spec available. source names where the face was found.
func (r *Registry) Add(spec domain.FontSpec, source string) {
	if spec.IsZero() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.available[spec]; !ok || r.available[spec] == "" {
		r.available[spec] = source
	}
}

// Has reports whether spec is available.
func (r *Registry) Has(spec domain.FontSpec) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.available[spec]
	return ok
}

// Load makes spec usable. It returns an error wrapping
// domain.ErrFontNotInstalled when the face is unknown.
func (r *Registry) Load(ctx context.Context, spec domain.FontSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests++
	if _, ok := r.available[spec]; !ok {
		r.misses++
		return fmt.Errorf("load %s: %w", spec, domain.ErrFontNotInstalled)
	}
	if _, ok := r.loaded[spec]; !ok {
		r.loaded[spec] = struct{}{}
		r.logger.Debug("font loaded", ports.Any("font", spec), ports.String("source", r.available[spec]))
	}
	return nil
}

// Stats returns a snapshot of the load counters.
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{
		Available: len(r.available),
		Loaded:    len(r.loaded),
		Requests:  r.requests,
		Misses:    r.misses,
	}
}

// Face is an available font and where it came from.
type Face struct {
	Spec   domain.FontSpec
	Source string
}

// Fonts lists the available faces in natural order.
func (r *Registry) Fonts() []Face {
	r.mu.RLock()
	specs := make([]domain.FontSpec, 0, len(r.available))
	for s := range r.available {
		specs = append(specs, s)
	}
	r.mu.RUnlock()

	domain.SortFonts(specs)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Face, len(specs))
	for i, s := range specs {
		out[i] = Face{Spec: s, Source: r.available[s]}
	}
	return out
}

var _ ports.FontLoader = (*Registry)(nil)
