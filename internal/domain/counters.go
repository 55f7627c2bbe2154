package domain

import (
	"fmt"
	"sync/atomic"
)

// RunCounters aggregates the results of one run.
// Increments are safe from concurrent per-character workers.
type RunCounters struct {
	totalLayers       atomic.Int64
	processedLayers   atomic.Int64
	changedCharacters atomic.Int64
}

// LayerStarted records an eligible text leaf reached by the walk.
func (c *RunCounters) LayerStarted() { c.totalLayers.Add(1) }

// LayerProcessed records a leaf whose characters all completed.
func (c *RunCounters) LayerProcessed() { c.processedLayers.Add(1) }

// CharacterChanged records a successful font substitution.
func (c *RunCounters) CharacterChanged() { c.changedCharacters.Add(1) }

// Snapshot returns the current values.
func (c *RunCounters) Snapshot() Counts {
	return Counts{
		TotalLayers:       int(c.totalLayers.Load()),
		ProcessedLayers:   int(c.processedLayers.Load()),
		ChangedCharacters: int(c.changedCharacters.Load()),
	}
}

// Counts is a point-in-time copy of RunCounters.
type Counts struct {
	TotalLayers       int
	ProcessedLayers   int
	ChangedCharacters int
}

// Summary is the success message reported at the end of a run.
func (c Counts) Summary() string {
	return fmt.Sprintf("Layers changed: %d, Characters changed: %d", c.ProcessedLayers, c.ChangedCharacters)
}
