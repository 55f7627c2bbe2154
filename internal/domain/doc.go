// Package domain contains the core domain entities and value objects for sftype.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (documents, font files, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [FontSpec]: A concrete font face (family and style)
//   - [LetterSpacing]: A per-character spacing adjustment
//   - [Script]: The script bucket a character is classified into
//   - [RunCounters]: Aggregated counters for one conversion run
//   - [FontPreloadSet]: Deduplicated fonts collected before any mutation
//
// # Lookup Tables
//
// The weight-to-style mapping ([Classify]) and the size-to-tracking mapping
// ([TrackingFor]) are ordered breakpoint tables. Both are total: every input
// yields a defined result.
package domain
