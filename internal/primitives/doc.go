// Package primitives provides the foundational, zero-dependency data structures
// for the immutability rule engine.
//
// This package and all `internal/*` packages use ONLY the Go standard library.
// No external dependencies are permitted in the core engine to achieve:
// - Minimal binary size
// - Zero vendor bloat
// - Deterministic builds
// - Cheap embedding in other tools
//
// Core invariants:
// - Immutability after construction (Violation)
// - Stable violation ordering (file, then offset)
// - Source content is never modified
package primitives
