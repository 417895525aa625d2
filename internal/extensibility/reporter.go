// Package extensibility provides default and wrapping implementations of the
// core component interfaces: reporters, filters, and source resolvers.
package extensibility

import (
	"log"
	"sync"
	"time"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
)

// CollectingReporter is the default Reporter: it appends violations to an
// internal slice. Thread-safe so one collector can back several inspectors.
type CollectingReporter struct {
	mu         sync.Mutex
	violations []primitives.Violation
}

// NewCollectingReporter creates an empty CollectingReporter.
func NewCollectingReporter() *CollectingReporter {
	return &CollectingReporter{}
}

// Report records the violation.
func (r *CollectingReporter) Report(v primitives.Violation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.violations = append(r.violations, v)
	return nil
}

// Violations returns a snapshot copy of everything reported so far.
func (r *CollectingReporter) Violations() []primitives.Violation {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]primitives.Violation, len(r.violations))
	copy(snapshot, r.violations)
	return snapshot
}

// Len returns the number of reported violations.
func (r *CollectingReporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.violations)
}

// LoggingReporter wraps a Reporter and adds logging around delivery.
type LoggingReporter struct {
	inner core.Reporter
}

// NewLoggingReporter creates a new LoggingReporter wrapping the given inner reporter.
func NewLoggingReporter(inner core.Reporter) *LoggingReporter {
	return &LoggingReporter{inner: inner}
}

// Report logs before and after delegating to the inner reporter.
func (r *LoggingReporter) Report(v primitives.Violation) error {
	log.Printf("LOG: Reporting %s at %s", v.Rule, v.Pos.String())
	start := time.Now()
	err := r.inner.Report(v)
	log.Printf("LOG: Reported %s in %v: %v", v.Rule, time.Since(start), err)
	return err
}
