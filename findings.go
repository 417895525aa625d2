package immutalint

import (
	"sort"
	"sync"
	"time"
)

// Findings provides thread-safe accumulation of violations across files.
// It implements the engine's Reporter contract so several concurrent
// inspections can stream into one collector, and it assembles the final
// Report.
type Findings struct {
	mu         sync.RWMutex
	violations []Violation
	files      int
	started    time.Time
}

// NewFindings creates an empty collector stamped with the start time.
func NewFindings() *Findings {
	return &Findings{started: time.Now()}
}

// Report records a violation. Implements the engine Reporter contract.
func (f *Findings) Report(v Violation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.violations = append(f.violations, v)
	return nil
}

// FileDone records that one more file finished inspection.
func (f *Findings) FileDone() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files++
}

// Len returns the number of collected violations.
func (f *Findings) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.violations)
}

// All returns a position-sorted snapshot copy of the collected violations.
// Modifications to the returned slice do not affect the collector.
func (f *Findings) All() []Violation {
	f.mu.RLock()
	defer f.mu.RUnlock()
	snapshot := make([]Violation, len(f.violations))
	copy(snapshot, f.violations)
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Less(snapshot[j])
	})
	return snapshot
}

// Build assembles the aggregate Report: sorted violations, file count, and
// elapsed time since the collector was created.
func (f *Findings) Build() Report {
	f.mu.RLock()
	files := f.files
	started := f.started
	f.mu.RUnlock()

	report := Report{
		Files:      files,
		Violations: f.All(),
		Started:    started,
		Duration:   time.Since(started),
	}
	return report
}

// Reset drops everything collected so far. The start time is renewed.
func (f *Findings) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.violations = nil
	f.files = 0
	f.started = time.Now()
}
