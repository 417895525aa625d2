package primitives

import (
	"sort"
	"time"
)

// Report aggregates the outcome of inspecting a set of files.
type Report struct {
	Files      int           `json:"files" yaml:"files"`
	Violations []Violation   `json:"violations" yaml:"violations"`
	Started    time.Time     `json:"started" yaml:"started"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates an empty report stamped with the start time.
func NewReport() Report {
	return Report{Started: time.Now()}
}

// Add appends violations and returns the report for chaining.
func (r *Report) Add(violations ...Violation) *Report {
	r.Violations = append(r.Violations, violations...)
	return r
}

// Sort orders violations by file, then offset, then rule ID.
// Sorting is stable so equal keys keep their reported order.
func (r *Report) Sort() {
	sort.SliceStable(r.Violations, func(i, j int) bool {
		return r.Violations[i].Less(r.Violations[j])
	})
}

// Counts returns the number of violations per severity.
func (r *Report) Counts() map[Severity]int {
	counts := make(map[Severity]int)
	for _, v := range r.Violations {
		counts[v.Severity]++
	}
	return counts
}

// ByRule returns violations grouped by rule ID.
// The returned map holds copies; modifying it does not affect the report.
func (r *Report) ByRule() map[string][]Violation {
	grouped := make(map[string][]Violation)
	for _, v := range r.Violations {
		grouped[v.Rule] = append(grouped[v.Rule], v)
	}
	return grouped
}

// Keys returns the baseline keys of every violation, in report order.
func (r *Report) Keys() []string {
	keys := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		keys[i] = v.Key()
	}
	return keys
}

// Clean reports whether no violations were found.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}
