package extensibility

import (
	"github.com/comalice/immutalint/internal/primitives"
)

// SeverityFilter drops violations below a minimum severity.
type SeverityFilter struct {
	min primitives.Severity
}

// NewSeverityFilter creates a filter keeping violations at or above min.
func NewSeverityFilter(min primitives.Severity) *SeverityFilter {
	return &SeverityFilter{min: min}
}

// Allow keeps violations at or above the configured minimum, unchanged.
func (f *SeverityFilter) Allow(v primitives.Violation) (primitives.Violation, bool) {
	return v, v.Severity >= f.min
}

// RuleMute drops violations of the named rules and passes the rest through.
type RuleMute struct {
	muted map[string]struct{}
}

// NewRuleMute creates a filter muting the given rule IDs.
func NewRuleMute(ids ...string) *RuleMute {
	muted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		muted[id] = struct{}{}
	}
	return &RuleMute{muted: muted}
}

// Allow drops muted rules.
func (f *RuleMute) Allow(v primitives.Violation) (primitives.Violation, bool) {
	_, muted := f.muted[v.Rule]
	return v, !muted
}

// DemoteFilter lowers every violation to the given severity. Useful when a
// codebase adopts the rules gradually and wants findings without failures.
type DemoteFilter struct {
	to primitives.Severity
}

// NewDemoteFilter creates a filter rewriting severities to the given level.
func NewDemoteFilter(to primitives.Severity) *DemoteFilter {
	return &DemoteFilter{to: to}
}

// Allow keeps the violation at the demoted severity.
func (f *DemoteFilter) Allow(v primitives.Violation) (primitives.Violation, bool) {
	if v.Severity > f.to {
		return v.WithSeverity(f.to), true
	}
	return v, true
}
