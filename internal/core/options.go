// Package core provides the runtime core tier of the immutability rule engine.
// Options for configuring Inspector instances.
package core

// WithReporter configures the Inspector with a streaming Reporter.
// Accepted violations are still collected and returned by File.
func WithReporter(r Reporter) Option {
	return func(ins *Inspector) {
		ins.reporter = r
	}
}

// WithFilter configures the Inspector with a custom RuleFilter.
func WithFilter(f RuleFilter) Option {
	return func(ins *Inspector) {
		ins.filter = f
	}
}

// WithBaseline configures the Inspector with a Baseline of known findings.
func WithBaseline(b Baseline) Option {
	return func(ins *Inspector) {
		ins.baseline = b
	}
}

// WithMaxViolations caps how many violations a single file walk collects.
// Zero means unlimited.
func WithMaxViolations(n int) Option {
	return func(ins *Inspector) {
		ins.maxViol = n
	}
}
