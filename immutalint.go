// Package immutalint checks Go source for violations of immutability
// conventions: readonly objects, readonly arrays, no rebinding, no in-place
// mutation calls, and no delete.
//
// The simple entry points here parse and check buffers with the default
// ruleset. Embedders that need streaming reporters, baselines, severity
// filters, or a concurrent batch run use the runner package or assemble a
// ruleset with RulesetBuilder.
package immutalint

import (
	"context"
	"time"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
	"github.com/comalice/immutalint/internal/rules"
)

// Aliases so embedders never import internal packages.
type (
	Violation  = primitives.Violation
	Position   = primitives.Position
	Severity   = primitives.Severity
	Report     = primitives.Report
	RuleInfo   = primitives.RuleInfo
	SourceFile = primitives.SourceFile

	// Rule is the pluggable rule contract; custom rules implement it and
	// register through RulesetBuilder.WithRule.
	Rule = core.Rule

	// Pluggable component contracts, for embedders wiring their own
	// reporters, filters, baselines, or source resolution.
	Reporter       = core.Reporter
	RuleFilter     = core.RuleFilter
	Baseline       = core.Baseline
	SourceResolver = core.SourceResolver
)

const (
	Info    = primitives.Info
	Warning = primitives.Warning
	Error   = primitives.Error
)

// Sentinel errors surfaced by checking.
var (
	ErrNoRules           = core.ErrNoRules
	ErrDuplicateRule     = core.ErrDuplicateRule
	ErrUnknownRule       = core.ErrUnknownRule
	ErrTooManyViolations = core.ErrTooManyViolations
)

// DefaultRules returns one instance of every rule at default configuration.
func DefaultRules() []Rule {
	return rules.Default()
}

// Check parses and checks a single source buffer with the default ruleset.
// Returns violations sorted by position. A buffer that does not parse yields
// one violation of the pseudo-rule "parse".
func Check(filename string, src []byte) ([]Violation, error) {
	return CheckRules(context.Background(), filename, src, DefaultRules()...)
}

// CheckRules parses and checks a single source buffer with the given rules.
func CheckRules(ctx context.Context, filename string, src []byte, ruleset ...Rule) ([]Violation, error) {
	ins, err := core.NewInspector(ruleset)
	if err != nil {
		return nil, err
	}
	return ins.Check(ctx, primitives.NewSourceFile(filename, src))
}

// CheckFiles checks a batch of in-memory sources sequentially and returns an
// aggregate report. For directory walks and concurrency use the runner package.
func CheckFiles(ctx context.Context, files []SourceFile, ruleset ...Rule) (Report, error) {
	if len(ruleset) == 0 {
		ruleset = DefaultRules()
	}
	ins, err := core.NewInspector(ruleset)
	if err != nil {
		return Report{}, err
	}
	report := primitives.NewReport()
	for _, file := range files {
		violations, err := ins.Check(ctx, file)
		if err != nil {
			return report, err
		}
		report.Files++
		report.Add(violations...)
	}
	report.Sort()
	report.Duration = time.Since(report.Started)
	return report, nil
}
