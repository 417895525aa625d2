// Package core provides the runtime core tier of the immutability rule engine.
// This includes the Inspector, the per-file Pass, rule registration, and
// scope tracking used by rules for constructor and shadowing decisions.
// Dependencies: internal/primitives
// Stdlib-only implementation.
// Pluggable components defined here; default implementations live in
// internal/extensibility and internal/production.
//go:generate go test ./... -race

package core

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"sort"

	"github.com/comalice/immutalint/internal/primitives"
)

// Pluggable component interfaces.

// Rule inspects AST nodes and reports violations through the pass.
// Rules must be stateless across files; per-file state belongs on the Pass.
type Rule interface {
	Info() primitives.RuleInfo
	Visit(pass *Pass, node ast.Node) error
}

// Reporter receives each violation as it is accepted.
type Reporter interface {
	Report(v primitives.Violation) error
}

// RuleFilter decides whether a violation is kept and may adjust it
// (typically its severity) before it is recorded.
type RuleFilter interface {
	Allow(v primitives.Violation) (primitives.Violation, bool)
}

// Baseline suppresses violations whose key has been recorded previously.
type Baseline interface {
	Known(key string) bool
}

// SourceResolver turns root paths into the source files to inspect.
type SourceResolver interface {
	Resolve(ctx context.Context, roots []string) ([]primitives.SourceFile, error)
}

var (
	ErrNoRules           = errors.New("no rules registered")
	ErrDuplicateRule     = errors.New("duplicate rule ID")
	ErrUnknownRule       = errors.New("unknown rule ID")
	ErrTooManyViolations = errors.New("violation cap reached")
)

// ctxCheckInterval is how many nodes are walked between context checks.
const ctxCheckInterval = 512

// ParseRuleID is the pseudo-rule reported for files that fail to parse.
const ParseRuleID = "parse"

// Inspector walks parsed files and dispatches registered rules.
// An Inspector is safe for sequential reuse across files; for concurrent
// use create one Inspector per goroutine (rules themselves are stateless).
type Inspector struct {
	registry *Registry
	reporter Reporter
	filter   RuleFilter
	baseline Baseline
	maxViol  int // 0 means unlimited
}

// Option configures an Inspector.
type Option func(*Inspector)

// NewInspector creates an Inspector over the given rules.
// Returns ErrNoRules when no rules are provided and ErrDuplicateRule when
// two rules share an ID.
func NewInspector(rules []Rule, opts ...Option) (*Inspector, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	registry := NewRegistry()
	for _, r := range rules {
		if err := registry.Register(r); err != nil {
			return nil, err
		}
	}
	ins := &Inspector{registry: registry}
	for _, opt := range opts {
		opt(ins)
	}
	return ins, nil
}

// Rules returns the registered rules in registration order.
func (ins *Inspector) Rules() []Rule {
	return ins.registry.Rules()
}

// Check parses and inspects a single source buffer.
// Parse failures surface as a violation of the pseudo-rule "parse" so a
// broken file is a finding, not a crash.
func (ins *Inspector) Check(ctx context.Context, src primitives.SourceFile) ([]primitives.Violation, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, src.Name, src.Content, parser.SkipObjectResolution)
	if err != nil {
		return []primitives.Violation{parseViolation(src, err)}, nil
	}
	return ins.File(ctx, fset, file, src)
}

// File walks an already-parsed file once and returns accepted violations
// sorted by position. When the violation cap is hit the walk stops and the
// collected violations are returned together with ErrTooManyViolations.
func (ins *Inspector) File(ctx context.Context, fset *token.FileSet, file *ast.File, src primitives.SourceFile) ([]primitives.Violation, error) {
	pass := newPass(ins, fset, file, src)

	var walkErr error
	nodes := 0
	ast.Inspect(file, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}
		if n == nil {
			pass.pop()
			return true
		}
		nodes++
		if nodes%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				walkErr = err
				return false
			}
		}
		pass.push(n)
		for _, rule := range ins.registry.Rules() {
			if err := rule.Visit(pass, n); err != nil {
				walkErr = err
				return false
			}
		}
		return true
	})

	sort.SliceStable(pass.collected, func(i, j int) bool {
		return pass.collected[i].Less(pass.collected[j])
	})
	return pass.collected, walkErr
}

// accept runs a violation through filter, baseline, and cap, then records it.
func (ins *Inspector) accept(pass *Pass, v primitives.Violation) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("rule %s reported malformed violation: %w", v.Rule, err)
	}
	if ins.filter != nil {
		adjusted, ok := ins.filter.Allow(v)
		if !ok {
			return nil
		}
		v = adjusted
	}
	if ins.baseline != nil && ins.baseline.Known(v.Key()) {
		return nil
	}
	if ins.maxViol > 0 && len(pass.collected) >= ins.maxViol {
		return ErrTooManyViolations
	}
	pass.collected = append(pass.collected, v)
	if ins.reporter != nil {
		return ins.reporter.Report(v)
	}
	return nil
}

// parseViolation converts a parser error into a "parse" finding.
func parseViolation(src primitives.SourceFile, err error) primitives.Violation {
	pos := primitives.Position{Filename: src.Name, Line: 1, Column: 1}
	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		first := list[0]
		pos = primitives.Position{
			Filename: first.Pos.Filename,
			Line:     first.Pos.Line,
			Column:   first.Pos.Column,
			Offset:   first.Pos.Offset,
		}
	}
	return primitives.NewViolation(ParseRuleID, err.Error(), pos, primitives.Error)
}
