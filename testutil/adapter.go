// Package testutil provides a common interface for exercising the rules
// through both execution paths: the engine inspector and the go/analysis
// adapters. This allows running the same expectations on both paths.
package testutil

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"golang.org/x/tools/go/analysis"

	"github.com/comalice/immutalint"
	"github.com/comalice/immutalint/analyzers"
)

// CheckAdapter runs a source buffer through one execution path and returns
// the findings normalized to engine violations.
type CheckAdapter interface {
	Name() string
	Check(t *testing.T, filename string, src []byte) []immutalint.Violation
}

// InspectorAdapter drives the engine's own inspector via the facade.
type InspectorAdapter struct{}

// NewInspectorAdapter creates the engine-path adapter.
func NewInspectorAdapter() *InspectorAdapter {
	return &InspectorAdapter{}
}

func (a *InspectorAdapter) Name() string { return "inspector" }

func (a *InspectorAdapter) Check(t *testing.T, filename string, src []byte) []immutalint.Violation {
	t.Helper()
	violations, err := immutalint.Check(filename, src)
	if err != nil {
		t.Fatalf("inspector check: %v", err)
	}
	return violations
}

// AnalyzerAdapter drives the go/analysis adapters with a hand-built pass.
type AnalyzerAdapter struct {
	analyzers []*analysis.Analyzer
}

// NewAnalyzerAdapter creates the analysis-path adapter over all analyzers.
func NewAnalyzerAdapter() *AnalyzerAdapter {
	return &AnalyzerAdapter{analyzers: analyzers.All()}
}

func (a *AnalyzerAdapter) Name() string { return "analyzers" }

func (a *AnalyzerAdapter) Check(t *testing.T, filename string, src []byte) []immutalint.Violation {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse %s: %v", filename, err)
	}

	var violations []immutalint.Violation
	for _, analyzer := range a.analyzers {
		pass := &analysis.Pass{
			Analyzer: analyzer,
			Fset:     fset,
			Files:    []*ast.File{file},
			Report: func(d analysis.Diagnostic) {
				pos := fset.Position(d.Pos)
				violations = append(violations, immutalint.Violation{
					Rule:    d.Category,
					Message: d.Message,
					Pos: immutalint.Position{
						Filename: pos.Filename,
						Line:     pos.Line,
						Column:   pos.Column,
						Offset:   pos.Offset,
					},
					Severity: immutalint.Error,
				})
			},
		}
		if _, err := analyzer.Run(pass); err != nil {
			t.Fatalf("analyzer %s: %v", analyzer.Name, err)
		}
	}
	return violations
}

// Rules returns the rule IDs reported by a set of violations, deduplicated,
// in first-seen order. Shared by tests comparing the two paths.
func Rules(violations []immutalint.Violation) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, v := range violations {
		if _, ok := seen[v.Rule]; ok {
			continue
		}
		seen[v.Rule] = struct{}{}
		ids = append(ids, v.Rule)
	}
	return ids
}
