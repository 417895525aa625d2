// Package analyzers exposes each immutability rule as a
// golang.org/x/tools/go/analysis Analyzer, so the rules run under standard
// vet-style drivers alongside other checks.
//
// Analyzer names are the rule IDs with hyphens removed, since driver names
// must be identifiers. Diagnostics carry the rule ID as the category.
package analyzers

import (
	"context"
	"os"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
	"github.com/comalice/immutalint/internal/rules"
)

var (
	ReadonlyObject = newAnalyzer(rules.NewReadonlyObject())
	ReadonlyArray  = newAnalyzer(rules.NewReadonlyArray())
	NoRebind       = newAnalyzer(rules.NewNoRebind())
	NoMutatingCall = newAnalyzer(rules.NewNoMutatingCall())
	NoDelete       = newAnalyzer(rules.NewNoDelete())
)

// All returns every analyzer in stable order.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		ReadonlyObject,
		ReadonlyArray,
		NoRebind,
		NoMutatingCall,
		NoDelete,
	}
}

// newAnalyzer wraps a single engine rule as an Analyzer. Each Run builds a
// fresh inspector so analyzers stay independent under concurrent drivers.
func newAnalyzer(rule core.Rule) *analysis.Analyzer {
	info := rule.Info()
	return &analysis.Analyzer{
		Name: strings.ReplaceAll(info.ID, "-", ""),
		Doc:  info.Doc,
		Run: func(pass *analysis.Pass) (any, error) {
			ins, err := core.NewInspector([]core.Rule{rule})
			if err != nil {
				return nil, err
			}
			for _, file := range pass.Files {
				tokFile := pass.Fset.File(file.Pos())
				if tokFile == nil {
					continue
				}
				// Snippets want the raw source; a read failure only loses them.
				content, _ := os.ReadFile(tokFile.Name())
				src := primitives.NewSourceFile(tokFile.Name(), content)

				violations, err := ins.File(context.Background(), pass.Fset, file, src)
				if err != nil {
					return nil, err
				}
				for _, v := range violations {
					if v.Pos.Offset >= tokFile.Size() {
						continue
					}
					pass.Report(analysis.Diagnostic{
						Pos:      tokFile.Pos(v.Pos.Offset),
						Category: v.Rule,
						Message:  v.Message,
					})
				}
			}
			return nil, nil
		},
	}
}
