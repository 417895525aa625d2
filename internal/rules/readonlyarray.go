package rules

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
)

// ReadonlyArray forbids assignment through an index expression. Slice,
// array, and map writes are all index writes syntactically and are treated
// alike. The constructor exception of ReadonlyObject applies identically.
type ReadonlyArray struct {
	allowConstructors bool
}

// ArrayOption configures a ReadonlyArray rule.
type ArrayOption func(*ReadonlyArray)

// ArrayStrict disables the constructor exception.
func ArrayStrict() ArrayOption {
	return func(r *ReadonlyArray) {
		r.allowConstructors = false
	}
}

// NewReadonlyArray creates the rule with the constructor exception enabled.
func NewReadonlyArray(opts ...ArrayOption) *ReadonlyArray {
	r := &ReadonlyArray{allowConstructors: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ReadonlyArray) Info() primitives.RuleInfo {
	return primitives.NewRuleInfo(
		"readonly-array",
		"elements of an existing sequence or map must not be reassigned",
		primitives.Error,
	)
}

func (r *ReadonlyArray) Visit(pass *core.Pass, node ast.Node) error {
	switch n := node.(type) {
	case *ast.AssignStmt:
		if n.Tok == token.DEFINE {
			return nil
		}
		if r.allowConstructors && pass.InConstructor() {
			return nil
		}
		for _, lhs := range n.Lhs {
			if idx, ok := lhs.(*ast.IndexExpr); ok {
				msg := fmt.Sprintf("element assignment mutates %s", exprString(pass, idx))
				if err := pass.Report(r.Info(), idx, msg); err != nil {
					return err
				}
			}
		}
	case *ast.IncDecStmt:
		if r.allowConstructors && pass.InConstructor() {
			return nil
		}
		if idx, ok := n.X.(*ast.IndexExpr); ok {
			msg := fmt.Sprintf("%s of element mutates %s", incDecName(n.Tok), exprString(pass, idx))
			return pass.Report(r.Info(), idx, msg)
		}
	}
	return nil
}
