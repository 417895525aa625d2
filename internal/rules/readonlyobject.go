package rules

import (
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
)

// ReadonlyObject forbids assignment through a field selector: once a value
// exists, its fields are read-only. Population inside a constructor
// (New*/new*/init) is construction, not mutation, and is allowed unless
// the exception is disabled.
type ReadonlyObject struct {
	allowConstructors bool
}

// ObjectOption configures a ReadonlyObject rule.
type ObjectOption func(*ReadonlyObject)

// ObjectStrict disables the constructor exception.
func ObjectStrict() ObjectOption {
	return func(r *ReadonlyObject) {
		r.allowConstructors = false
	}
}

// NewReadonlyObject creates the rule with the constructor exception enabled.
func NewReadonlyObject(opts ...ObjectOption) *ReadonlyObject {
	r := &ReadonlyObject{allowConstructors: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ReadonlyObject) Info() primitives.RuleInfo {
	return primitives.NewRuleInfo(
		"readonly-object",
		"fields of an existing value must not be reassigned",
		primitives.Error,
	)
}

func (r *ReadonlyObject) Visit(pass *core.Pass, node ast.Node) error {
	switch n := node.(type) {
	case *ast.AssignStmt:
		if n.Tok == token.DEFINE {
			return nil
		}
		if r.allowConstructors && pass.InConstructor() {
			return nil
		}
		for _, lhs := range n.Lhs {
			if sel, ok := lhs.(*ast.SelectorExpr); ok {
				msg := fmt.Sprintf("field assignment mutates %s", exprString(pass, sel))
				if err := pass.Report(r.Info(), sel, msg); err != nil {
					return err
				}
			}
		}
	case *ast.IncDecStmt:
		if r.allowConstructors && pass.InConstructor() {
			return nil
		}
		if sel, ok := n.X.(*ast.SelectorExpr); ok {
			msg := fmt.Sprintf("%s of field mutates %s", incDecName(n.Tok), exprString(pass, sel))
			return pass.Report(r.Info(), sel, msg)
		}
	}
	return nil
}

// exprString renders an expression for messages, falling back to the raw
// source slice when printing fails.
func exprString(pass *core.Pass, expr ast.Expr) string {
	var buf strings.Builder
	if err := printer.Fprint(&buf, pass.Fset, expr); err == nil && buf.Len() > 0 {
		return buf.String()
	}
	start := pass.Fset.Position(expr.Pos()).Offset
	end := pass.Fset.Position(expr.End()).Offset
	if start >= 0 && end <= len(pass.Source.Content) && start < end {
		return string(pass.Source.Content[start:end])
	}
	return "expression"
}

func incDecName(tok token.Token) string {
	if tok == token.INC {
		return "increment"
	}
	return "decrement"
}
