package rules

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
)

// NoRebind forbids mutable bindings: plain or compound reassignment of an
// identifier after its declaration (including a name reused on the left of
// a mixed short declaration), increment/decrement, and var declarations
// with no initializer (a binding that exists only to be assigned later).
// The sanctioned forms are :=, var x = v, and const.
//
// By default the post statement of a classic for clause updating a counter
// declared in that clause's init is tolerated; Strict flags it too.
type NoRebind struct {
	strictLoops bool
}

// RebindOption configures a NoRebind rule.
type RebindOption func(*NoRebind)

// RebindStrict flags for-clause counter updates as well.
func RebindStrict() RebindOption {
	return func(r *NoRebind) {
		r.strictLoops = true
	}
}

// NewNoRebind creates the rule with the loop-counter exception enabled.
func NewNoRebind(opts ...RebindOption) *NoRebind {
	r := &NoRebind{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *NoRebind) Info() primitives.RuleInfo {
	return primitives.NewRuleInfo(
		"no-rebind",
		"bindings must not be reassigned after declaration",
		primitives.Error,
	)
}

func (r *NoRebind) Visit(pass *core.Pass, node ast.Node) error {
	switch n := node.(type) {
	case *ast.AssignStmt:
		if n.Tok == token.DEFINE {
			// x, y := ... where x is already bound in this block is Go's
			// spelling of a rebinding of x. A := in an inner block shadows
			// instead and stays legal.
			for _, id := range pass.Redeclared(n) {
				if err := pass.Report(r.Info(), id, fmt.Sprintf("short declaration rebinds %s", id.Name)); err != nil {
					return err
				}
			}
			return nil
		}
		for _, lhs := range n.Lhs {
			id, ok := lhs.(*ast.Ident)
			if !ok || id.Name == "_" {
				continue
			}
			if !r.strictLoops && pass.LoopExempt(n, id.Name) {
				continue
			}
			msg := fmt.Sprintf("rebinding of %s", id.Name)
			if n.Tok != token.ASSIGN {
				msg = fmt.Sprintf("compound assignment rebinds %s", id.Name)
			}
			if err := pass.Report(r.Info(), id, msg); err != nil {
				return err
			}
		}
	case *ast.IncDecStmt:
		id, ok := n.X.(*ast.Ident)
		if !ok || id.Name == "_" {
			return nil
		}
		if !r.strictLoops && pass.LoopExempt(n, id.Name) {
			return nil
		}
		return pass.Report(r.Info(), id, fmt.Sprintf("%s rebinds %s", incDecName(n.Tok), id.Name))
	case *ast.RangeStmt:
		if n.Tok != token.ASSIGN {
			return nil
		}
		for _, expr := range []ast.Expr{n.Key, n.Value} {
			if id, ok := expr.(*ast.Ident); ok && id.Name != "_" {
				if err := pass.Report(r.Info(), id, fmt.Sprintf("range clause rebinds %s", id.Name)); err != nil {
					return err
				}
			}
		}
	case *ast.GenDecl:
		if n.Tok != token.VAR {
			return nil
		}
		for _, spec := range n.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok || len(vs.Values) > 0 {
				continue
			}
			for _, name := range vs.Names {
				if name.Name == "_" {
					continue
				}
				msg := fmt.Sprintf("var %s declared without a value; it exists only to be assigned later", name.Name)
				if err := pass.Report(r.Info(), name, msg); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
