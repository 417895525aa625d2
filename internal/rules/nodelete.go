package rules

import (
	"fmt"
	"go/ast"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
)

// NoDelete forbids the delete builtin and the clear builtin (clearing is
// deletion of every element). A local or package-level binding shadowing
// the builtin name suppresses the match.
type NoDelete struct{}

// NewNoDelete creates the rule.
func NewNoDelete() *NoDelete {
	return &NoDelete{}
}

func (r *NoDelete) Info() primitives.RuleInfo {
	return primitives.NewRuleInfo(
		"no-delete",
		"the delete and clear builtins are not allowed",
		primitives.Error,
	)
}

func (r *NoDelete) Visit(pass *core.Pass, node ast.Node) error {
	call, ok := node.(*ast.CallExpr)
	if !ok {
		return nil
	}
	fn, ok := call.Fun.(*ast.Ident)
	if !ok {
		return nil
	}
	if fn.Name != "delete" && fn.Name != "clear" {
		return nil
	}
	if pass.Shadowed(fn.Name) {
		return nil
	}
	return pass.Report(r.Info(), call, fmt.Sprintf("%s removes entries from an existing value", fn.Name))
}
