// Package rules implements the immutability conventions as engine rules.
//
// Each rule is a purely syntactic check over a single file's AST: no type
// information is consulted, and no node is ever modified. A rule reports at
// most one violation per offending expression. The five rules cover:
//
//   - readonly-object: no assignment through field selectors
//   - readonly-array: no assignment through index expressions
//   - no-rebind: no reassignment of bindings after declaration
//   - no-mutating-call: no calls to known in-place mutators
//   - no-delete: no delete or clear builtin calls
//
// Because matching is syntactic, a selector like sort.Slice is matched by
// qualified name; a local identifier shadowing the package or builtin name
// suppresses the match.
package rules

import "github.com/comalice/immutalint/internal/core"

// Default returns one instance of every rule at its default configuration,
// in stable order.
func Default() []core.Rule {
	return []core.Rule{
		NewReadonlyObject(),
		NewReadonlyArray(),
		NewNoRebind(),
		NewNoMutatingCall(),
		NewNoDelete(),
	}
}
