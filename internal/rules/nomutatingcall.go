package rules

import (
	"fmt"
	"go/ast"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
)

// NoMutatingCall forbids calls to known in-place mutators, matched by
// qualified name. The default set covers the builtin copy and the in-place
// entry points of sort, slices, maps, and container/heap. Matching is
// syntactic: a local binding shadowing the package or builtin name
// suppresses the match.
type NoMutatingCall struct {
	builtins map[string]struct{}
	targets  map[string]map[string]struct{} // package ident -> function names
}

// CallOption configures a NoMutatingCall rule.
type CallOption func(*NoMutatingCall)

// WithMutator adds pkg.fn to the forbidden set. An empty pkg forbids a
// builtin-style bare call fn(...).
func WithMutator(pkg, fn string) CallOption {
	return func(r *NoMutatingCall) {
		if pkg == "" {
			r.builtins[fn] = struct{}{}
			return
		}
		if r.targets[pkg] == nil {
			r.targets[pkg] = make(map[string]struct{})
		}
		r.targets[pkg][fn] = struct{}{}
	}
}

// WithoutMutator removes pkg.fn from the forbidden set.
func WithoutMutator(pkg, fn string) CallOption {
	return func(r *NoMutatingCall) {
		if pkg == "" {
			delete(r.builtins, fn)
			return
		}
		if fns := r.targets[pkg]; fns != nil {
			delete(fns, fn)
		}
	}
}

// NewNoMutatingCall creates the rule with the default mutator set.
func NewNoMutatingCall(opts ...CallOption) *NoMutatingCall {
	r := &NoMutatingCall{
		builtins: map[string]struct{}{
			"copy": {},
		},
		targets: map[string]map[string]struct{}{
			"sort": {
				"Sort": {}, "Stable": {}, "Slice": {}, "SliceStable": {},
				"Strings": {}, "Ints": {}, "Float64s": {},
			},
			"slices": {
				"Sort": {}, "SortFunc": {}, "SortStableFunc": {}, "Reverse": {},
				"Delete": {}, "DeleteFunc": {}, "Insert": {}, "Compact": {}, "CompactFunc": {},
			},
			"maps": {
				"Copy": {}, "DeleteFunc": {},
			},
			"heap": {
				"Init": {}, "Push": {}, "Pop": {}, "Fix": {}, "Remove": {},
			},
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *NoMutatingCall) Info() primitives.RuleInfo {
	return primitives.NewRuleInfo(
		"no-mutating-call",
		"calls that mutate a value in place are not allowed",
		primitives.Error,
	)
}

func (r *NoMutatingCall) Visit(pass *core.Pass, node ast.Node) error {
	call, ok := node.(*ast.CallExpr)
	if !ok {
		return nil
	}
	switch fn := call.Fun.(type) {
	case *ast.Ident:
		if _, forbidden := r.builtins[fn.Name]; !forbidden || pass.Shadowed(fn.Name) {
			return nil
		}
		return pass.Report(r.Info(), call, fmt.Sprintf("%s mutates its destination in place", fn.Name))
	case *ast.SelectorExpr:
		pkg, ok := fn.X.(*ast.Ident)
		if !ok || pass.Shadowed(pkg.Name) {
			return nil
		}
		fns, ok := r.targets[pkg.Name]
		if !ok {
			return nil
		}
		if _, forbidden := fns[fn.Sel.Name]; !forbidden {
			return nil
		}
		return pass.Report(r.Info(), call, fmt.Sprintf("%s.%s mutates its argument in place", pkg.Name, fn.Sel.Name))
	}
	return nil
}
