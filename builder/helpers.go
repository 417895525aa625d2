// Package builder provides preassembled rulesets for common adoption paths.
package builder

import (
	"github.com/comalice/immutalint"
)

// Full returns every rule at default configuration.
func Full() []immutalint.Rule {
	return immutalint.DefaultRules()
}

// Strict returns every rule with every exception disabled: constructor
// population and for-clause counters are flagged like any other mutation.
func Strict() ([]immutalint.Rule, error) {
	return immutalint.NewRulesetBuilder().
		All().
		StrictObjects().
		StrictArrays().
		StrictLoops().
		Build()
}

// ValuesOnly returns the rules about existing values (readonly-object,
// readonly-array, no-delete, no-mutating-call) without the binding rule.
// A common first step: stop mutating data before banning reassignment.
func ValuesOnly() ([]immutalint.Rule, error) {
	return immutalint.NewRulesetBuilder().
		ReadonlyObject().
		ReadonlyArray().
		NoMutatingCall().
		NoDelete().
		Build()
}

// BindingsOnly returns just the no-rebind rule.
func BindingsOnly() ([]immutalint.Rule, error) {
	return immutalint.NewRulesetBuilder().
		NoRebind().
		Build()
}
