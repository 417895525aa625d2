package immutalint

import (
	"fmt"

	"github.com/comalice/immutalint/internal/rules"
)

// RulesetBuilder provides a fluent API for assembling a ruleset without
// touching internal packages. Rules are added in call order; options are
// collected first and applied at Build.
type RulesetBuilder struct {
	include       map[string]bool
	order         []string
	custom        []Rule
	strictObjects bool
	strictArrays  bool
	strictLoops   bool
	addMutators   [][2]string
	dropMutators  [][2]string
	err           error
}

// NewRulesetBuilder creates an empty builder.
func NewRulesetBuilder() *RulesetBuilder {
	return &RulesetBuilder{include: make(map[string]bool)}
}

func (b *RulesetBuilder) add(id string) *RulesetBuilder {
	if b.include[id] {
		b.err = fmt.Errorf("%w: %s", ErrDuplicateRule, id)
		return b
	}
	b.include[id] = true
	b.order = append(b.order, id)
	return b
}

// ReadonlyObject adds the readonly-object rule.
func (b *RulesetBuilder) ReadonlyObject() *RulesetBuilder { return b.add("readonly-object") }

// ReadonlyArray adds the readonly-array rule.
func (b *RulesetBuilder) ReadonlyArray() *RulesetBuilder { return b.add("readonly-array") }

// NoRebind adds the no-rebind rule.
func (b *RulesetBuilder) NoRebind() *RulesetBuilder { return b.add("no-rebind") }

// NoMutatingCall adds the no-mutating-call rule.
func (b *RulesetBuilder) NoMutatingCall() *RulesetBuilder { return b.add("no-mutating-call") }

// NoDelete adds the no-delete rule.
func (b *RulesetBuilder) NoDelete() *RulesetBuilder { return b.add("no-delete") }

// All adds every rule not already included, in default order.
func (b *RulesetBuilder) All() *RulesetBuilder {
	for _, id := range []string{
		"readonly-object", "readonly-array", "no-rebind", "no-mutating-call", "no-delete",
	} {
		if !b.include[id] {
			b.add(id)
		}
	}
	return b
}

// WithRule appends a custom rule implementation.
func (b *RulesetBuilder) WithRule(rule Rule) *RulesetBuilder {
	b.custom = append(b.custom, rule)
	return b
}

// StrictObjects disables the constructor exception for readonly-object.
func (b *RulesetBuilder) StrictObjects() *RulesetBuilder {
	b.strictObjects = true
	return b
}

// StrictArrays disables the constructor exception for readonly-array.
func (b *RulesetBuilder) StrictArrays() *RulesetBuilder {
	b.strictArrays = true
	return b
}

// StrictLoops makes no-rebind flag for-clause counter updates too.
func (b *RulesetBuilder) StrictLoops() *RulesetBuilder {
	b.strictLoops = true
	return b
}

// Mutator adds pkg.fn to no-mutating-call's forbidden set. An empty pkg
// forbids a builtin-style bare call.
func (b *RulesetBuilder) Mutator(pkg, fn string) *RulesetBuilder {
	b.addMutators = append(b.addMutators, [2]string{pkg, fn})
	return b
}

// AllowMutator removes pkg.fn from no-mutating-call's forbidden set.
func (b *RulesetBuilder) AllowMutator(pkg, fn string) *RulesetBuilder {
	b.dropMutators = append(b.dropMutators, [2]string{pkg, fn})
	return b
}

// Build assembles the ruleset. Returns ErrNoRules when nothing was added.
func (b *RulesetBuilder) Build() ([]Rule, error) {
	if b.err != nil {
		return nil, b.err
	}
	var ruleset []Rule
	for _, id := range b.order {
		switch id {
		case "readonly-object":
			var opts []rules.ObjectOption
			if b.strictObjects {
				opts = append(opts, rules.ObjectStrict())
			}
			ruleset = append(ruleset, rules.NewReadonlyObject(opts...))
		case "readonly-array":
			var opts []rules.ArrayOption
			if b.strictArrays {
				opts = append(opts, rules.ArrayStrict())
			}
			ruleset = append(ruleset, rules.NewReadonlyArray(opts...))
		case "no-rebind":
			var opts []rules.RebindOption
			if b.strictLoops {
				opts = append(opts, rules.RebindStrict())
			}
			ruleset = append(ruleset, rules.NewNoRebind(opts...))
		case "no-mutating-call":
			var opts []rules.CallOption
			for _, m := range b.addMutators {
				opts = append(opts, rules.WithMutator(m[0], m[1]))
			}
			for _, m := range b.dropMutators {
				opts = append(opts, rules.WithoutMutator(m[0], m[1]))
			}
			ruleset = append(ruleset, rules.NewNoMutatingCall(opts...))
		case "no-delete":
			ruleset = append(ruleset, rules.NewNoDelete())
		}
	}
	ruleset = append(ruleset, b.custom...)
	if len(ruleset) == 0 {
		return nil, ErrNoRules
	}
	return ruleset, nil
}
