// Package core defines the Registry for managing rule sets.
package core

import (
	"fmt"
)

// Registry holds rules in registration order with unique IDs.
type Registry struct {
	order []Rule
	byID  map[string]Rule
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Rule)}
}

// Register adds a rule after validating its metadata.
// Returns ErrDuplicateRule when the ID is already taken.
func (r *Registry) Register(rule Rule) error {
	info := rule.Info()
	if err := info.Validate(); err != nil {
		return fmt.Errorf("register rule: %w", err)
	}
	if _, exists := r.byID[info.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, info.ID)
	}
	r.byID[info.ID] = rule
	r.order = append(r.order, rule)
	return nil
}

// Get returns the rule with the given ID.
func (r *Registry) Get(id string) (Rule, error) {
	rule, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, id)
	}
	return rule, nil
}

// Rules returns the registered rules in registration order.
// The returned slice is shared; callers must not modify it.
func (r *Registry) Rules() []Rule {
	return r.order
}

// IDs returns the registered rule IDs in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	for i, rule := range r.order {
		ids[i] = rule.Info().ID
	}
	return ids
}
