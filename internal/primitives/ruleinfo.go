package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// RuleInfo describes a rule: its stable ID, a one-line doc string, and the
// severity it reports at unless a filter adjusts it.
type RuleInfo struct {
	ID      string   `json:"id" yaml:"id"`
	Doc     string   `json:"doc" yaml:"doc"`
	Default Severity `json:"default" yaml:"default"`
}

// NewRuleInfo creates a RuleInfo with ID and doc at the given severity.
func NewRuleInfo(id, doc string, def Severity) RuleInfo {
	return RuleInfo{ID: id, Doc: doc, Default: def}
}

// Validate checks the rule metadata is well formed.
// Rule IDs are lowercase words joined by hyphens, e.g. "readonly-object".
func (r RuleInfo) Validate() error {
	if r.ID == "" {
		return errors.New("rule ID is required")
	}
	if strings.TrimSpace(r.ID) != r.ID || r.ID != strings.ToLower(r.ID) {
		return fmt.Errorf("rule ID %q must be lowercase with no surrounding space", r.ID)
	}
	for _, part := range strings.Split(r.ID, "-") {
		if part == "" {
			return fmt.Errorf("rule ID %q has an empty segment", r.ID)
		}
	}
	if r.Doc == "" {
		return fmt.Errorf("rule %s requires a doc string", r.ID)
	}
	if !r.Default.Valid() {
		return fmt.Errorf("rule %s has invalid default severity %d", r.ID, int(r.Default))
	}
	return nil
}
