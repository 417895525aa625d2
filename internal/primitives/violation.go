// Violation is the immutable finding primitive produced by rules.
//
// Violations are value types. Once created they should not be mutated;
// consumers that need to adjust one (e.g. a severity filter) build a copy.
// Use NewViolation for construction.
package primitives

import (
	"errors"
	"fmt"
)

// Position locates a violation within a source file.
// Line and Column are 1-based; Offset is the 0-based byte offset.
type Position struct {
	Filename string `json:"filename" yaml:"filename"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Offset   int    `json:"offset" yaml:"offset"`
}

// String renders the conventional file:line:column form.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Valid reports whether the position points at real source.
func (p Position) Valid() bool {
	return p.Filename != "" && p.Line > 0 && p.Column > 0
}

// Violation records a single breach of an immutability rule.
type Violation struct {
	Rule     string   `json:"rule" yaml:"rule"`
	Message  string   `json:"message" yaml:"message"`
	Pos      Position `json:"pos" yaml:"pos"`
	Severity Severity `json:"severity" yaml:"severity"`
	// Scope is the dot-joined path of enclosing functions, e.g. "NewServer.func1".
	// Empty for package-level code.
	Scope string `json:"scope,omitempty" yaml:"scope,omitempty"`
	// Snippet is the trimmed source line the violation points at.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// NewViolation creates a Violation. Returned by value for copy semantics.
func NewViolation(rule, message string, pos Position, severity Severity) Violation {
	return Violation{
		Rule:     rule,
		Message:  message,
		Pos:      pos,
		Severity: severity,
	}
}

// WithScope returns a copy carrying the enclosing function path.
func (v Violation) WithScope(scope string) Violation {
	v.Scope = scope
	return v
}

// WithSnippet returns a copy carrying the offending source line.
func (v Violation) WithSnippet(snippet string) Violation {
	v.Snippet = snippet
	return v
}

// WithSeverity returns a copy at a different severity.
func (v Violation) WithSeverity(s Severity) Violation {
	v.Severity = s
	return v
}

// Key returns the stable identity used by baselines: file:line:column:rule.
func (v Violation) Key() string {
	return fmt.Sprintf("%s:%s", v.Pos.String(), v.Rule)
}

// String renders the conventional single-line report form.
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Pos.String(), v.Rule, v.Message)
}

// Validate checks the violation is well formed.
func (v Violation) Validate() error {
	if v.Rule == "" {
		return errors.New("violation rule ID is required")
	}
	if v.Message == "" {
		return fmt.Errorf("violation %s has no message", v.Rule)
	}
	if !v.Pos.Valid() {
		return fmt.Errorf("violation %s has invalid position %q", v.Rule, v.Pos.String())
	}
	if !v.Severity.Valid() {
		return fmt.Errorf("violation %s has invalid severity %d", v.Rule, int(v.Severity))
	}
	return nil
}

// Less orders violations by file, then byte offset, then rule ID.
// Used for the stable report ordering invariant.
func (v Violation) Less(o Violation) bool {
	if v.Pos.Filename != o.Pos.Filename {
		return v.Pos.Filename < o.Pos.Filename
	}
	if v.Pos.Offset != o.Pos.Offset {
		return v.Pos.Offset < o.Pos.Offset
	}
	return v.Rule < o.Rule
}
