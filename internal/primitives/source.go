package primitives

import (
	"errors"
	"fmt"
	"strings"
)

// SourceFile is the input unit for inspection: a file name and its content.
// Content is treated as read-only by every tier; nothing in the engine
// writes through it.
type SourceFile struct {
	Name    string
	Content []byte
}

// NewSourceFile creates a SourceFile.
func NewSourceFile(name string, content []byte) SourceFile {
	return SourceFile{Name: name, Content: content}
}

// Validate checks the source file is usable as input.
func (s SourceFile) Validate() error {
	if s.Name == "" {
		return errors.New("source file name is required")
	}
	if !strings.HasSuffix(s.Name, ".go") {
		return fmt.Errorf("source file %q is not a .go file", s.Name)
	}
	return nil
}

// Line returns the trimmed text of the 1-based line containing offset.
// Returns "" when offset is out of range.
func (s SourceFile) Line(offset int) string {
	if offset < 0 || offset > len(s.Content) {
		return ""
	}
	start := offset
	for start > 0 && s.Content[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(s.Content) && s.Content[end] != '\n' {
		end++
	}
	return strings.TrimSpace(string(s.Content[start:end]))
}
