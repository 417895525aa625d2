package core

import (
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := newStub("rule-a", "a")
	b := newStub("rule-b", "b")

	if err := r.Register(a); err != nil {
		t.Fatalf("register a: %v", err)
	}
	if err := r.Register(b); err != nil {
		t.Fatalf("register b: %v", err)
	}
	if err := r.Register(newStub("rule-a", "other")); !errors.Is(err, ErrDuplicateRule) {
		t.Errorf("got %v, want ErrDuplicateRule", err)
	}

	got, err := r.Get("rule-b")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != b {
		t.Error("get returned the wrong rule")
	}
	if _, err := r.Get("missing"); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("got %v, want ErrUnknownRule", err)
	}

	ids := r.IDs()
	if len(ids) != 2 || ids[0] != "rule-a" || ids[1] != "rule-b" {
		t.Errorf("got IDs %v, want [rule-a rule-b]", ids)
	}
}

func TestRegistryRejectsBadInfo(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubRule{ID: "Bad-Case", Target: "x"}); err == nil {
		t.Error("expected error for uppercase rule ID")
	}
	if err := r.Register(&stubRule{ID: "", Target: "x"}); err == nil {
		t.Error("expected error for empty rule ID")
	}
}
