package production

import (
	"testing"

	"github.com/comalice/immutalint/internal/primitives"
)

func TestStreamPublisher(t *testing.T) {
	pub := NewStreamPublisher(2)

	v := primitives.NewViolation("no-delete", "m",
		primitives.Position{Filename: "a.go", Line: 1, Column: 1}, primitives.Error)
	if err := pub.Report(v); err != nil {
		t.Fatal(err)
	}
	got := <-pub.Violations()
	if got.Rule != "no-delete" {
		t.Errorf("got rule %s", got.Rule)
	}
}

func TestStreamPublisherDropsOnFull(t *testing.T) {
	pub := NewStreamPublisher(1)

	v := primitives.NewViolation("no-delete", "m",
		primitives.Position{Filename: "a.go", Line: 1, Column: 1}, primitives.Error)
	if err := pub.Report(v); err != nil {
		t.Fatal(err)
	}
	// Buffer is full now; a second report must not block.
	if err := pub.Report(v); err != nil {
		t.Fatal(err)
	}
	if len(pub.Violations()) != 1 {
		t.Errorf("stream holds %d violations, want 1", len(pub.Violations()))
	}
}

func TestStreamPublisherMinimumBuffer(t *testing.T) {
	pub := NewStreamPublisher(0)
	v := primitives.NewViolation("no-delete", "m",
		primitives.Position{Filename: "a.go", Line: 1, Column: 1}, primitives.Error)
	// Even a zero size request leaves room for one violation.
	if err := pub.Report(v); err != nil {
		t.Fatal(err)
	}
	if len(pub.Violations()) != 1 {
		t.Errorf("stream holds %d violations, want 1", len(pub.Violations()))
	}
}

func TestStreamPublisherClose(t *testing.T) {
	pub := NewStreamPublisher(1)
	if err := pub.Close(); err != nil {
		t.Fatal(err)
	}
	if _, open := <-pub.Violations(); open {
		t.Error("stream should be closed")
	}
}
