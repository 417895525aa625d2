package primitives

import (
	"reflect"
	"testing"
)

func reportViol(file string, offset int, rule string, sev Severity) Violation {
	return NewViolation(rule, "m", Position{Filename: file, Line: 1, Column: offset + 1, Offset: offset}, sev)
}

func TestReportSort(t *testing.T) {
	r := NewReport()
	r.Add(
		reportViol("b.go", 4, "no-delete", Error),
		reportViol("a.go", 9, "no-rebind", Error),
		reportViol("a.go", 4, "readonly-object", Warning),
		reportViol("a.go", 4, "no-delete", Error),
	)
	r.Sort()

	got := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		got[i] = v.Pos.Filename + "/" + v.Rule
	}
	want := []string{
		"a.go/no-delete",
		"a.go/readonly-object",
		"a.go/no-rebind",
		"b.go/no-delete",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got order %v, want %v", got, want)
	}
}

func TestReportCounts(t *testing.T) {
	r := NewReport()
	if !r.Clean() {
		t.Error("fresh report should be clean")
	}
	r.Add(
		reportViol("a.go", 1, "no-delete", Error),
		reportViol("a.go", 2, "no-delete", Error),
		reportViol("a.go", 3, "readonly-object", Warning),
	)
	if r.Clean() {
		t.Error("report with violations is not clean")
	}
	counts := r.Counts()
	if counts[Error] != 2 || counts[Warning] != 1 || counts[Info] != 0 {
		t.Errorf("got counts %v", counts)
	}
}

func TestReportByRule(t *testing.T) {
	r := NewReport()
	r.Add(
		reportViol("a.go", 1, "no-delete", Error),
		reportViol("a.go", 2, "no-rebind", Error),
		reportViol("b.go", 3, "no-delete", Error),
	)
	grouped := r.ByRule()
	if len(grouped) != 2 {
		t.Fatalf("got %d groups", len(grouped))
	}
	if len(grouped["no-delete"]) != 2 || len(grouped["no-rebind"]) != 1 {
		t.Errorf("got grouping %v", grouped)
	}
}

func TestReportKeys(t *testing.T) {
	r := NewReport()
	r.Add(reportViol("a.go", 4, "no-delete", Error))
	want := []string{"a.go:1:5:no-delete"}
	if got := r.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("got keys %v, want %v", got, want)
	}
}
