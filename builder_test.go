package immutalint

import (
	"context"
	"errors"
	"go/ast"
	"go/token"
	"testing"

	"github.com/comalice/immutalint/internal/core"
)

func buildAndCheck(t *testing.T, b *RulesetBuilder, src string) []Violation {
	t.Helper()
	ruleset, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	got, err := CheckRules(context.Background(), "fixture.go", []byte(src), ruleset...)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestBuilderAll(t *testing.T) {
	ruleset, err := NewRulesetBuilder().All().Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(ruleset) != 5 {
		t.Fatalf("got %d rules, want 5", len(ruleset))
	}
	want := []string{"readonly-object", "readonly-array", "no-rebind", "no-mutating-call", "no-delete"}
	for i, rule := range ruleset {
		if rule.Info().ID != want[i] {
			t.Errorf("rule %d: got %s, want %s", i, rule.Info().ID, want[i])
		}
	}
}

func TestBuilderDuplicate(t *testing.T) {
	_, err := NewRulesetBuilder().NoDelete().NoDelete().Build()
	if !errors.Is(err, ErrDuplicateRule) {
		t.Errorf("got %v, want ErrDuplicateRule", err)
	}
}

func TestBuilderEmpty(t *testing.T) {
	_, err := NewRulesetBuilder().Build()
	if !errors.Is(err, ErrNoRules) {
		t.Errorf("got %v, want ErrNoRules", err)
	}
}

func TestBuilderStrictObjects(t *testing.T) {
	src := `package p

type thing struct{ n int }

func NewThing() *thing {
	t := &thing{}
	t.n = 1
	return t
}
`
	if got := buildAndCheck(t, NewRulesetBuilder().ReadonlyObject(), src); len(got) != 0 {
		t.Errorf("constructor writes allowed by default, got %v", got)
	}
	got := buildAndCheck(t, NewRulesetBuilder().ReadonlyObject().StrictObjects(), src)
	if len(got) != 1 || got[0].Rule != "readonly-object" {
		t.Errorf("strict mode flags constructor writes, got %v", got)
	}
}

func TestBuilderMutatorOptions(t *testing.T) {
	src := `package p

import "sort"

func f(xs []int) {
	sort.Ints(xs)
	shuffle(xs)
}
`
	got := buildAndCheck(t, NewRulesetBuilder().NoMutatingCall(), src)
	if len(got) != 1 || got[0].Rule != "no-mutating-call" {
		t.Fatalf("got %v, want one no-mutating-call violation", got)
	}

	got = buildAndCheck(t,
		NewRulesetBuilder().NoMutatingCall().AllowMutator("sort", "Ints").Mutator("", "shuffle"), src)
	if len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got[0].Pos.Line != 7 {
		t.Errorf("got line %d, want the shuffle call on line 7", got[0].Pos.Line)
	}
}

// stampRule flags every goto statement; it stands in for an embedder's
// custom rule.
type stampRule struct{}

func (stampRule) Info() RuleInfo {
	return RuleInfo{ID: "stamp", Doc: "flags goto statements", Default: Info}
}

func (r stampRule) Visit(pass *core.Pass, node ast.Node) error {
	if branch, ok := node.(*ast.BranchStmt); ok && branch.Tok == token.GOTO {
		return pass.Report(r.Info(), node, "goto is not allowed")
	}
	return nil
}

func TestBuilderCustomRule(t *testing.T) {
	ruleset, err := NewRulesetBuilder().NoDelete().WithRule(stampRule{}).Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(ruleset) != 2 {
		t.Fatalf("got %d rules", len(ruleset))
	}
	if ruleset[1].Info().ID != "stamp" {
		t.Errorf("custom rule not appended: %v", ruleset[1].Info())
	}
}
