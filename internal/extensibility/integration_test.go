package extensibility

import (
	"context"
	"testing"

	"github.com/comalice/immutalint/internal/core"
	"github.com/comalice/immutalint/internal/primitives"
	"github.com/comalice/immutalint/internal/rules"
)

const mixedSrc = `package fixture

func touch(m map[string]int, c *counter) {
	delete(m, "k")
	c.n = 1
}

type counter struct{ n int }
`

// The default rules wired through a severity filter and a collecting
// reporter behave as one pipeline: dropped violations never reach the
// reporter, and the returned slice matches the reporter's view.
func TestFilterReporterPipeline(t *testing.T) {
	reporter := NewCollectingReporter()
	ins, err := core.NewInspector(rules.Default(),
		core.WithReporter(reporter),
		core.WithFilter(NewRuleMute("readonly-object")),
	)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ins.Check(context.Background(), primitives.NewSourceFile("fixture.go", []byte(mixedSrc)))
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d violations, want 1 (readonly-object muted): %v", len(got), got)
	}
	if got[0].Rule != "no-delete" {
		t.Errorf("got rule %s, want no-delete", got[0].Rule)
	}
	if reporter.Len() != len(got) {
		t.Errorf("reporter saw %d violations, inspector returned %d", reporter.Len(), len(got))
	}
}

func TestDemoteThenThreshold(t *testing.T) {
	// Demotion feeds a later severity decision: everything the default
	// rules report as error arrives at warning level.
	ins, err := core.NewInspector(rules.Default(),
		core.WithFilter(NewDemoteFilter(primitives.Warning)),
	)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ins.Check(context.Background(), primitives.NewSourceFile("fixture.go", []byte(mixedSrc)))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected violations")
	}
	for _, v := range got {
		if v.Severity != primitives.Warning {
			t.Errorf("%s reported at %s, want warning", v.Rule, v.Severity)
		}
	}
}

func TestResolverFeedsInspector(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.go": "package a\n\nfunc f(m map[string]int) {\n\tdelete(m, \"k\")\n}\n",
		"b.go": "package a\n\nfunc g() int { return 1 }\n",
	})

	files, err := NewFSResolver().Resolve(context.Background(), []string{root})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("resolved %d files", len(files))
	}

	ins, err := core.NewInspector(rules.Default())
	if err != nil {
		t.Fatal(err)
	}
	var total int
	for _, src := range files {
		got, err := ins.Check(context.Background(), src)
		if err != nil {
			t.Fatal(err)
		}
		total += len(got)
	}
	if total != 1 {
		t.Errorf("got %d violations across tree, want 1", total)
	}
}
