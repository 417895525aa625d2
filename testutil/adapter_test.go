package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/immutalint"
)

const adapterSrc = `package fixture

type counter struct{ n int }

func touch(c *counter, m map[string]int, xs []int) {
	c.n = 1
	xs[0] = 2
	delete(m, "k")
}
`

func keys(violations []immutalint.Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = fmt.Sprintf("%d:%d:%s", v.Pos.Line, v.Pos.Column, v.Rule)
	}
	return out
}

func TestPathsAgree(t *testing.T) {
	adapters := []CheckAdapter{NewInspectorAdapter(), NewAnalyzerAdapter()}

	var got [][]immutalint.Violation
	for _, adapter := range adapters {
		t.Run(adapter.Name(), func(t *testing.T) {
			violations := adapter.Check(t, "fixture.go", []byte(adapterSrc))
			require.Len(t, violations, 3)
			assert.ElementsMatch(t,
				[]string{"readonly-object", "readonly-array", "no-delete"},
				Rules(violations))
			got = append(got, violations)
		})
	}

	require.Len(t, got, 2)
	assert.ElementsMatch(t, keys(got[0]), keys(got[1]),
		"both paths must report the same findings at the same positions")
}

func TestRulesDedupe(t *testing.T) {
	violations := []immutalint.Violation{
		{Rule: "no-delete"},
		{Rule: "no-rebind"},
		{Rule: "no-delete"},
	}
	assert.Equal(t, []string{"no-delete", "no-rebind"}, Rules(violations))
}
