// Package benchmarks provides shared source generators for benchmark tests.
package benchmarks

import (
	"fmt"
	"strings"
)

// GenFlatSource creates a file with n functions, each carrying one violation
// of every value rule. Scales linearly in AST size and finding count.
func GenFlatSource(n int) []byte {
	if n < 1 {
		n = 1
	}
	var b strings.Builder
	b.WriteString("package bench\n\ntype thing struct{ n int }\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `
func touch%d(th *thing, m map[string]int, xs []int) {
	th.n = %d
	xs[0] = %d
	delete(m, "k")
}
`, i, i, i)
	}
	return []byte(b.String())
}

// GenCleanSource creates a file with n functions that mutate nothing, for
// measuring pure walk overhead.
func GenCleanSource(n int) []byte {
	if n < 1 {
		n = 1
	}
	var b strings.Builder
	b.WriteString("package bench\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, `
func calc%d(xs []int) int {
	if len(xs) == 0 {
		return 0
	}
	return xs[0] + calc%d(xs[1:])
}
`, i, i)
	}
	return []byte(b.String())
}

// GenDeepSource creates one function with depth nested closures, the worst
// case for the scope stack. The innermost closure carries one violation.
func GenDeepSource(depth int) []byte {
	if depth < 1 {
		depth = 1
	}
	var b strings.Builder
	b.WriteString("package bench\n\nfunc deep(m map[string]int) {\n")
	for i := 0; i < depth; i++ {
		b.WriteString(strings.Repeat("\t", i+1))
		b.WriteString("func() {\n")
	}
	b.WriteString(strings.Repeat("\t", depth+1))
	b.WriteString("delete(m, \"k\")\n")
	for i := depth - 1; i >= 0; i-- {
		b.WriteString(strings.Repeat("\t", i+1))
		b.WriteString("}()\n")
	}
	b.WriteString("}\n")
	return []byte(b.String())
}
