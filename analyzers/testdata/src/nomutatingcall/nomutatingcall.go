package nomutatingcall

import "sort"

func f(xs []int) []int {
	sort.Ints(xs) // want "sort.Ints mutates its argument in place"

	out := make([]int, len(xs))
	copy(out, xs) // want "copy mutates its destination in place"
	return out
}

func ok(xs []string) bool {
	return sort.StringsAreSorted(xs)
}
