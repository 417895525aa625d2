package readonlyarray

func touch(xs []int, m map[string]int) {
	xs[0] = 1    // want "element assignment mutates"
	xs[1]++      // want "increment of element mutates"
	m["k"] = 2   // want "element assignment mutates"
}

func NewBoard() []int {
	b := make([]int, 9)
	b[4] = 1
	return b
}

func read(xs []int) int {
	return xs[0]
}
