package norebind

func f() int {
	x := 1
	x = 2     // want "rebinding of x"
	x += 3    // want "compound assignment rebinds x"
	x++       // want "increment rebinds x"
	var y int // want "var y declared without a value"
	y = x     // want "rebinding of y"
	return y
}

func loop(xs []int) int {
	total := 0
	for i := 0; i < len(xs); i++ {
		total += xs[i] // want "compound assignment rebinds total"
	}
	return total
}

func rng(xs []int) int {
	last := -1
	for _, v := range xs {
		_ = v
	}
	for last = range xs { // want "range clause rebinds last"
	}
	return last
}
