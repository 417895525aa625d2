package nodelete

func f(m map[string]int) {
	delete(m, "k") // want "delete removes entries from an existing value"
	clear(m)       // want "clear removes entries from an existing value"
}

func without(m map[string]int, key string) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		if k != key {
			out[k] = v
		}
	}
	return out
}
