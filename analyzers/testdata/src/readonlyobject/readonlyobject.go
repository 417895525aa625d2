package readonlyobject

type counter struct{ n int }

func touch(c *counter) {
	c.n = 1 // want "field assignment mutates c.n"
	c.n++   // want "increment of field mutates c.n"
	c.n--   // want "decrement of field mutates c.n"
}

func NewCounter() *counter {
	c := &counter{}
	c.n = 1
	return c
}

func read(c *counter) int {
	return c.n
}
