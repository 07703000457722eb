package highlight

// alternator hands out ColorA, ColorB, ColorA, ... The zero value starts at ColorA.
// One lives on the stack of each Partition call.
type alternator struct {
	next int
}

func (a *alternator) take() int {
	c := a.next
	a.next = NumColors - 1 - c
	return c
}
