package hanoi

// Call is one invocation of the recursive solver.
//
// A call with N > 0 has a Before sub-call (N-1 disks out of the way), the
// single Move it emits, and an After sub-call (N-1 disks back on top). Calls
// with N == 1 have nil sub-calls since their children would be empty.
type Call struct {
	N           int
	Source      Peg
	Destination Peg
	Auxiliary   Peg
	Move        Move
	// Index is the 1-based position of Move in the emitted sequence.
	Index  int
	Before *Call
	After  *Call
}

// CallTree records the recursion of [GenerateMoves] for the same arguments.
// Returns nil for n <= 0.
func CallTree(n int, source, destination, auxiliary Peg) *Call {
	next := 0
	return buildCall(n, source, destination, auxiliary, &next)
}

func buildCall(n int, source, destination, auxiliary Peg, next *int) *Call {
	if n <= 0 {
		return nil
	}
	c := &Call{N: n, Source: source, Destination: destination, Auxiliary: auxiliary}
	c.Before = buildCall(n-1, source, auxiliary, destination, next)
	*next++
	c.Move = Move{From: source, To: destination}
	c.Index = *next
	c.After = buildCall(n-1, auxiliary, destination, source, next)
	return c
}

// Walk visits c and its sub-calls in pre-order. It stops descending into a
// call when fn returns false.
func (c *Call) Walk(fn func(*Call) bool) {
	if c == nil || !fn(c) {
		return
	}
	c.Before.Walk(fn)
	c.After.Walk(fn)
}

// Moves returns the moves of the tree in emission order (in-order traversal).
func (c *Call) Moves() []Move {
	var out []Move
	var visit func(*Call)
	visit = func(c *Call) {
		if c == nil {
			return
		}
		visit(c.Before)
		out = append(out, c.Move)
		visit(c.After)
	}
	visit(c)
	return out
}
