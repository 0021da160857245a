package parcopy

import (
	"cmp"
	"slices"
)

// Visitation states used while walking the dependency structure.
const (
	white = iota // not reached yet
	gray         // on the current walk
	black        // fully explored
)

// Cycles returns the cycles of the batch's dependency structure. Each
// cycle is listed in copy direction ([a, b, c] means a->b, b->c, c->a),
// rotated to start at its lowest register, and cycles are sorted by that
// register. A self copy r->r is the one-element cycle [r].
//
// The batch is assumed to have unique destinations; if it does not, the
// first copy into a register wins.
//
// Complexity: Time O(n log n), Memory O(n).
func Cycles(copies []RegisterCopy) [][]Register {
	// Every register has at most one incoming copy, so following sources
	// backwards from any register walks a single path.
	source := make(map[Register]Register, len(copies))
	dests := make([]Register, 0, len(copies))
	for _, c := range copies {
		if _, dup := source[c.Destination]; dup {
			continue
		}
		source[c.Destination] = c.Source
		dests = append(dests, c.Destination)
	}
	slices.Sort(dests)

	state := make(map[Register]int, len(copies))
	var cycles [][]Register
	path := make([]Register, 0, len(copies))
	for _, start := range dests {
		if state[start] != white {
			continue
		}
		path = path[:0]
		r := start
		for {
			state[r] = gray
			path = append(path, r)
			prev, ok := source[r]
			if !ok || state[prev] == black {
				break
			}
			if state[prev] == gray {
				// prev is on this walk: the tail of path from prev closes a loop.
				idx := slices.Index(path, prev)
				cycles = append(cycles, canonicalCycle(path[idx:]))
				break
			}
			r = prev
		}
		for _, v := range path {
			state[v] = black
		}
	}

	slices.SortFunc(cycles, func(a, b []Register) int {
		return cmp.Compare(a[0], b[0])
	})

	return cycles
}

// canonicalCycle converts a backwards walk into copy direction and rotates
// it so the lowest register comes first.
func canonicalCycle(walk []Register) []Register {
	n := len(walk)
	cycle := make([]Register, n)
	for i, r := range walk {
		cycle[n-1-i] = r
	}
	low := 0
	for i, r := range cycle {
		if r < cycle[low] {
			low = i
		}
	}

	rotated := make([]Register, 0, n)
	rotated = append(rotated, cycle[low:]...)

	return append(rotated, cycle[:low]...)
}
