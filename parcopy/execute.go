package parcopy

import (
	"fmt"
	"maps"
	"slices"
)

// ExecuteSequential runs copies one at a time on a machine where every
// register starts out holding its own number. It returns the value of every
// register the sequence wrote.
func ExecuteSequential(copies []RegisterCopy) map[Register]Register {
	values := make(map[Register]Register, len(copies))
	for _, c := range copies {
		v, ok := values[c.Source]
		if !ok {
			v = c.Source
		}
		values[c.Destination] = v
	}

	return values
}

// ExecuteParallel runs copies as one simultaneous parallel copy on the same
// machine as ExecuteSequential: every destination receives the initial
// value of its source.
func ExecuteParallel(copies []RegisterCopy) map[Register]Register {
	values := make(map[Register]Register, len(copies))
	for _, c := range copies {
		values[c.Destination] = c.Source
	}

	return values
}

// Verify checks that running sequence one copy at a time gives every
// destination of batch the value the parallel batch would, and that it
// writes nothing besides those destinations and spare. The first
// difference, in register order, is reported wrapped in ErrNotEquivalent.
func Verify(batch, sequence []RegisterCopy, spare Register) error {
	want := ExecuteParallel(batch)
	got := ExecuteSequential(sequence)

	for _, r := range slices.Sorted(maps.Keys(want)) {
		v, ok := got[r]
		if !ok {
			v = r // never written
		}
		if v != want[r] {
			return fmt.Errorf("%w: %s holds the value of %s, want %s", ErrNotEquivalent, r, v, want[r])
		}
	}
	for _, r := range slices.Sorted(maps.Keys(got)) {
		if _, ok := want[r]; !ok && r != spare {
			return fmt.Errorf("%w: %s is written but is not a destination", ErrNotEquivalent, r)
		}
	}

	return nil
}
