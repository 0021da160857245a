package parcopy

import (
	"fmt"
	"slices"
)

// Sequentialize orders the parallel copy batch copies into a sequence of
// copies that, executed one at a time, leaves every destination of the
// batch with the pre-batch value of its source. The spare register is
// used to break cycles; its final value is garbage.
//
// Preconditions (checked before any output is produced):
//  1. No copy reads or writes spare (ErrInvalidSpare).
//  2. No two copies share a destination (ErrDuplicateDestination).
//
// The result has at most len(copies) + len(Cycles(copies)) entries, exactly
// len(copies) when the batch has no cycle, and does not depend on the
// order of copies.
func Sequentialize(copies []RegisterCopy, spare Register, opts ...Option) ([]RegisterCopy, error) {
	s, err := newSequencer(copies, spare, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	s.run()

	return s.out, nil
}

// MustSequentialize is like Sequentialize but panics if the batch violates
// a precondition.
func MustSequentialize(copies []RegisterCopy, spare Register, opts ...Option) []RegisterCopy {
	out, err := Sequentialize(copies, spare, opts...)
	if err != nil {
		panic(err)
	}

	return out
}

// sequencer holds the state of one sequentialization. Nothing in it
// outlives the call.
type sequencer struct {
	spare Register
	opts  Options

	// holder maps the register a value started in to the register that
	// holds it now. Entries for values nobody reads any more may be stale.
	holder map[Register]Register

	// pending holds copies that cannot run yet, keyed by destination.
	pending map[Register]RegisterCopy

	// order lists every pending destination in ascending order; entries
	// that already left pending are skipped when an eviction is chosen.
	order []Register
	next  int

	// available is a stack of copies whose destination no longer holds a
	// value that is still needed.
	available []RegisterCopy

	out       []RegisterCopy
	evictions int
}

func newSequencer(copies []RegisterCopy, spare Register, opts Options) (*sequencer, error) {
	// 1) Validate the whole batch first so a bad batch produces no output.
	seen := make(map[Register]struct{}, len(copies))
	for _, c := range copies {
		if c.Source == spare || c.Destination == spare {
			return nil, fmt.Errorf("%w: %s in copy %s", ErrInvalidSpare, spare, c)
		}
		if _, dup := seen[c.Destination]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDestination, c.Destination)
		}
		seen[c.Destination] = struct{}{}
	}

	s := &sequencer{
		spare:   spare,
		opts:    opts,
		holder:  make(map[Register]Register, len(copies)),
		pending: make(map[Register]RegisterCopy, len(copies)),
		order:   make([]Register, 0, len(copies)),
		out:     make([]RegisterCopy, 0, len(copies)),
	}

	// 2) Every copy starts pending; every source holds its own value.
	for _, c := range copies {
		if opts.DropSelfCopies && c.Source == c.Destination {
			continue
		}
		s.pending[c.Destination] = c
		s.holder[c.Source] = c.Source
		s.order = append(s.order, c.Destination)
	}
	slices.Sort(s.order)

	// 3) A copy whose destination is nobody's source can run right away.
	//    Walking destinations in order keeps the stack independent of the
	//    input order.
	for _, dst := range s.order {
		if _, read := s.holder[dst]; read {
			continue
		}
		s.available = append(s.available, s.pending[dst])
		delete(s.pending, dst)
	}

	return s, nil
}

func (s *sequencer) run() {
	for len(s.pending) > 0 || len(s.available) > 0 {
		s.drain()

		// Whatever is still pending forms cycles. Break the one holding
		// the lowest destination.
		dst, ok := s.nextEviction()
		if !ok {
			break
		}
		c := s.pending[dst]
		delete(s.pending, dst)

		evict := RegisterCopy{Source: c.Destination, Destination: s.spare}
		s.emit(evict)
		s.evictions++
		if s.opts.OnEvict != nil {
			s.opts.OnEvict(evict)
		}
		s.holder[c.Destination] = s.spare
		s.available = append(s.available, c)
	}
}

// drain materializes available copies until none is left.
func (s *sequencer) drain() {
	for len(s.available) > 0 {
		last := len(s.available) - 1
		c := s.available[last]
		s.available = s.available[:last]

		h, ok := s.holder[c.Source]
		if !ok {
			panic(fmt.Errorf("%w %s (copy %s)", ErrHolderNotFound, c.Source, c))
		}
		s.emit(RegisterCopy{Source: h, Destination: c.Destination})

		// h's value now also lives in c.Destination, so the copy writing
		// h may run, and the value is tracked at its new home. A value
		// read back from the spare moves too, freeing the spare.
		if freed, ok := s.pending[h]; ok {
			delete(s.pending, h)
			s.available = append(s.available, freed)
			s.holder[c.Source] = c.Destination
		} else if h == s.spare {
			s.holder[c.Source] = c.Destination
		}
	}
}

// nextEviction returns the lowest destination still pending.
func (s *sequencer) nextEviction() (Register, bool) {
	for ; s.next < len(s.order); s.next++ {
		dst := s.order[s.next]
		if _, ok := s.pending[dst]; ok {
			return dst, true
		}
	}

	return 0, false
}

func (s *sequencer) emit(c RegisterCopy) {
	s.out = append(s.out, c)
	if s.opts.OnEmit != nil {
		s.opts.OnEmit(c)
	}
}
