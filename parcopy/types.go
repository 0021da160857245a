package parcopy

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for sequentialization.
var (
	// ErrInvalidSpare indicates that the spare register appears as the
	// source or destination of a copy in the batch.
	ErrInvalidSpare = errors.New("parcopy: spare register used by a copy")

	// ErrDuplicateDestination indicates that two copies of one batch
	// write the same register.
	ErrDuplicateDestination = errors.New("parcopy: destination register has multiple copies")

	// ErrHolderNotFound is raised (via panic) when no register is known to
	// hold the value of a copy's source. It signals a defect, never bad input.
	ErrHolderNotFound = errors.New("parcopy: no holder for source register")

	// ErrNotEquivalent is returned by Verify when a sequence does not
	// reproduce the parallel semantics of its batch.
	ErrNotEquivalent = errors.New("parcopy: sequence is not equivalent to batch")
)

// Register names a storage location. Registers are ordered by value.
type Register uint32

// String renders the register as r<N>.
func (r Register) String() string {
	return fmt.Sprintf("r%d", uint32(r))
}

// RegisterCopy copies the value currently in Source into Destination.
type RegisterCopy struct {
	Source      Register
	Destination Register
}

// String renders the copy as src->dst.
func (c RegisterCopy) String() string {
	return c.Source.String() + "->" + c.Destination.String()
}

// Batch is one named parallel copy batch together with the spare register
// reserved for it.
type Batch struct {
	Name   string
	Spare  Register
	Copies []RegisterCopy
}

// Result is the sequentialized form of one Batch.
type Result struct {
	// Name is copied from the originating Batch.
	Name string

	// Copies is the emitted sequence, in execution order.
	Copies []RegisterCopy

	// Evictions counts the cycle-breaking copies into the spare register.
	Evictions int
}

// Option configures optional behavior of Sequentialize and SequentializeAll.
type Option func(*Options)

// Options holds the hooks and switches applied to a sequentialization.
type Options struct {
	// OnEmit, if non-nil, is called for every emitted copy, in order.
	OnEmit func(RegisterCopy)

	// OnEvict, if non-nil, is called for every copy that saves a value
	// into the spare register to break a cycle. OnEmit sees it as well.
	OnEvict func(RegisterCopy)

	// DropSelfCopies removes r->r copies before sequencing. Left in, each
	// one behaves as a single-register cycle and costs an eviction.
	DropSelfCopies bool

	// Workers bounds the number of batches SequentializeAll processes at
	// once. Values <= 0 mean runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultOptions returns Options with no hooks, self copies kept and one
// worker per available CPU.
func DefaultOptions() Options {
	return Options{
		OnEmit:         nil,
		OnEvict:        nil,
		DropSelfCopies: false,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// WithOnEmit returns an Option that installs fn as the emit hook.
func WithOnEmit(fn func(RegisterCopy)) Option {
	return func(o *Options) {
		o.OnEmit = fn
	}
}

// WithOnEvict returns an Option that installs fn as the eviction hook.
func WithOnEvict(fn func(RegisterCopy)) Option {
	return func(o *Options) {
		o.OnEvict = fn
	}
}

// WithDropSelfCopies returns an Option that discards r->r copies.
func WithDropSelfCopies() Option {
	return func(o *Options) {
		o.DropSelfCopies = true
	}
}

// WithWorkers returns an Option that bounds SequentializeAll concurrency.
// Non-positive values keep the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
