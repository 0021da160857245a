package parcopy

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SequentializeAll sequentializes independent batches concurrently, at
// most Options.Workers at a time. Results are returned in input order.
//
// The first batch that fails a precondition cancels the remaining work and
// its error is returned wrapped with the batch name. Hooks installed with
// WithOnEmit or WithOnEvict are called from several goroutines and must be
// safe for concurrent use.
func SequentializeAll(ctx context.Context, batches []Batch, opts ...Option) ([]Result, error) {
	o := buildOptions(opts)
	results := make([]Result, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range batches {
		b := &batches[i]
		g.Go(func() error {
			// Skip work once the group or the caller gave up.
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := newSequencer(b.Copies, b.Spare, o)
			if err != nil {
				return fmt.Errorf("parcopy: batch %q: %w", b.Name, err)
			}
			s.run()
			results[i] = Result{Name: b.Name, Copies: s.out, Evictions: s.evictions}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// All goroutines may have finished before noticing a cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
