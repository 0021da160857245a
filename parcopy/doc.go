// Package parcopy turns a parallel copy batch into an ordered sequence of
// register-to-register copies that needs at most one spare register.
//
// What:
//
//   - Sequentialize: given copies that must all observe the pre-batch
//     values of their sources (as if executed simultaneously), emit an
//     ordered list of two-operand copies with the same net effect on every
//     destination. Chains are emitted back to front; each cycle is broken
//     by evicting one value into the spare register.
//   - Cycles: lists the cycles of a batch's dependency structure.
//   - ExecuteSequential / ExecuteParallel / Verify: a tiny register machine
//     used to check a sequence against the parallel semantics.
//   - SequentializeAll: processes many independent batches concurrently.
//
// Why:
//
//   - Phi resolution at control-flow join points
//   - Calling-convention argument shuffles
//   - Reconciling register assignments across block boundaries
//
// Determinism:
//
//	When no copy can run without clobbering a value that is still needed,
//	the pending copy with the lowest destination register is evicted.
//	Identical batches therefore give identical output whatever their input
//	order.
//
// Complexity:
//
//   - Sequentialize: Time O(n log n), Memory O(n) for n copies.
//   - Output length: at most n + C where C = len(Cycles(batch)). A cycle
//     that has a copy leaving it is unwound through that copy's
//     destination and needs no eviction.
//
// Errors:
//
//   - ErrInvalidSpare          spare register used as a source or destination
//   - ErrDuplicateDestination  two copies write the same register
//   - ErrNotEquivalent         Verify found a diverging register
//   - ErrHolderNotFound        internal defect, raised via panic only
package parcopy
