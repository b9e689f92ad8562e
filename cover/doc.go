// Package cover builds a minimal (canonical) cover of a functional
// dependency set, per spec.md §4.5: singleton right-hand sides, no
// extraneous left-hand-side attributes, no redundant dependencies.
//
// MinimalCover runs three ordered phases over a deep copy of the input
// (closure is never called against the caller's own slice):
//
//  1. decomposeRHS splits every (L, R) into |R| singleton FDs (L, {a}).
//  2. reduceLHS tries to drop each LHS attribute x of every FD, keeping the
//     drop iff the FD's RHS attribute is still derivable from (L \ {x})
//     under the *current* working set (the FD being reduced included, with
//     whatever LHS it currently has).
//  3. removeRedundant drops any FD whose RHS attribute is still derivable
//     from its LHS under the working set with that FD excluded; drops are
//     applied immediately so later checks in the same pass see the
//     shrunken set.
//
// All three phases process in input order; per spec.md §9 ("Open question —
// minimal-cover non-uniqueness") the result is *a* minimal cover, not *the*
// minimal cover — callers must not assert a specific output, only the
// defining properties (equivalence to the input, no further reduction
// possible).
package cover
