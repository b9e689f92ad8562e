// Package keys finds the candidate keys of a relation: the minimal
// superkeys, per spec.md §4.3.
//
// CandidateKeys enumerates every non-empty subset of the universe via
// subsets.Each, tests each one's closure.Of against the universe, and keeps
// only the minimal superkeys. Subsets are visited in ascending size order so
// a fast-path prefilter can skip any subset that is a superset of an
// already-confirmed candidate key: by closure monotonicity such a subset is
// guaranteed to be a superkey too, but can never be minimal, so testing its
// closure would only waste a pass over the dependency set. This mirrors the
// containment-pruning idea in joiningdata/funcdep's filterContainingKeys,
// applied during enumeration instead of as a post-process, and changes
// nothing about the returned set — it is an optimization, not a second
// algorithm; the eventual result is identical to the unpruned exhaustive
// search.
//
// If no superkey is found for a non-empty universe — impossible under the
// closure definition (A ⊆ A⁺ always holds) but still guarded — the whole
// universe is returned as a single fallback key and a Diagnostic is
// attached.
package keys
