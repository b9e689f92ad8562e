// Package subsets enumerates non-empty subsets of an attrset.AttributeSet
// for the exhaustive search done by keys.CandidateKeys and the
// subsetClosures display of the top-level Report.
//
// The universe is indexed into a fixed, canonically-sorted []Attribute and
// every subset is represented as a bitmask over that index, per spec.md's
// own suggested implementation. Enumeration is bounded at MaxBits (63, so
// that 2^MaxBits still fits in a uint64) attributes; callers that exceed it
// get ErrUniverseTooLarge rather than an attempted 2^64 enumeration.
package subsets
