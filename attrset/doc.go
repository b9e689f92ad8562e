// Package attrset implements the set algebra over relational attributes.
//
// Attribute is an opaque string symbol: equality is exact, case-sensitive
// string comparison. AttributeSet is an unordered collection of distinct
// Attributes backed by a map[Attribute]struct{}.
//
// Every AttributeSet exposes a canonical serialization: its members sorted
// by byte-wise lexicographic order and joined with ", ". This string is used
// as a map key wherever an AttributeSet needs one (candidate-key dedup,
// visited-set tracking in bcnf, subsetClosures in the report) and as the
// only human-facing rendering the core produces.
package attrset
