// Package gen generates randomized relation schemas — an attribute
// universe and a set of functional dependencies — for property-based
// testing of the universal properties in spec.md §8.
//
// It is adapted from the teacher's builder package: the same
// functional-options-over-an-explicit-*rand.Rand idiom
// (builder/config.go, builder/impl_random_sparse.go) that builds random
// graphs there builds random (AttributeSet, []FD) pairs here. As in the
// teacher, the RNG is always caller-supplied and explicit; nothing in this
// package reads the global math/rand source, so a fixed seed makes a
// generated schema fully reproducible.
package gen
