package subsets

import "github.com/relnorm/normalize/attrset"

// Index assigns each attribute of a universe a stable bit position, sorted
// canonically so that enumeration order is deterministic given a
// deterministic universe.
type Index struct {
	attrs []attrset.Attribute
}

// NewIndex builds an Index over universe. It returns ErrUniverseTooLarge if
// universe has more than MaxBits attributes.
func NewIndex(universe attrset.AttributeSet) (Index, error) {
	if universe.Size() > MaxBits {
		return Index{}, ErrUniverseTooLarge
	}

	return Index{attrs: universe.Sorted()}, nil
}

// Size returns the number of attributes indexed.
func (ix Index) Size() int {
	return len(ix.attrs)
}

// Mask returns the bitmask representation of s with respect to ix. Any
// attribute in s not present in ix is silently ignored.
func (ix Index) Mask(s attrset.AttributeSet) uint64 {
	var mask uint64
	for i, a := range ix.attrs {
		if s.Contains(a) {
			mask |= 1 << uint(i)
		}
	}

	return mask
}

// Set returns the AttributeSet represented by mask with respect to ix.
func (ix Index) Set(mask uint64) attrset.AttributeSet {
	out := attrset.New()
	for i, a := range ix.attrs {
		if mask&(1<<uint(i)) != 0 {
			out.Add(a)
		}
	}

	return out
}

// Each invokes fn once for every non-empty subset of universe, in ascending
// bitmask order. Enumeration stops early if fn returns false. Returns
// ErrUniverseTooLarge if universe exceeds MaxBits attributes.
func Each(universe attrset.AttributeSet, fn func(attrset.AttributeSet) bool) error {
	ix, err := NewIndex(universe)
	if err != nil {
		return err
	}
	total := uint64(1) << uint(ix.Size())
	for mask := uint64(1); mask < total; mask++ {
		if !fn(ix.Set(mask)) {
			break
		}
	}

	return nil
}

// EachWithEmpty invokes fn once for every subset of universe, including the
// empty set, in ascending bitmask order.
func EachWithEmpty(universe attrset.AttributeSet, fn func(attrset.AttributeSet) bool) error {
	ix, err := NewIndex(universe)
	if err != nil {
		return err
	}
	total := uint64(1) << uint(ix.Size())
	for mask := uint64(0); mask < total; mask++ {
		if !fn(ix.Set(mask)) {
			break
		}
	}

	return nil
}

// All returns every non-empty subset of universe as a slice. It is a
// convenience wrapper around Each for callers that need the full collection
// rather than a streaming callback.
func All(universe attrset.AttributeSet) ([]attrset.AttributeSet, error) {
	var out []attrset.AttributeSet
	err := Each(universe, func(s attrset.AttributeSet) bool {
		out = append(out, s)

		return true
	})

	return out, err
}
