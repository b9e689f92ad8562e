package gen

import (
	"github.com/relnorm/normalize/attrset"
	"github.com/relnorm/normalize/fd"
)

const minAttributes = 1

// Schema is a generated (attribute universe, FD set) pair.
type Schema struct {
	Universe attrset.AttributeSet
	FDs      []fd.FD
}

// RandomSchema generates a Schema over n attributes. For every ordered pair
// (candidate LHS, candidate RHS attribute) with RHS outside the LHS, the FD
// is admitted independently with probability cfg.fdProbability; trivial or
// duplicate candidates are silently skipped rather than retried, since
// skipping changes nothing about the statistical shape of the result.
//
// WithRand is mandatory: RandomSchema never reads the global math/rand
// source, matching the teacher's builder package discipline.
func RandomSchema(n int, opts ...Option) (Schema, error) {
	if n < minAttributes {
		return Schema{}, ErrTooFewAttributes
	}

	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Schema{}, ErrNeedRandSource
	}
	if cfg.fdProbability < 0 || cfg.fdProbability > 1 {
		return Schema{}, ErrInvalidProbability
	}

	attrs := make([]attrset.Attribute, n)
	for i := range attrs {
		attrs[i] = attributeName(i)
	}
	universe := attrset.FromSlice(attrs)

	var fds []fd.FD
	for i := range attrs {
		lhsSize := 1 + cfg.rng.Intn(cfg.maxLHSSize)
		lhs := sampleLHS(attrs, i, lhsSize, cfg)
		for j := range attrs {
			if lhs.Contains(attrs[j]) {
				continue
			}
			if cfg.rng.Float64() >= cfg.fdProbability {
				continue
			}
			candidate, err := fd.New(lhs, attrset.New(attrs[j]))
			if err != nil {
				continue // trivial candidate, skip
			}
			if fd.ContainsEqual(fds, candidate) {
				continue
			}
			fds = append(fds, candidate)
		}
	}

	return Schema{Universe: universe, FDs: fds}, nil
}

// sampleLHS builds an LHS of the requested size anchored at attrs[seed],
// filling the rest with a random sample of the remaining attributes.
func sampleLHS(attrs []attrset.Attribute, seed, size int, cfg *config) attrset.AttributeSet {
	lhs := attrset.New(attrs[seed])
	if size <= 1 || len(attrs) <= 1 {
		return lhs
	}

	perm := cfg.rng.Perm(len(attrs))
	for _, idx := range perm {
		if lhs.Size() >= size {
			break
		}
		lhs.Add(attrs[idx])
	}

	return lhs
}

// attributeName maps an index to a stable attribute symbol: A..Z, then
// AA..AZ, BA.., matching a base-26 letter counter.
func attributeName(i int) attrset.Attribute {
	var out []byte
	i++ // 1-indexed for the classic bijective base-26 scheme
	for i > 0 {
		i--
		out = append([]byte{byte('A' + i%26)}, out...)
		i /= 26
	}

	return attrset.Attribute(out)
}
