package gen

import "math/rand"

// Option customizes RandomSchema's behavior.
type Option func(cfg *config)

type config struct {
	rng           *rand.Rand
	fdProbability float64
	maxLHSSize    int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		rng:           nil,
		fdProbability: 0.3,
		maxLHSSize:    2,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand injects the *rand.Rand source. Required: RandomSchema returns
// ErrNeedRandSource without one.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithFDProbability sets the independent probability that any given
// (LHS, RHS-attribute) candidate pair is admitted as an FD.
func WithFDProbability(p float64) Option {
	return func(cfg *config) { cfg.fdProbability = p }
}

// WithMaxLHSSize bounds how many attributes a generated FD's LHS may contain.
func WithMaxLHSSize(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.maxLHSSize = n
		}
	}
}
