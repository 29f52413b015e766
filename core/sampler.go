package core

// RandSource provides uniform random draws for contest sampling.
// This interface enables dependency injection for deterministic testing:
// *math/rand.Rand satisfies it, so a fixed seed yields bit-for-bit
// reproducible sequences of draws.
type RandSource interface {
	// Float64 returns a random value in [0, 1).
	Float64() float64
}

// Sampler draws non-zero adjustment values uniformly from a bounded
// interval.
type Sampler struct {
	src RandSource
}

// NewSampler returns a Sampler backed by the given source.
func NewSampler(src RandSource) *Sampler {
	return &Sampler{src: src}
}

// Sample draws uniformly from [low, high] and never returns exactly
// zero: an exact-zero draw models a contest rerun and is redrawn. The
// single interval that cannot produce a non-zero value, low == high == 0,
// is rejected with a DegenerateIntervalError rather than looping forever.
func (s *Sampler) Sample(low, high float64) (float64, error) {
	if low == 0 && high == 0 {
		return 0, &DegenerateIntervalError{}
	}

	for {
		value := low + s.src.Float64()*(high-low)
		if value != 0 {
			return value, nil
		}
	}
}
