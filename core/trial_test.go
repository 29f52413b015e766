package core

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestRunTrial_CertainOutcome(t *testing.T) {
	regions := DeriveBounds([]Region{
		{Name: "X", Weight: 3, Gap: 0.10},
		{Name: "Y", Weight: 2, Gap: -0.10},
	}, 0.05)

	tests := []struct {
		name         string
		numElections int
	}{
		{"single election", 1},
		{"small batch", 100},
		{"large batch", 10_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sampler := NewSampler(rand.New(rand.NewSource(1)))

			result, err := RunTrial(context.Background(), regions, tt.numElections, 2, sampler)
			check.NoError(t, err)
			check.Equal(t, 1.0, result.ProbA)
			check.Equal(t, 0.0, result.ProbB)
			check.Equal(t, 3.0, result.MeanVotesA)
			check.Equal(t, 2.0, result.MeanVotesB)
		})
	}
}

func TestRunTrial_NoMajority(t *testing.T) {
	// Even weight sum split exactly at the threshold: neither candidate
	// ever strictly exceeds totalWeight/2, but the vote means still
	// reflect the 5-5 outcome.
	regions := DeriveBounds([]Region{
		{Name: "solid_a", Weight: 5, Gap: 0.20},
		{Name: "solid_b", Weight: 5, Gap: -0.20},
	}, 0.05)

	sampler := NewSampler(rand.New(rand.NewSource(1)))
	result, err := RunTrial(context.Background(), regions, 1_000, 5, sampler)

	check.NoError(t, err)
	check.Equal(t, 0.0, result.ProbA)
	check.Equal(t, 0.0, result.ProbB)
	check.Equal(t, 5.0, result.MeanVotesA)
	check.Equal(t, 5.0, result.MeanVotesB)
}

func TestRunTrial_StraddlingTossup(t *testing.T) {
	// One pure tossup region: each election is 10-0 or 0-10 with equal
	// probability. Over 100k elections the win fractions sit within a
	// few binomial standard errors of 0.5 (sqrt(0.25/100000) ≈ 0.0016).
	regions := DeriveBounds([]Region{
		{Name: "tossup", Weight: 10, Gap: 0},
	}, 0.1)

	sampler := NewSampler(rand.New(rand.NewSource(42)))
	result, err := RunTrial(context.Background(), regions, 100_000, 5, sampler)

	check.NoError(t, err)
	check.True(t, math.Abs(result.ProbA-0.5) < 0.01)
	check.True(t, math.Abs(result.ProbB-0.5) < 0.01)
	// 10-0 or 0-10, always a majority.
	check.True(t, math.Abs(result.ProbA+result.ProbB-1.0) < 1e-9)
	check.True(t, math.Abs(result.MeanVotesA+result.MeanVotesB-10.0) < 1e-9)
}

func TestRunTrial_Determinism(t *testing.T) {
	regions := DeriveBounds([]Region{
		{Name: "tossup_1", Weight: 4, Gap: 0.01},
		{Name: "tossup_2", Weight: 3, Gap: -0.02},
	}, 0.1)

	first, err := RunTrial(context.Background(), regions, 5_000, 3, NewSampler(rand.New(rand.NewSource(7))))
	check.NoError(t, err)
	second, err := RunTrial(context.Background(), regions, 5_000, 3, NewSampler(rand.New(rand.NewSource(7))))
	check.NoError(t, err)

	check.Equal(t, first, second)
}

func TestRunTrial_InvalidElectionCount(t *testing.T) {
	regions := DeriveBounds([]Region{{Name: "X", Weight: 1, Gap: 0.1}}, 0)

	for _, n := range []int{0, -5} {
		_, err := RunTrial(context.Background(), regions, n, 0, NewSampler(&scriptedSource{}))

		var confErr *ConfigurationError
		check.True(t, errors.As(err, &confErr))
	}
}

func TestRunTrial_Cancellation(t *testing.T) {
	regions := DeriveBounds([]Region{{Name: "X", Weight: 1, Gap: 0.1}}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunTrial(ctx, regions, 1_000_000, 0, NewSampler(&scriptedSource{}))
	check.True(t, errors.Is(err, context.Canceled))
}
