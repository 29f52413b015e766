package core

import "context"

// RunTrial simulates numElections independent national elections over
// the same bounded-region set and reduces them to a TrialResult.
//
// Classification is strict: a candidate wins an election only if their
// vote total strictly exceeds majorityThreshold. An election landing
// exactly at the threshold counts toward neither win probability, but
// its vote totals still contribute to the means.
//
// The context is checked once per election so a long trial can be
// cancelled without finishing the full batch.
func RunTrial(ctx context.Context, regions []BoundedRegion, numElections, majorityThreshold int, sampler *Sampler) (TrialResult, error) {
	if numElections <= 0 {
		return TrialResult{}, &ConfigurationError{Field: "numElections", Reason: "must be positive"}
	}

	var winsA, winsB int
	var sumVotesA, sumVotesB int64

	for i := 0; i < numElections; i++ {
		if err := ctx.Err(); err != nil {
			return TrialResult{}, err
		}

		outcome, err := SimulateElection(regions, sampler)
		if err != nil {
			return TrialResult{}, err
		}

		switch {
		case outcome.VotesA > majorityThreshold:
			winsA++
		case outcome.VotesB > majorityThreshold:
			winsB++
		}
		// No majority: neither counter moves, vote totals still accumulate.

		sumVotesA += int64(outcome.VotesA)
		sumVotesB += int64(outcome.VotesB)
	}

	n := float64(numElections)
	return TrialResult{
		ProbA:      float64(winsA) / n,
		ProbB:      float64(winsB) / n,
		MeanVotesA: float64(sumVotesA) / n,
		MeanVotesB: float64(sumVotesB) / n,
	}, nil
}
