package core

// ResolveContest decides the winner of a single region. Ties are
// impossible by construction: one-sided bounds decide immediately, and
// a straddling interval is settled by a guaranteed non-zero sampled
// adjustment.
//
// Regions whose bounds do not straddle zero are resolved without
// touching the sampler. Most regions in practice are one-sided at
// realistic margins of error, so the bulk of a simulation skips random
// sampling entirely.
func ResolveContest(region BoundedRegion, sampler *Sampler) (Candidate, error) {
	// One candidate is certain even at the most favorable adjustment.
	if region.UpperBound < 0 {
		return CandidateB, nil
	}
	if region.LowerBound > 0 {
		return CandidateA, nil
	}

	adjusted, err := sampler.Sample(region.LowerBound, region.UpperBound)
	if err != nil {
		return 0, &DegenerateIntervalError{Region: region.Name}
	}

	if adjusted > 0 {
		return CandidateA, nil
	}
	return CandidateB, nil
}
