package core

// SimulateElection runs one full national election: every region is
// resolved independently and its weight is awarded in whole to the
// winner. Regions are processed in dataset order; outcomes do not
// depend on each other, only on the shared (immutable) bounds and the
// sampler's own stream of draws.
func SimulateElection(regions []BoundedRegion, sampler *Sampler) (ElectionOutcome, error) {
	var outcome ElectionOutcome

	for _, region := range regions {
		winner, err := ResolveContest(region, sampler)
		if err != nil {
			return ElectionOutcome{}, err
		}

		if winner == CandidateA {
			outcome.VotesA += region.Weight
		} else {
			outcome.VotesB += region.Weight
		}
	}

	return outcome, nil
}
