package core

// Candidate identifies one of the two national candidates.
type Candidate int

const (
	CandidateA Candidate = iota
	CandidateB
)

// String returns the candidate label used in reports and error messages.
func (c Candidate) String() string {
	if c == CandidateA {
		return "A"
	}
	return "B"
}

// Region represents a single winner-take-all contest: one row of the
// input dataset.
type Region struct {
	// Name uniquely identifies the region within a dataset.
	Name string `json:"name"`

	// Weight is the number of votes awarded entirely to the region's
	// winner. Must be positive.
	Weight int `json:"weight"`

	// Gap is candidate A's estimated vote share minus candidate B's,
	// from polling. Unconstrained in sign and magnitude.
	Gap float64 `json:"gap"`
}

// BoundedRegion is a Region with the sampling interval implied by a
// margin of error. Derived once per (dataset, margin) pair by
// DeriveBounds and reused for every simulated election; the bounds are
// never recomputed inside the simulation hot path.
type BoundedRegion struct {
	Region

	// LowerBound is Gap - marginOfError.
	LowerBound float64 `json:"lower_bound"`

	// UpperBound is Gap + marginOfError.
	UpperBound float64 `json:"upper_bound"`
}

// DeriveBounds computes the per-region sampling intervals for a given
// margin of error. The returned slice preserves dataset order and is
// treated as immutable by every simulation that consumes it.
func DeriveBounds(regions []Region, marginOfError float64) []BoundedRegion {
	bounded := make([]BoundedRegion, len(regions))
	for i, region := range regions {
		bounded[i] = BoundedRegion{
			Region:     region,
			LowerBound: region.Gap - marginOfError,
			UpperBound: region.Gap + marginOfError,
		}
	}
	return bounded
}

// ElectionOutcome contains the national vote totals of one simulated
// election. VotesA + VotesB always equals the sum of all region weights:
// every region is awarded to exactly one candidate.
type ElectionOutcome struct {
	VotesA int `json:"votes_a"`
	VotesB int `json:"votes_b"`
}

// TrialResult aggregates one trial of N simulated elections.
type TrialResult struct {
	// ProbA and ProbB are the fractions of elections in which the
	// candidate strictly exceeded the majority threshold. Their sum may
	// be below 1: elections landing exactly at the threshold count
	// toward neither.
	ProbA float64 `json:"prob_a"`
	ProbB float64 `json:"prob_b"`

	// MeanVotesA and MeanVotesB are arithmetic means of the vote totals
	// across all elections of the trial, no-majority elections included.
	MeanVotesA float64 `json:"mean_votes_a"`
	MeanVotesB float64 `json:"mean_votes_b"`
}

// TotalWeight returns the sum of all region weights.
func TotalWeight(regions []Region) int {
	total := 0
	for _, region := range regions {
		total += region.Weight
	}
	return total
}

// HalfTotalWeight returns half the total region weight, the standard
// majority threshold: a candidate wins an election iff their vote total
// strictly exceeds it. Integer division keeps the comparison exact for
// both weight-sum parities.
func HalfTotalWeight(regions []Region) int {
	return TotalWeight(regions) / 2
}
