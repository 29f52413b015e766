package core

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config holds every parameter of a multi-trial estimation run. All
// values are explicit; the estimator reads no globals.
type Config struct {
	// MarginOfError bounds the uncertainty around each region's polled
	// gap. Must be non-negative.
	MarginOfError float64

	// NumTrials is the number of independent trials to run.
	NumTrials int

	// ElectionsPerTrial is the number of simulated elections per trial.
	ElectionsPerTrial int

	// MajorityThreshold is the vote total a candidate must strictly
	// exceed to win an election. Half the total region weight for a
	// standard election; see HalfTotalWeight.
	MajorityThreshold int

	// Seed initializes the pseudorandom streams. Trial i draws from its
	// own stream seeded Seed+i, so a fixed Seed reproduces every result
	// bit for bit regardless of how trials are scheduled.
	Seed int64

	// Workers caps concurrent trials. Zero means GOMAXPROCS.
	Workers int
}

// Validate rejects unusable parameters before any simulation starts.
func (c Config) Validate() error {
	if c.MarginOfError < 0 {
		return &ConfigurationError{Field: "MarginOfError", Reason: "must be non-negative"}
	}
	if c.NumTrials <= 0 {
		return &ConfigurationError{Field: "NumTrials", Reason: "must be positive"}
	}
	if c.ElectionsPerTrial <= 0 {
		return &ConfigurationError{Field: "ElectionsPerTrial", Reason: "must be positive"}
	}
	if c.Workers < 0 {
		return &ConfigurationError{Field: "Workers", Reason: "must be non-negative"}
	}
	return nil
}

// ValidateRegions rejects datasets the simulation cannot run on. Row
// numbers in the returned errors are 1-based dataset positions.
func ValidateRegions(regions []Region) error {
	if len(regions) == 0 {
		return &DataValidationError{Row: 0, Reason: "dataset is empty"}
	}

	seen := make(map[string]bool, len(regions))
	for i, region := range regions {
		if region.Weight <= 0 {
			return &DataValidationError{Row: i + 1, Column: "weight", Reason: "must be positive"}
		}
		if seen[region.Name] {
			return &DataValidationError{Row: i + 1, Column: "name", Reason: "duplicate region name " + region.Name}
		}
		seen[region.Name] = true
	}
	return nil
}

// Estimate runs cfg.NumTrials independent trials of
// cfg.ElectionsPerTrial elections each over the same dataset and
// returns one TrialResult per trial, ordered by trial index. The spread
// across rows estimates the sampling variance of the win-probability
// and mean-vote estimators themselves.
//
// Bounds are derived from the dataset and margin of error exactly once
// and shared read-only across all trials. Trials run on a bounded
// worker pool; each owns a disjoint output slot and its own seeded
// stream, so no synchronization of results is needed and the output is
// identical to a sequential run.
func Estimate(ctx context.Context, regions []Region, cfg Config) ([]TrialResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateRegions(regions); err != nil {
		return nil, err
	}

	bounded := DeriveBounds(regions, cfg.MarginOfError)
	results := make([]TrialResult, cfg.NumTrials)

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range results {
		i := i
		g.Go(func() error {
			sampler := NewSampler(rand.New(rand.NewSource(cfg.Seed + int64(i))))

			result, err := RunTrial(ctx, bounded, cfg.ElectionsPerTrial, cfg.MajorityThreshold, sampler)
			if err != nil {
				return err
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
