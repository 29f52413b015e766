package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestDeriveBounds(t *testing.T) {
	regions := []Region{
		{Name: "X", Weight: 3, Gap: 0.10},
		{Name: "Y", Weight: 2, Gap: -0.04},
		{Name: "Z", Weight: 1, Gap: 0},
	}

	bounded := DeriveBounds(regions, 0.05)

	check.Equal(t, len(regions), len(bounded))
	for i, b := range bounded {
		check.Equal(t, regions[i], b.Region)
		check.True(t, b.LowerBound <= b.Gap)
		check.True(t, b.Gap <= b.UpperBound)
	}

	// Zero margin collapses both bounds onto the gap.
	collapsed := DeriveBounds(regions, 0)
	for _, b := range collapsed {
		check.Equal(t, b.Gap, b.LowerBound)
		check.Equal(t, b.Gap, b.UpperBound)
	}
}

func TestHalfTotalWeight(t *testing.T) {
	tests := []struct {
		name     string
		regions  []Region
		expected int
	}{
		{"even total", []Region{{Weight: 6}, {Weight: 4}}, 5},
		{"odd total", []Region{{Weight: 3}, {Weight: 2}}, 2},
		{"single region", []Region{{Weight: 10}}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check.Equal(t, tt.expected, HalfTotalWeight(tt.regions))
		})
	}
}

func TestCandidateString(t *testing.T) {
	check.Equal(t, "A", CandidateA.String())
	check.Equal(t, "B", CandidateB.String())
}
