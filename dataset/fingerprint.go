package dataset

import (
	"crypto/sha256"
	"fmt"

	"github.com/kanakonanami/A-Stochastic-Model-of-Presidential-Election/core"
)

// Fingerprint computes a hex SHA-256 digest of a dataset, used to tie a
// report back to the exact regions it was estimated from.
//
// Formula: SHA256 over one "name|weight|gap" line per region, in dataset
// order. Gaps are formatted to exactly 6 decimal places so the digest is
// stable regardless of how the float is represented in memory.
func Fingerprint(regions []core.Region) string {
	h := sha256.New()
	for _, region := range regions {
		fmt.Fprintf(h, "%s|%d|%.6f\n", region.Name, region.Weight, region.Gap)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
