// Package report packages multi-trial estimation results for
// downstream consumers: a CSV table of the four estimator columns, or a
// JSON/CBOR document carrying run provenance alongside the rows.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/kanakonanami/A-Stochastic-Model-of-Presidential-Election/core"
)

// Report is one estimation run: an ordered sequence of trial rows plus
// enough provenance to reproduce it (seed, margin, dataset digest).
type Report struct {
	ID            string             `json:"id"`
	CreatedAt     time.Time          `json:"created_at"`
	Seed          int64              `json:"seed"`
	MarginOfError float64            `json:"margin_of_error"`
	DatasetDigest string             `json:"dataset_digest,omitempty"`
	Trials        []core.TrialResult `json:"trials"`
}

// New assembles a Report with a fresh run ID.
func New(trials []core.TrialResult, seed int64, marginOfError float64, datasetDigest string) *Report {
	return &Report{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Seed:          seed,
		MarginOfError: marginOfError,
		DatasetDigest: datasetDigest,
		Trials:        trials,
	}
}

// csvHeader lists the output columns: the trial index plus the four
// estimator columns.
var csvHeader = []string{"trial", "prob_a", "prob_b", "mean_votes_a", "mean_votes_b"}

// WriteCSV writes the trial rows as a CSV table, one row per trial in
// trial order.
func (r *Report) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i, trial := range r.Trials {
		record := []string{
			strconv.Itoa(i),
			formatFloat(trial.ProbA),
			formatFloat(trial.ProbB),
			formatFloat(trial.MeanVotesA),
			formatFloat(trial.MeanVotesB),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// EncodeJSON writes the full report, provenance included, as JSON.
func (r *Report) EncodeJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}
	return nil
}

// EncodeCBOR writes the full report as CBOR for binary consumers.
func (r *Report) EncodeCBOR(w io.Writer) error {
	if err := cbor.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("encode report cbor: %w", err)
	}
	return nil
}

// DecodeCBOR reads a report previously written by EncodeCBOR.
func DecodeCBOR(r io.Reader) (*Report, error) {
	var report Report
	if err := cbor.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report cbor: %w", err)
	}
	return &report, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
