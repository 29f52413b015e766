// Package dataset loads per-region polling tables for the simulation
// core. It maps CSV columns onto core.Region records, parses
// percent-formatted numbers exactly, and fails fast on malformed rows.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kanakonanami/A-Stochastic-Model-of-Presidential-Election/core"
)

// Columns names the CSV columns a dataset is read from. The gap column
// is preferred when present; otherwise the gap is derived from the two
// share columns as ShareA - ShareB.
type Columns struct {
	Name   string
	Weight string
	Gap    string
	ShareA string
	ShareB string
}

// DefaultColumns returns the column names used by the reference
// presidential datasets.
func DefaultColumns() Columns {
	return Columns{
		Name:   "state",
		Weight: "electors",
		Gap:    "gap",
		ShareA: "share_a",
		ShareB: "share_b",
	}
}

// LoadFile reads a CSV dataset from path.
func LoadFile(path string, cols Columns) ([]core.Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	regions, err := Read(f, cols)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return regions, nil
}

// Read parses a CSV dataset. The first record is the header; matching
// against cols is case-insensitive and ignores surrounding whitespace.
// Any malformed cell aborts the read with a DataValidationError naming
// the offending row and column - no value is silently coerced.
func Read(r io.Reader, cols Columns) ([]core.Region, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[strings.ToLower(strings.TrimSpace(column))] = i
	}

	lookup := func(name string) (int, bool) {
		i, ok := index[strings.ToLower(name)]
		return i, ok
	}

	nameIdx, ok := lookup(cols.Name)
	if !ok {
		return nil, &core.DataValidationError{Column: cols.Name, Reason: "column not found in header"}
	}
	weightIdx, ok := lookup(cols.Weight)
	if !ok {
		return nil, &core.DataValidationError{Column: cols.Weight, Reason: "column not found in header"}
	}

	gapIdx, hasGap := lookup(cols.Gap)
	shareAIdx, hasShareA := lookup(cols.ShareA)
	shareBIdx, hasShareB := lookup(cols.ShareB)
	if !hasGap && !(hasShareA && hasShareB) {
		return nil, &core.DataValidationError{
			Column: cols.Gap,
			Reason: fmt.Sprintf("header has neither a %q column nor both %q and %q", cols.Gap, cols.ShareA, cols.ShareB),
		}
	}

	var regions []core.Region
	seen := make(map[string]bool)

	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &core.DataValidationError{Row: row, Reason: err.Error()}
		}

		name := strings.TrimSpace(record[nameIdx])
		if name == "" {
			return nil, &core.DataValidationError{Row: row, Column: cols.Name, Reason: "empty region name"}
		}
		if seen[name] {
			return nil, &core.DataValidationError{Row: row, Column: cols.Name, Reason: "duplicate region name " + name}
		}
		seen[name] = true

		weight, err := strconv.Atoi(strings.TrimSpace(record[weightIdx]))
		if err != nil {
			return nil, &core.DataValidationError{Row: row, Column: cols.Weight, Reason: "not an integer: " + record[weightIdx]}
		}
		if weight <= 0 {
			return nil, &core.DataValidationError{Row: row, Column: cols.Weight, Reason: "must be positive"}
		}

		var gap decimal.Decimal
		if hasGap {
			gap, err = parseFraction(record[gapIdx])
			if err != nil {
				return nil, &core.DataValidationError{Row: row, Column: cols.Gap, Reason: err.Error()}
			}
		} else {
			shareA, err := parseFraction(record[shareAIdx])
			if err != nil {
				return nil, &core.DataValidationError{Row: row, Column: cols.ShareA, Reason: err.Error()}
			}
			shareB, err := parseFraction(record[shareBIdx])
			if err != nil {
				return nil, &core.DataValidationError{Row: row, Column: cols.ShareB, Reason: err.Error()}
			}
			// Subtract in decimal so e.g. "52.1%" - "47.9%" is exactly 0.042.
			gap = shareA.Sub(shareB)
		}

		gapValue, _ := gap.Float64()
		regions = append(regions, core.Region{
			Name:   name,
			Weight: weight,
			Gap:    gapValue,
		})
	}

	if len(regions) == 0 {
		return nil, &core.DataValidationError{Reason: "dataset has no data rows"}
	}
	return regions, nil
}

// parseFraction parses a signed numeric cell. A trailing "%" divides by
// 100, so "42.3%" parses to exactly 0.423.
func parseFraction(cell string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return decimal.Decimal{}, fmt.Errorf("empty numeric value")
	}

	percent := strings.HasSuffix(trimmed, "%")
	if percent {
		trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, "%"))
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("not a number: %s", cell)
	}

	if percent {
		value = value.Div(decimal.NewFromInt(100))
	}
	return value, nil
}
