package core

import "fmt"

// ConfigurationError reports a simulation parameter rejected before any
// sampling starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// DataValidationError reports a malformed dataset. Row is the 1-based
// data-row position (0 for header-level problems); Column names the
// offending column when known.
type DataValidationError struct {
	Row    int
	Column string
	Reason string
}

func (e *DataValidationError) Error() string {
	switch {
	case e.Row == 0 && e.Column == "":
		return fmt.Sprintf("invalid dataset: %s", e.Reason)
	case e.Row == 0:
		return fmt.Sprintf("invalid dataset: column %q: %s", e.Column, e.Reason)
	case e.Column == "":
		return fmt.Sprintf("invalid dataset: row %d: %s", e.Row, e.Reason)
	default:
		return fmt.Sprintf("invalid dataset: row %d, column %q: %s", e.Row, e.Column, e.Reason)
	}
}

// DegenerateIntervalError reports a zero-width sampling interval at
// exactly zero (gap == 0 with a zero margin of error). Sampling such an
// interval would redraw forever, so it is rejected instead.
type DegenerateIntervalError struct {
	// Region names the contest whose bounds degenerated, when known.
	Region string
}

func (e *DegenerateIntervalError) Error() string {
	if e.Region == "" {
		return "degenerate sampling interval: both bounds are exactly zero"
	}
	return fmt.Sprintf("degenerate sampling interval for region %q: both bounds are exactly zero", e.Region)
}
