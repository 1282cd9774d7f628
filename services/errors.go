package services

import "fmt"

// Calculation failures are explicit error values, never a silently-zero
// tax result. Handlers map them to HTTP statuses with errors.As.

// UnsupportedJurisdictionError means no regime is configured for the
// resolved key. Code carries the caller's original jurisdiction code for
// diagnostics.
type UnsupportedJurisdictionError struct {
	Code string
}

func (e *UnsupportedJurisdictionError) Error() string {
	return fmt.Sprintf("unsupported jurisdiction: %s", e.Code)
}

// UnsupportedSubregionError means a sales-tax country has no rate entry for
// the requested sub-region.
type UnsupportedSubregionError struct {
	Jurisdiction string
	Subregion    string
}

func (e *UnsupportedSubregionError) Error() string {
	return fmt.Sprintf("no tax configuration for sub-region %q in %s", e.Subregion, e.Jurisdiction)
}

// MisconfiguredRegimeError indicates internal registry data inconsistency.
// It should never occur with a validated registry and is logged loudly
// before being surfaced.
type MisconfiguredRegimeError struct {
	Key string
}

func (e *MisconfiguredRegimeError) Error() string {
	return fmt.Sprintf("misconfigured tax regime for key %q", e.Key)
}
