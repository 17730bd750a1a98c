package verification

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"tokenomics-lab/internal/domain"
)

// ErrInvalidLedger is returned when a ledger snapshot cannot be decoded or
// is internally inconsistent.
var ErrInvalidLedger = errors.New("invalid ledger snapshot")

// ParseLedgerSchedule decodes a JSON ledger schedule. Amounts may be JSON
// numbers or decimal strings of raw scaled integers.
func ParseLedgerSchedule(r io.Reader) (domain.ThresholdSchedule, error) {
	var ts domain.ThresholdSchedule
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ts); err != nil {
		return domain.ThresholdSchedule{}, fmt.Errorf("%w: %v", ErrInvalidLedger, err)
	}
	if len(ts.SecondaryBurnThresholds) != len(ts.PrimaryMintPerThreshold) {
		return domain.ThresholdSchedule{}, fmt.Errorf("%w: %d thresholds but %d rewards",
			ErrInvalidLedger, len(ts.SecondaryBurnThresholds), len(ts.PrimaryMintPerThreshold))
	}
	return ts, nil
}

// LoadLedgerSchedule reads a ledger schedule from a JSON file.
func LoadLedgerSchedule(path string) (domain.ThresholdSchedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.ThresholdSchedule{}, fmt.Errorf("open ledger snapshot: %w", err)
	}
	defer f.Close()

	return ParseLedgerSchedule(f)
}
