// Package verification checks the local schedule preview against the
// schedule published by the authoritative ledger. Both sides use the same
// scaled-integer arithmetic, so every value must match exactly.
package verification

import (
	"fmt"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
	"tokenomics-lab/internal/simulation"
)

// FieldDivergence represents a mismatch between ledger and local values.
type FieldDivergence struct {
	Field    string `json:"field"`    // field name, indexed for sequence entries
	Expected string `json:"expected"` // ledger value
	Actual   string `json:"actual"`   // local value
}

// Report contains the result of one parity check.
type Report struct {
	Match       bool              `json:"match"`       // true if all fields match
	Epochs      int               `json:"epochs"`      // epochs in the local schedule
	Divergences []FieldDivergence `json:"divergences"` // list of divergent fields
}

// Verifier runs the local simulator and compares it with a ledger schedule.
type Verifier struct {
	sim *simulation.Simulator
}

// NewVerifier creates a verifier backed by sim.
func NewVerifier(sim *simulation.Simulator) *Verifier {
	return &Verifier{sim: sim}
}

// Verify simulates params and compares the result with ledger.
func (v *Verifier) Verify(params domain.TokenomicsParameters, ledger domain.ThresholdSchedule) *Report {
	result := v.sim.Run(params)
	divergences := CompareSchedules(simulation.Thresholds(result), ledger)
	return &Report{
		Match:       len(divergences) == 0,
		Epochs:      len(result.Epochs),
		Divergences: divergences,
	}
}

// CompareSchedules compares local with ledger and returns divergences.
// Per-epoch minted amounts are compared only when the ledger publishes them.
func CompareSchedules(local, ledger domain.ThresholdSchedule) []FieldDivergence {
	var divergences []FieldDivergence

	divergences = append(divergences,
		compareSequence("SecondaryBurnThresholds", local.SecondaryBurnThresholds, ledger.SecondaryBurnThresholds)...)
	divergences = append(divergences,
		compareSequence("PrimaryMintPerThreshold", local.PrimaryMintPerThreshold, ledger.PrimaryMintPerThreshold)...)

	if len(ledger.PrimaryMintedPerEpoch) > 0 {
		divergences = append(divergences,
			compareSequence("PrimaryMintedPerEpoch", local.PrimaryMintedPerEpoch, ledger.PrimaryMintedPerEpoch)...)
	}

	return divergences
}

func compareSequence(field string, local, ledger []fixedpoint.Amount) []FieldDivergence {
	var divergences []FieldDivergence

	if len(local) != len(ledger) {
		divergences = append(divergences, FieldDivergence{
			Field:    field + ".len",
			Expected: fmt.Sprint(len(ledger)),
			Actual:   fmt.Sprint(len(local)),
		})
	}

	n := len(local)
	if len(ledger) < n {
		n = len(ledger)
	}
	for i := 0; i < n; i++ {
		if !local[i].Equal(ledger[i]) {
			divergences = append(divergences, FieldDivergence{
				Field:    fmt.Sprintf("%s[%d]", field, i),
				Expected: ledger[i].String(),
				Actual:   local[i].String(),
			})
		}
	}

	return divergences
}
