package verification

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
	"tokenomics-lab/internal/normalization"
	"tokenomics-lab/internal/simulation"
)

// Ledger output for max supply 1,000,000, TGE 100,000, initial burn
// 1,000,000, halving 70%, initial reward 200,000.
const workedExampleLedger = `{
  "secondary_burn_thresholds": [100000000000000, 200000000000000, 400000000000000, 800000000000000, 1600000000000000],
  "primary_mint_per_threshold": [20000000000000, 14000000000000, 9800000000000, 6860000000000, 4802000000000],
  "primary_minted_per_epoch": ["20000000000000", "14000000000000", "19600000000000", "27440000000000", "8960000000000"]
}`

func workedExampleParams() domain.TokenomicsParameters {
	return normalization.Normalize(domain.RawParameters{
		PrimaryMaxSupply:         "1000000",
		TGEAllocation:            "100000",
		InitialSecondaryBurn:     "1000000",
		HalvingStepPercent:       "70",
		InitialRewardPerBurnUnit: "200000",
	})
}

func newVerifier() *Verifier {
	return NewVerifier(simulation.NewSimulator(simulation.DefaultConfig()))
}

func TestVerify_WorkedExampleMatchesLedger(t *testing.T) {
	ledger, err := ParseLedgerSchedule(strings.NewReader(workedExampleLedger))
	require.NoError(t, err)

	report := newVerifier().Verify(workedExampleParams(), ledger)
	assert.True(t, report.Match, "divergences: %+v", report.Divergences)
	assert.Equal(t, 5, report.Epochs)
	assert.Empty(t, report.Divergences)
}

func TestVerify_ReportsOffByOneUnit(t *testing.T) {
	ledger, err := ParseLedgerSchedule(strings.NewReader(workedExampleLedger))
	require.NoError(t, err)
	ledger.PrimaryMintPerThreshold[2] = ledger.PrimaryMintPerThreshold[2].Add(fixedpoint.One())

	report := newVerifier().Verify(workedExampleParams(), ledger)
	assert.False(t, report.Match)
	require.Len(t, report.Divergences, 1)
	assert.Equal(t, FieldDivergence{
		Field:    "PrimaryMintPerThreshold[2]",
		Expected: "9800000000001",
		Actual:   "9800000000000",
	}, report.Divergences[0])
}

func TestCompareSchedules_LengthMismatch(t *testing.T) {
	local := domain.ThresholdSchedule{
		SecondaryBurnThresholds: []fixedpoint.Amount{fixedpoint.FromInt64(1), fixedpoint.FromInt64(2)},
		PrimaryMintPerThreshold: []fixedpoint.Amount{fixedpoint.FromInt64(10), fixedpoint.FromInt64(7)},
	}
	ledger := domain.ThresholdSchedule{
		SecondaryBurnThresholds: []fixedpoint.Amount{fixedpoint.FromInt64(1)},
		PrimaryMintPerThreshold: []fixedpoint.Amount{fixedpoint.FromInt64(10)},
	}

	divs := CompareSchedules(local, ledger)
	require.Len(t, divs, 2)
	assert.Equal(t, "SecondaryBurnThresholds.len", divs[0].Field)
	assert.Equal(t, "1", divs[0].Expected)
	assert.Equal(t, "2", divs[0].Actual)
	assert.Equal(t, "PrimaryMintPerThreshold.len", divs[1].Field)
}

func TestCompareSchedules_SkipsUnpublishedMinted(t *testing.T) {
	local := domain.ThresholdSchedule{
		PrimaryMintedPerEpoch: []fixedpoint.Amount{fixedpoint.FromInt64(5)},
	}
	assert.Empty(t, CompareSchedules(local, domain.ThresholdSchedule{}))
}

func TestVerify_DegenerateMatchesEmptyLedger(t *testing.T) {
	report := newVerifier().Verify(domain.TokenomicsParameters{Scale: fixedpoint.E8S}, domain.ThresholdSchedule{})
	assert.True(t, report.Match)
	assert.Equal(t, 0, report.Epochs)
}

func TestParseLedgerSchedule_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{`},
		{"fractional amount", `{"secondary_burn_thresholds": ["1.5"], "primary_mint_per_threshold": [1]}`},
		{"unknown field", `{"thresholds": []}`},
		{"length mismatch", `{"secondary_burn_thresholds": [1, 2], "primary_mint_per_threshold": [1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLedgerSchedule(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLedger))
		})
	}
}

func TestLoadLedgerSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(workedExampleLedger), 0o600))

	ledger, err := LoadLedgerSchedule(path)
	require.NoError(t, err)
	assert.Len(t, ledger.SecondaryBurnThresholds, 5)
	assert.Equal(t, "1600000000000000", ledger.SecondaryBurnThresholds[4].String())

	_, err = LoadLedgerSchedule(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
