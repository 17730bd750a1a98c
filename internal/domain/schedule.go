package domain

import (
	"github.com/shopspring/decimal"

	"tokenomics-lab/internal/fixedpoint"
)

// MaxEpochs is the hard ceiling on schedule length.
const MaxEpochs = 50

// EpochRecord is one completed halving step.
// All amounts share the scale of the parameters that produced them.
type EpochRecord struct {
	Index                     int               `json:"index"`                       // 1-based; 0 is the genesis point
	CumulativeSecondaryBurned fixedpoint.Amount `json:"cumulative_secondary_burned"` // equals the epoch's burn target
	CumulativePrimaryMinted   fixedpoint.Amount `json:"cumulative_primary_minted"`   // TGE + scheduled mint, capped at max supply
	PrimaryMintedThisEpoch    fixedpoint.Amount `json:"primary_minted_this_epoch"`   // after clamping to remaining capacity
	RewardPerBurnUnit         fixedpoint.Amount `json:"reward_per_burn_unit"`        // reward active during the epoch
	EffectiveMintRate         decimal.Decimal   `json:"effective_mint_rate"`         // primary per one secondary, reward / initial burn
}

// ScheduleResult is the output of one simulator run. It is never mutated
// after construction.
type ScheduleResult struct {
	Parameters TokenomicsParameters `json:"parameters"`
	Genesis    EpochRecord          `json:"genesis"` // implicit epoch 0
	Epochs     []EpochRecord        `json:"epochs"`

	// Degenerate is set when no scheduled minting can occur
	// (no capacity, zero reward or zero initial burn).
	Degenerate bool `json:"degenerate"`

	// CeilingReached is set when the loop stopped at MaxEpochs while the
	// schedule still had capacity left.
	CeilingReached bool `json:"ceiling_reached"`

	// TruncationBurn is the burn level of the final flat point emitted when
	// the schedule was exhausted mid-epoch. Nil otherwise.
	TruncationBurn *fixedpoint.Amount `json:"truncation_burn,omitempty"`
}

// FinalMinted returns the cumulative primary supply after the last epoch.
func (r *ScheduleResult) FinalMinted() fixedpoint.Amount {
	if len(r.Epochs) == 0 {
		return r.Genesis.CumulativePrimaryMinted
	}
	return r.Epochs[len(r.Epochs)-1].CumulativePrimaryMinted
}

// ThresholdSchedule is the ledger's storage layout of a schedule: cumulative
// secondary burn thresholds and the reward per burn unit that applies up to
// each threshold.
type ThresholdSchedule struct {
	SecondaryBurnThresholds []fixedpoint.Amount `json:"secondary_burn_thresholds"`
	PrimaryMintPerThreshold []fixedpoint.Amount `json:"primary_mint_per_threshold"`
	PrimaryMintedPerEpoch   []fixedpoint.Amount `json:"primary_minted_per_epoch,omitempty"`
}
