package domain

import "tokenomics-lab/internal/fixedpoint"

// RawParameters holds the five user-entered decimal strings, in whole-token
// units, before normalization.
type RawParameters struct {
	PrimaryMaxSupply         string `mapstructure:"max_supply" json:"primary_max_supply"`
	TGEAllocation            string `mapstructure:"tge" json:"tge_allocation"`
	InitialSecondaryBurn     string `mapstructure:"initial_burn" json:"initial_secondary_burn"`
	HalvingStepPercent       string `mapstructure:"halving_step" json:"halving_step"`
	InitialRewardPerBurnUnit string `mapstructure:"initial_reward" json:"initial_reward_per_burn_unit"`
}

// TokenomicsParameters is the normalized, immutable input to the simulator.
// Minting quantities are scaled integers; the halving step stays an integer
// percentage in [0, 100].
type TokenomicsParameters struct {
	PrimaryMaxSupply         fixedpoint.Amount `json:"primary_max_supply"`           // hard cap of the primary token
	TGEAllocation            fixedpoint.Amount `json:"tge_allocation"`               // minted at genesis, outside the schedule
	InitialSecondaryBurn     fixedpoint.Amount `json:"initial_secondary_burn"`       // burn target of epoch 1
	HalvingStepPercent       int64             `json:"halving_step"`                 // reward multiplier per epoch, percent
	InitialRewardPerBurnUnit fixedpoint.Amount `json:"initial_reward_per_burn_unit"` // primary minted per InitialSecondaryBurn in epoch 1
	Scale                    fixedpoint.Scale  `json:"scale"`                        // scale of every Amount above
}

// ScheduleCapacity returns PrimaryMaxSupply - TGEAllocation. The result is
// negative when the TGE exceeds the cap.
func (p TokenomicsParameters) ScheduleCapacity() fixedpoint.Amount {
	return p.PrimaryMaxSupply.Sub(p.TGEAllocation)
}

// ClampedTGE returns the TGE allocation capped at the max supply.
func (p TokenomicsParameters) ClampedTGE() fixedpoint.Amount {
	return fixedpoint.Min(p.TGEAllocation, p.PrimaryMaxSupply)
}
