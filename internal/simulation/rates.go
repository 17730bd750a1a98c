package simulation

import (
	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
)

// Rewards replays the halving recurrence independently of the epoch loop.
// The result starts at the initial reward and has epochs+1 entries: entry i
// is the reward per burn unit in force after i halvings.
func Rewards(p domain.TokenomicsParameters, epochs int) []fixedpoint.Amount {
	if epochs < 0 {
		epochs = 0
	}
	rewards := make([]fixedpoint.Amount, 0, epochs+1)
	reward := p.InitialRewardPerBurnUnit
	rewards = append(rewards, reward)
	for i := 0; i < epochs; i++ {
		reward = HalveReward(reward, p.HalvingStepPercent)
		rewards = append(rewards, reward)
	}
	return rewards
}

// ReconcileLength pads values with their last element (or zero) or truncates
// them so that len(result) == n.
func ReconcileLength(values []fixedpoint.Amount, n int) []fixedpoint.Amount {
	if n < 0 {
		n = 0
	}
	out := make([]fixedpoint.Amount, n)
	copy(out, values)
	for i := len(values); i < n; i++ {
		if i == 0 {
			out[i] = fixedpoint.Zero()
			continue
		}
		out[i] = out[i-1]
	}
	return out
}

// Thresholds converts a schedule into the ledger's storage layout.
func Thresholds(r *domain.ScheduleResult) domain.ThresholdSchedule {
	ts := domain.ThresholdSchedule{
		SecondaryBurnThresholds: make([]fixedpoint.Amount, 0, len(r.Epochs)),
		PrimaryMintPerThreshold: make([]fixedpoint.Amount, 0, len(r.Epochs)),
		PrimaryMintedPerEpoch:   make([]fixedpoint.Amount, 0, len(r.Epochs)),
	}
	for _, e := range r.Epochs {
		ts.SecondaryBurnThresholds = append(ts.SecondaryBurnThresholds, e.CumulativeSecondaryBurned)
		ts.PrimaryMintPerThreshold = append(ts.PrimaryMintPerThreshold, e.RewardPerBurnUnit)
		ts.PrimaryMintedPerEpoch = append(ts.PrimaryMintedPerEpoch, e.PrimaryMintedThisEpoch)
	}
	return ts
}
