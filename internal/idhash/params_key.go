package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"tokenomics-lab/internal/domain"
)

// ComputeParamsKey computes a deterministic key for a normalized parameter
// tuple using SHA256.
// Formula: SHA256(max_supply|tge|initial_burn|halving_step|initial_reward|scale)
// Amounts are raw scaled integers. Returns hex-encoded hash (64 characters).
func ComputeParamsKey(p domain.TokenomicsParameters) string {
	data := fmt.Sprintf("%s|%s|%s|%d|%s|%d",
		p.PrimaryMaxSupply.String(),
		p.TGEAllocation.String(),
		p.InitialSecondaryBurn.String(),
		p.HalvingStepPercent,
		p.InitialRewardPerBurnUnit.String(),
		int64(p.Scale),
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
