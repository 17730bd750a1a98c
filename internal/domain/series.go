package domain

import (
	"github.com/shopspring/decimal"

	"tokenomics-lab/internal/fixedpoint"
)

// Series is a same-length pair of x/y sequences.
type Series[X, Y any] struct {
	X []X `json:"x"`
	Y []Y `json:"y"`
}

// Len returns the number of points.
func (s Series[X, Y]) Len() int {
	return len(s.X)
}

// Append returns s with (x, y) appended.
func (s Series[X, Y]) Append(x X, y Y) Series[X, Y] {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
	return s
}

// NoScheduledMintingLabel is the minted-per-epoch label of a degenerate schedule.
const NoScheduledMintingLabel = "No Scheduled Minting"

// ScheduleSeries are the plotting series derived from a ScheduleResult.
type ScheduleSeries struct {
	// BurnUnitCostUSD is the secondary token price the USD values use.
	BurnUnitCostUSD decimal.Decimal `json:"burn_unit_cost_usd"`

	// CumulativeSupply: cumulative secondary burned -> cumulative primary minted.
	CumulativeSupply Series[fixedpoint.Amount, fixedpoint.Amount] `json:"cumulative_supply"`

	// MintedPerEpoch: epoch label -> primary minted in that epoch.
	MintedPerEpoch Series[string, fixedpoint.Amount] `json:"minted_per_epoch"`

	// EffectiveMintRate: cumulative secondary burned -> primary per secondary.
	EffectiveMintRate Series[fixedpoint.Amount, decimal.Decimal] `json:"effective_mint_rate"`

	// CostPerPrimaryToken is parallel to EffectiveMintRate.Y; invalid where the reward is zero.
	CostPerPrimaryToken []decimal.NullDecimal `json:"cost_per_primary_token"`

	// CumulativeUSDCost: cumulative primary minted -> USD spent on burns.
	CumulativeUSDCost Series[fixedpoint.Amount, decimal.Decimal] `json:"cumulative_usd_cost"`

	// PercentOfCap: cumulative primary minted -> percent of max supply.
	PercentOfCap Series[fixedpoint.Amount, decimal.Decimal] `json:"percent_of_cap"`

	// CostToMint is the staircase of per-token cost over cumulative primary minted.
	CostToMint Series[fixedpoint.Amount, decimal.NullDecimal] `json:"cost_to_mint"`
}

// Summary holds the scalar metrics shown above the charts.
type Summary struct {
	Epochs                int             `json:"epochs"`
	TGEPercent            decimal.Decimal `json:"tge_percent"`
	InitialMintCost       decimal.Decimal `json:"initial_mint_cost"`
	FinalMintCost         decimal.Decimal `json:"final_mint_cost"`
	TotalMintingValuation decimal.Decimal `json:"total_minting_valuation"`
}

// Preview bundles one full computation for a parameter set.
type Preview struct {
	Key      string          `json:"key"` // idhash of the normalized parameters
	Schedule *ScheduleResult `json:"schedule"`
	Series   *ScheduleSeries `json:"series"`
	Summary  *Summary        `json:"summary"`
}
