package metrics

import (
	"github.com/shopspring/decimal"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/series"
)

// Summarize reduces a schedule and its series to the scalar summary.
// Costs are the first and last defined, non-zero points of the cost
// staircase; the valuation is the last point of the USD cost series.
func Summarize(r *domain.ScheduleResult, s *domain.ScheduleSeries) *domain.Summary {
	p := r.Parameters
	sum := &domain.Summary{
		Epochs:                len(r.Epochs),
		TGEPercent:            series.PercentOfCap(p.ClampedTGE(), p.PrimaryMaxSupply),
		InitialMintCost:       decimal.Zero,
		FinalMintCost:         decimal.Zero,
		TotalMintingValuation: decimal.Zero,
	}

	if c, ok := firstCost(s.CostToMint.Y); ok {
		sum.InitialMintCost = c
	}
	if c, ok := lastCost(s.CostToMint.Y); ok {
		sum.FinalMintCost = c
	}
	if n := len(s.CumulativeUSDCost.Y); n > 0 {
		sum.TotalMintingValuation = s.CumulativeUSDCost.Y[n-1]
	}
	return sum
}

func firstCost(costs []decimal.NullDecimal) (decimal.Decimal, bool) {
	for _, c := range costs {
		if c.Valid && c.Decimal.Sign() > 0 {
			return c.Decimal, true
		}
	}
	return decimal.Zero, false
}

func lastCost(costs []decimal.NullDecimal) (decimal.Decimal, bool) {
	for i := len(costs) - 1; i >= 0; i-- {
		if costs[i].Valid && costs[i].Decimal.Sign() > 0 {
			return costs[i].Decimal, true
		}
	}
	return decimal.Zero, false
}
