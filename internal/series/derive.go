// Package series maps a computed schedule onto the plotting series shown by
// the preview: cumulative supply, minted per epoch, effective mint rate,
// cumulative USD cost, percent of cap and the cost-to-mint staircase.
//
// Amounts stay scaled integers. USD values and percentages are exact
// decimals; float conversion happens only in reporting.
package series

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
	"tokenomics-lab/internal/simulation"
)

// PercentPlaces is the rounding precision of percent-of-cap values.
const PercentPlaces = 2

// placeholderBurnUnits is the burn axis extent used when no other scale is available.
const placeholderBurnUnits = 1000

var (
	hundred = decimal.NewFromInt(100)

	// smallest non-zero x of the minted axis when there is no TGE
	placeholderMinted = decimal.RequireFromString("0.00001")
)

// Deriver builds ScheduleSeries values. It is safe for concurrent use.
type Deriver struct {
	scale    fixedpoint.Scale
	burnCost decimal.Decimal
}

// NewDeriver creates a deriver using the simulator's scale and burn price.
func NewDeriver(cfg simulation.Config) *Deriver {
	cfg = cfg.WithDefaults()
	return &Deriver{scale: cfg.Scale, burnCost: cfg.BurnUnitCostUSD}
}

// CumulativeUSDCost returns burned * unit price in USD.
func (d *Deriver) CumulativeUSDCost(burned fixedpoint.Amount) decimal.Decimal {
	return burned.Decimal(d.scale).Mul(d.burnCost)
}

// CostPerPrimaryToken returns the USD cost of one primary token minted at
// reward per initialBurn: burnCost * initialBurn / reward, taken on the raw
// scaled amounts so the rate is never rounded first. The result is invalid
// when the reward or the initial burn is zero.
func (d *Deriver) CostPerPrimaryToken(reward, initialBurn fixedpoint.Amount) decimal.NullDecimal {
	if reward.Sign() <= 0 || initialBurn.Sign() <= 0 {
		return decimal.NullDecimal{}
	}
	burn := decimal.NewFromBigInt(initialBurn.BigInt(), 0)
	return decimal.NewNullDecimal(d.burnCost.Mul(burn).Div(decimal.NewFromBigInt(reward.BigInt(), 0)))
}

// PercentOfCap returns 100 * minted / cap rounded to two places, or zero
// when the cap is zero.
func PercentOfCap(minted, maxSupply fixedpoint.Amount) decimal.Decimal {
	if maxSupply.Sign() <= 0 {
		return decimal.Zero
	}
	m := decimal.NewFromBigInt(minted.BigInt(), 0)
	c := decimal.NewFromBigInt(maxSupply.BigInt(), 0)
	return m.Mul(hundred).Div(c).Round(PercentPlaces)
}

// EpochLabel names an epoch on the minted-per-epoch axis.
func EpochLabel(index int) string {
	return fmt.Sprintf("Epoch %d", index)
}

// Derive computes every series for r.
func (d *Deriver) Derive(r *domain.ScheduleResult) *domain.ScheduleSeries {
	if r.Degenerate {
		return d.deriveDegenerate(r.Parameters)
	}
	return d.deriveSchedule(r)
}

func (d *Deriver) deriveSchedule(r *domain.ScheduleResult) *domain.ScheduleSeries {
	p := r.Parameters
	out := &domain.ScheduleSeries{BurnUnitCostUSD: d.burnCost}

	supply := domain.Series[fixedpoint.Amount, fixedpoint.Amount]{}
	supply = supply.Append(r.Genesis.CumulativeSecondaryBurned, r.Genesis.CumulativePrimaryMinted)
	for _, e := range r.Epochs {
		supply = supply.Append(e.CumulativeSecondaryBurned, e.CumulativePrimaryMinted)
		out.MintedPerEpoch = out.MintedPerEpoch.Append(EpochLabel(e.Index), e.PrimaryMintedThisEpoch)
	}
	if r.TruncationBurn != nil {
		supply = supply.Append(*r.TruncationBurn, supply.Y[supply.Len()-1])
	}

	rewards := simulation.ReconcileLength(
		simulation.Rewards(p, len(r.Epochs)),
		supply.Len(),
	)

	// A schedule always has at least one epoch, but keep the curves drawable.
	if supply.Len() == 1 {
		placeholder := p.InitialSecondaryBurn
		if placeholder.IsZero() {
			placeholder = fixedpoint.FromUnits(placeholderBurnUnits, d.scale)
		}
		supply = supply.Append(placeholder, supply.Y[0])
		rewards = append(rewards, rewards[0])
	}

	out.CumulativeSupply = supply
	out.EffectiveMintRate = domain.Series[fixedpoint.Amount, decimal.Decimal]{
		X: append([]fixedpoint.Amount(nil), supply.X...),
		Y: make([]decimal.Decimal, len(rewards)),
	}
	out.CostPerPrimaryToken = make([]decimal.NullDecimal, len(rewards))
	for i, reward := range rewards {
		out.EffectiveMintRate.Y[i] = simulation.EffectiveRate(reward, p.InitialSecondaryBurn)
		out.CostPerPrimaryToken[i] = d.CostPerPrimaryToken(reward, p.InitialSecondaryBurn)
	}

	for i, minted := range supply.Y {
		out.CumulativeUSDCost = out.CumulativeUSDCost.Append(minted, d.CumulativeUSDCost(supply.X[i]))
		out.PercentOfCap = out.PercentOfCap.Append(minted, PercentOfCap(minted, p.PrimaryMaxSupply))
	}

	out.CostToMint = d.costStaircase(supply.Y, out.CostPerPrimaryToken)
	return out
}

// costStaircase duplicates each transition: a flat segment at the epoch's
// cost up to the next cumulative-minted boundary. The TGE segment costs zero.
func (d *Deriver) costStaircase(minted []fixedpoint.Amount, costs []decimal.NullDecimal) domain.Series[fixedpoint.Amount, decimal.NullDecimal] {
	var s domain.Series[fixedpoint.Amount, decimal.NullDecimal]
	if len(minted) == 0 {
		return s
	}
	free := decimal.NewNullDecimal(decimal.Zero)
	s = s.Append(fixedpoint.Zero(), free)
	s = s.Append(minted[0], free)
	for i := 0; i < len(minted)-1; i++ {
		var cost decimal.NullDecimal
		if i < len(costs) {
			cost = costs[i]
		}
		s = s.Append(minted[i], cost)
		s = s.Append(minted[i+1], cost)
	}
	return s
}

// deriveDegenerate draws a flat line at the TGE allocation.
func (d *Deriver) deriveDegenerate(p domain.TokenomicsParameters) *domain.ScheduleSeries {
	final := p.ClampedTGE()

	edge := final
	if edge.Sign() <= 0 {
		if p.PrimaryMaxSupply.Sign() > 0 {
			edge = fixedpoint.FromDecimal(placeholderMinted, d.scale)
		}
		if edge.Sign() <= 0 {
			edge = d.scale.Unit()
		}
	}
	mintedAxis := []fixedpoint.Amount{fixedpoint.Zero(), edge}

	display := p.InitialSecondaryBurn
	if display.IsZero() {
		if p.PrimaryMaxSupply.Sign() > 0 {
			display = p.PrimaryMaxSupply.QuoInt64(10)
		} else {
			display = fixedpoint.FromUnits(placeholderBurnUnits, d.scale)
		}
	}

	reward0 := p.InitialRewardPerBurnUnit

	out := &domain.ScheduleSeries{BurnUnitCostUSD: d.burnCost}
	out.CumulativeSupply = out.CumulativeSupply.
		Append(fixedpoint.Zero(), final).
		Append(display, final)
	out.MintedPerEpoch = out.MintedPerEpoch.Append(domain.NoScheduledMintingLabel, fixedpoint.Zero())
	out.EffectiveMintRate = out.EffectiveMintRate.
		Append(fixedpoint.Zero(), simulation.EffectiveRate(reward0, p.InitialSecondaryBurn)).
		Append(display, decimal.Zero)
	out.CostPerPrimaryToken = []decimal.NullDecimal{
		d.CostPerPrimaryToken(reward0, p.InitialSecondaryBurn),
		{},
	}

	free := decimal.NewNullDecimal(decimal.Zero)
	for _, x := range mintedAxis {
		out.CumulativeUSDCost = out.CumulativeUSDCost.Append(x, decimal.Zero)
		out.PercentOfCap = out.PercentOfCap.Append(x, PercentOfCap(x, p.PrimaryMaxSupply))
		out.CostToMint = out.CostToMint.Append(x, free)
	}
	return out
}
