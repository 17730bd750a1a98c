// Package simulation computes the burn-to-mint emission schedule.
//
// The computation mirrors the ledger's scaled-integer arithmetic exactly:
// products are formed before the single truncating division, and no floating
// point is involved. A Simulator holds no state between runs.
package simulation

import (
	"github.com/shopspring/decimal"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
)

// DefaultBurnUnitCostUSD is the assumed USD price of one secondary token.
var DefaultBurnUnitCostUSD = decimal.RequireFromString("0.005")

// Config configures a Simulator.
type Config struct {
	Scale           fixedpoint.Scale // scale of every amount in the parameters
	MaxEpochs       int              // safety ceiling, never above domain.MaxEpochs
	BurnUnitCostUSD decimal.Decimal  // USD price of one whole secondary token
}

// DefaultConfig returns E8S scale, the 50-epoch ceiling and a $0.005 burn price.
func DefaultConfig() Config {
	return Config{
		Scale:           fixedpoint.E8S,
		MaxEpochs:       domain.MaxEpochs,
		BurnUnitCostUSD: DefaultBurnUnitCostUSD,
	}
}

// Simulator runs the halving loop.
type Simulator struct {
	cfg Config
}

// WithDefaults fills zero fields with their defaults and caps MaxEpochs at
// domain.MaxEpochs.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.Scale <= 0 {
		c.Scale = def.Scale
	}
	if c.MaxEpochs <= 0 || c.MaxEpochs > domain.MaxEpochs {
		c.MaxEpochs = def.MaxEpochs
	}
	if c.BurnUnitCostUSD.Sign() <= 0 {
		c.BurnUnitCostUSD = def.BurnUnitCostUSD
	}
	return c
}

// NewSimulator creates a simulator from cfg.WithDefaults().
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{cfg: cfg.WithDefaults()}
}

// Config returns the effective configuration.
func (s *Simulator) Config() Config {
	return s.cfg
}

// IsDegenerate reports whether p can never mint through the schedule.
func IsDegenerate(p domain.TokenomicsParameters) bool {
	return p.ScheduleCapacity().Sign() <= 0 ||
		p.InitialRewardPerBurnUnit.IsZero() ||
		p.InitialSecondaryBurn.IsZero()
}

// Run computes the schedule for p. It never fails: degenerate parameters
// produce a result with Degenerate set and no epochs.
func (s *Simulator) Run(p domain.TokenomicsParameters) *domain.ScheduleResult {
	result := &domain.ScheduleResult{
		Parameters: p,
		Genesis:    s.genesis(p),
		Epochs:     []domain.EpochRecord{},
	}

	if IsDegenerate(p) {
		result.Degenerate = true
		return result
	}

	acc := newAccumulator(p)
	for acc.running(s.cfg.MaxEpochs) {
		var ok bool
		acc, ok = acc.step(p)
		if !ok {
			break
		}
	}

	result.Epochs = acc.epochs
	result.TruncationBurn = acc.truncation
	result.CeilingReached = acc.epoch > s.cfg.MaxEpochs && acc.minted.Cmp(acc.capacity) < 0
	return result
}

func (s *Simulator) genesis(p domain.TokenomicsParameters) domain.EpochRecord {
	return domain.EpochRecord{
		Index:                     0,
		CumulativeSecondaryBurned: fixedpoint.Zero(),
		CumulativePrimaryMinted:   p.ClampedTGE(),
		PrimaryMintedThisEpoch:    fixedpoint.Zero(),
		RewardPerBurnUnit:         p.InitialRewardPerBurnUnit,
		EffectiveMintRate:         EffectiveRate(p.InitialRewardPerBurnUnit, p.InitialSecondaryBurn),
	}
}

// accumulator is the fold state of the halving loop.
type accumulator struct {
	capacity fixedpoint.Amount // max supply - TGE
	burned   fixedpoint.Amount // cumulative secondary burned
	minted   fixedpoint.Amount // cumulative scheduled mint, TGE excluded
	target   fixedpoint.Amount // cumulative burn target of the current epoch
	reward   fixedpoint.Amount // reward per burn unit of the current epoch
	epoch    int

	epochs     []domain.EpochRecord
	truncation *fixedpoint.Amount
}

func newAccumulator(p domain.TokenomicsParameters) accumulator {
	return accumulator{
		capacity: p.ScheduleCapacity(),
		burned:   fixedpoint.Zero(),
		minted:   fixedpoint.Zero(),
		target:   p.InitialSecondaryBurn,
		reward:   p.InitialRewardPerBurnUnit,
		epoch:    1,
		epochs:   make([]domain.EpochRecord, 0, domain.MaxEpochs),
	}
}

func (a accumulator) running(maxEpochs int) bool {
	return a.minted.Cmp(a.capacity) < 0 &&
		a.reward.Cmp(fixedpoint.One()) >= 0 &&
		a.epoch <= maxEpochs
}

// step advances one epoch. It returns false when the loop must stop; the
// returned accumulator is still the one to keep.
func (a accumulator) step(p domain.TokenomicsParameters) (accumulator, bool) {
	toBurn := a.target.Sub(a.burned)
	if toBurn.Sign() <= 0 {
		return a, false
	}

	potential := fixedpoint.MulQuo(toBurn, a.reward, p.InitialSecondaryBurn)
	mint := fixedpoint.Min(potential, a.capacity.Sub(a.minted))

	next := a
	next.burned = a.target
	next.minted = a.minted.Add(mint)
	next.epochs = append(a.epochs, domain.EpochRecord{
		Index:                     a.epoch,
		CumulativeSecondaryBurned: next.burned,
		CumulativePrimaryMinted:   fixedpoint.Min(p.PrimaryMaxSupply, p.TGEAllocation.Add(next.minted)),
		PrimaryMintedThisEpoch:    mint,
		RewardPerBurnUnit:         a.reward,
		EffectiveMintRate:         EffectiveRate(a.reward, p.InitialSecondaryBurn),
	})
	next.reward = HalveReward(a.reward, p.HalvingStepPercent)
	next.target = a.target.Double()
	next.epoch = a.epoch + 1

	// Unreachable from Run while the loop guard requires capacity; kept so a
	// schedule exhausted mid-epoch still ends on a flat point.
	if mint.IsZero() && potential.Sign() > 0 {
		last := next.epochs[len(next.epochs)-1]
		if last.CumulativePrimaryMinted.Cmp(p.PrimaryMaxSupply) < 0 && last.CumulativeSecondaryBurned.Sign() > 0 {
			level := next.burned.Add(toBurn)
			next.truncation = &level
		}
		return next, false
	}
	return next, true
}

// HalveReward applies one halving step: max(1, reward * percent / 100).
func HalveReward(reward fixedpoint.Amount, percent int64) fixedpoint.Amount {
	return fixedpoint.Max(fixedpoint.One(), reward.MulInt64(percent).QuoInt64(100))
}

// RatePrecision is the number of significant fractional digits kept in an
// effective mint rate beyond the digits of the initial burn. A reward of one
// smallest unit therefore never rounds to a zero rate.
const RatePrecision = 16

// EffectiveRate returns primary minted per one secondary burned, the exact
// ratio reward / initialBurn of the two scaled amounts. Zero when initialBurn
// is zero.
func EffectiveRate(reward, initialBurn fixedpoint.Amount) decimal.Decimal {
	if initialBurn.Sign() <= 0 || reward.Sign() <= 0 {
		return decimal.Zero
	}
	places := RatePrecision + int32(len(initialBurn.String()))
	return decimal.NewFromBigInt(reward.BigInt(), 0).
		DivRound(decimal.NewFromBigInt(initialBurn.BigInt(), 0), places)
}
