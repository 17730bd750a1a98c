package normalization

import (
	"strings"

	"github.com/shopspring/decimal"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
)

// MaxHalvingStepPercent is the upper bound of the halving step.
const MaxHalvingStepPercent = 100

var hundred = decimal.NewFromInt(MaxHalvingStepPercent)

// Normalizer turns raw decimal strings into scaled simulator parameters.
// It is a total function of its input: malformed or negative values become zero.
type Normalizer struct {
	scale fixedpoint.Scale
}

// NewNormalizer creates a normalizer for the given scale.
// A non-positive scale falls back to fixedpoint.E8S.
func NewNormalizer(scale fixedpoint.Scale) *Normalizer {
	if scale <= 0 {
		scale = fixedpoint.E8S
	}
	return &Normalizer{scale: scale}
}

// Normalize converts raw inputs. Digits below the scale are truncated.
func (n *Normalizer) Normalize(raw domain.RawParameters) domain.TokenomicsParameters {
	return domain.TokenomicsParameters{
		PrimaryMaxSupply:         n.amount(raw.PrimaryMaxSupply),
		TGEAllocation:            n.amount(raw.TGEAllocation),
		InitialSecondaryBurn:     n.amount(raw.InitialSecondaryBurn),
		HalvingStepPercent:       HalvingStep(raw.HalvingStepPercent),
		InitialRewardPerBurnUnit: n.amount(raw.InitialRewardPerBurnUnit),
		Scale:                    n.scale,
	}
}

// Normalize is a shorthand for NewNormalizer(fixedpoint.E8S).Normalize(raw).
func Normalize(raw domain.RawParameters) domain.TokenomicsParameters {
	return NewNormalizer(fixedpoint.E8S).Normalize(raw)
}

func (n *Normalizer) amount(s string) fixedpoint.Amount {
	d, ok := ParseNonNegative(s)
	if !ok {
		return fixedpoint.Zero()
	}
	return fixedpoint.FromDecimal(d, n.scale)
}

// HalvingStep parses an integer percentage, rounding half up and clamping
// to [0, 100].
func HalvingStep(s string) int64 {
	d, ok := ParseNonNegative(s)
	if !ok {
		return 0
	}
	if d.GreaterThan(hundred) {
		return MaxHalvingStepPercent
	}
	return d.Round(0).IntPart()
}

// ParseNonNegative parses a plain decimal string. ok is false for empty,
// malformed or negative input.
func ParseNonNegative(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}
