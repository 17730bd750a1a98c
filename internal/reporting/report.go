package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/fixedpoint"
	"tokenomics-lab/internal/series"
)

// Row labels that are not epoch labels.
const (
	LabelTGE    = "TGE"
	LabelCapped = "Capped"
)

// Report represents one rendered schedule preview.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	Key         string

	Parameters     domain.TokenomicsParameters
	Degenerate     bool
	CeilingReached bool

	Summary domain.Summary

	// One row for TGE, one per epoch, plus an optional Capped row.
	Rows []Row
}

// Row is one line of the schedule table. Amounts are in whole tokens.
type Row struct {
	Label                     string
	CumulativeSecondaryBurned decimal.Decimal
	CumulativePrimaryMinted   decimal.Decimal
	PrimaryMintedInEpoch      decimal.Decimal
	EffectiveMintRate         decimal.Decimal     // primary per one secondary
	CostPerPrimaryToken       decimal.NullDecimal // invalid when the rate is zero
	CumulativeUSDCost         decimal.Decimal
	PercentMinted             decimal.Decimal
}

// NewReport builds a report from a computed preview.
func NewReport(p *domain.Preview, generatedAt time.Time) *Report {
	r := &Report{
		GeneratedAt:    generatedAt.UTC(),
		Key:            p.Key,
		Parameters:     p.Schedule.Parameters,
		Degenerate:     p.Schedule.Degenerate,
		CeilingReached: p.Schedule.CeilingReached,
		Rows:           BuildRows(p.Schedule, p.Series),
	}
	if p.Summary != nil {
		r.Summary = *p.Summary
	}
	return r
}

// BuildRows lays the series out as table rows. Epoch rows read the series
// point at the end of the epoch (index i+1). Extra supply points beyond the
// epochs are reported once as a Capped row. Percent minted is taken against
// the cap for every row, including the TGE row. Cumulative USD cost is the
// row's burn amount at the series' unit price, so a degenerate schedule
// still prices its display burn.
func BuildRows(r *domain.ScheduleResult, s *domain.ScheduleSeries) []Row {
	scale := r.Parameters.Scale
	if scale <= 0 {
		scale = fixedpoint.E8S
	}
	supply := s.CumulativeSupply
	maxSupply := r.Parameters.PrimaryMaxSupply

	rows := make([]Row, 0, s.MintedPerEpoch.Len()+2)

	tge := amountAt(supply.Y, 0).Decimal(scale)
	rows = append(rows, Row{
		Label:                     LabelTGE,
		CumulativeSecondaryBurned: decimal.Zero,
		CumulativePrimaryMinted:   tge,
		PrimaryMintedInEpoch:      tge,
		EffectiveMintRate:         decimalAt(s.EffectiveMintRate.Y, 0),
		CostPerPrimaryToken:       nullAt(s.CostPerPrimaryToken, 0),
		CumulativeUSDCost:         decimal.Zero,
		PercentMinted:             series.PercentOfCap(amountAt(supply.Y, 0), maxSupply),
	})

	epochs := s.MintedPerEpoch.Len()
	for i := 0; i < epochs; i++ {
		j := i + 1
		rows = append(rows, Row{
			Label:                     s.MintedPerEpoch.X[i],
			CumulativeSecondaryBurned: amountAt(supply.X, j).Decimal(scale),
			CumulativePrimaryMinted:   amountAt(supply.Y, j).Decimal(scale),
			PrimaryMintedInEpoch:      s.MintedPerEpoch.Y[i].Decimal(scale),
			EffectiveMintRate:         decimalAt(s.EffectiveMintRate.Y, j),
			CostPerPrimaryToken:       nullAt(s.CostPerPrimaryToken, j),
			CumulativeUSDCost:         amountAt(supply.X, j).Decimal(scale).Mul(s.BurnUnitCostUSD),
			PercentMinted:             series.PercentOfCap(amountAt(supply.Y, j), maxSupply),
		})
	}

	if supply.Len() > epochs+1 {
		last := supply.Len() - 1
		rows = append(rows, Row{
			Label:                     LabelCapped,
			CumulativeSecondaryBurned: supply.X[last].Decimal(scale),
			CumulativePrimaryMinted:   supply.Y[last].Decimal(scale),
			PrimaryMintedInEpoch:      decimal.Zero,
			EffectiveMintRate:         decimal.Zero,
			CumulativeUSDCost:         supply.X[last].Decimal(scale).Mul(s.BurnUnitCostUSD),
			PercentMinted:             series.PercentOfCap(supply.Y[last], maxSupply),
		})
	}
	return rows
}

func amountAt(values []fixedpoint.Amount, i int) fixedpoint.Amount {
	if i < 0 || i >= len(values) {
		return fixedpoint.Zero()
	}
	return values[i]
}

func decimalAt(values []decimal.Decimal, i int) decimal.Decimal {
	if i < 0 || i >= len(values) {
		return decimal.Zero
	}
	return values[i]
}

func nullAt(values []decimal.NullDecimal, i int) decimal.NullDecimal {
	if i < 0 || i >= len(values) {
		return decimal.NullDecimal{}
	}
	return values[i]
}
