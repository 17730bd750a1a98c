package reporting

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// TableHeader is the first line of the tab-separated schedule table.
var TableHeader = strings.Join([]string{
	"Epoch",
	"Cumulative Secondary Burned",
	"Cumulative Primary Minted",
	"Primary Minted In Epoch",
	"Effective Mint Rate (Primary per Secondary)",
	"USD Cost per Primary Token ($)",
	"Cumulative USD Cost ($)",
	"Supply Minted (%)",
}, "\t")

var printer = message.NewPrinter(language.English)

// RenderTable renders rows as a tab-separated table for copy/paste into a
// spreadsheet. Burn amounts use thousands separators.
func RenderTable(rows []Row) string {
	var sb strings.Builder

	sb.WriteString(TableHeader)
	sb.WriteString("\n")

	for _, r := range rows {
		cols := []string{
			r.Label,
			groupThousands(r.CumulativeSecondaryBurned),
			r.CumulativePrimaryMinted.StringFixed(4),
			r.PrimaryMintedInEpoch.StringFixed(4),
			r.EffectiveMintRate.StringFixed(4),
			"$" + costOrZero(r.CostPerPrimaryToken).StringFixed(6),
			"$" + r.CumulativeUSDCost.StringFixed(2),
			r.PercentMinted.StringFixed(2) + "%",
		}
		sb.WriteString(strings.Join(cols, "\t"))
		sb.WriteString("\n")
	}

	return sb.String()
}

func groupThousands(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}

func costOrZero(c decimal.NullDecimal) decimal.Decimal {
	if !c.Valid {
		return decimal.Zero
	}
	return c.Decimal
}
