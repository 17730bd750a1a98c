package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders rows as CSV with lossless decimal values.
// An undefined per-token cost is an empty field.
func RenderCSV(rows []Row) string {
	var sb strings.Builder

	// Header
	sb.WriteString("epoch,cumulative_secondary_burned,cumulative_primary_minted,primary_minted_in_epoch,")
	sb.WriteString("effective_mint_rate,usd_cost_per_primary_token,cumulative_usd_cost,supply_minted_pct\n")

	// Rows
	for _, r := range rows {
		cost := ""
		if r.CostPerPrimaryToken.Valid {
			cost = r.CostPerPrimaryToken.Decimal.String()
		}
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s\n",
			r.Label,
			r.CumulativeSecondaryBurned.String(),
			r.CumulativePrimaryMinted.String(),
			r.PrimaryMintedInEpoch.String(),
			r.EffectiveMintRate.String(),
			cost,
			r.CumulativeUSDCost.String(),
			r.PercentMinted.String(),
		))
	}

	return sb.String()
}
