package reporting

import (
	"fmt"
	"strings"
	"time"

	"tokenomics-lab/internal/fixedpoint"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder
	scale := r.Parameters.Scale
	if scale <= 0 {
		scale = fixedpoint.E8S
	}

	// Header
	sb.WriteString("# Tokenomics Schedule\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	if r.Key != "" {
		sb.WriteString(fmt.Sprintf("Parameters key: `%s`\n\n", r.Key))
	}

	// Parameters
	p := r.Parameters
	sb.WriteString("## Parameters\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Primary Max Supply | %s |\n", p.PrimaryMaxSupply.Decimal(scale)))
	sb.WriteString(fmt.Sprintf("| TGE Allocation | %s |\n", p.TGEAllocation.Decimal(scale)))
	sb.WriteString(fmt.Sprintf("| Initial Secondary Burn | %s |\n", p.InitialSecondaryBurn.Decimal(scale)))
	sb.WriteString(fmt.Sprintf("| Halving Step (%%) | %d |\n", p.HalvingStepPercent))
	sb.WriteString(fmt.Sprintf("| Initial Reward per Burn Unit | %s |\n", p.InitialRewardPerBurnUnit.Decimal(scale)))
	sb.WriteString("\n")

	// Summary
	s := r.Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Epochs | %d |\n", s.Epochs))
	sb.WriteString(fmt.Sprintf("| TGE Allocation (%% of cap) | %s%% |\n", s.TGEPercent.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("| Initial Mint Cost | $%s |\n", s.InitialMintCost.StringFixed(4)))
	sb.WriteString(fmt.Sprintf("| Final Mint Cost | $%s |\n", s.FinalMintCost.StringFixed(4)))
	sb.WriteString(fmt.Sprintf("| Total Minting Valuation | $%s |\n", s.TotalMintingValuation.StringFixed(2)))
	sb.WriteString("\n")

	if r.Degenerate {
		sb.WriteString("**No scheduled minting.** Supply stays at the TGE allocation.\n\n")
	}
	if r.CeilingReached {
		sb.WriteString("**Epoch ceiling reached.** The schedule still had capacity when it was cut off.\n\n")
	}

	// Schedule
	sb.WriteString("## Schedule\n\n")
	if len(r.Rows) > 0 {
		sb.WriteString("| Epoch | Secondary Burned | Primary Minted | Minted In Epoch | Rate | Cost/Token | USD Cost | Minted% |\n")
		sb.WriteString("|-------|------------------|----------------|-----------------|------|------------|----------|---------|\n")
		for _, row := range r.Rows {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | $%s | $%s | %s%% |\n",
				row.Label,
				groupThousands(row.CumulativeSecondaryBurned),
				row.CumulativePrimaryMinted.StringFixed(4),
				row.PrimaryMintedInEpoch.StringFixed(4),
				row.EffectiveMintRate.StringFixed(4),
				costOrZero(row.CostPerPrimaryToken).StringFixed(6),
				row.CumulativeUSDCost.StringFixed(2),
				row.PercentMinted.StringFixed(2)))
		}
	} else {
		sb.WriteString("No schedule rows available.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}
