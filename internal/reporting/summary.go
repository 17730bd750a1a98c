package reporting

import (
	"fmt"
	"strings"

	"golang.org/x/text/number"

	"tokenomics-lab/internal/domain"
)

// RenderSummary renders the scalar summary as aligned text lines.
func RenderSummary(s *domain.Summary) string {
	var sb strings.Builder

	valuation, _ := s.TotalMintingValuation.Float64()

	sb.WriteString(fmt.Sprintf("%-24s %d\n", "Epochs:", s.Epochs))
	sb.WriteString(fmt.Sprintf("%-24s %s%%\n", "TGE Allocation:", s.TGEPercent.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-24s $%s\n", "Initial Mint Cost:", s.InitialMintCost.StringFixed(4)))
	sb.WriteString(fmt.Sprintf("%-24s $%s\n", "Final Mint Cost:", s.FinalMintCost.StringFixed(4)))
	sb.WriteString(fmt.Sprintf("%-24s $%s\n", "Total Minting Valuation:",
		printer.Sprint(number.Decimal(valuation, number.Scale(2)))))

	return sb.String()
}
