package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tokenomics-lab/internal/config"
	"tokenomics-lab/internal/reporting"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [options]",
	Short: "Prints the schedule summary metrics",
	RunE:  summaryFunc,
}

func summaryFunc(cmd *cobra.Command, _ []string) error {
	p, err := service.Preview(cmd.Context(), cfg.RawParameters)
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatJSON {
		data, err := json.MarshalIndent(p.Summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		return writeOutput(cmd, append(data, '\n'))
	}
	return writeOutput(cmd, []byte(reporting.RenderSummary(p.Summary)))
}
