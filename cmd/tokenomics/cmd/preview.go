package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tokenomics-lab/internal/config"
	"tokenomics-lab/internal/reporting"
)

var previewCmd = &cobra.Command{
	Use:   "preview [options]",
	Short: "Prints the emission schedule for the given parameters",
	Long: `
Simulates the halving schedule and prints one row per epoch.

$ tokenomics preview --max-supply 1000000 --tge 100000 \
    --initial-burn 1000000 --halving-step 70 --initial-reward 200000

Formats: table (tab-separated, for spreadsheets), csv, markdown, json.
`,
	RunE: previewFunc,
}

func previewFunc(cmd *cobra.Command, _ []string) error {
	p, err := service.Preview(cmd.Context(), cfg.RawParameters)
	if err != nil {
		return err
	}

	if p.Schedule.Degenerate {
		color.New(color.FgYellow).Fprintln(stderr(cmd), "no scheduled minting: supply stays at the TGE allocation")
	}
	if p.Schedule.CeilingReached {
		color.New(color.FgYellow).Fprintf(stderr(cmd), "epoch ceiling of %d reached with capacity left\n", len(p.Schedule.Epochs))
	}

	var out []byte
	switch cfg.Format {
	case config.FormatCSV:
		out = []byte(reporting.RenderCSV(reporting.BuildRows(p.Schedule, p.Series)))
	case config.FormatMarkdown:
		out = []byte(reporting.RenderMarkdown(reporting.NewReport(p, time.Now())))
	case config.FormatJSON:
		out, err = reporting.RenderJSON(p)
		if err != nil {
			return err
		}
	default:
		out = []byte(reporting.RenderTable(reporting.BuildRows(p.Schedule, p.Series)))
	}
	return writeOutput(cmd, out)
}
