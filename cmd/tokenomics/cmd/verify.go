package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tokenomics-lab/internal/config"
	"tokenomics-lab/internal/verification"
)

// ErrParityMismatch is returned when the local schedule differs from the ledger.
var ErrParityMismatch = errors.New("local schedule diverges from ledger")

var verifyCmd = &cobra.Command{
	Use:   "verify --ledger [file] [options]",
	Short: "Checks the local schedule against a ledger snapshot",
	Long: `
Compares the simulated burn thresholds, rewards and per-epoch mints with a
schedule published by the ledger. Every value must match exactly.

$ tokenomics verify --ledger schedule.json --max-supply 1000000 ...

The snapshot is a JSON object with "secondary_burn_thresholds",
"primary_mint_per_threshold" and optionally "primary_minted_per_epoch",
holding raw scaled integers.
`,
	RunE: verifyFunc,
}

func verifyFunc(cmd *cobra.Command, _ []string) error {
	if cfg.Ledger == "" {
		return fmt.Errorf("%w: --ledger is required", config.ErrInvalidConfig)
	}
	ledger, err := verification.LoadLedgerSchedule(cfg.Ledger)
	if err != nil {
		return err
	}

	report, err := service.Verify(cmd.Context(), cfg.RawParameters, ledger)
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		if err := writeOutput(cmd, append(data, '\n')); err != nil {
			return err
		}
	} else {
		if err := writeOutput(cmd, []byte(renderDivergences(report))); err != nil {
			return err
		}
	}

	if !report.Match {
		return fmt.Errorf("%w: %d divergences", ErrParityMismatch, len(report.Divergences))
	}
	color.New(color.FgGreen).Fprintf(stderr(cmd), "ledger parity confirmed over %d epochs\n", report.Epochs)
	return nil
}

func renderDivergences(r *verification.Report) string {
	var sb strings.Builder
	sb.WriteString("Field\tLedger\tLocal\n")
	for _, d := range r.Divergences {
		sb.WriteString(fmt.Sprintf("%s\t%s\t%s\n", d.Field, d.Expected, d.Actual))
	}
	return sb.String()
}
