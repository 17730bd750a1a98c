package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := Execute()
	return out.String(), err
}

func TestCLI(t *testing.T) {
	t.Chdir(t.TempDir())

	params := []string{
		"--max-supply=1000000",
		"--tge=100000",
		"--initial-burn=1000000",
		"--halving-step=70",
		"--initial-reward=200000",
		"--log-level=error",
	}

	t.Run("preview table", func(t *testing.T) {
		out, err := run(t, append([]string{"preview", "--format=table"}, params...)...)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 7)
		assert.True(t, strings.HasPrefix(lines[1], "TGE\t0\t100000.0000"))
	})

	t.Run("summary json", func(t *testing.T) {
		out, err := run(t, append([]string{"summary", "--format=json"}, params...)...)
		require.NoError(t, err)
		assert.Contains(t, out, `"epochs": 5`)
		assert.Contains(t, out, `"total_minting_valuation": "80000"`)
	})

	t.Run("preview to file with metrics", func(t *testing.T) {
		dir := t.TempDir()
		outPath := filepath.Join(dir, "schedule.md")
		metricsPath := filepath.Join(dir, "tokenomics.prom")

		_, err := run(t, append([]string{"preview", "--format=markdown", "--output=" + outPath, "--metrics-file=" + metricsPath}, params...)...)
		require.NoError(t, err)

		md, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(md), "# Tokenomics Schedule")

		prom, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(prom), "tokenomics_lab_preview_requests_total")
	})

	t.Run("verify mismatch", func(t *testing.T) {
		ledger := filepath.Join(t.TempDir(), "ledger.json")
		require.NoError(t, os.WriteFile(ledger, []byte(`{
  "secondary_burn_thresholds": [100000000000000],
  "primary_mint_per_threshold": [20000000000001]
}`), 0o600))

		out, err := run(t, append([]string{"verify", "--format=table", "--output=", "--metrics-file=", "--ledger=" + ledger}, params...)...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrParityMismatch))
		assert.Contains(t, out, "SecondaryBurnThresholds.len\t1\t5")
		assert.Contains(t, out, "PrimaryMintPerThreshold[0]\t20000000000001\t20000000000000")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := run(t, "preview", "--format=xml")
		assert.Error(t, err)
	})
}
