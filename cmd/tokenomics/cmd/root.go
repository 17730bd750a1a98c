// Package cmd implements the tokenomics command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"tokenomics-lab/internal/config"
	"tokenomics-lab/internal/observability"
	"tokenomics-lab/internal/preview"
)

const fsModeWrite = 0o600

var (
	configFile string
	envFile    string

	v       = config.NewViper()
	cfg     *config.Config
	service *preview.Service

	rootCmd = &cobra.Command{
		Use:                "tokenomics",
		Short:              "Burn-to-mint tokenomics schedule simulator",
		SuggestFor:         []string{"tokenomic", "tokenomix"},
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		previewCmd,
		summaryCmd,
		verifyCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&configFile,
		"config",
		"",
		"config file (default ./tokenomics.{yaml,json,toml} if present)",
	)
	rootCmd.PersistentFlags().StringVar(
		&envFile,
		"env-file",
		".env",
		"dotenv file loaded before reading the environment",
	)
	config.RegisterFlags(rootCmd.PersistentFlags())
}

// Execute runs the root command and flushes metrics afterwards, also when
// the command failed.
func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if ferr := flushMetrics(); ferr != nil && err == nil {
		err = ferr
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(envFile); err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	loaded, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	cfg = loaded

	log.Root().SetHandler(log.LvlFilterHandler(cfg.Level(), log.StreamHandler(os.Stderr, log.LogfmtFormat())))

	simCfg, err := cfg.SimulationConfig()
	if err != nil {
		return err
	}
	service = preview.NewService(simCfg)

	log.Debug("configuration loaded",
		"config", v.ConfigFileUsed(),
		"format", cfg.Format,
		"max_epochs", simCfg.MaxEpochs,
		"burn_unit_cost_usd", simCfg.BurnUnitCostUSD)
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	keys, err := service.StoredKeys(cmd.Context())
	if err != nil {
		return err
	}
	log.Debug("memoized previews", "count", len(keys), "keys", keys)
	return nil
}

func flushMetrics() error {
	if cfg == nil || cfg.MetricsFile == "" {
		return nil
	}
	if err := observability.WriteTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
		return err
	}
	log.Debug("metrics written", "path", cfg.MetricsFile)
	return nil
}

// writeOutput writes data to --output or to the command's stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	if cfg.Output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(cfg.Output, data, fsModeWrite); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("output written", "path", cfg.Output, "bytes", len(data))
	return nil
}

func stderr(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}
