// Package config loads CLI configuration from flags, TOKENOMICS_* environment
// variables, an optional config file and an optional .env file, in that order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	log "github.com/inconshreveable/log15"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tokenomics-lab/internal/domain"
	"tokenomics-lab/internal/simulation"
)

// EnvPrefix prefixes every environment variable, e.g. TOKENOMICS_MAX_SUPPLY.
const EnvPrefix = "TOKENOMICS"

// DefaultConfigName is the config file looked up in the working directory
// when no explicit file is given.
const DefaultConfigName = "tokenomics"

// Output formats.
const (
	FormatTable    = "table"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved CLI configuration.
type Config struct {
	domain.RawParameters `mapstructure:",squash"`

	LogLevel        string `mapstructure:"log_level"`
	MetricsFile     string `mapstructure:"metrics_file"`
	Format          string `mapstructure:"format"`
	Output          string `mapstructure:"output"`
	Ledger          string `mapstructure:"ledger"`
	MaxEpochs       int    `mapstructure:"max_epochs"`
	BurnUnitCostUSD string `mapstructure:"burn_unit_cost_usd"`
}

// RegisterFlags adds every configuration flag to fs. Flag names use dashes;
// the matching config and env keys use underscores.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("max-supply", "", "primary token hard cap, whole tokens")
	fs.String("tge", "", "TGE allocation, whole tokens")
	fs.String("initial-burn", "", "secondary burn target of epoch 1, whole tokens")
	fs.String("halving-step", "", "reward multiplier per epoch, integer percent (0-100)")
	fs.String("initial-reward", "", "primary minted per initial burn in epoch 1, whole tokens")

	fs.String("log-level", "info", "log level (debug, info, warn, error, crit)")
	fs.String("metrics-file", "", "write Prometheus metrics to this textfile on exit")
	fs.StringP("format", "f", FormatTable, "output format (table, csv, markdown, json)")
	fs.StringP("output", "o", "", "write output to this file instead of stdout")
	fs.String("ledger", "", "ledger schedule snapshot (JSON) to verify against")
	fs.Int("max-epochs", domain.MaxEpochs, "epoch ceiling, at most 50")
	fs.String("burn-unit-cost-usd", simulation.DefaultBurnUnitCostUSD.String(), "USD price of one secondary token")
}

// NewViper returns a viper instance with defaults and env binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("max_supply", "")
	v.SetDefault("tge", "")
	v.SetDefault("initial_burn", "")
	v.SetDefault("halving_step", "")
	v.SetDefault("initial_reward", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("metrics_file", "")
	v.SetDefault("format", FormatTable)
	v.SetDefault("output", "")
	v.SetDefault("ledger", "")
	v.SetDefault("max_epochs", domain.MaxEpochs)
	v.SetDefault("burn_unit_cost_usd", simulation.DefaultBurnUnitCostUSD.String())
	return v
}

// BindFlags binds every flag in fs to its underscore key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if bindErr := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); bindErr != nil {
			err = fmt.Errorf("bind flag %s: %w", f.Name, bindErr)
		}
	})
	return err
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored; existing variables are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configFile (or ./tokenomics.* when empty) into v and decodes
// the result. A missing default config file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerations and ranges. Tokenomics parameters are not
// validated: the normalizer maps bad values to zero.
func (c *Config) Validate() error {
	if _, err := log.LvlFromString(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.Format {
	case FormatTable, FormatCSV, FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if c.MaxEpochs < 1 || c.MaxEpochs > domain.MaxEpochs {
		return fmt.Errorf("%w: max epochs %d not in [1, %d]", ErrInvalidConfig, c.MaxEpochs, domain.MaxEpochs)
	}
	if _, err := c.burnCost(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() log.Lvl {
	lvl, err := log.LvlFromString(c.LogLevel)
	if err != nil {
		return log.LvlInfo
	}
	return lvl
}

// SimulationConfig returns the simulator configuration.
func (c *Config) SimulationConfig() (simulation.Config, error) {
	cost, err := c.burnCost()
	if err != nil {
		return simulation.Config{}, err
	}
	cfg := simulation.DefaultConfig()
	cfg.MaxEpochs = c.MaxEpochs
	cfg.BurnUnitCostUSD = cost
	return cfg, nil
}

func (c *Config) burnCost() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(c.BurnUnitCostUSD))
	if err != nil || d.Sign() <= 0 {
		return decimal.Zero, fmt.Errorf("%w: burn unit cost %q", ErrInvalidConfig, c.BurnUnitCostUSD)
	}
	return d, nil
}
