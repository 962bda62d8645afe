package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	locale    string
	logLevel  string
	logFormat string
	logFile   string

	logger    = slog.New(slog.NewTextHandler(io.Discard, nil))
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "growthcalc",
	Short: "Compound growth and return calculator",
	Long: `growthcalc compounds a per-period rate over a number of periods and
reports the total return. When a principal is given it also reports the
total amount, rounded down to the nearest 1,000 won, and an approximate
magnitude such as "approximately 110 man range".

Front ends:
  calc       - one calculation from flags or arguments
  summarize  - magnitude summary of an amount
  batch      - run the scenarios of a configuration file
  serve      - JSON HTTP API
  tui        - interactive terminal form`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scenario/display configuration file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "display locale: en or ko (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to a rotating file instead of stderr")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	// a failed previous run skips PersistentPostRunE
	if err := closeLogging(cmd, args); err != nil {
		return err
	}
	l, closer, err := logging.New(logging.Config{
		Level:      logLevel,
		Format:     logFormat,
		FilePath:   logFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
	})
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	return nil
}

func closeLogging(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

// loadConfiguration reads --config when set and applies --locale on top.
func loadConfiguration() (*domain.Configuration, error) {
	parser := config.NewInputParser()
	cfg := &domain.Configuration{}
	if cfgFile != "" {
		loaded, err := parser.LoadFromFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}
	if locale != "" {
		cfg.Display.Locale = locale
	}
	if err := parser.ValidateDisplay(&cfg.Display); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(display domain.DisplaySettings) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithDisplay(display)
	engine.SetLogger(logging.CalcLogger{L: logger})
	return engine
}
