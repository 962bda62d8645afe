package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/spf13/cobra"
)

var (
	batchFormat string
	batchSave   string
)

var batchCmd = &cobra.Command{
	Use:   "batch [config]",
	Short: "Run every scenario of a configuration file",
	Long: `Run every scenario of a YAML or TOML configuration file and print a
report. Scenarios with invalid inputs are reported, not fatal.

Formats: console, csv, json, yaml (aliases: text, txt, table, yml, ...)

Examples:
  growthcalc batch scenarios.yaml
  growthcalc batch scenarios.toml --format json
  growthcalc batch --config scenarios.yaml --format csv --save reports/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "console", "report format")
	batchCmd.Flags().StringVar(&batchSave, "save", "", "write the report to a timestamped file in this directory")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		cfgFile = args[0]
	}
	if cfgFile == "" {
		return errors.New("a configuration file is required (argument or --config)")
	}

	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	results, err := newEngine(cfg.Display).RunScenarios(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if batchSave == "" {
		return output.GenerateReport(cmd.OutOrStdout(), results, batchFormat)
	}

	f := output.GetFormatterByName(batchFormat)
	if f == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, batchFormat)
	}
	if err := os.MkdirAll(batchSave, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	path, err := output.WriteFormatted(f, results, batchSave)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}
