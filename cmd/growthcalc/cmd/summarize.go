package cmd

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <amount>",
	Short: "Print the approximate magnitude of an amount",
	Long: `Print the approximate magnitude of a won amount in man/eok units.
Amounts below 10,000 have no summary. The amount must be a whole
number of at most 30 digits.

Examples:
  growthcalc summarize 3,480,000     # approximately 340 man range
  growthcalc summarize 123000000 --locale ko`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	amount, ok := calculation.ParseAmount(args[0])
	if !ok {
		return fmt.Errorf("amount %q is not a whole number", args[0])
	}

	summary := calculation.SummarizeMagnitudeStyle(amount, calculation.PhraseStyleForLocale(cfg.Display.Locale))
	if summary != "" {
		fmt.Fprintln(cmd.OutOrStdout(), summary)
	}
	return nil
}
