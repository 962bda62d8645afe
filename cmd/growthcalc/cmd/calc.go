package cmd

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
	"github.com/spf13/cobra"
)

var calcInputs domain.RawInputs

var calcCmd = &cobra.Command{
	Use:   "calc [principal rate times]",
	Short: "Calculate the compound return for one set of inputs",
	Long: `Calculate the compound return of a per-period rate (in percent) over a
number of periods. The principal is optional; without it only the total
return is shown. Grouping separators are accepted ("1,000,000").

Examples:
  growthcalc calc --principal 1,000,000 --rate 2 --times 5
  growthcalc calc 1000000 2 5
  growthcalc calc --rate 7 --times 10 --locale ko`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 3 {
			return fmt.Errorf("expected 3 arguments (principal rate times), got %d", len(args))
		}
		return nil
	},
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	calcCmd.Flags().StringVarP(&calcInputs.Principal, "principal", "p", "", "principal amount (optional)")
	calcCmd.Flags().StringVarP(&calcInputs.Rate, "rate", "r", "", "rate per period in percent")
	calcCmd.Flags().StringVarP(&calcInputs.Times, "times", "t", "", "number of periods")
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}

	raw := calcInputs
	if len(args) == 3 {
		raw = domain.RawInputs{Principal: args[0], Rate: args[1], Times: args[2]}
	}

	result, err := newEngine(cfg.Display).Calculate(cmd.Context(), raw)
	for _, line := range output.Render(result, err, cfg.Display).Lines() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return err
}
