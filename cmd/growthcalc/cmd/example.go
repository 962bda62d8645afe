package cmd

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exampleOut string

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print or write an example configuration",
	Args:  cobra.NoArgs,
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
	exampleCmd.Flags().StringVarP(&exampleOut, "out", "o", "", "write the example to this file instead of stdout")
}

func runExample(cmd *cobra.Command, args []string) error {
	example := config.NewInputParser().CreateExampleConfiguration()
	if exampleOut != "" {
		if err := config.SaveConfiguration(example, exampleOut); err != nil {
			return fmt.Errorf("failed to write example configuration: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", exampleOut)
		return nil
	}

	b, err := yaml.Marshal(example)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
