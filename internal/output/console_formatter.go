package output

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// ConsoleFormatter prints each scenario's display lines as plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "GROWTH SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s (principal=%q rate=%q times=%q)\n", sc.Name, sc.Inputs.Principal, sc.Inputs.Rate, sc.Inputs.Times)
		for _, line := range RenderScenario(sc, results.Display).Lines() {
			fmt.Fprintf(&buf, "  %s\n", line)
		}
	}
	return buf.Bytes(), nil
}

// RenderScenario renders the display lines for one batch entry
func RenderScenario(sc domain.ScenarioResult, display domain.DisplaySettings) DisplayLines {
	var err error
	if sc.Error != "" {
		err = errors.New(sc.Error)
	}
	return Render(sc.Result, err, display)
}
