package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.BatchResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Principal", "Rate", "Times", "GrowthFactor", "ReturnPercent", "TotalAmount", "MagnitudeSummary", "Error"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		row := []string{sc.Name, sc.Inputs.Principal, sc.Inputs.Rate, sc.Inputs.Times, "", "", "", "", sc.Error}
		if r := sc.Result; r != nil {
			row[4] = strconv.FormatFloat(r.GrowthFactor, 'f', 6, 64)
			row[5] = r.ReturnPercent.String()
			if r.HasAmount() {
				row[6] = r.TotalAmount.StringFixed(0)
				row[7] = r.MagnitudeSummary
			}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
