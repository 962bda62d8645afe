package output

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
)

// Labels is the wording used for one display locale
type Labels struct {
	Return        string
	Amount        string
	Unit          string
	UnitSeparator string
	ErrorText     string
}

var localeLabels = map[string]Labels{
	domain.LocaleEnglish: {Return: "Total return", Amount: "Total amount", Unit: "won", UnitSeparator: " ", ErrorText: "invalid input"},
	domain.LocaleKorean:  {Return: "총 수익률", Amount: "총 금액", Unit: "원", UnitSeparator: "", ErrorText: "입력값 오류"},
}

// LabelsFor returns the labels for the display settings, applying any
// error text or currency unit override. Unknown locales use English.
func LabelsFor(display domain.DisplaySettings) Labels {
	labels, ok := localeLabels[display.Locale]
	if !ok {
		labels = localeLabels[domain.LocaleEnglish]
	}
	if display.ErrorText != "" {
		labels.ErrorText = display.ErrorText
	}
	if display.CurrencyUnit != "" {
		labels.Unit = display.CurrencyUnit
	}
	return labels
}

// DisplayLines are the three output slots of the calculator. Empty strings
// mean the slot is hidden.
type DisplayLines struct {
	Return  string `json:"return"`
	Amount  string `json:"amount,omitempty"`
	Summary string `json:"summary,omitempty"`
	Invalid bool   `json:"invalid,omitempty"`
}

// Lines returns the non-empty slots in display order
func (d DisplayLines) Lines() []string {
	lines := make([]string, 0, 3)
	for _, s := range []string{d.Return, d.Amount, d.Summary} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// Render turns a calculation outcome into display lines. When err is set
// the return slot shows the error indicator and the other slots are cleared.
func Render(result *domain.CalculationResult, err error, display domain.DisplaySettings) DisplayLines {
	labels := LabelsFor(display)
	if err != nil || result == nil {
		return DisplayLines{
			Return:  fmt.Sprintf("%s: %s", labels.Return, labels.ErrorText),
			Invalid: true,
		}
	}

	lines := DisplayLines{
		Return: fmt.Sprintf("%s: %s", labels.Return, FormatPercentage(result.ReturnPercent)),
	}
	if result.HasAmount() {
		style := calculation.PhraseStyleForLocale(display.Locale)
		lines.Amount = fmt.Sprintf("%s: %s", labels.Amount, FormatAmount(*result.TotalAmount, labels))
		lines.Summary = calculation.SummarizeMagnitudeStyle(*result.TotalAmount, style)
	}
	return lines
}
