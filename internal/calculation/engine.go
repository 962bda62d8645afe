package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
)

// CalculationEngine runs growth calculations for the front ends, adding
// logging and the configured summary wording on top of the pure functions.
type CalculationEngine struct {
	Style  PhraseStyle
	Logger Logger
}

// NewCalculationEngine creates an engine producing English summaries
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Style:  PhraseEnglish,
		Logger: NopLogger{},
	}
}

// NewCalculationEngineWithDisplay creates an engine whose summaries follow the display locale
func NewCalculationEngineWithDisplay(display domain.DisplaySettings) *CalculationEngine {
	ce := NewCalculationEngine()
	ce.Style = PhraseStyleForLocale(display.Locale)
	return ce
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs a single calculation. Invalid input is returned as an
// *InvalidInputError.
func (ce *CalculationEngine) Calculate(ctx context.Context, raw domain.RawInputs) (*domain.CalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := Calculate(raw)
	if err != nil {
		ce.Logger.Warnf("calculation rejected: %v", err)
		return nil, err
	}
	if result.HasAmount() && ce.Style != PhraseEnglish {
		result.MagnitudeSummary = SummarizeMagnitudeStyle(*result.TotalAmount, ce.Style)
	}

	if result.HasAmount() {
		ce.Logger.Debugf("growth=%.6f return=%s%% total=%s summary=%q", result.GrowthFactor, result.ReturnPercent, result.TotalAmount, result.MagnitudeSummary)
	} else {
		ce.Logger.Debugf("growth=%.6f return=%s%% (no displayable amount)", result.GrowthFactor, result.ReturnPercent)
	}
	return result, nil
}

// RunScenarios calculates every scenario in the configuration. A scenario
// with invalid inputs records the error and does not stop the batch.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.BatchResult, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	out := &domain.BatchResult{
		Display:   config.Display,
		Scenarios: make([]domain.ScenarioResult, 0, len(config.Scenarios)),
	}
	invalid := 0
	for _, sc := range config.Scenarios {
		sr := domain.ScenarioResult{Name: sc.Name, Inputs: sc.RawInputs}
		result, err := ce.Calculate(ctx, sc.RawInputs)
		switch {
		case errors.Is(err, ErrInvalidInput):
			sr.Error = err.Error()
			invalid++
		case err != nil:
			return nil, fmt.Errorf("scenario %q failed: %w", sc.Name, err)
		default:
			sr.Result = result
		}
		out.Scenarios = append(out.Scenarios, sr)
	}

	ce.Logger.Infof("ran %d scenarios (%d with invalid input)", len(out.Scenarios), invalid)
	return out, nil
}
