package domain

import (
	"github.com/shopspring/decimal"
)

// RawInputs holds the three text fields as typed by the user.
// Any field may contain grouping separators ("1,000,000").
type RawInputs struct {
	Principal string `yaml:"principal" json:"principal" toml:"principal"`
	Rate      string `yaml:"rate" json:"rate" toml:"rate"`
	Times     string `yaml:"times" json:"times" toml:"times"`
}

// ParsedInputs is the numeric form of RawInputs
type ParsedInputs struct {
	Rate      float64  `json:"rate"`    // fraction per period (2% -> 0.02)
	Periods   int64    `json:"periods"` // may be zero or negative
	Principal *float64 `json:"principal,omitempty"`
}

// CalculationResult is the outcome of a single "calculate" action.
// TotalAmount and MagnitudeSummary are set together or not at all.
type CalculationResult struct {
	GrowthFactor     float64          `json:"growth_factor" yaml:"growth_factor"`
	ReturnPercent    decimal.Decimal  `json:"return_percent" yaml:"return_percent"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty" yaml:"total_amount,omitempty"`
	MagnitudeSummary string           `json:"magnitude_summary,omitempty" yaml:"magnitude_summary,omitempty"`
}

// HasAmount reports whether a displayable total amount was produced
func (r *CalculationResult) HasAmount() bool {
	return r != nil && r.TotalAmount != nil
}

// Scenario is a named set of inputs evaluated in batch mode
type Scenario struct {
	Name      string `yaml:"name" json:"name" toml:"name"`
	RawInputs `yaml:",inline"`
}

// DisplaySettings controls how results are worded for display
type DisplaySettings struct {
	Locale       string `yaml:"locale" json:"locale" toml:"locale"`
	ErrorText    string `yaml:"error_text,omitempty" json:"error_text,omitempty" toml:"error_text"`
	CurrencyUnit string `yaml:"currency_unit,omitempty" json:"currency_unit,omitempty" toml:"currency_unit"`
}

// Configuration is the top-level structure of a scenario file
type Configuration struct {
	Display   DisplaySettings `yaml:"display" json:"display" toml:"display"`
	Scenarios []Scenario      `yaml:"scenarios" json:"scenarios" toml:"scenarios"`
}

// ScenarioResult pairs a scenario with its outcome. Error is set instead of
// Result when the inputs were invalid.
type ScenarioResult struct {
	Name   string             `json:"name" yaml:"name"`
	Inputs RawInputs          `json:"inputs" yaml:"inputs"`
	Result *CalculationResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error  string             `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchResult holds the results of every scenario in a configuration
type BatchResult struct {
	Display   DisplaySettings  `json:"display" yaml:"display"`
	Scenarios []ScenarioResult `json:"scenarios" yaml:"scenarios"`
}

// Supported display locales
const (
	LocaleEnglish = "en"
	LocaleKorean  = "ko"
)
