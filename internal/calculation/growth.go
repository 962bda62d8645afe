package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/growth-calculator/internal/domain"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	// AmountUnit is the granularity the total amount is truncated to.
	AmountUnit int64 = 1000
	// MinDisplayAmount is the smallest truncated total worth showing.
	MinDisplayAmount int64 = 10000
)

// CalculateGrowth computes the compounded return for the given text inputs.
// principalText may be empty; rateText is a percentage per period and
// timesText the number of periods.
func CalculateGrowth(principalText, rateText, timesText string) (*domain.CalculationResult, error) {
	return Calculate(domain.RawInputs{Principal: principalText, Rate: rateText, Times: timesText})
}

// Calculate is CalculateGrowth over a RawInputs value
func Calculate(raw domain.RawInputs) (*domain.CalculationResult, error) {
	in, err := ParseInputs(raw)
	if err != nil {
		return nil, err
	}

	growth := GrowthFactor(in.Rate, in.Periods)
	if math.IsNaN(growth) || math.IsInf(growth, 0) {
		return nil, &InvalidInputError{Field: FieldGrowth, Text: fmt.Sprint(growth)}
	}

	result := &domain.CalculationResult{
		GrowthFactor:  growth,
		ReturnPercent: ReturnPercent(growth),
	}
	if in.Principal != nil {
		if total, ok := TotalAmount(*in.Principal, growth); ok {
			result.TotalAmount = &total
			result.MagnitudeSummary = SummarizeMagnitude(total)
		}
	}
	return result, nil
}

// GrowthFactor returns (1 + rate)^periods
func GrowthFactor(rate float64, periods int64) float64 {
	return math.Pow(1+rate, float64(periods))
}

// ReturnPercent converts a growth factor into a whole-number percentage
// return, rounding halves away from zero.
func ReturnPercent(growth float64) decimal.Decimal {
	return decimal.NewFromFloat((growth - 1) * 100).Round(0)
}

// TotalAmount applies growth to the principal and truncates the result down
// to a multiple of AmountUnit. ok is false when there is nothing to display:
// the product is not finite or the truncated total is below MinDisplayAmount.
func TotalAmount(principal, growth float64) (total decimal.Decimal, ok bool) {
	raw := principal * growth
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return decimal.Zero, false
	}
	truncated := money.NewMoney(raw).TruncateTo(AmountUnit)
	if truncated.LessThan(money.NewMoneyFromInt(MinDisplayAmount)) {
		return decimal.Zero, false
	}
	return truncated.Decimal, true
}
