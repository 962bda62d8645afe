package decimal

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a won amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromInt creates a new Money instance from an integer amount
func NewMoneyFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// TruncateTo drops everything below the given unit, flooring toward negative infinity.
// TruncateTo(1000) turns 1,104,080.8 into 1,104,000.
func (m Money) TruncateTo(unit int64) Money {
	u := decimal.NewFromInt(unit)
	return Money{m.Decimal.Div(u).Floor().Mul(u)}
}

// Units returns how many whole units fit in the amount (floor division).
func (m Money) Units(unit int64) decimal.Decimal {
	return m.Decimal.Div(decimal.NewFromInt(unit)).Floor()
}

// GreaterThanOrEqual checks if this amount is greater than or equal to another
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Decimal.GreaterThanOrEqual(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// String returns the whole-won representation without grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Grouped renders the whole-won amount with thousands separators ("1,104,000").
// Amounts outside the int64 range fall back to the ungrouped form.
func (m Money) Grouped() string {
	whole := m.Decimal.Truncate(0)
	if whole.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || whole.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return whole.String()
	}
	return message.NewPrinter(language.Korean).Sprintf("%d", whole.IntPart())
}
