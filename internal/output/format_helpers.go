package output

import (
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatAmount formats a won amount with digit grouping and the unit suffix,
// e.g. "1,104,000원" or "1,104,000 won".
func FormatAmount(amount decimal.Decimal, labels Labels) string {
	return money.NewMoneyFromDecimal(amount).Grouped() + labels.UnitSeparator + labels.Unit
}

// FormatPercentage formats a whole-number percentage
func FormatPercentage(percent decimal.Decimal) string { return percent.StringFixed(0) + "%" }
