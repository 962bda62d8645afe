package calculation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Only the leading numeric part of a field is read, so "2%" is 2 and "5.7"
// as a period count is 5.
var (
	realPrefix    = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	integerPrefix = regexp.MustCompile(`^[+-]?\d+`)
	wholeAmount   = regexp.MustCompile(`^-?\d{1,30}$`)
)

var separatorReplacer = strings.NewReplacer(",", "", "_", "")

// StripSeparators removes digit-grouping characters and surrounding whitespace.
func StripSeparators(text string) string {
	return strings.TrimSpace(separatorReplacer.Replace(text))
}

// ParseReal reads a real number from user text. ok is false when the text
// has no numeric prefix or the value is not finite.
func ParseReal(text string) (value float64, ok bool) {
	m := realPrefix.FindString(StripSeparators(text))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseInteger reads a whole number from user text, ignoring anything after
// the leading digits. ok is false when there are no digits. Values beyond
// the int64 range saturate at its bounds.
func ParseInteger(text string) (value int64, ok bool) {
	m := integerPrefix.FindString(StripSeparators(text))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// ParseAmount reads a whole-won amount to summarize. Only plain integers of
// at most 30 digits are accepted; exponents and fractions are rejected so the
// magnitude arithmetic stays bounded.
func ParseAmount(text string) (decimal.Decimal, bool) {
	m := StripSeparators(text)
	if !wholeAmount.MatchString(m) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseInputs converts raw text into numbers. Rate and times are required;
// an unparseable principal is simply left unset.
func ParseInputs(raw domain.RawInputs) (domain.ParsedInputs, error) {
	rate, ok := ParseReal(raw.Rate)
	if !ok {
		return domain.ParsedInputs{}, &InvalidInputError{Field: FieldRate, Text: raw.Rate}
	}
	periods, ok := ParseInteger(raw.Times)
	if !ok {
		return domain.ParsedInputs{}, &InvalidInputError{Field: FieldTimes, Text: raw.Times}
	}

	parsed := domain.ParsedInputs{Rate: rate / 100, Periods: periods}
	if p, ok := ParseReal(raw.Principal); ok {
		parsed.Principal = &p
	}
	return parsed, nil
}
