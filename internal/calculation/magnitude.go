package calculation

import (
	"fmt"

	"github.com/rpgo/growth-calculator/internal/domain"
	money "github.com/rpgo/growth-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	manUnit  int64 = 10000
	chunUnit int64 = 10000000
	eokUnit  int64 = 100000000
)

// Tier identifies which digit-preservation rule produced a Magnitude
type Tier int

const (
	TierNone        Tier = iota
	TierMan         // 1-99 man, kept as is
	TierTensMan     // 100-999 man, truncated to tens
	TierHundredsMan // 1,000-9,999 man, truncated to hundreds
	TierEok         // 1 eok and above, with a single chun digit
)

// Magnitude is the coarse decomposition of an amount. Lead is the man count
// for the man tiers and the eok count for TierEok.
type Magnitude struct {
	Tier Tier
	Lead decimal.Decimal
	Chun int64
}

// PhraseStyle selects the wording used by Magnitude.Phrase
type PhraseStyle int

const (
	PhraseEnglish PhraseStyle = iota
	PhraseKorean
)

// PhraseStyleForLocale maps a display locale to a phrase style, defaulting to English.
func PhraseStyleForLocale(locale string) PhraseStyle {
	if locale == domain.LocaleKorean {
		return PhraseKorean
	}
	return PhraseEnglish
}

// DecomposeMagnitude splits a non-negative amount into its magnitude tier,
// always truncating the dropped digits. ok is false below 10,000.
func DecomposeMagnitude(total decimal.Decimal) (Magnitude, bool) {
	amount := money.NewMoneyFromDecimal(total)
	if amount.LessThan(money.NewMoneyFromInt(manUnit)) {
		return Magnitude{}, false
	}

	man := amount.Units(manUnit)
	switch {
	case man.GreaterThanOrEqual(decimal.NewFromInt(10000)):
		chun := amount.Decimal.Mod(decimal.NewFromInt(eokUnit)).Div(decimal.NewFromInt(chunUnit)).Floor()
		return Magnitude{Tier: TierEok, Lead: amount.Units(eokUnit), Chun: chun.IntPart()}, true
	case man.GreaterThanOrEqual(decimal.NewFromInt(1000)):
		return Magnitude{Tier: TierHundredsMan, Lead: truncateTo(man, 100)}, true
	case man.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return Magnitude{Tier: TierTensMan, Lead: truncateTo(man, 10)}, true
	default:
		return Magnitude{Tier: TierMan, Lead: man}, true
	}
}

func truncateTo(d decimal.Decimal, unit int64) decimal.Decimal {
	return money.NewMoneyFromDecimal(d).TruncateTo(unit).Decimal
}

// Phrase renders the magnitude as an approximate range
func (m Magnitude) Phrase(style PhraseStyle) string {
	if m.Tier == TierNone {
		return ""
	}
	if style == PhraseKorean {
		switch {
		case m.Tier != TierEok:
			return fmt.Sprintf("약 %s만원대", m.Lead)
		case m.Chun == 0:
			return fmt.Sprintf("약 %s억원대", m.Lead)
		default:
			return fmt.Sprintf("약 %s억 %d천만원대", m.Lead, m.Chun)
		}
	}
	switch {
	case m.Tier != TierEok:
		return fmt.Sprintf("approximately %s man range", m.Lead)
	case m.Chun == 0:
		return fmt.Sprintf("approximately %s eok range", m.Lead)
	default:
		return fmt.Sprintf("approximately %s eok %d chun man range", m.Lead, m.Chun)
	}
}

// SummarizeMagnitude returns the English approximate-range phrase for a
// truncated total, or "" when the total is below 10,000.
func SummarizeMagnitude(total decimal.Decimal) string {
	return SummarizeMagnitudeStyle(total, PhraseEnglish)
}

// SummarizeMagnitudeStyle is SummarizeMagnitude with a chosen wording
func SummarizeMagnitudeStyle(total decimal.Decimal, style PhraseStyle) string {
	m, ok := DecomposeMagnitude(total)
	if !ok {
		return ""
	}
	return m.Phrase(style)
}
