package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/core/domain"
)

var oneHundred = decimal.NewFromInt(100)

// CalculateFee returns the NZD fee (in dollars) to charge for a transfer of
// amountNzd dollars, per the active fee settings. Settings are passed in
// explicitly; this function reads no ambient state.
//
// Strategies:
//   - FIXED: DefaultFeeNzd unconditionally.
//   - PERCENTAGE: amount * FeePercentage / 100, clamped up to MinimumFeeNzd
//     then down to MaximumFeeNzd when set. Clamp order is min first, then max.
//   - BRACKET: the fee of the first bracket (ascending MinAmount) whose
//     inclusive [MinAmount, MaxAmount] range contains the amount; falls back
//     to DefaultFeeNzd when no bracket matches.
func CalculateFee(settings domain.FeeSettings, brackets []domain.FeeBracket, amountNzd decimal.Decimal) decimal.Decimal {
	switch settings.FeeType {
	case domain.FeeTypePercentage:
		fee := amountNzd.Mul(settings.FeePercentage).Div(oneHundred)
		if fee.LessThan(settings.MinimumFeeNzd) {
			fee = settings.MinimumFeeNzd
		}
		if settings.MaximumFeeNzd != nil && fee.GreaterThan(*settings.MaximumFeeNzd) {
			fee = *settings.MaximumFeeNzd
		}
		return fee

	case domain.FeeTypeBracket:
		sorted := make([]domain.FeeBracket, len(brackets))
		copy(sorted, brackets)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MinAmount.LessThan(sorted[j].MinAmount)
		})
		for _, b := range sorted {
			if amountNzd.GreaterThanOrEqual(b.MinAmount) && amountNzd.LessThanOrEqual(b.MaxAmount) {
				return b.FeeAmount
			}
		}
		// Gaps in coverage or amount outside all ranges.
		return settings.DefaultFeeNzd

	default: // FIXED
		return settings.DefaultFeeNzd
	}
}

// EffectiveRate applies the configured profit margin to a base conversion rate:
// effective = base * (1 + marginPercent/100).
func EffectiveRate(baseRate, marginPercent decimal.Decimal) decimal.Decimal {
	return baseRate.Mul(decimal.NewFromInt(1).Add(marginPercent.Div(oneHundred)))
}

// FeeToCents converts a dollar fee to integer cents, rounding to the nearest cent.
func FeeToCents(feeNzd decimal.Decimal) int64 {
	return feeNzd.Mul(oneHundred).Round(0).IntPart()
}

// CentsToDollars converts integer NZD cents to a decimal dollar amount.
func CentsToDollars(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(oneHundred)
}
