package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/utils/pricing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func dp(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func TestCalculateFee_Fixed(t *testing.T) {
	settings := domain.FeeSettings{FeeType: domain.FeeTypeFixed, DefaultFeeNzd: d("5")}

	assert.True(t, d("5").Equal(pricing.CalculateFee(settings, nil, d("1"))))
	assert.True(t, d("5").Equal(pricing.CalculateFee(settings, nil, d("100000"))))
}

func TestCalculateFee_Percentage(t *testing.T) {
	settings := domain.FeeSettings{
		FeeType:       domain.FeeTypePercentage,
		FeePercentage: d("2"),
		MinimumFeeNzd: d("10"),
		MaximumFeeNzd: dp("50"),
	}

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"raw fee within clamp range", "1000", "20"},
		{"below minimum is raised", "300", "10"},
		{"above maximum is capped", "3000", "50"},
		{"exactly at minimum", "500", "10"},
		{"exactly at maximum", "2500", "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.CalculateFee(settings, nil, d(tt.amount))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCalculateFee_PercentageNoMaximum(t *testing.T) {
	settings := domain.FeeSettings{
		FeeType:       domain.FeeTypePercentage,
		FeePercentage: d("2"),
		MinimumFeeNzd: d("10"),
	}

	got := pricing.CalculateFee(settings, nil, d("10000"))
	assert.True(t, d("200").Equal(got))
}

func TestCalculateFee_Bracket(t *testing.T) {
	settings := domain.FeeSettings{FeeType: domain.FeeTypeBracket, DefaultFeeNzd: d("40")}
	// Deliberately unsorted; calculation must order by ascending MinAmount.
	brackets := []domain.FeeBracket{
		{MinAmount: d("300.01"), MaxAmount: d("450"), FeeAmount: d("30")},
		{MinAmount: d("0"), MaxAmount: d("300"), FeeAmount: d("20")},
	}

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"first bracket", "250", "20"},
		{"upper bound inclusive", "300", "20"},
		{"second bracket", "400", "30"},
		{"no bracket matches falls back to default", "500", "40"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.CalculateFee(settings, brackets, d(tt.amount))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCalculateFee_BracketOverlapFirstMatchWins(t *testing.T) {
	settings := domain.FeeSettings{FeeType: domain.FeeTypeBracket, DefaultFeeNzd: d("99")}
	brackets := []domain.FeeBracket{
		{MinAmount: d("0"), MaxAmount: d("500"), FeeAmount: d("10")},
		{MinAmount: d("100"), MaxAmount: d("500"), FeeAmount: d("25")},
	}

	got := pricing.CalculateFee(settings, brackets, d("200"))
	assert.True(t, d("10").Equal(got))
}

func TestEffectiveRate(t *testing.T) {
	// 2.1 with a 5% margin is 2.205.
	got := pricing.EffectiveRate(d("2.1"), d("5"))
	assert.True(t, d("2.205").Equal(got), "got %s", got)

	// Zero margin leaves the base untouched.
	assert.True(t, d("1.42").Equal(pricing.EffectiveRate(d("1.42"), decimal.Zero)))
}

func TestFeeToCents(t *testing.T) {
	assert.Equal(t, int64(500), pricing.FeeToCents(d("5")))
	assert.Equal(t, int64(1234), pricing.FeeToCents(d("12.34")))
	assert.Equal(t, int64(1235), pricing.FeeToCents(d("12.345")))
	assert.Equal(t, int64(0), pricing.FeeToCents(decimal.Zero))
}

func TestCentsToDollars(t *testing.T) {
	assert.True(t, d("12.34").Equal(pricing.CentsToDollars(1234)))
	assert.True(t, d("0.01").Equal(pricing.CentsToDollars(1)))
}
