package domain

import "github.com/shopspring/decimal"

// FeeType selects the fee calculation strategy.
type FeeType string

const (
	FeeTypeFixed      FeeType = "FIXED"
	FeeTypePercentage FeeType = "PERCENTAGE"
	FeeTypeBracket    FeeType = "BRACKET"
)

// FeeSettings is the process-wide fee configuration singleton.
type FeeSettings struct {
	FeeType       FeeType          `json:"feeType"`
	DefaultFeeNzd decimal.Decimal  `json:"defaultFeeNzd"`
	FeePercentage decimal.Decimal  `json:"feePercentage"` // 0-100
	MinimumFeeNzd decimal.Decimal  `json:"minimumFeeNzd"`
	MaximumFeeNzd *decimal.Decimal `json:"maximumFeeNzd,omitempty"` // optional cap
	AuditFields
}

// DefaultFeeSettings is the safe fallback created lazily when no settings row
// exists: a flat $5 fee.
func DefaultFeeSettings() FeeSettings {
	return FeeSettings{
		FeeType:       FeeTypeFixed,
		DefaultFeeNzd: decimal.NewFromInt(5),
		FeePercentage: decimal.Zero,
		MinimumFeeNzd: decimal.Zero,
	}
}

// FeeBracket maps an inclusive NZD amount range to a flat fee. Bracket sets
// are replaced wholesale on every admin save.
type FeeBracket struct {
	FeeBracketID string          `json:"feeBracketID"`
	MinAmount    decimal.Decimal `json:"minAmount"`
	MaxAmount    decimal.Decimal `json:"maxAmount"`
	FeeAmount    decimal.Decimal `json:"feeAmount"`
	AuditFields
}
