package dto

import (
	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// UpdateFeeSettingsRequest defines the admin payload for fee settings.
type UpdateFeeSettingsRequest struct {
	FeeType       string           `json:"feeType" binding:"required,oneof=FIXED PERCENTAGE BRACKET"`
	DefaultFeeNzd decimal.Decimal  `json:"defaultFeeNzd" binding:"dgte0"`
	FeePercentage decimal.Decimal  `json:"feePercentage" binding:"dgte0"`
	MinimumFeeNzd decimal.Decimal  `json:"minimumFeeNzd" binding:"dgte0"`
	MaximumFeeNzd *decimal.Decimal `json:"maximumFeeNzd,omitempty"`
}

// FeeSettingsResponse is the API shape of the fee settings singleton.
type FeeSettingsResponse struct {
	FeeType       string           `json:"feeType"`
	DefaultFeeNzd decimal.Decimal  `json:"defaultFeeNzd"`
	FeePercentage decimal.Decimal  `json:"feePercentage"`
	MinimumFeeNzd decimal.Decimal  `json:"minimumFeeNzd"`
	MaximumFeeNzd *decimal.Decimal `json:"maximumFeeNzd,omitempty"`
}

// ToFeeSettingsResponse converts the domain settings to its API shape.
func ToFeeSettingsResponse(s *domain.FeeSettings) FeeSettingsResponse {
	return FeeSettingsResponse{
		FeeType:       string(s.FeeType),
		DefaultFeeNzd: s.DefaultFeeNzd,
		FeePercentage: s.FeePercentage,
		MinimumFeeNzd: s.MinimumFeeNzd,
		MaximumFeeNzd: s.MaximumFeeNzd,
	}
}

// FeeBracketInput is one submitted bracket in a wholesale replace.
type FeeBracketInput struct {
	MinAmount decimal.Decimal `json:"minAmount" binding:"dgte0"`
	MaxAmount decimal.Decimal `json:"maxAmount" binding:"dgt0"`
	FeeAmount decimal.Decimal `json:"feeAmount" binding:"dgte0"`
}

// ReplaceFeeBracketsRequest replaces the whole bracket set.
type ReplaceFeeBracketsRequest struct {
	Brackets []FeeBracketInput `json:"brackets" binding:"required,dive"`
}

// FeeBracketResponse is the API shape of one fee bracket.
type FeeBracketResponse struct {
	FeeBracketID string          `json:"feeBracketID"`
	MinAmount    decimal.Decimal `json:"minAmount"`
	MaxAmount    decimal.Decimal `json:"maxAmount"`
	FeeAmount    decimal.Decimal `json:"feeAmount"`
}

// ToFeeBracketResponses converts brackets to their API shape.
func ToFeeBracketResponses(brackets []domain.FeeBracket) []FeeBracketResponse {
	responses := make([]FeeBracketResponse, len(brackets))
	for i, b := range brackets {
		responses[i] = FeeBracketResponse{
			FeeBracketID: b.FeeBracketID,
			MinAmount:    b.MinAmount,
			MaxAmount:    b.MaxAmount,
			FeeAmount:    b.FeeAmount,
		}
	}
	return responses
}

// FeeQuoteResponse is the live fee-preview payload.
type FeeQuoteResponse struct {
	AmountNzd decimal.Decimal `json:"amountNzd"`
	FeeNzd    decimal.Decimal `json:"feeNzd"`
}
