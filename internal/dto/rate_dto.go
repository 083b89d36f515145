package dto

import (
	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// UpsertExchangeRateRequest defines the admin payload for setting a day's base rates.
type UpsertExchangeRateRequest struct {
	DateKey string          `json:"dateKey" binding:"required,datetime=2006-01-02"`
	RateWST decimal.Decimal `json:"rateWST" binding:"dgt0"`
	RateTOP decimal.Decimal `json:"rateTOP" binding:"dgt0"`
	RateFJD decimal.Decimal `json:"rateFJD" binding:"dgt0"`
}

// UpdateRateSettingsRequest defines the admin payload for rate settings.
type UpdateRateSettingsRequest struct {
	ProfitMarginPercent  decimal.Decimal `json:"profitMarginPercent" binding:"dgte0"`
	AutoUpdateEnabled    bool            `json:"autoUpdateEnabled"`
	UpdateFrequencyHours int             `json:"updateFrequencyHours" binding:"omitempty,min=1,max=168"`
}

// RateQuoteResponse carries both the base and margin-adjusted rate for one currency.
type RateQuoteResponse struct {
	Currency      string          `json:"currency"`
	BaseRate      decimal.Decimal `json:"baseRate"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
}

// DailyRatesResponse is the rate-lookup payload: all supported currencies for
// one date plus the margin applied.
type DailyRatesResponse struct {
	DateKey             string              `json:"dateKey"`
	ProfitMarginPercent decimal.Decimal     `json:"profitMarginPercent"`
	Source              string              `json:"source"` // MANUAL, API or DEFAULT
	Quotes              []RateQuoteResponse `json:"quotes"`
}

// RateSettingsResponse is the API shape of the rate settings singleton.
type RateSettingsResponse struct {
	ProfitMarginPercent  decimal.Decimal `json:"profitMarginPercent"`
	AutoUpdateEnabled    bool            `json:"autoUpdateEnabled"`
	UpdateFrequencyHours int             `json:"updateFrequencyHours"`
	NextUpdateAt         *string         `json:"nextUpdateAt,omitempty"`
}

// ToRateSettingsResponse converts the domain settings to its API shape.
func ToRateSettingsResponse(s *domain.ExchangeRateSettings) RateSettingsResponse {
	return RateSettingsResponse{
		ProfitMarginPercent:  s.ProfitMarginPercent,
		AutoUpdateEnabled:    s.AutoUpdateEnabled,
		UpdateFrequencyHours: s.UpdateFrequencyHours,
		NextUpdateAt:         s.NextUpdateAt,
	}
}
