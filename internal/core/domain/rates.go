package domain

import "github.com/shopspring/decimal"

// RateSource tags where a day's exchange rate record came from.
type RateSource string

const (
	RateSourceManual RateSource = "MANUAL"
	RateSourceAPI    RateSource = "API"
)

// ExchangeRate stores the NZD base conversion rates for one calendar date.
// DateKey is YYYY-MM-DD in the operating time zone; one record per date.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	DateKey        string          `json:"dateKey"`
	RateWST        decimal.Decimal `json:"rateWST"`
	RateTOP        decimal.Decimal `json:"rateTOP"`
	RateFJD        decimal.Decimal `json:"rateFJD"`
	Source         RateSource      `json:"source"`
	RawResponse    *string         `json:"rawResponse,omitempty"` // audit payload for API fetches
	AuditFields
}

// BaseRate returns the stored base rate for the given destination currency.
// ok is false for unsupported currencies.
func (r *ExchangeRate) BaseRate(currency Currency) (decimal.Decimal, bool) {
	switch currency {
	case CurrencyWST:
		return r.RateWST, true
	case CurrencyTOP:
		return r.RateTOP, true
	case CurrencyFJD:
		return r.RateFJD, true
	}
	return decimal.Decimal{}, false
}

// ExchangeRateSettings is the process-wide rate configuration singleton.
type ExchangeRateSettings struct {
	ProfitMarginPercent  decimal.Decimal `json:"profitMarginPercent"` // 0-100 markup applied to base rates
	AutoUpdateEnabled    bool            `json:"autoUpdateEnabled"`
	UpdateFrequencyHours int             `json:"updateFrequencyHours"`
	NextUpdateAt         *string         `json:"nextUpdateAt,omitempty"`
	AuditFields
}

// DefaultExchangeRateSettings are used when no settings row exists yet:
// no margin, no auto updates.
func DefaultExchangeRateSettings() ExchangeRateSettings {
	return ExchangeRateSettings{
		ProfitMarginPercent:  decimal.Zero,
		AutoUpdateEnabled:    false,
		UpdateFrequencyHours: 24,
	}
}

// RateQuote pairs the base and margin-adjusted rate for one currency, so both
// can be surfaced for transparency/audit.
type RateQuote struct {
	Currency      Currency        `json:"currency"`
	BaseRate      decimal.Decimal `json:"baseRate"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
}

// FetchedRates is the result of an external rate-feed fetch: the three NZD
// base rates plus the raw response payload kept for audit.
type FetchedRates struct {
	RateWST     decimal.Decimal
	RateTOP     decimal.Decimal
	RateFJD     decimal.Decimal
	RawResponse string
}
