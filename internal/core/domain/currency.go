package domain

import "github.com/shopspring/decimal"

// Currency is a destination currency code for a transfer.
type Currency string

const (
	CurrencyWST Currency = "WST"
	CurrencyTOP Currency = "TOP"
	CurrencyFJD Currency = "FJD"
)

// HomeCurrency is the business's local operating currency. Transfers into the
// home currency are not "international" for compliance gating purposes.
const HomeCurrency = CurrencyWST

// SupportedCurrencies lists the destination currencies the business quotes,
// in display order.
var SupportedCurrencies = []Currency{CurrencyWST, CurrencyTOP, CurrencyFJD}

// DefaultBaseRates are the built-in NZD conversion rates used when no rate
// record exists for a date. The system must always be able to quote some rate.
var DefaultBaseRates = map[Currency]decimal.Decimal{
	CurrencyWST: decimal.NewFromFloat(2.1),
	CurrencyTOP: decimal.NewFromFloat(1.42),
	CurrencyFJD: decimal.NewFromFloat(1.33),
}

// IsSupportedCurrency reports whether code is one of the quoted destination currencies.
func IsSupportedCurrency(code Currency) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// IsInternational reports whether a transfer to this currency crosses the
// compliance border (i.e. is not in the home currency).
func (c Currency) IsInternational() bool {
	return c != HomeCurrency
}
