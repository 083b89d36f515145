package domain

import "github.com/shopspring/decimal"

// CurrencyBreakdown is one destination-currency slice of a transaction summary.
type CurrencyBreakdown struct {
	Currency             Currency        `json:"currency"`
	Count                int64           `json:"count"`
	AmountNzdCents       int64           `json:"amountNzdCents"`
	FeeNzdCents          int64           `json:"feeNzdCents"`
	TotalPaidNzdCents    int64           `json:"totalPaidNzdCents"`
	TotalForeignReceived decimal.Decimal `json:"totalForeignReceived"`
}

// TransactionSummary aggregates transactions over a date range for reporting.
type TransactionSummary struct {
	FromDate          string              `json:"fromDate"`
	ToDate            string              `json:"toDate"`
	Count             int64               `json:"count"`
	AmountNzdCents    int64               `json:"amountNzdCents"`
	FeeNzdCents       int64               `json:"feeNzdCents"`
	TotalPaidNzdCents int64               `json:"totalPaidNzdCents"`
	PtrRequiredCount  int64               `json:"ptrRequiredCount"`
	GoAmlReadyCount   int64               `json:"goAmlReadyCount"`
	ByCurrency        []CurrencyBreakdown `json:"byCurrency"`
}
