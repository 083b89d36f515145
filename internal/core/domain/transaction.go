package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted record of a single transfer.
//
// All NZD money fields are integer cents; TotalPaidNzdCents is always exactly
// AmountNzdCents + FeeNzdCents. Rate and TotalForeignReceived are decimal
// display/computation values and are not used for reconciliation.
type Transaction struct {
	TransactionID     string `json:"transactionID"`
	TransactionNumber string `json:"transactionNumber"` // sequential, human readable (TXN prefix)
	CustomerID        string `json:"customerID"`
	AgentID           *string `json:"agentID,omitempty"`

	DestinationCurrency  Currency        `json:"destinationCurrency"`
	AmountNzdCents       int64           `json:"amountNzdCents"`
	FeeNzdCents          int64           `json:"feeNzdCents"`
	TotalPaidNzdCents    int64           `json:"totalPaidNzdCents"`
	Rate                 decimal.Decimal `json:"rate"` // margin-adjusted rate applied
	TotalForeignReceived decimal.Decimal `json:"totalForeignReceived"`

	BeneficiaryName    string `json:"beneficiaryName"`
	BeneficiaryPhone   string `json:"beneficiaryPhone"`
	BeneficiaryAddress string `json:"beneficiaryAddress"`
	PurposeOfTransfer  string `json:"purposeOfTransfer"`

	IsPtrRequired      bool       `json:"isPtrRequired"`
	IsGoAmlExportReady bool       `json:"isGoAmlExportReady"`
	GoAmlExportedAt    *time.Time `json:"goAmlExportedAt,omitempty"` // null until exported

	AuditFields
}

// ComplianceFlags is the result of AML evaluation for one transaction.
type ComplianceFlags struct {
	PtrRequired bool `json:"ptrRequired"`
	GoAmlReady  bool `json:"goAmlReady"`
}
