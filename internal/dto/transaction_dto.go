package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// CreateTransactionRequest defines the payload for submitting a transfer.
// Amount is in NZD cents; DateKey overrides the operating-TZ "today" for the
// rate lookup when set (back-dated entries).
type CreateTransactionRequest struct {
	CustomerID          string  `json:"customerID" binding:"required"`
	AgentID             *string `json:"agentID,omitempty"`
	DestinationCurrency string  `json:"destinationCurrency" binding:"required,oneof=WST TOP FJD"`
	AmountNzdCents      int64   `json:"amountNzdCents" binding:"required,gt=0"`
	BeneficiaryName     string  `json:"beneficiaryName" binding:"required"`
	BeneficiaryPhone    string  `json:"beneficiaryPhone"`
	BeneficiaryAddress  string  `json:"beneficiaryAddress"`
	PurposeOfTransfer   string  `json:"purposeOfTransfer"`
	DateKey             string  `json:"dateKey" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	TransactionNumber    string          `json:"transactionNumber"`
	CustomerID           string          `json:"customerID"`
	AgentID              *string         `json:"agentID,omitempty"`
	DestinationCurrency  string          `json:"destinationCurrency"`
	AmountNzdCents       int64           `json:"amountNzdCents"`
	FeeNzdCents          int64           `json:"feeNzdCents"`
	TotalPaidNzdCents    int64           `json:"totalPaidNzdCents"`
	Rate                 decimal.Decimal `json:"rate"`
	TotalForeignReceived decimal.Decimal `json:"totalForeignReceived"`
	BeneficiaryName      string          `json:"beneficiaryName"`
	BeneficiaryPhone     string          `json:"beneficiaryPhone"`
	BeneficiaryAddress   string          `json:"beneficiaryAddress"`
	PurposeOfTransfer    string          `json:"purposeOfTransfer"`
	IsPtrRequired        bool            `json:"isPtrRequired"`
	IsGoAmlExportReady   bool            `json:"isGoAmlExportReady"`
	GoAmlExportedAt      *time.Time      `json:"goAmlExportedAt,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to its API shape.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		TransactionNumber:    txn.TransactionNumber,
		CustomerID:           txn.CustomerID,
		AgentID:              txn.AgentID,
		DestinationCurrency:  string(txn.DestinationCurrency),
		AmountNzdCents:       txn.AmountNzdCents,
		FeeNzdCents:          txn.FeeNzdCents,
		TotalPaidNzdCents:    txn.TotalPaidNzdCents,
		Rate:                 txn.Rate,
		TotalForeignReceived: txn.TotalForeignReceived,
		BeneficiaryName:      txn.BeneficiaryName,
		BeneficiaryPhone:     txn.BeneficiaryPhone,
		BeneficiaryAddress:   txn.BeneficiaryAddress,
		PurposeOfTransfer:    txn.PurposeOfTransfer,
		IsPtrRequired:        txn.IsPtrRequired,
		IsGoAmlExportReady:   txn.IsGoAmlExportReady,
		GoAmlExportedAt:      txn.GoAmlExportedAt,
		CreatedAt:            txn.CreatedAt,
		CreatedBy:            txn.CreatedBy,
	}
}

// ToListTransactionResponse converts a slice of transactions to API shapes.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
