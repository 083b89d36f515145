package dto

// ExportTransactionsRequest selects flagged transactions for CSV export.
type ExportTransactionsRequest struct {
	TransactionIDs []string `json:"transactionIDs" binding:"required,min=1"`
}

// MarkExportedRequest stamps the export timestamp on flagged transactions.
type MarkExportedRequest struct {
	TransactionIDs []string `json:"transactionIDs" binding:"required,min=1"`
}

// MarkExportedResponse reports how many transactions were actually stamped.
type MarkExportedResponse struct {
	MarkedCount int64 `json:"markedCount"`
}
