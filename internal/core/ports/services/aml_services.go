package services

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// AmlSvcFacade handles goAML review and export of flagged transactions.
type AmlSvcFacade interface {
	// ListPendingExport returns transactions flagged export-ready and not yet
	// exported, oldest first.
	ListPendingExport(ctx context.Context) ([]domain.Transaction, error)

	// ExportCSV serializes the selected flagged transactions into the fixed
	// goAML CSV format. Non-destructive; marking exported is separate.
	ExportCSV(ctx context.Context, transactionIDs []string) (string, error)

	// MarkExported stamps the export timestamp on still-eligible transactions
	// and returns the number actually marked.
	MarkExported(ctx context.Context, transactionIDs []string, actorID string) (int64, error)
}
