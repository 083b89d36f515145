package services

import (
	"context"
	"time"

	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// TransactionSvcFacade assembles and reads transfer transactions.
type TransactionSvcFacade interface {
	// CreateTransaction validates the request, computes fee/rate/totals and
	// compliance flags, allocates the sequential transaction number and
	// persists the record. No partial state is written on failure.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actorID string) (*domain.Transaction, error)

	// GetTransaction retrieves one transaction by ID.
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns transactions matching the filter.
	ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error)
}

// ReportingSvcFacade produces aggregate reports.
type ReportingSvcFacade interface {
	// TransactionSummary aggregates transactions created in [from, to].
	TransactionSummary(ctx context.Context, from, to time.Time) (*domain.TransactionSummary, error)
}
