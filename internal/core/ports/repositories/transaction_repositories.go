package repositories

import (
	"context"
	"time"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// TransactionListFilter narrows ListTransactions results.
type TransactionListFilter struct {
	CustomerID string
	AgentID    string
	FromDate   *time.Time
	ToDate     *time.Time
	Limit      int
	Offset     int
}

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its primary key.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns transactions matching the filter, newest first.
	ListTransactions(ctx context.Context, filter TransactionListFilter) ([]domain.Transaction, error)

	// ListGoAmlPending returns transactions flagged export-ready and not yet
	// exported, oldest first.
	ListGoAmlPending(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionsByIDs retrieves the given transactions in one query.
	FindTransactionsByIDs(ctx context.Context, transactionIDs []string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// SaveTransaction persists a fully computed transaction record.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkGoAmlExported stamps the export timestamp on the given transactions.
	// Only rows still eligible (export-ready and not yet exported) are touched;
	// returns the number of rows updated.
	MarkGoAmlExported(ctx context.Context, transactionIDs []string, exportedAt time.Time, actorID string) (int64, error)
}

// TransactionReporter defines aggregate reporting queries.
type TransactionReporter interface {
	// SummarizeTransactions aggregates totals and per-currency breakdowns for
	// transactions created in [from, to].
	SummarizeTransactions(ctx context.Context, from, to time.Time) (*domain.TransactionSummary, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionReporter
}
