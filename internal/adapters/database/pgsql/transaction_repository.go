package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
)

const transactionColumns = `transaction_id, transaction_number, customer_id, agent_id,
	destination_currency, amount_nzd_cents, fee_nzd_cents, total_paid_nzd_cents,
	rate, total_foreign_received,
	beneficiary_name, beneficiary_phone, beneficiary_address, purpose_of_transfer,
	is_ptr_required, is_go_aml_export_ready, go_aml_exported_at,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transfer transactions.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

func scanTransaction(row pgx.CollectableRow) (domain.Transaction, error) {
	var txn domain.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.TransactionNumber,
		&txn.CustomerID,
		&txn.AgentID,
		&txn.DestinationCurrency,
		&txn.AmountNzdCents,
		&txn.FeeNzdCents,
		&txn.TotalPaidNzdCents,
		&txn.Rate,
		&txn.TotalForeignReceived,
		&txn.BeneficiaryName,
		&txn.BeneficiaryPhone,
		&txn.BeneficiaryAddress,
		&txn.PurposeOfTransfer,
		&txn.IsPtrRequired,
		&txn.IsGoAmlExportReady,
		&txn.GoAmlExportedAt,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}

// SaveTransaction persists a fully computed transaction record.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		txn.TransactionNumber,
		txn.CustomerID,
		txn.AgentID,
		txn.DestinationCurrency,
		txn.AmountNzdCents,
		txn.FeeNzdCents,
		txn.TotalPaidNzdCents,
		txn.Rate,
		txn.TotalForeignReceived,
		txn.BeneficiaryName,
		txn.BeneficiaryPhone,
		txn.BeneficiaryAddress,
		txn.PurposeOfTransfer,
		txn.IsPtrRequired,
		txn.IsGoAmlExportReady,
		txn.GoAmlExportedAt,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionNumber, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its primary key.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	rows, err := r.pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction %s: %w", transactionID, err)
	}
	txn, err := pgx.CollectOneRow(rows, scanTransaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

// ListTransactions returns transactions matching the filter, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`)

	args := []any{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		sb.WriteString(` AND customer_id = $` + strconv.Itoa(len(args)))
	}
	if filter.AgentID != "" {
		args = append(args, filter.AgentID)
		sb.WriteString(` AND agent_id = $` + strconv.Itoa(len(args)))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		sb.WriteString(` AND created_at >= $` + strconv.Itoa(len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		sb.WriteString(` AND created_at <= $` + strconv.Itoa(len(args)))
	}

	args = append(args, filter.Limit)
	sb.WriteString(` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)))
	args = append(args, filter.Offset)
	sb.WriteString(` OFFSET $` + strconv.Itoa(len(args)) + `;`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to collect transactions: %w", err)
	}
	return txns, nil
}

// ListGoAmlPending returns export-ready, not-yet-exported transactions, oldest
// first so the longest-waiting flagged transfers surface at the top.
func (r *PgxTransactionRepository) ListGoAmlPending(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE is_go_aml_export_ready AND go_aml_exported_at IS NULL
		ORDER BY created_at ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending goAML transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to collect pending goAML transactions: %w", err)
	}
	return txns, nil
}

// FindTransactionsByIDs retrieves the given transactions in one query.
func (r *PgxTransactionRepository) FindTransactionsByIDs(ctx context.Context, transactionIDs []string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = ANY($1)
		ORDER BY created_at ASC;
	`
	rows, err := r.pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by ids: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to collect transactions by ids: %w", err)
	}
	return txns, nil
}

// MarkGoAmlExported stamps the export timestamp on the given transactions.
// The eligibility predicate is in the WHERE clause, so already-exported or
// never-flagged rows are skipped rather than re-stamped.
func (r *PgxTransactionRepository) MarkGoAmlExported(ctx context.Context, transactionIDs []string, exportedAt time.Time, actorID string) (int64, error) {
	query := `
		UPDATE transactions
		SET go_aml_exported_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_id = ANY($1)
		  AND is_go_aml_export_ready
		  AND go_aml_exported_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, transactionIDs, exportedAt, actorID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark transactions exported: %w", err)
	}
	return tag.RowsAffected(), nil
}

// SummarizeTransactions aggregates totals and per-currency breakdowns for
// transactions created in [from, to].
func (r *PgxTransactionRepository) SummarizeTransactions(ctx context.Context, from, to time.Time) (*domain.TransactionSummary, error) {
	summary := &domain.TransactionSummary{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
	}

	totalsQuery := `
		SELECT COUNT(*),
		       COALESCE(SUM(amount_nzd_cents), 0),
		       COALESCE(SUM(fee_nzd_cents), 0),
		       COALESCE(SUM(total_paid_nzd_cents), 0),
		       COUNT(*) FILTER (WHERE is_ptr_required),
		       COUNT(*) FILTER (WHERE is_go_aml_export_ready)
		FROM transactions
		WHERE created_at >= $1 AND created_at <= $2;
	`
	err := r.pool.QueryRow(ctx, totalsQuery, from, to).Scan(
		&summary.Count,
		&summary.AmountNzdCents,
		&summary.FeeNzdCents,
		&summary.TotalPaidNzdCents,
		&summary.PtrRequiredCount,
		&summary.GoAmlReadyCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions: %w", err)
	}

	breakdownQuery := `
		SELECT destination_currency,
		       COUNT(*),
		       COALESCE(SUM(amount_nzd_cents), 0),
		       COALESCE(SUM(fee_nzd_cents), 0),
		       COALESCE(SUM(total_paid_nzd_cents), 0),
		       COALESCE(SUM(total_foreign_received), 0)
		FROM transactions
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY destination_currency
		ORDER BY destination_currency;
	`
	rows, err := r.pool.Query(ctx, breakdownQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency breakdown: %w", err)
	}
	defer rows.Close()

	breakdowns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CurrencyBreakdown, error) {
		var b domain.CurrencyBreakdown
		err := row.Scan(
			&b.Currency,
			&b.Count,
			&b.AmountNzdCents,
			&b.FeeNzdCents,
			&b.TotalPaidNzdCents,
			&b.TotalForeignReceived,
		)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect currency breakdown: %w", err)
	}
	summary.ByCurrency = breakdowns

	return summary, nil
}
