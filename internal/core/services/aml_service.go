package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	"github.com/talofaremit/remit_backend/internal/utils/pricing"
)

// goAmlHeader is the fixed column order required by the regulatory submission
// tooling. Order must be preserved byte-for-byte.
var goAmlHeader = []string{
	"transaction_number",
	"transaction_date",
	"destination_currency",
	"amount_nzd",
	"fee_nzd",
	"total_paid_nzd",
	"exchange_rate",
	"total_foreign_received",
	"sender_number",
	"sender_name",
	"sender_dob",
	"sender_phone",
	"sender_address",
	"sender_occupation",
	"sender_employer",
	"sender_id_type",
	"sender_id_number",
	"sender_id_expiry",
	"sender_kyc_verified",
	"beneficiary_name",
	"beneficiary_phone",
	"beneficiary_address",
	"purpose_of_transfer",
	"ptr_required",
}

// AmlService handles goAML review and export of flagged transactions.
type AmlService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	customerRepo portsrepo.CustomerReader
	activityRepo portsrepo.ActivityLogRepository
}

// NewAmlService creates a new AmlService.
func NewAmlService(txnRepo portsrepo.TransactionRepositoryFacade, customerRepo portsrepo.CustomerReader, activityRepo portsrepo.ActivityLogRepository) *AmlService {
	return &AmlService{
		txnRepo:      txnRepo,
		customerRepo: customerRepo,
		activityRepo: activityRepo,
	}
}

// ListPendingExport returns transactions flagged export-ready and not yet
// exported, oldest first.
func (s *AmlService) ListPendingExport(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListGoAmlPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending goAML transactions in service: %w", err)
	}
	return txns, nil
}

// ExportCSV serializes the selected flagged transactions into the fixed
// goAML CSV format. Field quoting follows standard CSV rules (fields with
// commas, quotes or newlines are quoted, internal quotes doubled), which is
// exactly what encoding/csv emits. Non-destructive.
func (s *AmlService) ExportCSV(ctx context.Context, transactionIDs []string) (string, error) {
	if len(transactionIDs) == 0 {
		return "", fmt.Errorf("%w: no transactions selected for export", apperrors.ErrValidation)
	}

	txns, err := s.txnRepo.FindTransactionsByIDs(ctx, transactionIDs)
	if err != nil {
		return "", fmt.Errorf("failed to load transactions for export: %w", err)
	}
	if len(txns) != len(transactionIDs) {
		return "", fmt.Errorf("%w: one or more selected transactions do not exist", apperrors.ErrNotFound)
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(goAmlHeader); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}

	for i := range txns {
		txn := &txns[i]
		sender, err := s.customerRepo.FindCustomerByID(ctx, txn.CustomerID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: sender for transaction %s not found", apperrors.ErrNotFound, txn.TransactionNumber)
			}
			return "", fmt.Errorf("failed to load sender for export: %w", err)
		}
		if err := w.Write(s.exportRow(txn, sender)); err != nil {
			return "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	return sb.String(), nil
}

// exportRow renders one transaction in the fixed column order. Monetary
// amounts are cents-to-dollars with exactly two decimal places; the exchange
// rate is the raw stored value's string form.
func (s *AmlService) exportRow(txn *domain.Transaction, sender *domain.Customer) []string {
	idExpiry := ""
	if sender.IDExpiryDate != nil {
		idExpiry = sender.IDExpiryDate.Format("2006-01-02")
	}
	return []string{
		txn.TransactionNumber,
		txn.CreatedAt.Format("2006-01-02"),
		string(txn.DestinationCurrency),
		pricing.CentsToDollars(txn.AmountNzdCents).StringFixed(2),
		pricing.CentsToDollars(txn.FeeNzdCents).StringFixed(2),
		pricing.CentsToDollars(txn.TotalPaidNzdCents).StringFixed(2),
		txn.Rate.String(),
		txn.TotalForeignReceived.StringFixed(2),
		sender.CustomerNumber,
		sender.FullName(),
		sender.DateOfBirth.Format("2006-01-02"),
		sender.Phone,
		sender.Address,
		sender.Occupation,
		sender.Employer,
		string(sender.IDType),
		sender.IDNumber,
		idExpiry,
		boolYN(sender.KycVerified),
		txn.BeneficiaryName,
		txn.BeneficiaryPhone,
		txn.BeneficiaryAddress,
		txn.PurposeOfTransfer,
		boolYN(txn.IsPtrRequired),
	}
}

// MarkExported stamps the export timestamp on still-eligible transactions
// (flagged export-ready and not yet exported) and returns the number marked.
func (s *AmlService) MarkExported(ctx context.Context, transactionIDs []string, actorID string) (int64, error) {
	if len(transactionIDs) == 0 {
		return 0, fmt.Errorf("%w: no transactions selected", apperrors.ErrValidation)
	}

	marked, err := s.txnRepo.MarkGoAmlExported(ctx, transactionIDs, time.Now(), actorID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark transactions exported: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "GOAML_EXPORT_MARKED", "transaction", "batch", fmt.Sprintf("%d of %d marked", marked, len(transactionIDs)))
	return marked, nil
}

func boolYN(v bool) string {
	if v {
		return "Y"
	}
	return "N"
}
