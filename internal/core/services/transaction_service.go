package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/utils/compliance"
	"github.com/talofaremit/remit_backend/internal/utils/pricing"
)

// TransactionService assembles transfer transactions: fee, rate, totals,
// compliance flags and the sequential transaction number.
type TransactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	counterRepo  portsrepo.CounterRepository
	activityRepo portsrepo.ActivityLogRepository
	customerSvc  portssvc.CustomerReaderSvc
	feeSvc       portssvc.FeeQuoterSvc
	rateSvc      portssvc.ExchangeRateReaderSvc
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	counterRepo portsrepo.CounterRepository,
	activityRepo portsrepo.ActivityLogRepository,
	customerSvc portssvc.CustomerReaderSvc,
	feeSvc portssvc.FeeQuoterSvc,
	rateSvc portssvc.ExchangeRateReaderSvc,
) *TransactionService {
	return &TransactionService{
		txnRepo:      txnRepo,
		counterRepo:  counterRepo,
		activityRepo: activityRepo,
		customerSvc:  customerSvc,
		feeSvc:       feeSvc,
		rateSvc:      rateSvc,
	}
}

// CreateTransaction turns a submitted transfer request into a fully computed,
// persisted transaction record.
//
// Order of operations: validate inputs, resolve the customer, compute the fee
// on the dollar amount, look up the day's effective rate, derive totals and
// compliance flags, then allocate the sequential number and persist. The
// counter increment is the first stateful step; nothing is written before all
// computations succeed.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actorID string) (*domain.Transaction, error) {
	if req.AmountNzdCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	currency := domain.Currency(req.DestinationCurrency)
	if !domain.IsSupportedCurrency(currency) {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, req.DestinationCurrency)
	}

	customer, err := s.customerSvc.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer '%s' not found", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, fmt.Errorf("failed to resolve customer for transaction: %w", err)
	}

	amountNzd := pricing.CentsToDollars(req.AmountNzdCents)

	feeNzd, err := s.feeSvc.QuoteFee(ctx, amountNzd)
	if err != nil {
		return nil, fmt.Errorf("failed to compute fee for transaction: %w", err)
	}
	feeCents := pricing.FeeToCents(feeNzd)

	_, rate, err := s.rateSvc.GetEffectiveRate(ctx, req.DateKey, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve exchange rate for transaction: %w", err)
	}

	totalPaidCents := req.AmountNzdCents + feeCents
	totalForeign := amountNzd.Mul(rate)
	flags := compliance.EvaluateFlags(currency, totalPaidCents)

	seq, err := s.counterRepo.NextCounterValue(ctx, domain.CounterTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate transaction number: %w", err)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		TransactionNumber:    fmt.Sprintf("TXN%06d", seq),
		CustomerID:           customer.CustomerID,
		AgentID:              req.AgentID,
		DestinationCurrency:  currency,
		AmountNzdCents:       req.AmountNzdCents,
		FeeNzdCents:          feeCents,
		TotalPaidNzdCents:    totalPaidCents,
		Rate:                 rate,
		TotalForeignReceived: totalForeign,
		BeneficiaryName:      req.BeneficiaryName,
		BeneficiaryPhone:     req.BeneficiaryPhone,
		BeneficiaryAddress:   req.BeneficiaryAddress,
		PurposeOfTransfer:    req.PurposeOfTransfer,
		IsPtrRequired:        flags.PtrRequired,
		IsGoAmlExportReady:   flags.GoAmlReady,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "TRANSACTION_CREATED", "transaction", txn.TransactionID, txn.TransactionNumber)
	return &txn, nil
}

// GetTransaction retrieves one transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	return txn, nil
}

// ListTransactions returns transactions matching the filter, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	return txns, nil
}
