package services

import (
	"context"
	"fmt"
	"time"

	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
)

// ReportingService produces aggregate transaction reports.
type ReportingService struct {
	txnRepo portsrepo.TransactionReporter
}

// NewReportingService creates a new ReportingService.
func NewReportingService(txnRepo portsrepo.TransactionReporter) *ReportingService {
	return &ReportingService{txnRepo: txnRepo}
}

// TransactionSummary aggregates transactions created in [from, to].
func (s *ReportingService) TransactionSummary(ctx context.Context, from, to time.Time) (*domain.TransactionSummary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}

	summary, err := s.txnRepo.SummarizeTransactions(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize transactions in service: %w", err)
	}
	return summary, nil
}
