package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
	"github.com/talofaremit/remit_backend/internal/utils/pricing"
)

// FeeService provides business logic for fee quoting and fee configuration.
type FeeService struct {
	feeRepo      portsrepo.FeeRepositoryFacade
	activityRepo portsrepo.ActivityLogRepository
}

// NewFeeService creates a new FeeService.
func NewFeeService(feeRepo portsrepo.FeeRepositoryFacade, activityRepo portsrepo.ActivityLogRepository) *FeeService {
	return &FeeService{
		feeRepo:      feeRepo,
		activityRepo: activityRepo,
	}
}

// GetFeeSettings returns the settings singleton. A missing row is self-healed
// by creating the documented default (fixed $5) via the singleton upsert, so
// concurrent first-ever calls cannot produce duplicates.
func (s *FeeService) GetFeeSettings(ctx context.Context) (*domain.FeeSettings, error) {
	settings, err := s.feeRepo.FindFeeSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get fee settings in service: %w", err)
	}

	defaults := domain.DefaultFeeSettings()
	now := time.Now()
	defaults.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     "system",
		LastUpdatedAt: now,
		LastUpdatedBy: "system",
	}
	if err := s.feeRepo.SaveFeeSettings(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to create default fee settings: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Fee settings missing, created default fixed $5 configuration")
	return &defaults, nil
}

// QuoteFee returns the NZD fee (in dollars) for a transfer of amountNzd dollars.
func (s *FeeService) QuoteFee(ctx context.Context, amountNzd decimal.Decimal) (decimal.Decimal, error) {
	if amountNzd.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	settings, err := s.GetFeeSettings(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}

	var brackets []domain.FeeBracket
	if settings.FeeType == domain.FeeTypeBracket {
		brackets, err = s.feeRepo.ListFeeBrackets(ctx)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("failed to list fee brackets in service: %w", err)
		}
	}

	return pricing.CalculateFee(*settings, brackets, amountNzd), nil
}

// UpdateFeeSettings replaces the settings singleton after validation.
// A configuration with minimum above maximum is rejected here so the runtime
// clamp order never has to resolve it.
func (s *FeeService) UpdateFeeSettings(ctx context.Context, req dto.UpdateFeeSettingsRequest, actorID string) (*domain.FeeSettings, error) {
	if req.DefaultFeeNzd.IsNegative() {
		return nil, fmt.Errorf("%w: default fee cannot be negative", apperrors.ErrValidation)
	}
	if req.FeePercentage.IsNegative() || req.FeePercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: fee percentage must be between 0 and 100", apperrors.ErrValidation)
	}
	if req.MinimumFeeNzd.IsNegative() {
		return nil, fmt.Errorf("%w: minimum fee cannot be negative", apperrors.ErrValidation)
	}
	if req.MaximumFeeNzd != nil && req.MinimumFeeNzd.GreaterThan(*req.MaximumFeeNzd) {
		return nil, fmt.Errorf("%w: minimum fee cannot exceed maximum fee", apperrors.ErrValidation)
	}

	now := time.Now()
	settings := domain.FeeSettings{
		FeeType:       domain.FeeType(req.FeeType),
		DefaultFeeNzd: req.DefaultFeeNzd,
		FeePercentage: req.FeePercentage,
		MinimumFeeNzd: req.MinimumFeeNzd,
		MaximumFeeNzd: req.MaximumFeeNzd,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.feeRepo.SaveFeeSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save fee settings in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "FEE_SETTINGS_UPDATED", "fee_settings", "singleton", "fee type "+req.FeeType)
	return &settings, nil
}

// ListFeeBrackets returns the bracket set ordered by ascending MinAmount.
func (s *FeeService) ListFeeBrackets(ctx context.Context) ([]domain.FeeBracket, error) {
	brackets, err := s.feeRepo.ListFeeBrackets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fee brackets in service: %w", err)
	}
	return brackets, nil
}

// ReplaceFeeBrackets replaces the whole bracket set. After a save the stored
// set exactly matches the submitted set, with no survivors from before.
func (s *FeeService) ReplaceFeeBrackets(ctx context.Context, req dto.ReplaceFeeBracketsRequest, actorID string) ([]domain.FeeBracket, error) {
	now := time.Now()
	brackets := make([]domain.FeeBracket, len(req.Brackets))
	for i, in := range req.Brackets {
		if in.MinAmount.IsNegative() {
			return nil, fmt.Errorf("%w: bracket minimum cannot be negative", apperrors.ErrValidation)
		}
		if in.MaxAmount.LessThan(in.MinAmount) {
			return nil, fmt.Errorf("%w: bracket maximum %s is below minimum %s", apperrors.ErrValidation, in.MaxAmount, in.MinAmount)
		}
		if in.FeeAmount.IsNegative() {
			return nil, fmt.Errorf("%w: bracket fee cannot be negative", apperrors.ErrValidation)
		}
		brackets[i] = domain.FeeBracket{
			FeeBracketID: uuid.NewString(),
			MinAmount:    in.MinAmount,
			MaxAmount:    in.MaxAmount,
			FeeAmount:    in.FeeAmount,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}

	if err := s.feeRepo.ReplaceFeeBrackets(ctx, brackets); err != nil {
		return nil, fmt.Errorf("failed to replace fee brackets in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "FEE_BRACKETS_REPLACED", "fee_bracket", "all", fmt.Sprintf("%d brackets", len(brackets)))
	return brackets, nil
}
