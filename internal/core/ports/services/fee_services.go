package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// FeeQuoterSvc computes fees for transfer amounts.
type FeeQuoterSvc interface {
	// QuoteFee returns the NZD fee (in dollars) for a transfer of amountNzd
	// dollars under the active settings. Self-heals missing settings by
	// creating the documented default instead of failing.
	QuoteFee(ctx context.Context, amountNzd decimal.Decimal) (decimal.Decimal, error)
}

// FeeAdminSvc defines admin operations on fee configuration.
type FeeAdminSvc interface {
	// GetFeeSettings returns the settings singleton, creating the default
	// (fixed $5) if no row exists.
	GetFeeSettings(ctx context.Context) (*domain.FeeSettings, error)

	// UpdateFeeSettings replaces the settings singleton after validation.
	UpdateFeeSettings(ctx context.Context, req dto.UpdateFeeSettingsRequest, actorID string) (*domain.FeeSettings, error)

	// ListFeeBrackets returns the bracket set ordered by ascending MinAmount.
	ListFeeBrackets(ctx context.Context) ([]domain.FeeBracket, error)

	// ReplaceFeeBrackets replaces the whole bracket set.
	ReplaceFeeBrackets(ctx context.Context, req dto.ReplaceFeeBracketsRequest, actorID string) ([]domain.FeeBracket, error)
}

// FeeSvcFacade combines all fee service interfaces.
type FeeSvcFacade interface {
	FeeQuoterSvc
	FeeAdminSvc
}
