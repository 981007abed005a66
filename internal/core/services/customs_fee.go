package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// resolveRate prefers the axis rate and falls back to the global one.
func resolveRate(ctx context.Context, rates portsrepo.CustomsRateReader, axisID string) (*domain.CustomsRate, error) {
	if axisID != "" {
		rate, err := rates.FindRateByAxis(ctx, axisID)
		if err == nil {
			return rate, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}
	rate, err := rates.FindDefaultRate(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no customs rate configured for axis %q nor a default one", apperrors.ErrNotFound, axisID)
		}
		return nil, err
	}
	return rate, nil
}

// declarationFee prices a declaration for a truck of the given capacity.
func declarationFee(ctx context.Context, rates portsrepo.CustomsRateReader, capacity decimal.Decimal, family domain.ProductFamily, axisID string) (decimal.Decimal, error) {
	if capacity.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: capacity cannot be negative", apperrors.ErrValidation)
	}
	rate, err := resolveRate(ctx, rates, axisID)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.DeclarationFee(capacity, family), nil
}
