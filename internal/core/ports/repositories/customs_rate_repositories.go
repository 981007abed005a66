package repositories

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

// CustomsRateReader looks up customs fee tables. They are maintained elsewhere.
type CustomsRateReader interface {
	// FindRateByAxis returns the rate specific to an axis, or ErrNotFound.
	FindRateByAxis(ctx context.Context, axisID string) (*domain.CustomsRate, error)

	// FindDefaultRate returns the global rate (no axis), or ErrNotFound.
	FindDefaultRate(ctx context.Context) (*domain.CustomsRate, error)
}
