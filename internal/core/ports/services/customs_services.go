package services

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CustomsFeeSvc computes declaration fees.
type CustomsFeeSvc interface {
	// ComputeDeclarationFee returns perLiter(family) * capacity + transit fee,
	// using the axis rate when one exists and the global default otherwise.
	ComputeDeclarationFee(ctx context.Context, capacity decimal.Decimal, family domain.ProductFamily, axisID string) (decimal.Decimal, error)
}

// DeclarationSvc runs trips through the declare and release steps.
type DeclarationSvc interface {
	Declare(ctx context.Context, actor domain.Actor, tripID string, selector domain.AccountSelector) (*domain.Trip, error)

	// DeclareMany is best effort: every id gets its own unit of work and its own result.
	DeclareMany(ctx context.Context, actor domain.Actor, tripIDs []string, selector domain.AccountSelector) []domain.BatchResult

	// Release is idempotent.
	Release(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error)
	ReleaseMany(ctx context.Context, actor domain.Actor, tripIDs []string) []domain.BatchResult

	// MarkPassedUndeclared flags a trip that crossed customs without a declaration. No fee is posted.
	MarkPassedUndeclared(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error)
}

// CustomsSvcFacade combines all customs-related service interfaces
type CustomsSvcFacade interface {
	CustomsFeeSvc
	DeclarationSvc
}
