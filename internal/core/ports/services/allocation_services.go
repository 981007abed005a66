package services

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AllocationReaderSvc defines read operations for cargo allocations
type AllocationReaderSvc interface {
	ListAllocations(ctx context.Context, tripID string) ([]domain.CargoAllocation, error)

	// ComputeMargin aggregates revenue, costs and fees of a trip. It never writes.
	ComputeMargin(ctx context.Context, tripID string) (*domain.MarginReport, error)
}

// AllocationWriterSvc defines write operations for cargo allocations
type AllocationWriterSvc interface {
	// AssignClient creates or updates the allocation of clientID on the trip.
	AssignClient(ctx context.Context, actor domain.Actor, tripID string, clientID string, quantity decimal.Decimal) (*domain.CargoAllocation, error)

	SetPurchasePrice(ctx context.Context, actor domain.Actor, tripID string, allocationID string, price decimal.Decimal) (*domain.CargoAllocation, error)

	SetSalePrice(ctx context.Context, actor domain.Actor, tripID string, allocationID string, price decimal.Decimal) (*domain.CargoAllocation, error)

	// ReassignClientAndQuantity edits one allocation, checking capacity without its previous quantity.
	ReassignClientAndQuantity(ctx context.Context, actor domain.Actor, tripID string, allocationID string, clientID string, quantity decimal.Decimal) (*domain.CargoAllocation, error)
}

// AllocationSvcFacade combines all allocation-related service interfaces
type AllocationSvcFacade interface {
	AllocationReaderSvc
	AllocationWriterSvc
}
