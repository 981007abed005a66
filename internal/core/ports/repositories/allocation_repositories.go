package repositories

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

// AllocationReader defines read operations for cargo allocations
type AllocationReader interface {
	// ListAllocationsByTrip returns the allocations of a trip, oldest first.
	ListAllocationsByTrip(ctx context.Context, tripID string) ([]domain.CargoAllocation, error)

	FindAllocationByID(ctx context.Context, allocationID string) (*domain.CargoAllocation, error)
}

// AllocationWriter defines write operations for cargo allocations
type AllocationWriter interface {
	// SaveAllocation inserts an allocation. (trip, client) is unique.
	SaveAllocation(ctx context.Context, allocation domain.CargoAllocation) error

	UpdateAllocation(ctx context.Context, allocation domain.CargoAllocation) error
}

// AllocationRepositoryFacade combines all allocation-related repository interfaces
type AllocationRepositoryFacade interface {
	AllocationReader
	AllocationWriter
}
