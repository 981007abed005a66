package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

func (v *txView) ListAllocationsByTrip(_ context.Context, tripID string) ([]domain.CargoAllocation, error) {
	out := make([]domain.CargoAllocation, 0)
	for _, a := range v.st.allocations {
		if a.TripID == tripID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].AllocationID < out[j].AllocationID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (v *txView) FindAllocationByID(_ context.Context, allocationID string) (*domain.CargoAllocation, error) {
	a, ok := v.st.allocations[allocationID]
	if !ok {
		return nil, fmt.Errorf("%w: allocation %s", apperrors.ErrNotFound, allocationID)
	}
	return &a, nil
}

func (v *txView) SaveAllocation(_ context.Context, allocation domain.CargoAllocation) error {
	if _, exists := v.st.allocations[allocation.AllocationID]; exists {
		return fmt.Errorf("%w: allocation with ID %s already exists", apperrors.ErrDuplicate, allocation.AllocationID)
	}
	if err := v.checkClientUnique(allocation); err != nil {
		return err
	}
	v.st.allocations[allocation.AllocationID] = allocation
	return nil
}

func (v *txView) UpdateAllocation(_ context.Context, allocation domain.CargoAllocation) error {
	if _, exists := v.st.allocations[allocation.AllocationID]; !exists {
		return fmt.Errorf("%w: allocation %s", apperrors.ErrNotFound, allocation.AllocationID)
	}
	if err := v.checkClientUnique(allocation); err != nil {
		return err
	}
	v.st.allocations[allocation.AllocationID] = allocation
	return nil
}

// checkClientUnique mirrors the (trip_id, client_id) unique index.
func (v *txView) checkClientUnique(allocation domain.CargoAllocation) error {
	for id, a := range v.st.allocations {
		if id != allocation.AllocationID && a.TripID == allocation.TripID && a.ClientID == allocation.ClientID {
			return fmt.Errorf("%w: client %s already has an allocation on trip %s", apperrors.ErrDuplicate, allocation.ClientID, allocation.TripID)
		}
	}
	return nil
}

func (s *Store) ListAllocationsByTrip(ctx context.Context, tripID string) ([]domain.CargoAllocation, error) {
	v, unlock := s.read()
	defer unlock()
	return v.ListAllocationsByTrip(ctx, tripID)
}

func (s *Store) FindAllocationByID(ctx context.Context, allocationID string) (*domain.CargoAllocation, error) {
	v, unlock := s.read()
	defer unlock()
	return v.FindAllocationByID(ctx, allocationID)
}
