package pgsql

import (
	"context"
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const allocationColumns = `allocation_id, trip_id, client_id, quantity, purchase_price, sale_price,
	delivery_status, shortfall, created_at, created_by, last_updated_at, last_updated_by`

type PgxAllocationRepository struct {
	q querier
}

func newPgxAllocationRepository(q querier) *PgxAllocationRepository {
	return &PgxAllocationRepository{q: q}
}

var _ portsrepo.AllocationRepositoryFacade = (*PgxAllocationRepository)(nil)

func (r *PgxAllocationRepository) ListAllocationsByTrip(ctx context.Context, tripID string) ([]domain.CargoAllocation, error) {
	query := `
		SELECT ` + allocationColumns + `
		FROM cargo_allocations
		WHERE trip_id = $1
		ORDER BY created_at, allocation_id;
	`
	rows, err := r.q.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations of trip %s: %w", tripID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CargoAllocation])
	if err != nil {
		return nil, fmt.Errorf("failed to scan allocation rows of trip %s: %w", tripID, err)
	}

	allocations := make([]domain.CargoAllocation, len(ms))
	for i, m := range ms {
		allocations[i] = mapping.ToDomainAllocation(m)
	}
	return allocations, nil
}

func (r *PgxAllocationRepository) FindAllocationByID(ctx context.Context, allocationID string) (*domain.CargoAllocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM cargo_allocations WHERE allocation_id = $1;`
	rows, _ := r.q.Query(ctx, query, allocationID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CargoAllocation])
	if err != nil {
		return nil, wrapFindError(err, "allocation", allocationID)
	}
	a := mapping.ToDomainAllocation(m)
	return &a, nil
}

// SaveAllocation inserts an allocation; (trip_id, client_id) is unique.
func (r *PgxAllocationRepository) SaveAllocation(ctx context.Context, allocation domain.CargoAllocation) error {
	m := mapping.ToModelAllocation(allocation)
	query := `
		INSERT INTO cargo_allocations (` + allocationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.q.Exec(ctx, query,
		m.AllocationID, m.TripID, m.ClientID, m.Quantity, m.PurchasePrice, m.SalePrice,
		m.DeliveryStatus, m.Shortfall, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client %s already has an allocation on trip %s", apperrors.ErrDuplicate, m.ClientID, m.TripID)
		}
		return fmt.Errorf("failed to save allocation %s: %w", m.AllocationID, err)
	}
	return nil
}

func (r *PgxAllocationRepository) UpdateAllocation(ctx context.Context, allocation domain.CargoAllocation) error {
	m := mapping.ToModelAllocation(allocation)
	query := `
		UPDATE cargo_allocations
		SET client_id = $2, quantity = $3, purchase_price = $4, sale_price = $5,
			delivery_status = $6, shortfall = $7, last_updated_at = $8, last_updated_by = $9
		WHERE allocation_id = $1;
	`
	tag, err := r.q.Exec(ctx, query,
		m.AllocationID, m.ClientID, m.Quantity, m.PurchasePrice, m.SalePrice,
		m.DeliveryStatus, m.Shortfall, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client %s already has an allocation on trip %s", apperrors.ErrDuplicate, m.ClientID, m.TripID)
		}
		return fmt.Errorf("failed to update allocation %s: %w", m.AllocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: allocation %s", apperrors.ErrNotFound, m.AllocationID)
	}
	return nil
}
