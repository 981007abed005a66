package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/mapping"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const tripColumns = `trip_id, number, truck_id, truck_capacity, origin, destination, departed_at, arrived_at,
	axis_id, product_id, product_family, depot_id, quantity, unit_transport_price, responsible_id,
	customs_agent_id, status, declared, released, passed_undeclared, is_cession, history,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTripRepository struct {
	q querier
}

func newPgxTripRepository(q querier) *PgxTripRepository {
	return &PgxTripRepository{q: q}
}

var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

func (r *PgxTripRepository) findOne(ctx context.Context, query, tripID string) (*domain.Trip, error) {
	rows, _ := r.q.Query(ctx, query, tripID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Trip])
	if err != nil {
		return nil, wrapFindError(err, "trip", tripID)
	}
	trip, err := mapping.ToDomainTrip(m)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindTripByID retrieves a trip with its state history.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	return r.findOne(ctx, `SELECT `+tripColumns+` FROM trips WHERE trip_id = $1;`, tripID)
}

// FindTripByIDForUpdate holds the row lock until the surrounding transaction ends.
func (r *PgxTripRepository) FindTripByIDForUpdate(ctx context.Context, tripID string) (*domain.Trip, error) {
	return r.findOne(ctx, `SELECT `+tripColumns+` FROM trips WHERE trip_id = $1 FOR UPDATE;`, tripID)
}

// ListTrips retrieves trips newest first using keyset pagination on (created_at, trip_id).
func (r *PgxTripRepository) ListTrips(ctx context.Context, filter portsrepo.TripFilter, limit int, nextToken *string) ([]domain.Trip, *string, error) {
	var (
		conditions []string
		args       []any
	)
	next := func() string { return "$" + strconv.Itoa(len(args)) }

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, "status = "+next())
	}
	if filter.ResponsibleID != "" {
		args = append(args, filter.ResponsibleID)
		conditions = append(conditions, "responsible_id = "+next())
	}
	if filter.Declared != nil {
		args = append(args, *filter.Declared)
		conditions = append(conditions, "declared = "+next())
	}
	if nextToken != nil && *nextToken != "" {
		cursorAt, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursorAt)
		atParam := next()
		args = append(args, cursorID)
		conditions = append(conditions, "(created_at, trip_id) < ("+atParam+", "+next()+")")
	}

	query := `SELECT ` + tripColumns + ` FROM trips`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	// One extra row tells whether another page exists.
	args = append(args, limit+1)
	query += " ORDER BY created_at DESC, trip_id DESC LIMIT " + next() + ";"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list trips: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Trip])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan trip rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.TripID)
		token = &t
	}

	trips := make([]domain.Trip, 0, len(ms))
	for _, m := range ms {
		trip, err := mapping.ToDomainTrip(m)
		if err != nil {
			return nil, nil, err
		}
		trips = append(trips, trip)
	}
	return trips, token, nil
}

// SaveTrip inserts a new trip. Both the id and the number are unique.
func (r *PgxTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	m, err := mapping.ToModelTrip(trip)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26);
	`
	_, err = r.q.Exec(ctx, query,
		m.TripID, m.Number, m.TruckID, m.TruckCapacity, m.Origin, m.Destination, m.DepartedAt, m.ArrivedAt,
		m.AxisID, m.ProductID, m.ProductFamily, m.DepotID, m.Quantity, m.UnitTransportPrice, m.ResponsibleID,
		m.CustomsAgentID, m.Status, m.Declared, m.Released, m.PassedUndeclared, m.IsCession, m.History,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: trip %s (%s) already exists", apperrors.ErrDuplicate, m.TripID, m.Number)
		}
		return fmt.Errorf("failed to save trip %s: %w", m.TripID, err)
	}
	return nil
}

// UpdateTrip persists every mutable field, history included.
func (r *PgxTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	m, err := mapping.ToModelTrip(trip)
	if err != nil {
		return err
	}
	query := `
		UPDATE trips
		SET truck_id = $2, truck_capacity = $3, origin = $4, destination = $5, departed_at = $6, arrived_at = $7,
			axis_id = $8, product_id = $9, product_family = $10, depot_id = $11, quantity = $12,
			unit_transport_price = $13, responsible_id = $14, customs_agent_id = $15, status = $16,
			declared = $17, released = $18, passed_undeclared = $19, is_cession = $20, history = $21,
			last_updated_at = $22, last_updated_by = $23
		WHERE trip_id = $1;
	`
	tag, err := r.q.Exec(ctx, query,
		m.TripID, m.TruckID, m.TruckCapacity, m.Origin, m.Destination, m.DepartedAt, m.ArrivedAt,
		m.AxisID, m.ProductID, m.ProductFamily, m.DepotID, m.Quantity,
		m.UnitTransportPrice, m.ResponsibleID, m.CustomsAgentID, m.Status,
		m.Declared, m.Released, m.PassedUndeclared, m.IsCession, m.History,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip %s: %w", m.TripID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, m.TripID)
	}
	return nil
}

// DeleteTrip removes the trip; its allocations go with it (ON DELETE CASCADE).
func (r *PgxTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM trips WHERE trip_id = $1;`, tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", tripID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}
	return nil
}
