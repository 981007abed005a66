package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/pagination"
)

func (v *txView) FindTripByID(_ context.Context, tripID string) (*domain.Trip, error) {
	trip, ok := v.st.trips[tripID]
	if !ok {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}
	return &trip, nil
}

// FindTripByIDForUpdate needs no extra locking: the unit of work already owns the store.
func (v *txView) FindTripByIDForUpdate(ctx context.Context, tripID string) (*domain.Trip, error) {
	return v.FindTripByID(ctx, tripID)
}

func (v *txView) ListTrips(_ context.Context, filter portsrepo.TripFilter, limit int, nextToken *string) ([]domain.Trip, *string, error) {
	var (
		cursorSet bool
		cursorAt  time.Time
		cursorID  string
	)
	if nextToken != nil && *nextToken != "" {
		at, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursorSet, cursorAt, cursorID = true, at, id
	}

	trips := make([]domain.Trip, 0, len(v.st.trips))
	for _, t := range v.st.trips {
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if filter.ResponsibleID != "" && t.ResponsibleID != filter.ResponsibleID {
			continue
		}
		if filter.Declared != nil && t.Declared != *filter.Declared {
			continue
		}
		if cursorSet && !pagination.After(t.CreatedAt, t.TripID, cursorAt, cursorID) {
			continue
		}
		trips = append(trips, t)
	}
	sort.Slice(trips, func(i, j int) bool {
		if trips[i].CreatedAt.Equal(trips[j].CreatedAt) {
			return trips[i].TripID > trips[j].TripID
		}
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})

	if len(trips) <= limit {
		return trips, nil, nil
	}
	page := trips[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.TripID)
	return page, &token, nil
}

func (v *txView) SaveTrip(_ context.Context, trip domain.Trip) error {
	if _, exists := v.st.trips[trip.TripID]; exists {
		return fmt.Errorf("%w: trip with ID %s already exists", apperrors.ErrDuplicate, trip.TripID)
	}
	for _, t := range v.st.trips {
		if t.Number == trip.Number {
			return fmt.Errorf("%w: trip number %s already exists", apperrors.ErrDuplicate, trip.Number)
		}
	}
	v.st.trips[trip.TripID] = trip
	return nil
}

func (v *txView) UpdateTrip(_ context.Context, trip domain.Trip) error {
	if _, exists := v.st.trips[trip.TripID]; !exists {
		return fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, trip.TripID)
	}
	v.st.trips[trip.TripID] = trip
	return nil
}

// DeleteTrip removes the trip and its allocations. Payments keep existing
// with their trip reference cleared, as the foreign key does in PostgreSQL.
func (v *txView) DeleteTrip(_ context.Context, tripID string) error {
	if _, exists := v.st.trips[tripID]; !exists {
		return fmt.Errorf("%w: trip %s", apperrors.ErrNotFound, tripID)
	}
	delete(v.st.trips, tripID)
	for id, a := range v.st.allocations {
		if a.TripID == tripID {
			delete(v.st.allocations, id)
		}
	}
	for id, p := range v.st.payments {
		if p.TripID != nil && *p.TripID == tripID {
			p.TripID = nil
			v.st.payments[id] = p
		}
	}
	return nil
}

func (s *Store) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	v, unlock := s.read()
	defer unlock()
	return v.FindTripByID(ctx, tripID)
}

func (s *Store) ListTrips(ctx context.Context, filter portsrepo.TripFilter, limit int, nextToken *string) ([]domain.Trip, *string, error) {
	v, unlock := s.read()
	defer unlock()
	return v.ListTrips(ctx, filter, limit, nextToken)
}
