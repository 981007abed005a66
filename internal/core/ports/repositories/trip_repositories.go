package repositories

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

// TripFilter narrows ListTrips. Zero values match everything.
type TripFilter struct {
	Status        domain.TripStatus
	ResponsibleID string
	Declared      *bool
}

// TripReader defines read operations for trips
type TripReader interface {
	// FindTripByID retrieves a trip with its state history.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips returns trips newest first, with a token for the next page when more exist.
	ListTrips(ctx context.Context, filter TripFilter, limit int, nextToken *string) ([]domain.Trip, *string, error)
}

// TripWriter defines write operations for trips
type TripWriter interface {
	SaveTrip(ctx context.Context, trip domain.Trip) error
	// UpdateTrip persists every mutable field, including the state history.
	UpdateTrip(ctx context.Context, trip domain.Trip) error
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripLocker serializes mutations of a single trip.
type TripLocker interface {
	// FindTripByIDForUpdate reads the trip and holds its row lock until the unit of work ends.
	FindTripByIDForUpdate(ctx context.Context, tripID string) (*domain.Trip, error)
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
	TripLocker
}
