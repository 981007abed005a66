package services

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
)

// TripReaderSvc defines read operations for trips
type TripReaderSvc interface {
	GetTrip(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips retrieves a page of trips, newest first.
	ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error)
}

// TripWriterSvc defines write operations for trips
type TripWriterSvc interface {
	// CreateTrip registers a trip in LOADING with a single unvalidated history entry.
	CreateTrip(ctx context.Context, actor domain.Actor, req dto.CreateTripRequest) (*domain.Trip, error)

	AssignCustomsAgent(ctx context.Context, actor domain.Actor, tripID string, customsAgentID string) (*domain.Trip, error)

	// DeleteTrip removes a trip that no ledger transaction references yet.
	DeleteTrip(ctx context.Context, actor domain.Actor, tripID string) error
}

// TripTransitionSvc moves trips along their lifecycle.
type TripTransitionSvc interface {
	// AdvanceTrip moves a trip to req.Target. Allocation upserts and discharge
	// bookkeeping commit with the state change or not at all.
	AdvanceTrip(ctx context.Context, actor domain.Actor, tripID string, req domain.AdvanceRequest) (*domain.Trip, error)

	// RecordDeliveries marks further allocations delivered while the trip is
	// PARTIALLY_DISCHARGED. The status and history stay as they are.
	RecordDeliveries(ctx context.Context, actor domain.Actor, tripID string, shortfalls domain.Shortfalls) (*domain.Trip, error)
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
	TripTransitionSvc
}
