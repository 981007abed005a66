package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type tripService struct {
	BaseService
	txManager portsrepo.TransactionManager
	tripRepo  portsrepo.TripReader
}

// NewTripService creates the trip lifecycle service.
func NewTripService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.TripSvcFacade {
	return &tripService{
		BaseService: newBaseService(buildOptions(opts)),
		txManager:   repos.TxManager,
		tripRepo:    repos.TripRepo,
	}
}

var _ portssvc.TripSvcFacade = (*tripService)(nil)

func (s *tripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find trip", slog.String("trip_id", tripID))
		}
		return nil, err
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error) {
	filter := portsrepo.TripFilter{ResponsibleID: params.ResponsibleID}
	if params.Status != "" {
		status, err := domain.ParseTripStatus(params.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	trips, next, err := s.tripRepo.ListTrips(ctx, filter, limit, params.NextToken)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list trips", slog.Int("limit", limit))
		return nil, err
	}
	return dto.ToListTripsResponse(trips, next), nil
}

func (s *tripService) CreateTrip(ctx context.Context, actor domain.Actor, req dto.CreateTripRequest) (*domain.Trip, error) {
	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}
	if req.TruckCapacity.IsNegative() {
		return nil, fmt.Errorf("%w: truck capacity cannot be negative", apperrors.ErrValidation)
	}
	family, err := domain.ParseProductFamily(string(req.ProductFamily))
	if err != nil {
		return nil, err
	}

	now := s.Now()
	responsible := req.ResponsibleID
	if responsible == "" {
		responsible = actor.UserID
	}
	trip := domain.Trip{
		TripID:             uuid.NewString(),
		Number:             tripNumber(now.Format("20060102")),
		TruckID:            req.TruckID,
		TruckCapacity:      req.TruckCapacity,
		Origin:             req.Origin,
		Destination:        req.Destination,
		AxisID:             req.AxisID,
		ProductID:          req.ProductID,
		ProductFamily:      family,
		DepotID:            req.DepotID,
		Quantity:           req.Quantity,
		UnitTransportPrice: req.UnitTransportPrice,
		ResponsibleID:      responsible,
		CustomsAgentID:     req.CustomsAgentID,
		Status:             domain.StatusLoading,
		IsCession:          req.IsCession,
		History:            domain.NewStateLog(domain.StatusLoading, now),
		AuditFields:        domain.NewAuditFields(actor.UserID, now),
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Trips().SaveTrip(ctx, trip)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create trip", slog.String("trip_id", trip.TripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip created", slog.String("trip_id", trip.TripID), slog.String("number", trip.Number))
	return &trip, nil
}

// tripNumber is VOY-<day>-<six uppercase characters>.
func tripNumber(day string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "VOY-" + day + "-" + suffix
}

func (s *tripService) AssignCustomsAgent(ctx context.Context, actor domain.Actor, tripID string, customsAgentID string) (*domain.Trip, error) {
	if customsAgentID == "" {
		return nil, fmt.Errorf("%w: customs agent is required", apperrors.ErrValidation)
	}

	var trip *domain.Trip
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		trip, err = uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if err := s.Authorize(ctx, actor, domain.CanAdvance(actor, trip), apperrors.ErrTripForbidden, slog.String("trip_id", tripID)); err != nil {
			return err
		}
		trip.CustomsAgentID = &customsAgentID
		trip.Touch(actor.UserID, s.Now())
		return uow.Trips().UpdateTrip(ctx, *trip)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Customs agent assignment refused", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Customs agent assigned", slog.String("trip_id", tripID), slog.String("customs_agent_id", customsAgentID))
	return trip, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, actor domain.Actor, tripID string) error {
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		trip, err := uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if err := s.Authorize(ctx, actor, domain.CanDelete(actor, trip), apperrors.ErrTripForbidden, slog.String("trip_id", tripID)); err != nil {
			return err
		}

		count, err := uow.Transactions().CountTransactionsByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %d transaction(s) reference trip %s", apperrors.ErrTripHasTransactions, count, trip.Number)
		}

		allocations, err := uow.Allocations().ListAllocationsByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		for _, a := range allocations {
			if a.Shortfall != nil || a.PurchasePrice != nil || a.SalePrice != nil {
				return fmt.Errorf("%w: allocation %s", apperrors.ErrAllocationLocked, a.AllocationID)
			}
		}
		return uow.Trips().DeleteTrip(ctx, tripID)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Trip deletion refused", slog.String("trip_id", tripID))
		return err
	}

	s.LogInfo(ctx, "Trip deleted", slog.String("trip_id", tripID))
	return nil
}

// AdvanceTrip locks the trip, checks the transition against the live row and
// applies the side effects of the target state before recording it.
func (s *tripService) AdvanceTrip(ctx context.Context, actor domain.Actor, tripID string, req domain.AdvanceRequest) (*domain.Trip, error) {
	var trip *domain.Trip
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		trip, err = uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if err := trip.CheckTransition(req.Target); err != nil {
			return err
		}
		if err := s.Authorize(ctx, actor, domain.CanAdvance(actor, trip), apperrors.ErrTripForbidden,
			slog.String("trip_id", tripID), slog.String("target", string(req.Target))); err != nil {
			return err
		}

		now := s.Now()
		switch req.Target {
		case domain.StatusCustoms:
			if !trip.HasCustomsAgent() {
				return fmt.Errorf("%w: trip %s", apperrors.ErrMissingCustomsAgent, trip.Number)
			}
		case domain.StatusAllocated:
			if err := s.allocateClients(ctx, uow, trip, req.Clients, actor.UserID, now); err != nil {
				return err
			}
		case domain.StatusPartiallyDischarged, domain.StatusDischarged:
			if err := s.recordDischarge(ctx, uow, trip, req.Target, req.Shortfalls, actor.UserID, now); err != nil {
				return err
			}
		case domain.StatusLoading, domain.StatusLoaded, domain.StatusDeparted, domain.StatusArrived, domain.StatusCleared:
		}

		if err := trip.ApplyTransition(req.Target, actor.UserID, now); err != nil {
			return err
		}
		return uow.Trips().UpdateTrip(ctx, *trip)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Trip transition refused", slog.String("trip_id", tripID), slog.String("target", string(req.Target)))
		return nil, err
	}

	s.LogInfo(ctx, "Trip advanced", slog.String("trip_id", tripID), slog.String("status", string(trip.Status)))
	return trip, nil
}

// allocateClients upserts the requested allocations. Quantities replace the
// previous allocation of the same client, and the trip total must still fit.
func (s *tripService) allocateClients(ctx context.Context, uow portsrepo.UnitOfWork, trip *domain.Trip, clients []domain.ClientQuantity, userID string, now time.Time) error {
	existing, err := uow.Allocations().ListAllocationsByTrip(ctx, trip.TripID)
	if err != nil {
		return err
	}
	byClient := make(map[string]domain.CargoAllocation, len(existing))
	for _, a := range existing {
		byClient[a.ClientID] = a
	}

	requested := make(map[string]struct{}, len(clients))
	for _, c := range clients {
		if c.ClientID == "" {
			return fmt.Errorf("%w: client is required", apperrors.ErrValidation)
		}
		if _, dup := requested[c.ClientID]; dup {
			return fmt.Errorf("%w: client %s appears twice", apperrors.ErrValidation, c.ClientID)
		}
		if !c.Quantity.IsPositive() {
			return fmt.Errorf("%w: quantity for client %s must be greater than zero", apperrors.ErrValidation, c.ClientID)
		}
		requested[c.ClientID] = struct{}{}
	}

	if len(existing) == 0 && len(clients) == 0 {
		return fmt.Errorf("%w: trip %s", apperrors.ErrNoClientAssigned, trip.Number)
	}

	total := decimal.Zero
	for _, a := range existing {
		if _, replaced := requested[a.ClientID]; !replaced {
			total = total.Add(a.Quantity)
		}
	}
	for _, c := range clients {
		total = total.Add(c.Quantity)
	}
	if total.GreaterThan(trip.Quantity) {
		return fmt.Errorf("%w: %s allocated for %s carried", apperrors.ErrAllocationExceeds, total.String(), trip.Quantity.String())
	}

	for _, c := range clients {
		if a, ok := byClient[c.ClientID]; ok {
			a.Quantity = c.Quantity
			a.Touch(userID, now)
			if err := uow.Allocations().UpdateAllocation(ctx, a); err != nil {
				return err
			}
			continue
		}
		if err := uow.Allocations().SaveAllocation(ctx, newAllocation(trip.TripID, c, userID, now)); err != nil {
			return err
		}
	}
	return nil
}

func (s *tripService) RecordDeliveries(ctx context.Context, actor domain.Actor, tripID string, shortfalls domain.Shortfalls) (*domain.Trip, error) {
	var trip *domain.Trip
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		trip, err = uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if trip.Status != domain.StatusPartiallyDischarged {
			return fmt.Errorf("%w: trip %s is %s", apperrors.ErrDeliveryRoundClosed, trip.Number, trip.Status)
		}
		if err := s.Authorize(ctx, actor, domain.CanAdvance(actor, trip), apperrors.ErrTripForbidden, slog.String("trip_id", tripID)); err != nil {
			return err
		}

		now := s.Now()
		if _, err := s.markDeliveries(ctx, uow, trip, shortfalls, actor.UserID, now); err != nil {
			return err
		}
		trip.Touch(actor.UserID, now)
		return uow.Trips().UpdateTrip(ctx, *trip)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Delivery round refused", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Deliveries recorded", slog.String("trip_id", tripID), slog.Int("flagged", len(shortfalls)))
	return trip, nil
}

// recordDischarge books a discharge transition. DISCHARGED needs every
// allocation delivered, counting earlier rounds.
func (s *tripService) recordDischarge(ctx context.Context, uow portsrepo.UnitOfWork, trip *domain.Trip, target domain.TripStatus, shortfalls domain.Shortfalls, userID string, now time.Time) error {
	allocations, err := s.markDeliveries(ctx, uow, trip, shortfalls, userID, now)
	if err != nil {
		return err
	}
	if target == domain.StatusDischarged {
		for _, a := range allocations {
			if !a.IsDelivered() {
				return fmt.Errorf("%w: allocation %s for client %s", apperrors.ErrIncompleteDischarge, a.AllocationID, a.ClientID)
			}
		}
	}
	return nil
}

// markDeliveries marks the allocations named in shortfalls delivered and
// returns every allocation of the trip. Ids that do not belong to the trip are
// ignored. A nil shortfall keeps the one already recorded.
func (s *tripService) markDeliveries(ctx context.Context, uow portsrepo.UnitOfWork, trip *domain.Trip, shortfalls domain.Shortfalls, userID string, now time.Time) ([]domain.CargoAllocation, error) {
	allocations, err := uow.Allocations().ListAllocationsByTrip(ctx, trip.TripID)
	if err != nil {
		return nil, err
	}

	marked := 0
	for i := range allocations {
		a := &allocations[i]
		shortfall, flagged := shortfalls[a.AllocationID]
		if !flagged {
			continue
		}
		if shortfall != nil {
			if shortfall.IsNegative() {
				return nil, fmt.Errorf("%w: shortfall for allocation %s is negative", apperrors.ErrValidation, a.AllocationID)
			}
			if shortfall.GreaterThan(a.Quantity) {
				return nil, fmt.Errorf("%w: shortfall %s exceeds the %s allocated to %s", apperrors.ErrValidation, shortfall.String(), a.Quantity.String(), a.ClientID)
			}
			v := *shortfall
			a.Shortfall = &v
		}
		a.DeliveryStatus = domain.Delivered
		a.Touch(userID, now)
		if err := uow.Allocations().UpdateAllocation(ctx, *a); err != nil {
			return nil, err
		}
		marked++
	}
	if ignored := len(shortfalls) - marked; ignored > 0 {
		s.LogDebug(ctx, "Ignoring shortfalls for unknown allocations", slog.String("trip_id", trip.TripID), slog.Int("ignored", ignored))
	}
	if marked == 0 {
		return nil, fmt.Errorf("%w: trip %s", apperrors.ErrNoDeliveryMarked, trip.Number)
	}
	return allocations, nil
}

func newAllocation(tripID string, c domain.ClientQuantity, userID string, now time.Time) domain.CargoAllocation {
	return domain.CargoAllocation{
		AllocationID:   uuid.NewString(),
		TripID:         tripID,
		ClientID:       c.ClientID,
		Quantity:       c.Quantity,
		DeliveryStatus: domain.NotDelivered,
		AuditFields:    domain.NewAuditFields(userID, now),
	}
}
