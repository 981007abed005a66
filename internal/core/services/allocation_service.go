package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type allocationService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	tripRepo        portsrepo.TripReader
	allocationRepo  portsrepo.AllocationReader
	transactionRepo portsrepo.TransactionReader
}

// NewAllocationService creates the cargo allocation service.
func NewAllocationService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.AllocationSvcFacade {
	return &allocationService{
		BaseService:     newBaseService(buildOptions(opts)),
		txManager:       repos.TxManager,
		tripRepo:        repos.TripRepo,
		allocationRepo:  repos.AllocationRepo,
		transactionRepo: repos.TransactionRepo,
	}
}

var _ portssvc.AllocationSvcFacade = (*allocationService)(nil)

func (s *allocationService) ListAllocations(ctx context.Context, tripID string) ([]domain.CargoAllocation, error) {
	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		return nil, err
	}
	allocations, err := s.allocationRepo.ListAllocationsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list allocations", slog.String("trip_id", tripID))
		return nil, err
	}
	return allocations, nil
}

// ComputeMargin reads committed data only and never writes.
func (s *allocationService) ComputeMargin(ctx context.Context, tripID string) (*domain.MarginReport, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	allocations, err := s.allocationRepo.ListAllocationsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list allocations for margin", slog.String("trip_id", tripID))
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for margin", slog.String("trip_id", tripID))
		return nil, err
	}

	report := accounting.ComputeMargin(*trip, allocations, txns)
	s.LogDebug(ctx, "Margin computed",
		slog.String("trip_id", tripID),
		slog.String("net_margin", report.NetMargin.String()))
	return &report, nil
}

func (s *allocationService) AssignClient(ctx context.Context, actor domain.Actor, tripID string, clientID string, quantity decimal.Decimal) (*domain.CargoAllocation, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client is required", apperrors.ErrValidation)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}

	var allocation domain.CargoAllocation
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		trip, err := s.lockOpenTrip(ctx, uow, actor, tripID)
		if err != nil {
			return err
		}
		existing, err := uow.Allocations().ListAllocationsByTrip(ctx, tripID)
		if err != nil {
			return err
		}

		var current *domain.CargoAllocation
		for i := range existing {
			if existing[i].ClientID == clientID {
				current = &existing[i]
				break
			}
		}
		exclude := ""
		if current != nil {
			exclude = current.AllocationID
		}
		if err := checkCapacity(trip, existing, exclude, quantity); err != nil {
			return err
		}

		now := s.Now()
		if current != nil {
			if current.Shortfall != nil && current.Shortfall.GreaterThan(quantity) {
				return fmt.Errorf("%w: quantity is below the recorded shortfall", apperrors.ErrValidation)
			}
			current.Quantity = quantity
			current.Touch(actor.UserID, now)
			allocation = *current
			return uow.Allocations().UpdateAllocation(ctx, allocation)
		}
		allocation = newAllocation(tripID, domain.ClientQuantity{ClientID: clientID, Quantity: quantity}, actor.UserID, now)
		return uow.Allocations().SaveAllocation(ctx, allocation)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Client assignment refused", slog.String("trip_id", tripID), slog.String("client_id", clientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client assigned to trip",
		slog.String("trip_id", tripID),
		slog.String("allocation_id", allocation.AllocationID),
		slog.String("quantity", quantity.String()))
	return &allocation, nil
}

func (s *allocationService) ReassignClientAndQuantity(ctx context.Context, actor domain.Actor, tripID string, allocationID string, clientID string, quantity decimal.Decimal) (*domain.CargoAllocation, error) {
	if clientID == "" {
		return nil, fmt.Errorf("%w: client is required", apperrors.ErrValidation)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be greater than zero", apperrors.ErrValidation)
	}

	var allocation *domain.CargoAllocation
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		trip, err := s.lockOpenTrip(ctx, uow, actor, tripID)
		if err != nil {
			return err
		}
		allocation, err = findTripAllocation(ctx, uow, tripID, allocationID)
		if err != nil {
			return err
		}
		existing, err := uow.Allocations().ListAllocationsByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if err := checkCapacity(trip, existing, allocationID, quantity); err != nil {
			return err
		}
		if allocation.Shortfall != nil && allocation.Shortfall.GreaterThan(quantity) {
			return fmt.Errorf("%w: quantity is below the recorded shortfall", apperrors.ErrValidation)
		}

		allocation.ClientID = clientID
		allocation.Quantity = quantity
		allocation.Touch(actor.UserID, s.Now())
		return uow.Allocations().UpdateAllocation(ctx, *allocation)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Allocation edit refused", slog.String("trip_id", tripID), slog.String("allocation_id", allocationID))
		return nil, err
	}

	s.LogInfo(ctx, "Allocation edited", slog.String("allocation_id", allocationID), slog.String("quantity", quantity.String()))
	return allocation, nil
}

func (s *allocationService) SetPurchasePrice(ctx context.Context, actor domain.Actor, tripID string, allocationID string, price decimal.Decimal) (*domain.CargoAllocation, error) {
	return s.setPrice(ctx, actor, tripID, allocationID, price, true)
}

func (s *allocationService) SetSalePrice(ctx context.Context, actor domain.Actor, tripID string, allocationID string, price decimal.Decimal) (*domain.CargoAllocation, error) {
	return s.setPrice(ctx, actor, tripID, allocationID, price, false)
}

// setPrice fixes a unit price once physical delivery is known.
func (s *allocationService) setPrice(ctx context.Context, actor domain.Actor, tripID, allocationID string, price decimal.Decimal, purchase bool) (*domain.CargoAllocation, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidPrice, price.String())
	}

	var allocation *domain.CargoAllocation
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		trip, err := uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if err := s.Authorize(ctx, actor, domain.CanAllocate(actor, trip), apperrors.ErrCargoForbidden, slog.String("trip_id", tripID)); err != nil {
			return err
		}
		if !trip.Status.IsDischarged() {
			return fmt.Errorf("%w: trip %s is %s", apperrors.ErrNotDischarged, trip.Number, trip.Status)
		}
		if purchase && trip.IsCession {
			return fmt.Errorf("%w: trip %s", apperrors.ErrCessionTrip, trip.Number)
		}
		allocation, err = findTripAllocation(ctx, uow, tripID, allocationID)
		if err != nil {
			return err
		}

		p := price
		if purchase {
			allocation.PurchasePrice = &p
		} else {
			allocation.SalePrice = &p
		}
		allocation.Touch(actor.UserID, s.Now())
		return uow.Allocations().UpdateAllocation(ctx, *allocation)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Price change refused", slog.String("trip_id", tripID), slog.String("allocation_id", allocationID))
		return nil, err
	}

	s.LogInfo(ctx, "Allocation priced",
		slog.String("allocation_id", allocationID),
		slog.Bool("purchase", purchase),
		slog.String("price", price.String()))
	return allocation, nil
}

// lockOpenTrip locks trip for an allocation change. Allocations are frozen
// once any discharge has been recorded.
func (s *allocationService) lockOpenTrip(ctx context.Context, uow portsrepo.UnitOfWork, actor domain.Actor, tripID string) (*domain.Trip, error) {
	trip, err := uow.Trips().FindTripByIDForUpdate(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, actor, domain.CanAllocate(actor, trip), apperrors.ErrCargoForbidden, slog.String("trip_id", tripID)); err != nil {
		return nil, err
	}
	if trip.Status.IsDischarged() {
		return nil, fmt.Errorf("%w: trip %s is %s", apperrors.ErrAllocationClosed, trip.Number, trip.Status)
	}
	return trip, nil
}

func findTripAllocation(ctx context.Context, uow portsrepo.UnitOfWork, tripID, allocationID string) (*domain.CargoAllocation, error) {
	allocation, err := uow.Allocations().FindAllocationByID(ctx, allocationID)
	if err != nil {
		return nil, err
	}
	if allocation.TripID != tripID {
		return nil, fmt.Errorf("%w: allocation %s on trip %s", apperrors.ErrNotFound, allocationID, tripID)
	}
	return allocation, nil
}

// checkCapacity fails when adding quantity to the allocations other than
// exclude would exceed the trip cargo.
func checkCapacity(trip *domain.Trip, allocations []domain.CargoAllocation, exclude string, quantity decimal.Decimal) error {
	total := domain.AllocatedTotal(allocations, exclude).Add(quantity)
	if total.GreaterThan(trip.Quantity) {
		return fmt.Errorf("%w: %s requested, %s available",
			apperrors.ErrCapacityExceeded, quantity.String(), trip.Quantity.Sub(domain.AllocatedTotal(allocations, exclude)).String())
	}
	return nil
}
