package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type customsService struct {
	BaseService
	txManager        portsrepo.TransactionManager
	rateRepo         portsrepo.CustomsRateReader
	defaultAccountID string
}

// NewCustomsService creates the declaration workflow service.
func NewCustomsService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.CustomsSvcFacade {
	o := buildOptions(opts)
	return &customsService{
		BaseService:      newBaseService(o),
		txManager:        repos.TxManager,
		rateRepo:         repos.CustomsRateRepo,
		defaultAccountID: o.defaultCustomsAccountID,
	}
}

var _ portssvc.CustomsSvcFacade = (*customsService)(nil)

func (s *customsService) ComputeDeclarationFee(ctx context.Context, capacity decimal.Decimal, family domain.ProductFamily, axisID string) (decimal.Decimal, error) {
	return declarationFee(ctx, s.rateRepo, capacity, family, axisID)
}

// Declare posts the customs fee and flags the trip declared in one unit of work.
// A zero fee declares the trip without a ledger entry.
func (s *customsService) Declare(ctx context.Context, actor domain.Actor, tripID string, selector domain.AccountSelector) (*domain.Trip, error) {
	if err := s.Authorize(ctx, actor, domain.CanRunCustoms(actor), apperrors.ErrCustomsForbidden, slog.String("trip_id", tripID)); err != nil {
		return nil, err
	}
	if selector.IsEmpty() {
		if s.defaultAccountID == "" {
			return nil, fmt.Errorf("%w: no account selected and no default customs account configured", apperrors.ErrValidation)
		}
		selector = domain.AccountSelector{AccountID: s.defaultAccountID}
	}
	if err := selector.Validate(); err != nil {
		return nil, err
	}
	leg := selector.Leg()

	var (
		trip *domain.Trip
		fee  decimal.Decimal
	)
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		trip, err = uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if trip.Declared {
			return fmt.Errorf("%w: trip %s", apperrors.ErrAlreadyDeclared, trip.Number)
		}
		if !trip.HasCustomsAgent() {
			return fmt.Errorf("%w: trip %s", apperrors.ErrMissingCustomsAgent, trip.Number)
		}

		fee, err = declarationFee(ctx, uow.CustomsRates(), trip.TruckCapacity, trip.ProductFamily, trip.AxisID)
		if err != nil {
			return err
		}

		now := s.Now()
		if fee.IsPositive() {
			txn := feeTransaction(domain.FeePosting{
				TripID:      trip.TripID,
				Selector:    selector,
				Amount:      fee,
				Category:    domain.TxCustomsFee,
				Description: "Customs declaration " + trip.Number,
			}, trip, domain.NewAuditFields(actor.UserID, now))
			if err := postValidated(ctx, uow, txn, &leg); err != nil {
				return err
			}
		}

		trip.Declared = true
		trip.PassedUndeclared = false
		trip.Touch(actor.UserID, now)
		return uow.Trips().UpdateTrip(ctx, *trip)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Declaration refused", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip declared",
		slog.String("trip_id", trip.TripID),
		slog.String("fee", fee.String()),
		slog.String("account_id", selector.ID()))
	return trip, nil
}

func (s *customsService) DeclareMany(ctx context.Context, actor domain.Actor, tripIDs []string, selector domain.AccountSelector) []domain.BatchResult {
	return s.batch(ctx, tripIDs, func(ctx context.Context, id string) (*domain.Trip, error) {
		return s.Declare(ctx, actor, id, selector)
	})
}

// Release marks the trip released. Releasing twice is a no-op.
func (s *customsService) Release(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error) {
	if err := s.Authorize(ctx, actor, domain.CanRunCustoms(actor), apperrors.ErrCustomsForbidden, slog.String("trip_id", tripID)); err != nil {
		return nil, err
	}

	var trip *domain.Trip
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		trip, err = uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if trip.Released {
			return nil
		}
		trip.Released = true
		trip.Touch(actor.UserID, s.Now())
		return uow.Trips().UpdateTrip(ctx, *trip)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Release refused", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip released", slog.String("trip_id", tripID))
	return trip, nil
}

func (s *customsService) ReleaseMany(ctx context.Context, actor domain.Actor, tripIDs []string) []domain.BatchResult {
	return s.batch(ctx, tripIDs, func(ctx context.Context, id string) (*domain.Trip, error) {
		return s.Release(ctx, actor, id)
	})
}

func (s *customsService) MarkPassedUndeclared(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error) {
	if err := s.Authorize(ctx, actor, domain.CanRunCustoms(actor), apperrors.ErrCustomsForbidden, slog.String("trip_id", tripID)); err != nil {
		return nil, err
	}

	var trip *domain.Trip
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		trip, err = uow.Trips().FindTripByIDForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if trip.Declared {
			return fmt.Errorf("%w: trip %s", apperrors.ErrAlreadyDeclared, trip.Number)
		}
		trip.PassedUndeclared = true
		trip.Touch(actor.UserID, s.Now())
		return uow.Trips().UpdateTrip(ctx, *trip)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Passed-undeclared flag refused", slog.String("trip_id", tripID))
		return nil, err
	}

	s.LogInfo(ctx, "Trip passed customs undeclared", slog.String("trip_id", tripID))
	return trip, nil
}

// batch runs op once per distinct id, in order, each in its own unit of work.
// A failure is recorded against its id and never stops the rest.
func (s *customsService) batch(ctx context.Context, tripIDs []string, op func(context.Context, string) (*domain.Trip, error)) []domain.BatchResult {
	seen := make(map[string]struct{}, len(tripIDs))
	results := make([]domain.BatchResult, 0, len(tripIDs))
	for _, id := range tripIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if err := ctx.Err(); err != nil {
			results = append(results, domain.BatchResult{TripID: id, Err: err})
			continue
		}
		trip, err := op(ctx, id)
		results = append(results, domain.BatchResult{TripID: id, Trip: trip, Err: err})
	}
	return results
}
