package services_test

import (
	"context"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/fatoumatandjim/SFB-sub000/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	admin     = domain.Actor{UserID: "usr_admin", Roles: []domain.Role{domain.RoleAdmin}}
	operator  = domain.Actor{UserID: "usr_operator", Roles: []domain.Role{domain.RoleOperator}}
	stranger  = domain.Actor{UserID: "usr_stranger", Roles: []domain.Role{domain.RoleOperator}}
	douane    = domain.Actor{UserID: "usr_customs", Roles: []domain.Role{domain.RoleCustoms}}
	treasurer = domain.Actor{UserID: "usr_treasury", Roles: []domain.Role{domain.RoleTreasury}}
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// serviceSuite wires every service to a fresh in-memory store with a fixed clock.
type serviceSuite struct {
	suite.Suite
	ctx   context.Context
	now   time.Time
	store *memory.Store
	svc   *portssvc.ServiceContainer
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	s.store = memory.NewStore()
	s.store.SeedCustomsRate(domain.CustomsRate{
		RateID:              "rate_default",
		GasolineFeePerLiter: dec(2),
		DieselFeePerLiter:   dec(3),
		TransitFee:          dec(5000),
	})
	s.svc = services.NewServiceContainer(nil, s.store.Provider(), services.WithClock(func() time.Time { return s.now }))
}

func (s *serviceSuite) account(kind domain.AccountKind, balance int64) string {
	acc, err := s.svc.Account.CreateAccount(s.ctx, admin, dto.CreateAccountRequest{
		Kind:           kind,
		Name:           string(kind) + " test",
		InitialBalance: dec(balance),
	})
	s.Require().NoError(err)
	return acc.AccountID
}

func (s *serviceSuite) balance(accountID string) decimal.Decimal {
	acc, err := s.svc.Account.GetAccountByID(s.ctx, accountID)
	s.Require().NoError(err)
	return acc.Balance
}

// trip registers a gasoline trip owned by operator, with a customs agent.
func (s *serviceSuite) trip(quantity int64) *domain.Trip {
	agent := "agt_1"
	trip, err := s.svc.Trip.CreateTrip(s.ctx, operator, dto.CreateTripRequest{
		TruckID:        "trk_1",
		TruckCapacity:  dec(quantity),
		Destination:    "Bamako",
		AxisID:         "axis_dakar_bamako",
		ProductID:      "prd_super",
		ProductFamily:  domain.FamilyGasoline,
		DepotID:        "dpt_1",
		Quantity:       dec(quantity),
		CustomsAgentID: &agent,
	})
	s.Require().NoError(err)
	return trip
}

// advanceTo walks trip forward, as an administrator, up to and including target.
func (s *serviceSuite) advanceTo(tripID string, target domain.TripStatus) *domain.Trip {
	path := []domain.TripStatus{
		domain.StatusLoaded, domain.StatusDeparted, domain.StatusArrived,
		domain.StatusCustoms, domain.StatusCleared,
	}
	trip, err := s.svc.Trip.GetTrip(s.ctx, tripID)
	s.Require().NoError(err)
	for _, st := range path {
		if trip.Status.AtOrAfter(target) {
			break
		}
		if trip.Status.AtOrAfter(st) {
			continue
		}
		trip, err = s.svc.Trip.AdvanceTrip(s.ctx, admin, tripID, domain.AdvanceRequest{Target: st})
		s.Require().NoError(err)
	}
	return trip
}
