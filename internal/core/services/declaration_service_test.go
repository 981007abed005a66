package services_test

import (
	"testing"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/fatoumatandjim/SFB-sub000/internal/platform/config"
	"github.com/stretchr/testify/suite"
)

type CustomsServiceTestSuite struct {
	serviceSuite
}

func TestCustomsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomsServiceTestSuite))
}

func (s *CustomsServiceTestSuite) TestComputeDeclarationFee() {
	axis := "axis_special"
	s.store.SeedCustomsRate(domain.CustomsRate{
		RateID:              "rate_special",
		AxisID:              &axis,
		GasolineFeePerLiter: dec(1),
		DieselFeePerLiter:   dec(4),
		TransitFee:          dec(100),
	})

	tests := []struct {
		name   string
		family domain.ProductFamily
		axisID string
		want   int64
	}{
		{"default gasoline", domain.FamilyGasoline, "axis_other", 45000*2 + 5000},
		{"default diesel", domain.FamilyDiesel, "", 45000*3 + 5000},
		{"axis gasoline", domain.FamilyGasoline, axis, 45000 + 100},
		{"axis diesel", domain.FamilyDiesel, axis, 45000*4 + 100},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			fee, err := s.svc.Customs.ComputeDeclarationFee(s.ctx, dec(45000), tt.family, tt.axisID)
			s.Require().NoError(err)
			s.True(fee.Equal(dec(tt.want)), "got %s", fee)
		})
	}
}

func (s *CustomsServiceTestSuite) TestDeclare_PostsFeeOnce() {
	trip := s.trip(45000)
	bank := s.account(domain.KindBankAccount, 200000)

	got, err := s.svc.Customs.Declare(s.ctx, douane, trip.TripID, domain.AccountSelector{AccountID: bank})
	s.Require().NoError(err)
	s.True(got.Declared)
	s.True(s.balance(bank).Equal(dec(200000-95000)))

	_, err = s.svc.Customs.Declare(s.ctx, douane, trip.TripID, domain.AccountSelector{AccountID: bank})
	s.ErrorIs(err, apperrors.ErrAlreadyDeclared)
	s.True(s.balance(bank).Equal(dec(105000)))

	txns, err := s.svc.Account.ListTripTransactions(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Require().Len(txns, 1)
	s.Equal(domain.TxCustomsFee, txns[0].Type)
}

func (s *CustomsServiceTestSuite) TestDeclare_Refusals() {
	bank := s.account(domain.KindBankAccount, 10)
	trip := s.trip(45000)

	_, err := s.svc.Customs.Declare(s.ctx, operator, trip.TripID, domain.AccountSelector{AccountID: bank})
	s.ErrorIs(err, apperrors.ErrCustomsForbidden)

	_, err = s.svc.Customs.Declare(s.ctx, douane, trip.TripID, domain.AccountSelector{})
	s.ErrorIs(err, apperrors.ErrValidation, "no selector and no default account")
	_, err = s.svc.Customs.Declare(s.ctx, douane, trip.TripID, domain.AccountSelector{AccountID: bank, CashID: "csh_1"})
	s.ErrorIs(err, apperrors.ErrValidation, "account and cash register together")

	_, err = s.svc.Customs.Declare(s.ctx, douane, trip.TripID, domain.AccountSelector{AccountID: bank})
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	got, err := s.svc.Trip.GetTrip(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.False(got.Declared, "a failed fee posting leaves the trip undeclared")
	txns, err := s.svc.Account.ListTripTransactions(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Empty(txns)
	s.True(s.balance(bank).Equal(dec(10)))

	noAgent, err := s.svc.Trip.CreateTrip(s.ctx, operator, dto.CreateTripRequest{
		TruckID: "trk_9", ProductFamily: domain.FamilyDiesel, Quantity: dec(10), TruckCapacity: dec(10),
	})
	s.Require().NoError(err)
	_, err = s.svc.Customs.Declare(s.ctx, admin, noAgent.TripID, domain.AccountSelector{AccountID: bank})
	s.ErrorIs(err, apperrors.ErrMissingCustomsAgent)
}

func (s *CustomsServiceTestSuite) TestDeclare_DefaultAccountFromConfig() {
	bank := s.account(domain.KindBankAccount, 200000)
	svc := services.NewServiceContainer(&config.Config{DefaultCustomsAccountID: bank}, s.store.Provider())
	trip := s.trip(45000)

	_, err := svc.Customs.Declare(s.ctx, douane, trip.TripID, domain.AccountSelector{})
	s.Require().NoError(err)
	s.True(s.balance(bank).Equal(dec(105000)))
}

func (s *CustomsServiceTestSuite) TestDeclareMany_PartialSuccess() {
	bank := s.account(domain.KindBankAccount, 100000)
	first := s.trip(45000)  // 95000
	second := s.trip(45000) // would need another 95000

	results := s.svc.Customs.DeclareMany(s.ctx, douane,
		[]string{first.TripID, second.TripID, first.TripID, "trip_ghost"},
		domain.AccountSelector{AccountID: bank})

	s.Require().Len(results, 3, "duplicate ids are processed once")
	s.NoError(results[0].Err)
	s.Require().NotNil(results[0].Trip)
	s.True(results[0].Trip.Declared)
	s.ErrorIs(results[1].Err, apperrors.ErrInsufficientFunds)
	s.ErrorIs(results[2].Err, apperrors.ErrNotFound)
	s.True(s.balance(bank).Equal(dec(5000)))
}

func (s *CustomsServiceTestSuite) TestReleaseIsIdempotent() {
	trip := s.trip(45000)

	results := s.svc.Customs.ReleaseMany(s.ctx, douane, []string{trip.TripID, trip.TripID})
	s.Require().Len(results, 1)
	s.Require().NoError(results[0].Err)
	s.True(results[0].Trip.Released)

	got, err := s.svc.Customs.Release(s.ctx, douane, trip.TripID)
	s.Require().NoError(err)
	s.True(got.Released)

	_, err = s.svc.Customs.Release(s.ctx, operator, trip.TripID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CustomsServiceTestSuite) TestMarkPassedUndeclared() {
	trip := s.trip(45000)
	bank := s.account(domain.KindBankAccount, 200000)

	got, err := s.svc.Customs.MarkPassedUndeclared(s.ctx, douane, trip.TripID)
	s.Require().NoError(err)
	s.True(got.PassedUndeclared)
	s.True(s.balance(bank).Equal(dec(200000)))

	got, err = s.svc.Customs.Declare(s.ctx, douane, trip.TripID, domain.AccountSelector{AccountID: bank})
	s.Require().NoError(err)
	s.False(got.PassedUndeclared)

	_, err = s.svc.Customs.MarkPassedUndeclared(s.ctx, douane, trip.TripID)
	s.ErrorIs(err, apperrors.ErrAlreadyDeclared)
}
