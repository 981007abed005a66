package services_test

import (
	"testing"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AllocationServiceTestSuite struct {
	serviceSuite
}

func TestAllocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationServiceTestSuite))
}

func (s *AllocationServiceTestSuite) TestAssignClient_Capacity() {
	trip := s.trip(45000)

	_, err := s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_a", dec(30000))
	s.Require().NoError(err)
	_, err = s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_b", dec(20000))
	s.ErrorIs(err, apperrors.ErrCapacityExceeded)

	_, err = s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_b", dec(15000))
	s.Require().NoError(err)

	allocations, err := s.svc.Allocation.ListAllocations(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Len(allocations, 2)
	s.True(domain.AllocatedTotal(allocations, "").Equal(dec(45000)))
}

func (s *AllocationServiceTestSuite) TestAssignClient_SameClientReplaces() {
	trip := s.trip(45000)

	first, err := s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_a", dec(40000))
	s.Require().NoError(err)
	second, err := s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_a", dec(45000))
	s.Require().NoError(err)

	s.Equal(first.AllocationID, second.AllocationID)
	s.True(second.Quantity.Equal(dec(45000)))
}

func (s *AllocationServiceTestSuite) TestReassign() {
	trip := s.trip(45000)
	a, err := s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_a", dec(30000))
	s.Require().NoError(err)
	_, err = s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_b", dec(15000))
	s.Require().NoError(err)

	// The edited allocation's old quantity does not count against the new one.
	got, err := s.svc.Allocation.ReassignClientAndQuantity(s.ctx, operator, trip.TripID, a.AllocationID, "cli_c", dec(30000))
	s.Require().NoError(err)
	s.Equal("cli_c", got.ClientID)

	_, err = s.svc.Allocation.ReassignClientAndQuantity(s.ctx, operator, trip.TripID, a.AllocationID, "cli_c", dec(30001))
	s.ErrorIs(err, apperrors.ErrCapacityExceeded)

	_, err = s.svc.Allocation.ReassignClientAndQuantity(s.ctx, operator, trip.TripID, a.AllocationID, "cli_b", dec(100))
	s.ErrorIs(err, apperrors.ErrDuplicate)

	other := s.trip(1000)
	_, err = s.svc.Allocation.ReassignClientAndQuantity(s.ctx, operator, other.TripID, a.AllocationID, "cli_c", dec(100))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AllocationServiceTestSuite) TestAllocations_ResponsiblePartyOnly() {
	trip := s.trip(45000)
	a, err := s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_a", dec(30000))
	s.Require().NoError(err)

	_, err = s.svc.Allocation.AssignClient(s.ctx, stranger, trip.TripID, "cli_b", dec(15000))
	s.ErrorIs(err, apperrors.ErrForbidden)
	_, err = s.svc.Allocation.ReassignClientAndQuantity(s.ctx, stranger, trip.TripID, a.AllocationID, "cli_c", dec(100))
	s.ErrorIs(err, apperrors.ErrForbidden)

	_, err = s.svc.Allocation.AssignClient(s.ctx, admin, trip.TripID, "cli_b", dec(15000))
	s.NoError(err)

	allocations, err := s.svc.Allocation.ListAllocations(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Len(allocations, 2)
	for _, got := range allocations {
		s.NotEqual("cli_c", got.ClientID)
	}
}

func (s *AllocationServiceTestSuite) TestAllocations_FrozenOnceDischarged() {
	trip, a := s.discharged(false)

	_, err := s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_b", dec(15000))
	s.ErrorIs(err, apperrors.ErrAllocationClosed)
	s.ErrorIs(err, apperrors.ErrBusinessRule)
	_, err = s.svc.Allocation.AssignClient(s.ctx, admin, trip.TripID, "cli_a", dec(40000))
	s.ErrorIs(err, apperrors.ErrAllocationClosed)
	_, err = s.svc.Allocation.ReassignClientAndQuantity(s.ctx, admin, trip.TripID, a.AllocationID, "cli_b", dec(40000))
	s.ErrorIs(err, apperrors.ErrAllocationClosed)

	_, err = s.svc.Allocation.SetSalePrice(s.ctx, stranger, trip.TripID, a.AllocationID, dec(700))
	s.ErrorIs(err, apperrors.ErrForbidden)

	allocations, err := s.svc.Allocation.ListAllocations(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Require().Len(allocations, 1)
	s.Equal("cli_a", allocations[0].ClientID)
	s.True(allocations[0].Quantity.Equal(dec(45000)))
}

// discharged returns a trip discharged with one allocation of 45000 L and a 500 L shortfall.
func (s *AllocationServiceTestSuite) discharged(cession bool) (*domain.Trip, domain.CargoAllocation) {
	agent := "agt_1"
	price := dec(2)
	trip, err := s.svc.Trip.CreateTrip(s.ctx, operator, dto.CreateTripRequest{
		TruckID:            "trk_1",
		TruckCapacity:      dec(45000),
		Destination:        "Bamako",
		AxisID:             "axis_dakar_bamako",
		ProductID:          "prd_super",
		ProductFamily:      domain.FamilyGasoline,
		DepotID:            "dpt_1",
		Quantity:           dec(45000),
		UnitTransportPrice: &price,
		CustomsAgentID:     &agent,
		IsCession:          cession,
	})
	s.Require().NoError(err)
	s.advanceTo(trip.TripID, domain.StatusCleared)

	_, err = s.svc.Trip.AdvanceTrip(s.ctx, admin, trip.TripID, domain.AdvanceRequest{
		Target:  domain.StatusAllocated,
		Clients: []domain.ClientQuantity{{ClientID: "cli_a", Quantity: dec(45000)}},
	})
	s.Require().NoError(err)
	allocations, err := s.svc.Allocation.ListAllocations(s.ctx, trip.TripID)
	s.Require().NoError(err)
	s.Require().Len(allocations, 1)

	short := dec(500)
	trip, err = s.svc.Trip.AdvanceTrip(s.ctx, admin, trip.TripID, domain.AdvanceRequest{
		Target:     domain.StatusDischarged,
		Shortfalls: domain.Shortfalls{allocations[0].AllocationID: &short},
	})
	s.Require().NoError(err)
	return trip, allocations[0]
}

func (s *AllocationServiceTestSuite) TestPrices_NeedDischarge() {
	trip := s.trip(45000)
	a, err := s.svc.Allocation.AssignClient(s.ctx, operator, trip.TripID, "cli_a", dec(100))
	s.Require().NoError(err)

	_, err = s.svc.Allocation.SetPurchasePrice(s.ctx, operator, trip.TripID, a.AllocationID, dec(600))
	s.ErrorIs(err, apperrors.ErrNotDischarged)

	_, err = s.svc.Allocation.SetSalePrice(s.ctx, operator, trip.TripID, a.AllocationID, decimal.Zero)
	s.ErrorIs(err, apperrors.ErrInvalidPrice)
}

func (s *AllocationServiceTestSuite) TestPrices_CessionHasNoPurchasePrice() {
	trip, a := s.discharged(true)

	_, err := s.svc.Allocation.SetPurchasePrice(s.ctx, operator, trip.TripID, a.AllocationID, dec(600))
	s.ErrorIs(err, apperrors.ErrCessionTrip)

	got, err := s.svc.Allocation.SetSalePrice(s.ctx, operator, trip.TripID, a.AllocationID, dec(650))
	s.Require().NoError(err)
	s.Require().NotNil(got.SalePrice)
}

func (s *AllocationServiceTestSuite) TestComputeMargin() {
	trip, a := s.discharged(false)
	bank := s.account(domain.KindBankAccount, 1000000)

	_, err := s.svc.Allocation.SetPurchasePrice(s.ctx, operator, trip.TripID, a.AllocationID, dec(600))
	s.Require().NoError(err)
	_, err = s.svc.Allocation.SetSalePrice(s.ctx, operator, trip.TripID, a.AllocationID, dec(700))
	s.Require().NoError(err)
	_, err = s.svc.Account.PostFeeAgainstTrip(s.ctx, admin, domain.FeePosting{
		TripID:   trip.TripID,
		Selector: domain.AccountSelector{AccountID: bank},
		Amount:   dec(100000),
		Category: domain.TxOtherFee,
	})
	s.Require().NoError(err)

	report, err := s.svc.Allocation.ComputeMargin(s.ctx, trip.TripID)
	s.Require().NoError(err)

	// revenue 44500*700, purchase 45000*600, transport 45000*2
	s.True(report.Revenue.Equal(dec(31150000)), "revenue %s", report.Revenue)
	s.True(report.PurchaseCost.Equal(dec(27000000)))
	s.True(report.Fees.Equal(dec(100000)))
	s.True(report.GrossMargin.Equal(dec(4050000)))
	s.True(report.NetMargin.Equal(dec(3960000)))
	s.Equal("12.71", report.MarginPercent.StringFixed(2))

	err = s.svc.Trip.DeleteTrip(s.ctx, admin, trip.TripID)
	s.ErrorIs(err, apperrors.ErrTripHasTransactions)
}

func (s *AllocationServiceTestSuite) TestDeleteTrip_PricedAllocationLocks() {
	trip, a := s.discharged(false)
	_, err := s.svc.Allocation.SetSalePrice(s.ctx, operator, trip.TripID, a.AllocationID, dec(700))
	s.Require().NoError(err)

	err = s.svc.Trip.DeleteTrip(s.ctx, admin, trip.TripID)
	s.ErrorIs(err, apperrors.ErrAllocationLocked)
}
