package handlers_test

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) ListTrips(ctx context.Context, params dto.ListTripsParams) (*dto.ListTripsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTripsResponse), args.Error(1)
}
func (m *MockTripService) CreateTrip(ctx context.Context, actor domain.Actor, req dto.CreateTripRequest) (*domain.Trip, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) AssignCustomsAgent(ctx context.Context, actor domain.Actor, tripID string, customsAgentID string) (*domain.Trip, error) {
	args := m.Called(ctx, actor, tripID, customsAgentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockTripService) DeleteTrip(ctx context.Context, actor domain.Actor, tripID string) error {
	args := m.Called(ctx, actor, tripID)
	return args.Error(0)
}
func (m *MockTripService) AdvanceTrip(ctx context.Context, actor domain.Actor, tripID string, req domain.AdvanceRequest) (*domain.Trip, error) {
	args := m.Called(ctx, actor, tripID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) RecordDeliveries(ctx context.Context, actor domain.Actor, tripID string, shortfalls domain.Shortfalls) (*domain.Trip, error) {
	args := m.Called(ctx, actor, tripID, shortfalls)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

// --- Mock AllocationService ---
type MockAllocationService struct {
	mock.Mock
}

func (m *MockAllocationService) ListAllocations(ctx context.Context, tripID string) ([]domain.CargoAllocation, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CargoAllocation), args.Error(1)
}
func (m *MockAllocationService) ComputeMargin(ctx context.Context, tripID string) (*domain.MarginReport, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarginReport), args.Error(1)
}
func (m *MockAllocationService) AssignClient(ctx context.Context, actor domain.Actor, tripID string, clientID string, quantity decimal.Decimal) (*domain.CargoAllocation, error) {
	args := m.Called(ctx, actor, tripID, clientID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CargoAllocation), args.Error(1)
}
func (m *MockAllocationService) SetPurchasePrice(ctx context.Context, actor domain.Actor, tripID string, allocationID string, price decimal.Decimal) (*domain.CargoAllocation, error) {
	args := m.Called(ctx, actor, tripID, allocationID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CargoAllocation), args.Error(1)
}
func (m *MockAllocationService) SetSalePrice(ctx context.Context, actor domain.Actor, tripID string, allocationID string, price decimal.Decimal) (*domain.CargoAllocation, error) {
	args := m.Called(ctx, actor, tripID, allocationID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CargoAllocation), args.Error(1)
}
func (m *MockAllocationService) ReassignClientAndQuantity(ctx context.Context, actor domain.Actor, tripID string, allocationID string, clientID string, quantity decimal.Decimal) (*domain.CargoAllocation, error) {
	args := m.Called(ctx, actor, tripID, allocationID, clientID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CargoAllocation), args.Error(1)
}

var _ portssvc.AllocationSvcFacade = (*MockAllocationService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListTripTransactions(ctx context.Context, tripID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) PostTransfer(ctx context.Context, actor domain.Actor, req domain.TransferRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockAccountService) PostFeeAgainstTrip(ctx context.Context, actor domain.Actor, req domain.FeePosting) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ValidatePendingPayment(ctx context.Context, actor domain.Actor, paymentID string, selector domain.AccountSelector) (*domain.Payment, error) {
	args := m.Called(ctx, actor, paymentID, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) RejectPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, actor, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) CancelPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, actor, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock CustomsService ---
type MockCustomsService struct {
	mock.Mock
}

func (m *MockCustomsService) ComputeDeclarationFee(ctx context.Context, capacity decimal.Decimal, family domain.ProductFamily, axisID string) (decimal.Decimal, error) {
	args := m.Called(ctx, capacity, family, axisID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockCustomsService) Declare(ctx context.Context, actor domain.Actor, tripID string, selector domain.AccountSelector) (*domain.Trip, error) {
	args := m.Called(ctx, actor, tripID, selector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockCustomsService) DeclareMany(ctx context.Context, actor domain.Actor, tripIDs []string, selector domain.AccountSelector) []domain.BatchResult {
	args := m.Called(ctx, actor, tripIDs, selector)
	return args.Get(0).([]domain.BatchResult)
}
func (m *MockCustomsService) Release(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, actor, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}
func (m *MockCustomsService) ReleaseMany(ctx context.Context, actor domain.Actor, tripIDs []string) []domain.BatchResult {
	args := m.Called(ctx, actor, tripIDs)
	return args.Get(0).([]domain.BatchResult)
}
func (m *MockCustomsService) MarkPassedUndeclared(ctx context.Context, actor domain.Actor, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, actor, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

var _ portssvc.CustomsSvcFacade = (*MockCustomsService)(nil)
