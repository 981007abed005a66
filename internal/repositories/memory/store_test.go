package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrip(t *testing.T, s *Store, id string, createdAt time.Time) {
	t.Helper()
	err := s.RunInTx(context.Background(), func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Trips().SaveTrip(ctx, domain.Trip{
			TripID:      id,
			Number:      "VOY-" + id,
			Quantity:    decimal.NewFromInt(45000),
			Status:      domain.StatusLoading,
			History:     domain.NewStateLog(domain.StatusLoading, createdAt),
			AuditFields: domain.NewAuditFields("u", createdAt),
		})
	})
	require.NoError(t, err)
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		require.NoError(t, uow.Accounts().SaveAccount(ctx, domain.Account{AccountID: "acc_1", Status: domain.AccountActive}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.FindAccountByID(ctx, "acc_1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRunInTx_RollsBackOnPanic(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
			_ = uow.Accounts().SaveAccount(ctx, domain.Account{AccountID: "acc_1"})
			panic("unexpected")
		})
	})

	_, err := s.FindAccountByID(ctx, "acc_1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRunInTx_CancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.RunInTx(ctx, func(context.Context, portsrepo.UnitOfWork) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestAccountBalances(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()

	err := s.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Accounts().SaveAccount(ctx, domain.Account{AccountID: "a", Balance: decimal.NewFromInt(100)}); err != nil {
			return err
		}
		if err := uow.Accounts().SaveAccount(ctx, domain.Account{AccountID: "b"}); err != nil {
			return err
		}
		return uow.Accounts().UpdateAccountBalances(ctx, map[string]decimal.Decimal{
			"a": decimal.NewFromInt(-40),
			"b": decimal.NewFromInt(40),
		}, "u1", now)
	})
	require.NoError(t, err)

	a, err := s.FindAccountByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, a.Balance.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "u1", a.LastUpdatedBy)

	err = s.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		_, err := uow.Accounts().FindAccountsByIDsForUpdate(ctx, []string{"a", "ghost"})
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAllocationClientUnique(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Allocations().SaveAllocation(ctx, domain.CargoAllocation{AllocationID: "al1", TripID: "t", ClientID: "A"}); err != nil {
			return err
		}
		return uow.Allocations().SaveAllocation(ctx, domain.CargoAllocation{AllocationID: "al2", TripID: "t", ClientID: "A"})
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	got, err := s.ListAllocationsByTrip(ctx, "t")
	require.NoError(t, err)
	assert.Empty(t, got, "the failed unit of work must not leave the first allocation behind")
}

func TestDeleteTrip_ClearsPaymentReference(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedTrip(t, s, "t1", time.Now().UTC())
	seedTrip(t, s, "t2", time.Now().UTC())

	t1, t2 := "t1", "t2"
	err := s.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if err := uow.Payments().SavePayment(ctx, domain.Payment{PaymentID: "p1", TripID: &t1, Status: domain.PaymentPending}); err != nil {
			return err
		}
		return uow.Payments().SavePayment(ctx, domain.Payment{PaymentID: "p2", TripID: &t2, Status: domain.PaymentPending})
	})
	require.NoError(t, err)

	require.NoError(t, s.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Trips().DeleteTrip(ctx, "t1")
	}))

	p1, err := s.FindPaymentByID(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, p1.TripID)

	p2, err := s.FindPaymentByID(ctx, "p2")
	require.NoError(t, err)
	require.NotNil(t, p2.TripID)
	assert.Equal(t, "t2", *p2.TripID)
}

func TestListTrips_Paginates(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedTrip(t, s, fmt.Sprintf("trip_%d", i), base.Add(time.Duration(i)*time.Hour))
	}

	page1, next, err := s.ListTrips(ctx, portsrepo.TripFilter{}, 2, nil)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"trip_4", "trip_3"}, []string{page1[0].TripID, page1[1].TripID})

	page2, next, err := s.ListTrips(ctx, portsrepo.TripFilter{}, 2, next)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []string{"trip_2", "trip_1"}, []string{page2[0].TripID, page2[1].TripID})

	page3, next, err := s.ListTrips(ctx, portsrepo.TripFilter{}, 2, next)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, page3, 1)
	assert.Equal(t, "trip_0", page3[0].TripID)

	bad := "%%%"
	_, _, err = s.ListTrips(ctx, portsrepo.TripFilter{}, 2, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCustomsRates(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.FindDefaultRate(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	axis := "axis_bamako"
	s.SeedCustomsRate(domain.CustomsRate{RateID: "global", TransitFee: decimal.NewFromInt(5000)})
	s.SeedCustomsRate(domain.CustomsRate{RateID: "bko", AxisID: &axis})

	rate, err := s.FindRateByAxis(ctx, axis)
	require.NoError(t, err)
	assert.Equal(t, "bko", rate.RateID)

	rate, err = s.FindDefaultRate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "global", rate.RateID)

	_, err = s.FindRateByAxis(ctx, "axis_unknown")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
