package accounting

import (
	"testing"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func TestBalanceChanges(t *testing.T) {
	txn := domain.Transaction{
		Amount:               dec("50000"),
		SourceAccountID:      strPtr("acc_a"),
		DestinationAccountID: strPtr("acc_b"),
	}
	changes := BalanceChanges(txn)
	assert.True(t, changes["acc_a"].Equal(dec("-50000")))
	assert.True(t, changes["acc_b"].Equal(dec("50000")))

	credit := BalanceChanges(domain.Transaction{Amount: dec("10"), DestinationAccountID: strPtr("cash_1")})
	assert.Len(t, credit, 1)
	assert.True(t, credit["cash_1"].Equal(dec("10")))
}

func TestValidateBalanceChanges(t *testing.T) {
	accounts := map[string]domain.Account{
		"acc_a":  {AccountID: "acc_a", Balance: dec("100000"), Status: domain.AccountActive},
		"acc_b":  {AccountID: "acc_b", Balance: dec("0"), Status: domain.AccountActive},
		"closed": {AccountID: "closed", Balance: dec("500"), Status: domain.AccountClosed},
	}

	tests := []struct {
		name    string
		changes map[string]decimal.Decimal
		wantErr error
	}{
		{name: "covered debit", changes: map[string]decimal.Decimal{"acc_a": dec("-100000"), "acc_b": dec("100000")}},
		{name: "overdraft", changes: map[string]decimal.Decimal{"acc_a": dec("-150000"), "acc_b": dec("150000")}, wantErr: apperrors.ErrInsufficientFunds},
		{name: "inactive destination", changes: map[string]decimal.Decimal{"acc_a": dec("-1"), "closed": dec("1")}, wantErr: apperrors.ErrAccountInactive},
		{name: "unknown account", changes: map[string]decimal.Decimal{"ghost": dec("1")}, wantErr: apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBalanceChanges(accounts, tt.changes)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComputeMargin(t *testing.T) {
	trip := domain.Trip{
		TripID:             "trip_1",
		Quantity:           dec("45000"),
		UnitTransportPrice: decPtr("2"),
	}
	allocations := []domain.CargoAllocation{
		{AllocationID: "a1", Quantity: dec("30000"), PurchasePrice: decPtr("10"), SalePrice: decPtr("12"), Shortfall: decPtr("500")},
		{AllocationID: "a2", Quantity: dec("15000"), PurchasePrice: decPtr("10"), SalePrice: decPtr("12")},
	}
	txns := []domain.Transaction{
		{Amount: dec("20000"), Status: domain.TxValidated},
		{Amount: dec("99999"), Status: domain.TxPending},
	}

	got := ComputeMargin(trip, allocations, txns)

	// revenue = 29500*12 + 15000*12 = 534000
	assert.True(t, got.Revenue.Equal(dec("534000")), got.Revenue.String())
	assert.True(t, got.PurchaseCost.Equal(dec("450000")), got.PurchaseCost.String())
	assert.True(t, got.Fees.Equal(dec("20000")), got.Fees.String())
	assert.True(t, got.TransportCost.Equal(dec("90000")), got.TransportCost.String())
	assert.True(t, got.GrossMargin.Equal(dec("64000")), got.GrossMargin.String())
	assert.True(t, got.NetMargin.Equal(dec("-26000")), got.NetMargin.String())
	assert.True(t, got.MarginPercent.Equal(dec("-4.87")), got.MarginPercent.String())
}

func TestComputeMargin_CessionAndEmptyRevenue(t *testing.T) {
	trip := domain.Trip{TripID: "trip_2", Quantity: dec("1000"), IsCession: true}
	allocations := []domain.CargoAllocation{
		{AllocationID: "a1", Quantity: dec("1000"), PurchasePrice: decPtr("10")},
	}

	got := ComputeMargin(trip, allocations, nil)

	assert.True(t, got.PurchaseCost.IsZero())
	assert.True(t, got.Revenue.IsZero())
	assert.True(t, got.MarginPercent.IsZero())
	assert.True(t, got.NetMargin.IsZero())
}
