package accounting

import (
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BalanceChanges returns the signed delta each account receives when txn is validated.
// The source is debited, the destination credited.
func BalanceChanges(txn domain.Transaction) map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal, 2)
	if txn.SourceAccountID != nil {
		changes[*txn.SourceAccountID] = changes[*txn.SourceAccountID].Sub(txn.Amount)
	}
	if txn.DestinationAccountID != nil {
		changes[*txn.DestinationAccountID] = changes[*txn.DestinationAccountID].Add(txn.Amount)
	}
	return changes
}

// ValidateBalanceChanges checks that every account touched by changes is active
// and that no debit takes a balance below zero. accounts must hold live, locked values.
func ValidateBalanceChanges(accounts map[string]domain.Account, changes map[string]decimal.Decimal) error {
	for id, delta := range changes {
		acc, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !acc.IsActive() {
			return fmt.Errorf("%w: account %s is %s", apperrors.ErrAccountInactive, id, acc.Status)
		}
		if delta.IsNegative() && !acc.CanCover(delta.Neg()) {
			return fmt.Errorf("%w: account %s holds %s, %s requested",
				apperrors.ErrInsufficientFunds, id, acc.Balance.String(), delta.Neg().String())
		}
	}
	return nil
}

// ComputeMargin aggregates the profitability of a trip.
//
//	revenue  = sum((qty - shortfall) * salePrice)
//	purchase = sum(qty * purchasePrice), zero for cession trips
//	fees     = sum of validated transactions tied to the trip
//	gross    = revenue - (purchase + fees)
//	net      = gross - trip quantity * unit transport price
//
// Allocations without a price contribute nothing to the matching side.
func ComputeMargin(trip domain.Trip, allocations []domain.CargoAllocation, txns []domain.Transaction) domain.MarginReport {
	revenue := decimal.Zero
	purchase := decimal.Zero
	for _, a := range allocations {
		if a.SalePrice != nil {
			revenue = revenue.Add(a.DeliveredQuantity().Mul(*a.SalePrice))
		}
		if !trip.IsCession && a.PurchasePrice != nil {
			purchase = purchase.Add(a.Quantity.Mul(*a.PurchasePrice))
		}
	}

	fees := decimal.Zero
	for _, t := range txns {
		if t.Status == domain.TxValidated {
			fees = fees.Add(t.Amount)
		}
	}

	transport := decimal.Zero
	if trip.UnitTransportPrice != nil {
		transport = trip.Quantity.Mul(*trip.UnitTransportPrice)
	}

	gross := revenue.Sub(purchase.Add(fees))
	net := gross.Sub(transport)
	percent := decimal.Zero
	if !revenue.IsZero() {
		percent = net.Div(revenue).Mul(hundred).Round(2)
	}

	return domain.MarginReport{
		TripID:        trip.TripID,
		Revenue:       revenue,
		PurchaseCost:  purchase,
		Fees:          fees,
		TransportCost: transport,
		GrossMargin:   gross,
		NetMargin:     net,
		MarginPercent: percent,
	}
}
