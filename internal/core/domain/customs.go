package domain

import (
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CustomsRate holds the per-liter duty and the fixed transit (T1) fee.
// A nil AxisID marks the global default rate.
type CustomsRate struct {
	RateID              string          `json:"rateID"`
	AxisID              *string         `json:"axisID,omitempty"`
	GasolineFeePerLiter decimal.Decimal `json:"gasolineFeePerLiter"`
	DieselFeePerLiter   decimal.Decimal `json:"dieselFeePerLiter"`
	TransitFee          decimal.Decimal `json:"transitFee"`
}

// FeePerLiter selects the rate for a product family. Diesel has its own rate,
// every other family uses the gasoline rate.
func (r CustomsRate) FeePerLiter(family ProductFamily) decimal.Decimal {
	switch family {
	case FamilyDiesel:
		return r.DieselFeePerLiter
	case FamilyGasoline:
		return r.GasolineFeePerLiter
	default:
		return r.GasolineFeePerLiter
	}
}

// AccountSelector picks the account or cash register a posting draws from.
type AccountSelector struct {
	AccountID string
	CashID    string
}

// ID returns the selected id. Callers run Validate first.
func (s AccountSelector) ID() string {
	if s.AccountID != "" {
		return s.AccountID
	}
	return s.CashID
}

// IsEmpty reports whether nothing was selected.
func (s AccountSelector) IsEmpty() bool {
	return s.AccountID == "" && s.CashID == ""
}

// Validate requires exactly one of the two ids.
func (s AccountSelector) Validate() error {
	switch {
	case s.IsEmpty():
		return fmt.Errorf("%w: an account or cash register is required", apperrors.ErrValidation)
	case s.AccountID != "" && s.CashID != "":
		return fmt.Errorf("%w: choose either an account or a cash register, not both", apperrors.ErrValidation)
	}
	return nil
}

// Leg is the debit leg of a posting drawn from the selection: a bank account
// for AccountID, a cash register for CashID.
func (s AccountSelector) Leg() Leg {
	kind := KindBankAccount
	if s.AccountID == "" {
		kind = KindCashRegister
	}
	return Leg{SourceKind: kind, NeedsSource: true}
}

// DeclarationFee is perLiter(family) * capacity + the transit fee.
func (r CustomsRate) DeclarationFee(capacity decimal.Decimal, family ProductFamily) decimal.Decimal {
	return r.FeePerLiter(family).Mul(capacity).Add(r.TransitFee)
}
