package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table. Bank accounts and cash registers
// share it and are told apart by kind.
type Account struct {
	AccountID string          `db:"account_id"`
	Kind      string          `db:"kind"`
	BankType  *string         `db:"bank_type"` // NULL for cash registers
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	Status    string          `db:"status"`
	AuditFields
}
