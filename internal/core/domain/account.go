package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind separates bank accounts from cash registers.
type AccountKind string

const (
	KindBankAccount  AccountKind = "BANK_ACCOUNT"
	KindCashRegister AccountKind = "CASH_REGISTER"
)

// BankType is the sub-type of a bank account.
type BankType string

const (
	BankTypeBank        BankType = "BANK"
	BankTypeCash        BankType = "CASH"
	BankTypeMobileMoney BankType = "MOBILE_MONEY"
)

// AccountStatus controls whether an account may move money.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountClosed    AccountStatus = "CLOSED"
	AccountSuspended AccountStatus = "SUSPENDED"
)

// Account is a bank account or a cash register holding a balance.
type Account struct {
	AccountID string          `json:"accountID"`
	Kind      AccountKind     `json:"kind"`
	BankType  BankType        `json:"bankType,omitempty"` // empty for cash registers
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Status    AccountStatus   `json:"status"`
	AuditFields
}

// IsActive reports whether the account may be debited or credited.
func (a Account) IsActive() bool {
	return a.Status == AccountActive
}

// CanCover reports whether the balance covers amount.
func (a Account) CanCover(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
