package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	Amount        decimal.Decimal `db:"amount"`
	Beneficiary   string          `db:"beneficiary"`
	Description   string          `db:"description"`
	TripID        *string         `db:"trip_id"`
	TruckID       *string         `db:"truck_id"`
	Status        string          `db:"status"`
	AccountID     *string         `db:"account_id"`
	TransactionID *string         `db:"transaction_id"`
	ValidatedAt   *time.Time      `db:"validated_at"`
	AuditFields
}
