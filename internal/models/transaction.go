package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the ledger_transactions table.
type Transaction struct {
	TransactionID        string          `db:"transaction_id"`
	Type                 string          `db:"type"`
	Amount               decimal.Decimal `db:"amount"`
	Date                 time.Time       `db:"txn_date"`
	Status               string          `db:"status"`
	SourceAccountID      *string         `db:"source_account_id"`
	DestinationAccountID *string         `db:"destination_account_id"`
	TripID               *string         `db:"trip_id"`
	TruckID              *string         `db:"truck_id"`
	PaymentID            *string         `db:"payment_id"`
	Description          string          `db:"description"`
	AuditFields
}
