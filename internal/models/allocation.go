package models

import (
	"github.com/shopspring/decimal"
)

// CargoAllocation is a row of the cargo_allocations table.
type CargoAllocation struct {
	AllocationID   string              `db:"allocation_id"`
	TripID         string              `db:"trip_id"`
	ClientID       string              `db:"client_id"`
	Quantity       decimal.Decimal     `db:"quantity"`
	PurchasePrice  decimal.NullDecimal `db:"purchase_price"`
	SalePrice      decimal.NullDecimal `db:"sale_price"`
	DeliveryStatus string              `db:"delivery_status"`
	Shortfall      decimal.NullDecimal `db:"shortfall"`
	AuditFields
}
