package domain

import (
	"github.com/shopspring/decimal"
)

// DeliveryStatus tells whether a cargo allocation was physically delivered.
type DeliveryStatus string

const (
	Delivered    DeliveryStatus = "DELIVERED"
	NotDelivered DeliveryStatus = "NOT_DELIVERED"
)

// CargoAllocation is the portion of a trip's cargo assigned to one client.
type CargoAllocation struct {
	AllocationID   string           `json:"allocationID"`
	TripID         string           `json:"tripID"`
	ClientID       string           `json:"clientID"`
	Quantity       decimal.Decimal  `json:"quantity"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice,omitempty"` // per unit, set after discharge
	SalePrice      *decimal.Decimal `json:"salePrice,omitempty"`     // per unit
	DeliveryStatus DeliveryStatus   `json:"deliveryStatus"`
	Shortfall      *decimal.Decimal `json:"shortfall,omitempty"`
	AuditFields
}

// IsDelivered reports whether the allocation was marked delivered.
func (a CargoAllocation) IsDelivered() bool {
	return a.DeliveryStatus == Delivered
}

// DeliveredQuantity is the allocated quantity minus any recorded shortfall.
func (a CargoAllocation) DeliveredQuantity() decimal.Decimal {
	if a.Shortfall == nil {
		return a.Quantity
	}
	return a.Quantity.Sub(*a.Shortfall)
}

// AllocatedTotal sums quantities, skipping the allocation with id exclude (may be empty).
func AllocatedTotal(allocations []CargoAllocation, exclude string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range allocations {
		if exclude != "" && a.AllocationID == exclude {
			continue
		}
		total = total.Add(a.Quantity)
	}
	return total
}

// ClientQuantity is a requested allocation of cargo to a client.
type ClientQuantity struct {
	ClientID string
	Quantity decimal.Decimal
}

// Shortfalls maps allocation ids to the shortfall recorded at discharge.
// A present key marks the allocation delivered; a nil value keeps the
// previously recorded shortfall (or none), a non-nil value replaces it.
type Shortfalls map[string]*decimal.Decimal
