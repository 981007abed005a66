package domain

import (
	"github.com/shopspring/decimal"
)

// MarginReport is the read-side profitability aggregate of a trip.
type MarginReport struct {
	TripID        string          `json:"tripID"`
	Revenue       decimal.Decimal `json:"revenue"`
	PurchaseCost  decimal.Decimal `json:"purchaseCost"`
	Fees          decimal.Decimal `json:"fees"`
	TransportCost decimal.Decimal `json:"transportCost"`
	GrossMargin   decimal.Decimal `json:"grossMargin"`
	NetMargin     decimal.Decimal `json:"netMargin"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
}

// BatchResult reports the outcome of one item of a best-effort batch.
type BatchResult struct {
	TripID string `json:"tripID"`
	Trip   *Trip  `json:"trip,omitempty"`
	Err    error  `json:"-"`
}
