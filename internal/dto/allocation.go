package dto

import (
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssignClientRequest is the body of POST /trips/:id/clients.
type AssignClientRequest = ClientQuantityRequest

// SetPriceParams are the query parameters of the price endpoints.
// Prices arrive as strings and are parsed with decimal to keep precision.
type SetPriceParams struct {
	AllocationID  string `form:"allocationId" binding:"required"`
	PurchasePrice string `form:"prixAchat"`
	SalePrice     string `form:"prixVente"`
}

// ReassignParams are the query parameters of PUT /trips/:id/client-voyage/quantite.
type ReassignParams struct {
	AllocationID string `form:"allocationId" binding:"required"`
	ClientID     string `form:"clientId" binding:"required"`
	Quantity     string `form:"quantite" binding:"required"`
}

// AllocationResponse defines the data returned for a cargo allocation.
type AllocationResponse struct {
	AllocationID   string                `json:"id"`
	TripID         string                `json:"voyageId"`
	ClientID       string                `json:"clientId"`
	Quantity       decimal.Decimal       `json:"quantite"`
	PurchasePrice  *decimal.Decimal      `json:"prixAchat,omitempty"`
	SalePrice      *decimal.Decimal      `json:"prixVente,omitempty"`
	DeliveryStatus domain.DeliveryStatus `json:"statut"`
	Shortfall      *decimal.Decimal      `json:"manquant,omitempty"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy  string                `json:"lastUpdatedBy"`
}

// ToAllocationResponse converts a domain.CargoAllocation to AllocationResponse DTO
func ToAllocationResponse(a *domain.CargoAllocation) AllocationResponse {
	return AllocationResponse{
		AllocationID:   a.AllocationID,
		TripID:         a.TripID,
		ClientID:       a.ClientID,
		Quantity:       a.Quantity,
		PurchasePrice:  a.PurchasePrice,
		SalePrice:      a.SalePrice,
		DeliveryStatus: a.DeliveryStatus,
		Shortfall:      a.Shortfall,
		LastUpdatedAt:  a.LastUpdatedAt,
		LastUpdatedBy:  a.LastUpdatedBy,
	}
}

// ToListAllocationResponse converts a slice of allocations.
func ToListAllocationResponse(allocations []domain.CargoAllocation) []AllocationResponse {
	res := make([]AllocationResponse, len(allocations))
	for i := range allocations {
		res[i] = ToAllocationResponse(&allocations[i])
	}
	return res
}

// MarginResponse is the profitability summary of a trip.
type MarginResponse struct {
	TripID        string          `json:"voyageId"`
	Revenue       decimal.Decimal `json:"chiffreAffaires"`
	PurchaseCost  decimal.Decimal `json:"coutAchat"`
	Fees          decimal.Decimal `json:"frais"`
	TransportCost decimal.Decimal `json:"coutTransport"`
	GrossMargin   decimal.Decimal `json:"margeBrute"`
	NetMargin     decimal.Decimal `json:"margeNette"`
	MarginPercent decimal.Decimal `json:"pourcentageMarge"`
}

// ToMarginResponse converts a domain.MarginReport.
func ToMarginResponse(m *domain.MarginReport) MarginResponse {
	return MarginResponse{
		TripID:        m.TripID,
		Revenue:       m.Revenue,
		PurchaseCost:  m.PurchaseCost,
		Fees:          m.Fees,
		TransportCost: m.TransportCost,
		GrossMargin:   m.GrossMargin,
		NetMargin:     m.NetMargin,
		MarginPercent: m.MarginPercent,
	}
}
