package mapping

import (
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
)

// ToModelAllocation converts a domain.CargoAllocation to its row.
func ToModelAllocation(d domain.CargoAllocation) models.CargoAllocation {
	return models.CargoAllocation{
		AllocationID:   d.AllocationID,
		TripID:         d.TripID,
		ClientID:       d.ClientID,
		Quantity:       d.Quantity,
		PurchasePrice:  toNullDecimal(d.PurchasePrice),
		SalePrice:      toNullDecimal(d.SalePrice),
		DeliveryStatus: string(d.DeliveryStatus),
		Shortfall:      toNullDecimal(d.Shortfall),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAllocation converts a cargo_allocations row.
func ToDomainAllocation(m models.CargoAllocation) domain.CargoAllocation {
	return domain.CargoAllocation{
		AllocationID:   m.AllocationID,
		TripID:         m.TripID,
		ClientID:       m.ClientID,
		Quantity:       m.Quantity,
		PurchasePrice:  fromNullDecimal(m.PurchasePrice),
		SalePrice:      fromNullDecimal(m.SalePrice),
		DeliveryStatus: domain.DeliveryStatus(m.DeliveryStatus),
		Shortfall:      fromNullDecimal(m.Shortfall),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
