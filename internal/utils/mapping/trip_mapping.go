package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
)

// ToModelTrip converts a domain.Trip to its row, encoding the state history as JSON.
func ToModelTrip(d domain.Trip) (models.Trip, error) {
	entries := make([]models.StateEntry, len(d.History))
	for i, e := range d.History {
		entries[i] = models.StateEntry{State: string(e.State), At: e.At, Validated: e.Validated}
	}
	history, err := json.Marshal(entries)
	if err != nil {
		return models.Trip{}, fmt.Errorf("failed to encode history of trip %s: %w", d.TripID, err)
	}
	return models.Trip{
		TripID:             d.TripID,
		Number:             d.Number,
		TruckID:            d.TruckID,
		TruckCapacity:      d.TruckCapacity,
		Origin:             d.Origin,
		Destination:        d.Destination,
		DepartedAt:         d.DepartedAt,
		ArrivedAt:          d.ArrivedAt,
		AxisID:             d.AxisID,
		ProductID:          d.ProductID,
		ProductFamily:      string(d.ProductFamily),
		DepotID:            d.DepotID,
		Quantity:           d.Quantity,
		UnitTransportPrice: toNullDecimal(d.UnitTransportPrice),
		ResponsibleID:      d.ResponsibleID,
		CustomsAgentID:     d.CustomsAgentID,
		Status:             string(d.Status),
		Declared:           d.Declared,
		Released:           d.Released,
		PassedUndeclared:   d.PassedUndeclared,
		IsCession:          d.IsCession,
		History:            history,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainTrip converts a trips row to a domain.Trip.
func ToDomainTrip(m models.Trip) (domain.Trip, error) {
	var entries []models.StateEntry
	if len(m.History) > 0 {
		if err := json.Unmarshal(m.History, &entries); err != nil {
			return domain.Trip{}, fmt.Errorf("failed to decode history of trip %s: %w", m.TripID, err)
		}
	}
	history := make(domain.StateLog, len(entries))
	for i, e := range entries {
		history[i] = domain.StateEntry{State: domain.TripStatus(e.State), At: e.At, Validated: e.Validated}
	}
	return domain.Trip{
		TripID:             m.TripID,
		Number:             m.Number,
		TruckID:            m.TruckID,
		TruckCapacity:      m.TruckCapacity,
		Origin:             m.Origin,
		Destination:        m.Destination,
		DepartedAt:         m.DepartedAt,
		ArrivedAt:          m.ArrivedAt,
		AxisID:             m.AxisID,
		ProductID:          m.ProductID,
		ProductFamily:      domain.ProductFamily(m.ProductFamily),
		DepotID:            m.DepotID,
		Quantity:           m.Quantity,
		UnitTransportPrice: fromNullDecimal(m.UnitTransportPrice),
		ResponsibleID:      m.ResponsibleID,
		CustomsAgentID:     m.CustomsAgentID,
		Status:             domain.TripStatus(m.Status),
		Declared:           m.Declared,
		Released:           m.Released,
		PassedUndeclared:   m.PassedUndeclared,
		IsCession:          m.IsCession,
		History:            history,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}, nil
}
