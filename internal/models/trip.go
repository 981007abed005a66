package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StateEntry is one element of the trips.history JSONB array.
type StateEntry struct {
	State     string    `json:"etat"`
	At        time.Time `json:"date"`
	Validated bool      `json:"valider"`
}

// Trip is a row of the trips table.
type Trip struct {
	TripID             string              `db:"trip_id"`
	Number             string              `db:"number"`
	TruckID            string              `db:"truck_id"`
	TruckCapacity      decimal.Decimal     `db:"truck_capacity"`
	Origin             string              `db:"origin"`
	Destination        string              `db:"destination"`
	DepartedAt         *time.Time          `db:"departed_at"`
	ArrivedAt          *time.Time          `db:"arrived_at"`
	AxisID             string              `db:"axis_id"`
	ProductID          string              `db:"product_id"`
	ProductFamily      string              `db:"product_family"`
	DepotID            string              `db:"depot_id"`
	Quantity           decimal.Decimal     `db:"quantity"`
	UnitTransportPrice decimal.NullDecimal `db:"unit_transport_price"`
	ResponsibleID      string              `db:"responsible_id"`
	CustomsAgentID     *string             `db:"customs_agent_id"`
	Status             string              `db:"status"`
	Declared           bool                `db:"declared"`
	Released           bool                `db:"released"`
	PassedUndeclared   bool                `db:"passed_undeclared"`
	IsCession          bool                `db:"is_cession"`
	History            []byte              `db:"history"` // JSON array of StateEntry
	AuditFields
}
