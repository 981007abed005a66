package dto

import (
	"fmt"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTripRequest defines the data needed to register a loading trip.
type CreateTripRequest struct {
	TruckID            string               `json:"camionId" binding:"required"`
	TruckCapacity      decimal.Decimal      `json:"capaciteCamion" binding:"positive_decimal"`
	Origin             string               `json:"origine"`
	Destination        string               `json:"destination" binding:"required"`
	AxisID             string               `json:"axeId" binding:"required"`
	ProductID          string               `json:"produitId" binding:"required"`
	ProductFamily      domain.ProductFamily `json:"familleProduit" binding:"required,oneof=GASOLINE DIESEL"`
	DepotID            string               `json:"depotId" binding:"required"`
	Quantity           decimal.Decimal      `json:"quantite" binding:"positive_decimal"`
	UnitTransportPrice *decimal.Decimal     `json:"prixUnitaire" binding:"omitempty,nonnegative_decimal"`
	ResponsibleID      string               `json:"responsableId"` // defaults to the caller
	CustomsAgentID     *string              `json:"transitaireId"`
	IsCession          bool                 `json:"cession"`
}

// ClientQuantityRequest assigns a quantity of cargo to one client.
type ClientQuantityRequest struct {
	ClientID string          `json:"clientId" binding:"required"`
	Quantity decimal.Decimal `json:"quantite" binding:"positive_decimal"`
}

// AdvanceTripRequest is the body of PUT /trips/:id/status.
// A manquants key marks the allocation delivered; a null value keeps the recorded shortfall.
type AdvanceTripRequest struct {
	Status     string                      `json:"statut" binding:"required"`
	Clients    []ClientQuantityRequest     `json:"clients" binding:"omitempty,dive"`
	Shortfalls map[string]*decimal.Decimal `json:"manquants"`
}

// ToDomain converts the body into a domain.AdvanceRequest.
func (r AdvanceTripRequest) ToDomain() (domain.AdvanceRequest, error) {
	target, err := domain.ParseTripStatus(r.Status)
	if err != nil {
		return domain.AdvanceRequest{}, err
	}
	req := domain.AdvanceRequest{Target: target}
	for _, c := range r.Clients {
		req.Clients = append(req.Clients, domain.ClientQuantity{ClientID: c.ClientID, Quantity: c.Quantity})
	}
	if r.Shortfalls != nil {
		if req.Shortfalls, err = shortfallsToDomain(r.Shortfalls); err != nil {
			return domain.AdvanceRequest{}, err
		}
	}
	return req, nil
}

// RecordDeliveriesRequest is the body of PUT /trips/:id/livraisons, a further
// delivery round on a partially discharged trip.
type RecordDeliveriesRequest struct {
	Shortfalls map[string]*decimal.Decimal `json:"manquants" binding:"required,min=1"`
}

// ToDomain converts the body into domain.Shortfalls.
func (r RecordDeliveriesRequest) ToDomain() (domain.Shortfalls, error) {
	return shortfallsToDomain(r.Shortfalls)
}

func shortfallsToDomain(in map[string]*decimal.Decimal) (domain.Shortfalls, error) {
	out := make(domain.Shortfalls, len(in))
	for id, v := range in {
		if v != nil && v.IsNegative() {
			return nil, fmt.Errorf("%w: shortfall for allocation %s is negative", apperrors.ErrValidation, id)
		}
		out[id] = v
	}
	return out, nil
}

// AssignCustomsAgentRequest binds a customs agent to a trip.
type AssignCustomsAgentRequest struct {
	CustomsAgentID string `json:"transitaireId" binding:"required"`
}

// ListTripsParams defines query parameters for listing trips.
type ListTripsParams struct {
	Limit         int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken     *string `form:"nextToken"`
	Status        string  `form:"statut"`
	ResponsibleID string  `form:"responsableId"`
}

// StateEntryResponse is one line of the trip history.
type StateEntryResponse struct {
	State     domain.TripStatus `json:"etat"`
	At        time.Time         `json:"date"`
	Validated bool              `json:"valider"`
}

// TripResponse defines the data returned for a trip.
type TripResponse struct {
	TripID             string               `json:"id"`
	Number             string               `json:"numero"`
	TruckID            string               `json:"camionId"`
	TruckCapacity      decimal.Decimal      `json:"capaciteCamion"`
	Origin             string               `json:"origine"`
	Destination        string               `json:"destination"`
	DepartedAt         *time.Time           `json:"dateDepart,omitempty"`
	ArrivedAt          *time.Time           `json:"dateArrivee,omitempty"`
	AxisID             string               `json:"axeId"`
	ProductID          string               `json:"produitId"`
	ProductFamily      domain.ProductFamily `json:"familleProduit"`
	DepotID            string               `json:"depotId"`
	Quantity           decimal.Decimal      `json:"quantite"`
	UnitTransportPrice *decimal.Decimal     `json:"prixUnitaire,omitempty"`
	ResponsibleID      string               `json:"responsableId"`
	CustomsAgentID     *string              `json:"transitaireId,omitempty"`
	Status             domain.TripStatus    `json:"statut"`
	Declared           bool                 `json:"declarer"`
	Released           bool                 `json:"liberer"`
	PassedUndeclared   bool                 `json:"passerNonDeclarer"`
	IsCession          bool                 `json:"cession"`
	History            []StateEntryResponse `json:"etats"`
	CreatedAt          time.Time            `json:"createdAt"`
	CreatedBy          string               `json:"createdBy"`
	LastUpdatedAt      time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy      string               `json:"lastUpdatedBy"`
}

// ToTripResponse converts a domain.Trip to TripResponse DTO
func ToTripResponse(t *domain.Trip) TripResponse {
	history := make([]StateEntryResponse, len(t.History))
	for i, e := range t.History {
		history[i] = StateEntryResponse{State: e.State, At: e.At, Validated: e.Validated}
	}
	return TripResponse{
		TripID:             t.TripID,
		Number:             t.Number,
		TruckID:            t.TruckID,
		TruckCapacity:      t.TruckCapacity,
		Origin:             t.Origin,
		Destination:        t.Destination,
		DepartedAt:         t.DepartedAt,
		ArrivedAt:          t.ArrivedAt,
		AxisID:             t.AxisID,
		ProductID:          t.ProductID,
		ProductFamily:      t.ProductFamily,
		DepotID:            t.DepotID,
		Quantity:           t.Quantity,
		UnitTransportPrice: t.UnitTransportPrice,
		ResponsibleID:      t.ResponsibleID,
		CustomsAgentID:     t.CustomsAgentID,
		Status:             t.Status,
		Declared:           t.Declared,
		Released:           t.Released,
		PassedUndeclared:   t.PassedUndeclared,
		IsCession:          t.IsCession,
		History:            history,
		CreatedAt:          t.CreatedAt,
		CreatedBy:          t.CreatedBy,
		LastUpdatedAt:      t.LastUpdatedAt,
		LastUpdatedBy:      t.LastUpdatedBy,
	}
}

// ListTripsResponse wraps a page of trips.
type ListTripsResponse struct {
	Trips     []TripResponse `json:"voyages"`
	NextToken *string        `json:"nextToken,omitempty"`
}

// ToListTripsResponse converts a page of domain trips.
func ToListTripsResponse(trips []domain.Trip, nextToken *string) *ListTripsResponse {
	res := make([]TripResponse, len(trips))
	for i := range trips {
		res[i] = ToTripResponse(&trips[i])
	}
	return &ListTripsResponse{Trips: res, NextToken: nextToken}
}
