package domain

import (
	"fmt"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TripStatus is the lifecycle state of a trip.
type TripStatus string

const (
	StatusLoading             TripStatus = "LOADING"
	StatusLoaded              TripStatus = "LOADED"
	StatusDeparted            TripStatus = "DEPARTED"
	StatusArrived             TripStatus = "ARRIVED"
	StatusCustoms             TripStatus = "CUSTOMS"
	StatusCleared             TripStatus = "CLEARED"
	StatusAllocated           TripStatus = "ALLOCATED"
	StatusPartiallyDischarged TripStatus = "PARTIALLY_DISCHARGED"
	StatusDischarged          TripStatus = "DISCHARGED"
)

// ParseTripStatus converts a wire value into a TripStatus.
func ParseTripStatus(s string) (TripStatus, error) {
	status := TripStatus(s)
	if _, err := status.rank(); err != nil {
		return "", err
	}
	return status, nil
}

// rank orders states along the lifecycle. Both discharge states sit after ALLOCATED.
func (s TripStatus) rank() (int, error) {
	switch s {
	case StatusLoading:
		return 0, nil
	case StatusLoaded:
		return 1, nil
	case StatusDeparted:
		return 2, nil
	case StatusArrived:
		return 3, nil
	case StatusCustoms:
		return 4, nil
	case StatusCleared:
		return 5, nil
	case StatusAllocated:
		return 6, nil
	case StatusPartiallyDischarged:
		return 7, nil
	case StatusDischarged:
		return 8, nil
	default:
		return -1, fmt.Errorf("%w: unknown trip status %q", apperrors.ErrValidation, string(s))
	}
}

// NextStates lists the states a trip in status s may move to.
func (s TripStatus) NextStates() []TripStatus {
	switch s {
	case StatusLoading:
		return []TripStatus{StatusLoaded}
	case StatusLoaded:
		return []TripStatus{StatusDeparted}
	case StatusDeparted:
		return []TripStatus{StatusArrived}
	case StatusArrived:
		return []TripStatus{StatusCustoms}
	case StatusCustoms:
		return []TripStatus{StatusCleared}
	case StatusCleared:
		return []TripStatus{StatusAllocated}
	case StatusAllocated:
		return []TripStatus{StatusDischarged, StatusPartiallyDischarged}
	case StatusPartiallyDischarged:
		return []TripStatus{StatusDischarged}
	case StatusDischarged:
		return nil
	default:
		return nil
	}
}

// AtOrAfter reports whether s is at or past other in the lifecycle.
func (s TripStatus) AtOrAfter(other TripStatus) bool {
	a, errA := s.rank()
	b, errB := other.rank()
	if errA != nil || errB != nil {
		return false
	}
	return a >= b
}

// IsDischarged reports whether physical delivery is (at least partly) known.
func (s TripStatus) IsDischarged() bool {
	switch s {
	case StatusDischarged, StatusPartiallyDischarged:
		return true
	case StatusLoading, StatusLoaded, StatusDeparted, StatusArrived, StatusCustoms, StatusCleared, StatusAllocated:
		return false
	default:
		return false
	}
}

// ProductFamily selects which per-liter customs rate applies.
type ProductFamily string

const (
	FamilyGasoline ProductFamily = "GASOLINE"
	FamilyDiesel   ProductFamily = "DIESEL"
)

// ParseProductFamily converts a wire value into a ProductFamily.
func ParseProductFamily(s string) (ProductFamily, error) {
	switch f := ProductFamily(s); f {
	case FamilyGasoline, FamilyDiesel:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown product family %q", apperrors.ErrValidation, s)
	}
}

// StateEntry is one line of a trip's state history.
type StateEntry struct {
	State     TripStatus `json:"state"`
	At        time.Time  `json:"at"`
	Validated bool       `json:"validated"`
}

// StateLog is the append-only history of a trip. The last entry is the current state.
type StateLog []StateEntry

// NewStateLog starts a history at the initial state, not yet validated.
func NewStateLog(initial TripStatus, at time.Time) StateLog {
	return StateLog{{State: initial, At: at, Validated: false}}
}

// Current returns the latest entry.
func (l StateLog) Current() (StateEntry, bool) {
	if len(l) == 0 {
		return StateEntry{}, false
	}
	return l[len(l)-1], true
}

// IsValidated reports whether state was already validated once.
func (l StateLog) IsValidated(state TripStatus) bool {
	for _, e := range l {
		if e.State == state && e.Validated {
			return true
		}
	}
	return false
}

// Append validates the current entry and appends target as validated.
// The receiver is left untouched.
func (l StateLog) Append(target TripStatus, at time.Time) (StateLog, error) {
	if l.IsValidated(target) {
		return nil, fmt.Errorf("%w: %s was already validated", apperrors.ErrInvalidTransition, target)
	}
	next := make(StateLog, len(l), len(l)+1)
	copy(next, l)
	if n := len(next); n > 0 {
		next[n-1].Validated = true
	}
	return append(next, StateEntry{State: target, At: at, Validated: true}), nil
}

// Trip is one truck movement of cargo from a depot to a destination.
type Trip struct {
	TripID             string           `json:"tripID"`
	Number             string           `json:"number"`
	TruckID            string           `json:"truckID"`
	TruckCapacity      decimal.Decimal  `json:"truckCapacity"`
	Origin             string           `json:"origin"`
	Destination        string           `json:"destination"`
	DepartedAt         *time.Time       `json:"departedAt,omitempty"`
	ArrivedAt          *time.Time       `json:"arrivedAt,omitempty"`
	AxisID             string           `json:"axisID"`
	ProductID          string           `json:"productID"`
	ProductFamily      ProductFamily    `json:"productFamily"`
	DepotID            string           `json:"depotID"`
	Quantity           decimal.Decimal  `json:"quantity"` // liters
	UnitTransportPrice *decimal.Decimal `json:"unitTransportPrice,omitempty"`
	ResponsibleID      string           `json:"responsibleID"`
	CustomsAgentID     *string          `json:"customsAgentID,omitempty"`
	Status             TripStatus       `json:"status"`
	Declared           bool             `json:"declared"`
	Released           bool             `json:"released"`
	PassedUndeclared   bool             `json:"passedUndeclared"`
	IsCession          bool             `json:"isCession"`
	History            StateLog         `json:"history"`
	AuditFields
}

// CheckTransition verifies target is the next unvalidated state.
func (t *Trip) CheckTransition(target TripStatus) error {
	if _, err := target.rank(); err != nil {
		return err
	}
	allowed := false
	for _, s := range t.Status.NextStates() {
		if s == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidTransition, t.Status, target)
	}
	if t.History.IsValidated(target) {
		return fmt.Errorf("%w: %s was already validated", apperrors.ErrInvalidTransition, target)
	}
	return nil
}

// ApplyTransition moves the trip to target, recording it in the history.
func (t *Trip) ApplyTransition(target TripStatus, userID string, now time.Time) error {
	if err := t.CheckTransition(target); err != nil {
		return err
	}
	history, err := t.History.Append(target, now)
	if err != nil {
		return err
	}
	t.History = history
	t.Status = target
	switch target {
	case StatusDeparted:
		t.DepartedAt = &now
	case StatusArrived:
		t.ArrivedAt = &now
	case StatusLoading, StatusLoaded, StatusCustoms, StatusCleared, StatusAllocated, StatusPartiallyDischarged, StatusDischarged:
	}
	t.Touch(userID, now)
	return nil
}

// HasCustomsAgent reports whether a customs agent is assigned.
func (t *Trip) HasCustomsAgent() bool {
	return t.CustomsAgentID != nil && *t.CustomsAgentID != ""
}

// AdvanceRequest is the payload of a state transition.
type AdvanceRequest struct {
	Target     TripStatus
	Clients    []ClientQuantity // used when entering ALLOCATED
	Shortfalls Shortfalls       // used when entering a discharge state
}
