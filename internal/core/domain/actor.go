package domain

// Role is a capability granted to a caller.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustoms  Role = "CUSTOMS"  // may keep advancing released trips and run the customs workflow
	RoleOperator Role = "OPERATOR" // regular staff, acts on trips it is responsible for
	RoleTreasury Role = "TREASURY" // moves funds and validates payments
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string `json:"userID"`
	Roles  []Role `json:"roles"`
}

// Has reports whether the actor carries role.
func (a Actor) Has(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Decision is the outcome of a capability check.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow(reason string) Decision { return Decision{Allowed: true, Reason: reason} }
func deny(reason string) Decision  { return Decision{Allowed: false, Reason: reason} }

// CanAdvance decides whether actor may move trip to its next state.
// Every transition entry point goes through it.
func CanAdvance(actor Actor, trip *Trip) Decision {
	if actor.Has(RoleAdmin) {
		return allow("administrator")
	}
	pastClearance := trip.Status.AtOrAfter(StatusCleared)
	if !pastClearance && actor.UserID != "" && actor.UserID == trip.ResponsibleID {
		return allow("responsible party")
	}
	if actor.Has(RoleCustoms) {
		switch {
		case !pastClearance:
			return deny("customs role acts only once the trip is cleared")
		case !trip.Released:
			return deny("trip is not released")
		default:
			return allow("customs role on released trip")
		}
	}
	if pastClearance {
		return deny("responsible party cannot act past clearance")
	}
	return deny("caller is not the responsible party")
}

// CanRunCustoms decides whether actor may declare or release trips.
func CanRunCustoms(actor Actor) Decision {
	if actor.Has(RoleAdmin) {
		return allow("administrator")
	}
	if actor.Has(RoleCustoms) {
		return allow("customs role")
	}
	return deny("customs workflow requires the customs role")
}

// CanDelete decides whether actor may delete trip.
func CanDelete(actor Actor, trip *Trip) Decision {
	return ownerOrAdmin(actor, trip, "only the responsible party or an administrator may delete a trip")
}

// CanAllocate decides whether actor may change the allocations and prices of
// trip, or charge fees to it.
func CanAllocate(actor Actor, trip *Trip) Decision {
	return ownerOrAdmin(actor, trip, "only the responsible party or an administrator may manage the trip cargo")
}

// CanMoveFunds decides whether actor may transfer money or validate payments.
func CanMoveFunds(actor Actor) Decision {
	if actor.Has(RoleAdmin) {
		return allow("administrator")
	}
	if actor.Has(RoleTreasury) {
		return allow("treasury role")
	}
	return deny("moving funds requires the treasury role")
}

// CanClosePayment decides whether actor may reject or cancel p.
// Rejection is a treasury call, the creator may withdraw its own request.
func CanClosePayment(actor Actor, p *Payment, target PaymentStatus) Decision {
	if d := CanMoveFunds(actor); d.Allowed {
		return d
	}
	if target == PaymentCancelled && actor.UserID != "" && actor.UserID == p.CreatedBy {
		return allow("payment creator")
	}
	return deny("caller may not close this payment")
}

func ownerOrAdmin(actor Actor, trip *Trip, denial string) Decision {
	if actor.Has(RoleAdmin) {
		return allow("administrator")
	}
	if actor.UserID != "" && actor.UserID == trip.ResponsibleID {
		return allow("responsible party")
	}
	return deny(denial)
}
