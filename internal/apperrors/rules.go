package apperrors

// Trip lifecycle.
var (
	ErrInvalidTransition   = newCoded(ErrBusinessRule, "INVALID_TRANSITION", "requested state is not the next unvalidated state of the trip")
	ErrTripForbidden       = newCoded(ErrForbidden, "FORBIDDEN", "caller is not allowed to advance this trip")
	ErrMissingCustomsAgent = newCoded(ErrBusinessRule, "MISSING_CUSTOMS_AGENT", "trip has no assigned customs agent")
	ErrNoClientAssigned    = newCoded(ErrBusinessRule, "NO_CLIENT_ASSIGNED", "at least one client must be assigned to the trip")
	ErrAllocationExceeds   = newCoded(ErrBusinessRule, "ALLOCATION_EXCEEDS_CARGO", "allocated quantities exceed the trip cargo")
	ErrNoDeliveryMarked    = newCoded(ErrBusinessRule, "NO_DELIVERY_MARKED", "at least one allocation must be marked delivered")
	ErrIncompleteDischarge = newCoded(ErrBusinessRule, "INCOMPLETE_DISCHARGE", "every allocation must be delivered to fully discharge the trip")
	ErrTripHasTransactions = newCoded(ErrBusinessRule, "TRIP_HAS_TRANSACTIONS", "trip is referenced by ledger transactions")
	ErrAllocationLocked    = newCoded(ErrBusinessRule, "ALLOCATION_LOCKED", "allocation carries a recorded shortfall or price")
	ErrDeliveryRoundClosed = newCoded(ErrBusinessRule, "DELIVERY_ROUND_CLOSED", "deliveries are recorded between partial and full discharge only")
)

// Cargo allocation.
var (
	ErrCapacityExceeded = newCoded(ErrBusinessRule, "CAPACITY_EXCEEDED", "allocation would exceed the trip cargo quantity")
	ErrNotDischarged    = newCoded(ErrBusinessRule, "NOT_DISCHARGED", "prices can only be set once the trip is discharged")
	ErrInvalidPrice     = newCoded(ErrValidation, "INVALID_PRICE", "price must be greater than zero")
	ErrCessionTrip      = newCoded(ErrBusinessRule, "CESSION_TRIP", "cession trips carry no purchase price")
	ErrAllocationClosed = newCoded(ErrBusinessRule, "ALLOCATION_CLOSED", "allocations cannot change once the trip is discharged")
	ErrCargoForbidden   = newCoded(ErrForbidden, "FORBIDDEN", "caller is not responsible for this trip")
)

// Account ledger and payments.
var (
	ErrInsufficientFunds = newCoded(ErrBusinessRule, "INSUFFICIENT_FUNDS", "insufficient funds on the source account")
	ErrAccountInactive   = newCoded(ErrBusinessRule, "ACCOUNT_INACTIVE", "account is not active")
	ErrAlreadyValidated  = newCoded(ErrBusinessRule, "ALREADY_VALIDATED", "payment is no longer pending")
	ErrSameAccount       = newCoded(ErrValidation, "SAME_ACCOUNT", "source and destination must differ")
	ErrFundsForbidden    = newCoded(ErrForbidden, "FORBIDDEN", "caller may not move funds")
)

// Customs declaration.
var (
	ErrAlreadyDeclared  = newCoded(ErrBusinessRule, "ALREADY_DECLARED", "trip is already declared")
	ErrCustomsForbidden = newCoded(ErrForbidden, "FORBIDDEN", "caller may not run the customs workflow")
)
