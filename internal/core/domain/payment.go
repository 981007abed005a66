package domain

import (
	"fmt"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the two-phase payment lifecycle: PENDING -> VALIDATED | REJECTED | CANCELLED.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentValidated PaymentStatus = "VALIDATED"
	PaymentRejected  PaymentStatus = "REJECTED"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// Payment is an intent to pay, debited only when treasury validates it.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	Amount        decimal.Decimal `json:"amount"`
	Beneficiary   string          `json:"beneficiary"`
	Description   string          `json:"description"`
	TripID        *string         `json:"tripID,omitempty"`
	TruckID       *string         `json:"truckID,omitempty"`
	Status        PaymentStatus   `json:"status"`
	AccountID     *string         `json:"accountID,omitempty"`
	TransactionID *string         `json:"transactionID,omitempty"`
	ValidatedAt   *time.Time      `json:"validatedAt,omitempty"`
	AuditFields
}

// Transition moves a pending payment to a final status.
// The debit for VALIDATED is the caller's side effect, not this method's.
func (p *Payment) Transition(target PaymentStatus, userID string, now time.Time) error {
	if p.Status != PaymentPending {
		return fmt.Errorf("%w: payment %s is %s", apperrors.ErrAlreadyValidated, p.PaymentID, p.Status)
	}
	switch target {
	case PaymentValidated:
		p.ValidatedAt = &now
	case PaymentRejected, PaymentCancelled:
	case PaymentPending:
		return fmt.Errorf("%w: payment is already pending", apperrors.ErrValidation)
	default:
		return fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, string(target))
	}
	p.Status = target
	p.Touch(userID, now)
	return nil
}
