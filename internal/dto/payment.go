package dto

import (
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records a payment awaiting treasury validation.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"montant" binding:"positive_decimal"`
	Beneficiary string          `json:"beneficiaire" binding:"required"`
	Description string          `json:"description"`
	TripID      *string         `json:"voyageId"`
	TruckID     *string         `json:"camionId"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"id"`
	Amount        decimal.Decimal      `json:"montant"`
	Beneficiary   string               `json:"beneficiaire"`
	Description   string               `json:"description"`
	TripID        *string              `json:"voyageId,omitempty"`
	TruckID       *string              `json:"camionId,omitempty"`
	Status        domain.PaymentStatus `json:"statut"`
	AccountID     *string              `json:"compteId,omitempty"`
	TransactionID *string              `json:"transactionId,omitempty"`
	ValidatedAt   *time.Time           `json:"dateValidation,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		Amount:        p.Amount,
		Beneficiary:   p.Beneficiary,
		Description:   p.Description,
		TripID:        p.TripID,
		TruckID:       p.TruckID,
		Status:        p.Status,
		AccountID:     p.AccountID,
		TransactionID: p.TransactionID,
		ValidatedAt:   p.ValidatedAt,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}
