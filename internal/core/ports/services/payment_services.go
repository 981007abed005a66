package services

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
)

// PaymentReaderSvc defines read operations for payments
type PaymentReaderSvc interface {
	GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentWriterSvc drives the PENDING -> VALIDATED | REJECTED | CANCELLED lifecycle.
type PaymentWriterSvc interface {
	// CreatePayment records an intent to pay. No balance moves.
	CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// ValidatePendingPayment debits the selected account and links the resulting transaction.
	ValidatePendingPayment(ctx context.Context, actor domain.Actor, paymentID string, selector domain.AccountSelector) (*domain.Payment, error)

	RejectPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
	CancelPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
