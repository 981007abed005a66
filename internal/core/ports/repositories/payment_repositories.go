package repositories

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

// PaymentReader defines read operations for payments
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentWriter defines write operations for payments
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	UpdatePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentLocker serializes status changes of a payment.
type PaymentLocker interface {
	FindPaymentByIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	PaymentLocker
}
