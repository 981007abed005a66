package memory

import (
	"context"
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

func (v *txView) FindPaymentByID(_ context.Context, paymentID string) (*domain.Payment, error) {
	p, ok := v.st.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
	}
	return &p, nil
}

func (v *txView) FindPaymentByIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return v.FindPaymentByID(ctx, paymentID)
}

func (v *txView) SavePayment(_ context.Context, payment domain.Payment) error {
	if _, exists := v.st.payments[payment.PaymentID]; exists {
		return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, payment.PaymentID)
	}
	v.st.payments[payment.PaymentID] = payment
	return nil
}

func (v *txView) UpdatePayment(_ context.Context, payment domain.Payment) error {
	if _, exists := v.st.payments[payment.PaymentID]; !exists {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, payment.PaymentID)
	}
	v.st.payments[payment.PaymentID] = payment
	return nil
}

func (s *Store) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	v, unlock := s.read()
	defer unlock()
	return v.FindPaymentByID(ctx, paymentID)
}
