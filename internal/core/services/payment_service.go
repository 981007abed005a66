package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/google/uuid"
)

type paymentService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	paymentRepo portsrepo.PaymentReader
}

// NewPaymentService creates the two-phase payment service.
func NewPaymentService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.PaymentSvcFacade {
	return &paymentService{
		BaseService: newBaseService(buildOptions(opts)),
		txManager:   repos.TxManager,
		paymentRepo: repos.PaymentRepo,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment", slog.String("payment_id", paymentID))
		}
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		Amount:      req.Amount,
		Beneficiary: req.Beneficiary,
		Description: req.Description,
		TripID:      req.TripID,
		TruckID:     req.TruckID,
		Status:      domain.PaymentPending,
		AuditFields: domain.NewAuditFields(actor.UserID, s.Now()),
	}

	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		if payment.TripID != nil && *payment.TripID != "" {
			trip, err := uow.Trips().FindTripByID(ctx, *payment.TripID)
			if err != nil {
				return err
			}
			if payment.TruckID == nil {
				payment.TruckID = strPtr(trip.TruckID)
			}
		}
		return uow.Payments().SavePayment(ctx, payment)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to create payment", slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("amount", payment.Amount.String()))
	return &payment, nil
}

func (s *paymentService) ValidatePendingPayment(ctx context.Context, actor domain.Actor, paymentID string, selector domain.AccountSelector) (*domain.Payment, error) {
	if err := s.Authorize(ctx, actor, domain.CanMoveFunds(actor), apperrors.ErrFundsForbidden, slog.String("payment_id", paymentID)); err != nil {
		return nil, err
	}
	if err := selector.Validate(); err != nil {
		return nil, err
	}
	leg := selector.Leg()

	var payment *domain.Payment
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		payment, err = uow.Payments().FindPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.Status != domain.PaymentPending {
			return fmt.Errorf("%w: payment %s is %s", apperrors.ErrAlreadyValidated, payment.PaymentID, payment.Status)
		}

		now := s.Now()
		txn := newTransaction(domain.TxPayment, domain.Transaction{
			Amount:          payment.Amount,
			SourceAccountID: strPtr(selector.ID()),
			TripID:          payment.TripID,
			TruckID:         payment.TruckID,
			PaymentID:       strPtr(payment.PaymentID),
			Description:     paymentDescription(payment),
		}, domain.NewAuditFields(actor.UserID, now))
		if err := postValidated(ctx, uow, txn, &leg); err != nil {
			return err
		}

		if err := payment.Transition(domain.PaymentValidated, actor.UserID, now); err != nil {
			return err
		}
		payment.AccountID = strPtr(selector.ID())
		payment.TransactionID = strPtr(txn.TransactionID)
		return uow.Payments().UpdatePayment(ctx, *payment)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Payment validation refused", slog.String("payment_id", paymentID))
		return nil, err
	}

	s.LogInfo(ctx, "Payment validated",
		slog.String("payment_id", payment.PaymentID),
		slog.String("account_id", selector.ID()),
		slog.String("amount", payment.Amount.String()))
	return payment, nil
}

func (s *paymentService) RejectPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	return s.close(ctx, actor, paymentID, domain.PaymentRejected)
}

func (s *paymentService) CancelPayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	return s.close(ctx, actor, paymentID, domain.PaymentCancelled)
}

// close ends a pending payment without moving money.
func (s *paymentService) close(ctx context.Context, actor domain.Actor, paymentID string, target domain.PaymentStatus) (*domain.Payment, error) {
	var payment *domain.Payment
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		var err error
		payment, err = uow.Payments().FindPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if err := s.Authorize(ctx, actor, domain.CanClosePayment(actor, payment, target), apperrors.ErrFundsForbidden, slog.String("payment_id", paymentID)); err != nil {
			return err
		}
		if err := payment.Transition(target, actor.UserID, s.Now()); err != nil {
			return err
		}
		return uow.Payments().UpdatePayment(ctx, *payment)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Payment status change refused", slog.String("payment_id", paymentID), slog.String("target", string(target)))
		return nil, err
	}

	s.LogInfo(ctx, "Payment closed", slog.String("payment_id", paymentID), slog.String("status", string(target)))
	return payment, nil
}

func paymentDescription(p *domain.Payment) string {
	if p.Description != "" {
		return p.Description
	}
	return "Payment to " + p.Beneficiary
}
