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

// ledgerService implements the AccountSvcFacade interface
type ledgerService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionReader
}

// NewLedgerService creates the service owning accounts and balance movements.
func NewLedgerService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.AccountSvcFacade {
	return &ledgerService{
		BaseService:     newBaseService(buildOptions(opts)),
		txManager:       repos.TxManager,
		accountRepo:     repos.AccountRepo,
		transactionRepo: repos.TransactionRepo,
	}
}

// Ensure ledgerService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *ledgerService) ListTripTransactions(ctx context.Context, tripID string) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactionsByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trip transactions", slog.String("trip_id", tripID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *ledgerService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.Authorize(ctx, actor, domain.CanMoveFunds(actor), apperrors.ErrFundsForbidden); err != nil {
		return nil, err
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Kind:        req.Kind,
		BankType:    req.BankType,
		Name:        req.Name,
		Balance:     req.InitialBalance,
		Status:      domain.AccountActive,
		AuditFields: domain.NewAuditFields(actor.UserID, s.Now()),
	}
	switch account.Kind {
	case domain.KindBankAccount:
		if account.BankType == "" {
			account.BankType = domain.BankTypeBank
		}
	case domain.KindCashRegister:
		account.BankType = ""
	default:
		return nil, fmt.Errorf("%w: unknown account kind %q", apperrors.ErrValidation, string(req.Kind))
	}

	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return uow.Accounts().SaveAccount(ctx, account)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID), slog.String("kind", string(account.Kind)))
	return &account, nil
}

func (s *ledgerService) PostTransfer(ctx context.Context, actor domain.Actor, req domain.TransferRequest) (*domain.Transaction, error) {
	if err := s.Authorize(ctx, actor, domain.CanMoveFunds(actor), apperrors.ErrFundsForbidden, slog.String("kind", string(req.Kind))); err != nil {
		return nil, err
	}
	leg, err := domain.TransferLegs(req.Kind)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if leg.NeedsSource && req.SourceID == "" {
		return nil, fmt.Errorf("%w: %s needs a source account", apperrors.ErrValidation, req.Kind)
	}
	if !leg.NeedsSource && req.SourceID != "" {
		return nil, fmt.Errorf("%w: %s takes no source account", apperrors.ErrValidation, req.Kind)
	}
	if leg.NeedsDest && req.DestinationID == "" {
		return nil, fmt.Errorf("%w: %s needs a destination account", apperrors.ErrValidation, req.Kind)
	}
	if req.SourceID != "" && req.SourceID == req.DestinationID {
		return nil, apperrors.ErrSameAccount
	}

	txn := newTransaction(req.Kind, domain.Transaction{
		Amount:               req.Amount,
		Date:                 req.Date,
		SourceAccountID:      strPtr(req.SourceID),
		DestinationAccountID: strPtr(req.DestinationID),
		Description:          req.Description,
	}, domain.NewAuditFields(actor.UserID, s.Now()))

	err = s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		return postValidated(ctx, uow, txn, &leg)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Transfer rejected", slog.String("kind", string(req.Kind)))
		return nil, err
	}

	s.LogInfo(ctx, "Transfer posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *ledgerService) PostFeeAgainstTrip(ctx context.Context, actor domain.Actor, req domain.FeePosting) (*domain.Transaction, error) {
	if !req.Category.IsFee() {
		return nil, fmt.Errorf("%w: %s is not a fee category", apperrors.ErrValidation, req.Category)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if err := req.Selector.Validate(); err != nil {
		return nil, err
	}
	leg := req.Selector.Leg()

	var txn domain.Transaction
	err := s.txManager.RunInTx(ctx, func(ctx context.Context, uow portsrepo.UnitOfWork) error {
		trip, err := uow.Trips().FindTripByIDForUpdate(ctx, req.TripID)
		if err != nil {
			return err
		}
		if err := s.Authorize(ctx, actor, domain.CanAllocate(actor, trip), apperrors.ErrCargoForbidden, slog.String("trip_id", req.TripID)); err != nil {
			return err
		}
		txn = feeTransaction(req, trip, domain.NewAuditFields(actor.UserID, s.Now()))
		return postValidated(ctx, uow, txn, &leg)
	})
	if err != nil {
		s.LogFailure(ctx, err, "Fee rejected", slog.String("trip_id", req.TripID))
		return nil, err
	}

	s.LogInfo(ctx, "Fee posted against trip",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("trip_id", req.TripID),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// feeTransaction builds the debit of a fee tied to trip.
func feeTransaction(req domain.FeePosting, trip *domain.Trip, audit domain.AuditFields) domain.Transaction {
	return newTransaction(req.Category, domain.Transaction{
		Amount:          req.Amount,
		SourceAccountID: strPtr(req.Selector.ID()),
		TripID:          strPtr(trip.TripID),
		TruckID:         strPtr(trip.TruckID),
		Description:     req.Description,
	}, audit)
}
