package services

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a bank account or cash register.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListTripTransactions lists every ledger record tied to a trip.
	ListTripTransactions(ctx context.Context, tripID string) ([]domain.Transaction, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error)
}

// LedgerPostingSvc moves balances. Each call commits one VALIDATED transaction
// together with the balance changes, or nothing.
type LedgerPostingSvc interface {
	PostTransfer(ctx context.Context, actor domain.Actor, req domain.TransferRequest) (*domain.Transaction, error)

	PostFeeAgainstTrip(ctx context.Context, actor domain.Actor, req domain.FeePosting) (*domain.Transaction, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	LedgerPostingSvc
}
