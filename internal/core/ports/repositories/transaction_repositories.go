package repositories

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByTrip returns every transaction tied to a trip, oldest first.
	ListTransactionsByTrip(ctx context.Context, tripID string) ([]domain.Transaction, error)

	// CountTransactionsByTrip counts transactions referencing a trip, whatever their status.
	CountTransactionsByTrip(ctx context.Context, tripID string) (int, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveTransaction appends a transaction. Validated transactions are never updated.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
