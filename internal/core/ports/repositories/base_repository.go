package repositories

import (
	"context"
)

// TxFunc is the body of a unit of work. Returning an error rolls everything back.
type TxFunc func(ctx context.Context, uow UnitOfWork) error

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// RunInTx executes fn inside a single transaction. Rows locked through the
	// unit of work stay locked until fn returns; all writes commit together or not at all.
	RunInTx(ctx context.Context, fn TxFunc) error
}

// UnitOfWork exposes repositories bound to one open transaction.
type UnitOfWork interface {
	Trips() TripRepositoryFacade
	Allocations() AllocationRepositoryFacade
	Accounts() AccountRepositoryFacade
	Transactions() TransactionRepositoryFacade
	Payments() PaymentRepositoryFacade
	CustomsRates() CustomsRateReader
}
