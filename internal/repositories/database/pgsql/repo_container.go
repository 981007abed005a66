package pgsql

import (
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository on dbPool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       newTxManager(dbPool),
		TripRepo:        newPgxTripRepository(dbPool),
		AllocationRepo:  newPgxAllocationRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		CustomsRateRepo: newPgxCustomsRateRepository(dbPool),
	}
}
