package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is what both the pool and an open transaction offer.
// Repositories built on the pool serve plain reads; the ones built on a
// pgx.Tx belong to a unit of work.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var (
	_ querier = (*pgxpool.Pool)(nil)
	_ querier = (pgx.Tx)(nil)
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// TxManager runs units of work in PostgreSQL transactions.
type TxManager struct {
	BaseRepository
}

var _ portsrepo.TransactionManager = (*TxManager)(nil)

func newTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{BaseRepository{Pool: pool}}
}

// RunInTx executes fn inside one transaction. Any error, or a panic, rolls it back.
func (m *TxManager) RunInTx(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// Rollback after a successful commit is a no-op.
		_ = m.Rollback(context.WithoutCancel(ctx), tx)
	}()

	if err := fn(ctx, newUnitOfWork(tx)); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

type unitOfWork struct {
	trips        *PgxTripRepository
	allocations  *PgxAllocationRepository
	accounts     *PgxAccountRepository
	transactions *PgxTransactionRepository
	payments     *PgxPaymentRepository
	rates        *PgxCustomsRateRepository
}

func newUnitOfWork(tx pgx.Tx) *unitOfWork {
	return &unitOfWork{
		trips:        newPgxTripRepository(tx),
		allocations:  newPgxAllocationRepository(tx),
		accounts:     newPgxAccountRepository(tx),
		transactions: newPgxTransactionRepository(tx),
		payments:     newPgxPaymentRepository(tx),
		rates:        newPgxCustomsRateRepository(tx),
	}
}

func (u *unitOfWork) Trips() portsrepo.TripRepositoryFacade {
	return u.trips
}

func (u *unitOfWork) Allocations() portsrepo.AllocationRepositoryFacade {
	return u.allocations
}

func (u *unitOfWork) Accounts() portsrepo.AccountRepositoryFacade {
	return u.accounts
}

func (u *unitOfWork) Transactions() portsrepo.TransactionRepositoryFacade {
	return u.transactions
}

func (u *unitOfWork) Payments() portsrepo.PaymentRepositoryFacade {
	return u.payments
}

func (u *unitOfWork) CustomsRates() portsrepo.CustomsRateReader {
	return u.rates
}

// isUniqueViolation reports a PostgreSQL 23505 error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// wrapFindError turns pgx.ErrNoRows into apperrors.ErrNotFound.
func wrapFindError(err error, what, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, what, id)
	}
	return fmt.Errorf("failed to find %s %s: %w", what, id, err)
}
