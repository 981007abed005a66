package pgsql

import (
	"context"
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `transaction_id, type, amount, txn_date, status, source_account_id,
	destination_account_id, trip_id, truck_id, payment_id, description,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	q querier
}

func newPgxTransactionRepository(q querier) *PgxTransactionRepository {
	return &PgxTransactionRepository{q: q}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE transaction_id = $1;`
	rows, _ := r.q.Query(ctx, query, transactionID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, wrapFindError(err, "transaction", transactionID)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactionsByTrip(ctx context.Context, tripID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM ledger_transactions
		WHERE trip_id = $1
		ORDER BY created_at, transaction_id;
	`
	rows, err := r.q.Query(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions of trip %s: %w", tripID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction rows of trip %s: %w", tripID, err)
	}

	txns := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		txns[i] = mapping.ToDomainTransaction(m)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) CountTransactionsByTrip(ctx context.Context, tripID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_transactions WHERE trip_id = $1;`, tripID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions of trip %s: %w", tripID, err)
	}
	return n, nil
}

// SaveTransaction appends a ledger row. There is no update path.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO ledger_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.q.Exec(ctx, query,
		m.TransactionID, m.Type, m.Amount, m.Date, m.Status, m.SourceAccountID,
		m.DestinationAccountID, m.TripID, m.TruckID, m.PaymentID, m.Description,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}
