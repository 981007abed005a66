package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, kind, bank_type, name, balance, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	q querier
}

// newPgxAccountRepository creates a new repository for accounts and cash registers.
func newPgxAccountRepository(q querier) *PgxAccountRepository {
	return &PgxAccountRepository{q: q}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.q.Exec(ctx, query,
		m.AccountID, m.Kind, m.BankType, m.Name, m.Balance, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	rows, _ := r.q.Query(ctx, query, accountID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, wrapFindError(err, "account", accountID)
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountsByIDsForUpdate locks the rows in account_id order so two postings
// touching the same pair of accounts cannot deadlock.
// Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := r.q.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs for update: %w", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to scan locked account rows: %w", err)
	}

	accountsMap := make(map[string]domain.Account, len(ms))
	for _, m := range ms {
		accountsMap[m.AccountID] = mapping.ToDomainAccount(m)
	}

	var missing []string
	for _, id := range accountIDs {
		if _, ok := accountsMap[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: could not find or lock all requested accounts, missing: %v", apperrors.ErrNotFound, missing)
	}
	return accountsMap, nil
}

// UpdateAccountBalances applies the deltas in one round trip.
// Must be called within a transaction, after FindAccountsByIDsForUpdate.
func (r *PgxAccountRepository) UpdateAccountBalances(ctx context.Context, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	batch := &pgx.Batch{}
	ids := make([]string, 0, len(balanceChanges))
	for id, delta := range balanceChanges {
		batch.Queue(query, id, delta, now, userID)
		ids = append(ids, id)
	}

	br := r.q.SendBatch(ctx, batch)
	defer br.Close()

	for _, id := range ids {
		tag, err := br.Exec()
		if err != nil {
			return fmt.Errorf("failed to update balance of account %s: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, id)
		}
	}
	return nil
}
