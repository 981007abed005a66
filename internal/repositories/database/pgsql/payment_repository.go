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

const paymentColumns = `payment_id, amount, beneficiary, description, trip_id, truck_id, status,
	account_id, transaction_id, validated_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	q querier
}

func newPgxPaymentRepository(q querier) *PgxPaymentRepository {
	return &PgxPaymentRepository{q: q}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) findOne(ctx context.Context, query, paymentID string) (*domain.Payment, error) {
	rows, _ := r.q.Query(ctx, query, paymentID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, wrapFindError(err, "payment", paymentID)
	}
	p := mapping.ToDomainPayment(m)
	return &p, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID)
}

func (r *PgxPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.findOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1 FOR UPDATE;`, paymentID)
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.q.Exec(ctx, query,
		m.PaymentID, m.Amount, m.Beneficiary, m.Description, m.TripID, m.TruckID, m.Status,
		m.AccountID, m.TransactionID, m.ValidatedAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// UpdatePayment persists the status change and its ledger link.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments
		SET status = $2, account_id = $3, transaction_id = $4, validated_at = $5, truck_id = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE payment_id = $1;
	`
	tag, err := r.q.Exec(ctx, query,
		m.PaymentID, m.Status, m.AccountID, m.TransactionID, m.ValidatedAt, m.TruckID,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", m.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, m.PaymentID)
	}
	return nil
}
