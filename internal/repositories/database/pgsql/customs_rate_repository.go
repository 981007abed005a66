package pgsql

import (
	"context"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portsrepo "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/repositories"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
	"github.com/fatoumatandjim/SFB-sub000/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const customsRateColumns = `rate_id, axis_id, gasoline_fee_per_liter, diesel_fee_per_liter, transit_fee`

// PgxCustomsRateRepository reads the customs_rates table. Rates are seeded by migrations.
type PgxCustomsRateRepository struct {
	q querier
}

func newPgxCustomsRateRepository(q querier) *PgxCustomsRateRepository {
	return &PgxCustomsRateRepository{q: q}
}

var _ portsrepo.CustomsRateReader = (*PgxCustomsRateRepository)(nil)

func (r *PgxCustomsRateRepository) findOne(ctx context.Context, what, query string, args ...any) (*domain.CustomsRate, error) {
	rows, _ := r.q.Query(ctx, query, args...)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.CustomsRate])
	if err != nil {
		return nil, wrapFindError(err, "customs rate", what)
	}
	rate := mapping.ToDomainCustomsRate(m)
	return &rate, nil
}

func (r *PgxCustomsRateRepository) FindRateByAxis(ctx context.Context, axisID string) (*domain.CustomsRate, error) {
	return r.findOne(ctx, "for axis "+axisID,
		`SELECT `+customsRateColumns+` FROM customs_rates WHERE axis_id = $1;`, axisID)
}

// FindDefaultRate returns the most recently created global rate.
func (r *PgxCustomsRateRepository) FindDefaultRate(ctx context.Context) (*domain.CustomsRate, error) {
	return r.findOne(ctx, "default",
		`SELECT `+customsRateColumns+` FROM customs_rates WHERE axis_id IS NULL ORDER BY created_at DESC LIMIT 1;`)
}
