package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (v *txView) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	acc, ok := v.st.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &acc, nil
}

func (v *txView) SaveAccount(_ context.Context, account domain.Account) error {
	if _, exists := v.st.accounts[account.AccountID]; exists {
		return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	v.st.accounts[account.AccountID] = account
	return nil
}

func (v *txView) FindAccountsByIDsForUpdate(_ context.Context, accountIDs []string) (map[string]domain.Account, error) {
	out := make(map[string]domain.Account, len(accountIDs))
	var missing []string
	for _, id := range accountIDs {
		acc, ok := v.st.accounts[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		out[id] = acc
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: could not find or lock all requested accounts, missing: %v", apperrors.ErrNotFound, missing)
	}
	return out, nil
}

func (v *txView) UpdateAccountBalances(_ context.Context, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	for id := range balanceChanges {
		if _, ok := v.st.accounts[id]; !ok {
			return fmt.Errorf("%w: account %s not found during balance update", apperrors.ErrNotFound, id)
		}
	}
	for id, delta := range balanceChanges {
		if delta.IsZero() {
			continue
		}
		acc := v.st.accounts[id]
		acc.Balance = acc.Balance.Add(delta)
		acc.Touch(userID, now)
		v.st.accounts[id] = acc
	}
	return nil
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	v, unlock := s.read()
	defer unlock()
	return v.FindAccountByID(ctx, accountID)
}
