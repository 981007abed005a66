package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

func (v *txView) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	txn, ok := v.st.transactions[transactionID]
	if !ok {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return &txn, nil
}

func (v *txView) ListTransactionsByTrip(_ context.Context, tripID string) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0)
	for _, t := range v.st.transactions {
		if t.TripID != nil && *t.TripID == tripID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].TransactionID < out[j].TransactionID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (v *txView) CountTransactionsByTrip(_ context.Context, tripID string) (int, error) {
	n := 0
	for _, t := range v.st.transactions {
		if t.TripID != nil && *t.TripID == tripID {
			n++
		}
	}
	return n, nil
}

func (v *txView) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	if _, exists := v.st.transactions[txn.TransactionID]; exists {
		return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, txn.TransactionID)
	}
	v.st.transactions[txn.TransactionID] = txn
	return nil
}

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	v, unlock := s.read()
	defer unlock()
	return v.FindTransactionByID(ctx, transactionID)
}

func (s *Store) ListTransactionsByTrip(ctx context.Context, tripID string) ([]domain.Transaction, error) {
	v, unlock := s.read()
	defer unlock()
	return v.ListTransactionsByTrip(ctx, tripID)
}

func (s *Store) CountTransactionsByTrip(ctx context.Context, tripID string) (int, error) {
	v, unlock := s.read()
	defer unlock()
	return v.CountTransactionsByTrip(ctx, tripID)
}
