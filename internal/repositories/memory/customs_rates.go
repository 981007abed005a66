package memory

import (
	"context"
	"fmt"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
)

func (v *txView) FindRateByAxis(_ context.Context, axisID string) (*domain.CustomsRate, error) {
	for _, r := range v.st.rates {
		if r.AxisID != nil && *r.AxisID == axisID {
			rate := r
			return &rate, nil
		}
	}
	return nil, fmt.Errorf("%w: customs rate for axis %s", apperrors.ErrNotFound, axisID)
}

func (v *txView) FindDefaultRate(_ context.Context) (*domain.CustomsRate, error) {
	for _, r := range v.st.rates {
		if r.AxisID == nil {
			rate := r
			return &rate, nil
		}
	}
	return nil, fmt.Errorf("%w: default customs rate", apperrors.ErrNotFound)
}

func (s *Store) FindRateByAxis(ctx context.Context, axisID string) (*domain.CustomsRate, error) {
	v, unlock := s.read()
	defer unlock()
	return v.FindRateByAxis(ctx, axisID)
}

func (s *Store) FindDefaultRate(ctx context.Context) (*domain.CustomsRate, error) {
	v, unlock := s.read()
	defer unlock()
	return v.FindDefaultRate(ctx)
}
