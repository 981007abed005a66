package domain_test

import (
	"testing"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayment_Transition(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.PaymentStatus
		to      domain.PaymentStatus
		wantErr error
	}{
		{name: "pending to validated", from: domain.PaymentPending, to: domain.PaymentValidated},
		{name: "pending to rejected", from: domain.PaymentPending, to: domain.PaymentRejected},
		{name: "pending to cancelled", from: domain.PaymentPending, to: domain.PaymentCancelled},
		{name: "validated is final", from: domain.PaymentValidated, to: domain.PaymentCancelled, wantErr: apperrors.ErrAlreadyValidated},
		{name: "rejected is final", from: domain.PaymentRejected, to: domain.PaymentValidated, wantErr: apperrors.ErrAlreadyValidated},
		{name: "pending to pending", from: domain.PaymentPending, to: domain.PaymentPending, wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Payment{PaymentID: "pay_1", Amount: decimal.NewFromInt(10), Status: tt.from}
			err := p.Transition(tt.to, "user_1", time.Now())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, p.Status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, p.Status)
			assert.Equal(t, "user_1", p.LastUpdatedBy)
			if tt.to == domain.PaymentValidated {
				assert.NotNil(t, p.ValidatedAt)
			}
		})
	}
}

func TestCustomsRate_FeePerLiter(t *testing.T) {
	rate := domain.CustomsRate{
		GasolineFeePerLiter: decimal.RequireFromString("12.5"),
		DieselFeePerLiter:   decimal.RequireFromString("9"),
	}
	assert.True(t, rate.FeePerLiter(domain.FamilyDiesel).Equal(decimal.NewFromInt(9)))
	assert.True(t, rate.FeePerLiter(domain.FamilyGasoline).Equal(decimal.RequireFromString("12.5")))
}

func TestTransferLegs(t *testing.T) {
	leg, err := domain.TransferLegs(domain.TxDeposit)
	assert.NoError(t, err)
	assert.Equal(t, domain.KindCashRegister, leg.SourceKind)
	assert.Equal(t, domain.KindBankAccount, leg.DestinationKind)

	leg, err = domain.TransferLegs(domain.TxSimpleTransfer)
	assert.NoError(t, err)
	assert.False(t, leg.NeedsSource)
	assert.True(t, leg.NeedsDest)

	_, err = domain.TransferLegs(domain.TxCustomsFee)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
