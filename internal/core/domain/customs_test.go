package domain_test

import (
	"testing"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccountSelector(t *testing.T) {
	assert.ErrorIs(t, domain.AccountSelector{}.Validate(), apperrors.ErrValidation)
	assert.ErrorIs(t, domain.AccountSelector{AccountID: "acc_1", CashID: "csh_1"}.Validate(), apperrors.ErrValidation)

	bank := domain.AccountSelector{AccountID: "acc_1"}
	assert.NoError(t, bank.Validate())
	assert.Equal(t, "acc_1", bank.ID())
	assert.Equal(t, domain.KindBankAccount, bank.Leg().SourceKind)

	cash := domain.AccountSelector{CashID: "csh_1"}
	assert.NoError(t, cash.Validate())
	assert.Equal(t, "csh_1", cash.ID())
	assert.Equal(t, domain.KindCashRegister, cash.Leg().SourceKind)
	assert.True(t, cash.Leg().NeedsSource)
}
