package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodedError_MatchesRuleAndCategory(t *testing.T) {
	err := fmt.Errorf("transfer acc_a -> acc_b: %w", ErrInsufficientFunds)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.ErrorIs(t, err, ErrBusinessRule)
	assert.NotErrorIs(t, err, ErrValidation)

	var coded *CodedError
	if assert.True(t, errors.As(err, &coded)) {
		assert.Equal(t, "INSUFFICIENT_FUNDS", coded.Code)
	}
}

func TestCodedError_Categories(t *testing.T) {
	assert.ErrorIs(t, ErrTripForbidden, ErrForbidden)
	assert.ErrorIs(t, ErrInvalidPrice, ErrValidation)
	assert.ErrorIs(t, ErrSameAccount, ErrValidation)
	assert.ErrorIs(t, ErrAlreadyDeclared, ErrBusinessRule)
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewAppError(500, "failed to begin transaction", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to begin transaction: connection reset", err.Error())
	assert.Equal(t, "bare", NewAppError(500, "bare", nil).Error())
}
