package handlers

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerDecimalValidators(v))

	type payload struct {
		Qty     decimal.Decimal  `validate:"positive_decimal"`
		Balance decimal.Decimal  `validate:"nonnegative_decimal"`
		Price   *decimal.Decimal `validate:"omitempty,nonnegative_decimal"`
	}
	neg := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		in      payload
		wantErr bool
	}{
		{"valid", payload{Qty: decimal.NewFromInt(1)}, false},
		{"zero quantity", payload{}, true},
		{"negative balance", payload{Qty: decimal.NewFromInt(1), Balance: neg}, true},
		{"negative price", payload{Qty: decimal.NewFromInt(1), Price: &neg}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseDecimalParam(t *testing.T) {
	d, err := parseDecimalParam("prixAchat", "612.5")
	require.NoError(t, err)
	assert.Equal(t, "612.5", d.String())

	_, err = parseDecimalParam("prixAchat", "")
	assert.ErrorContains(t, err, "required")
	_, err = parseDecimalParam("prixAchat", "abc")
	assert.ErrorContains(t, err, "not a number")
}
