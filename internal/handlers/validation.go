package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the decimal rules used by the dto binding tags to
// gin's validator. It must run before the first request is bound.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return registerDecimalValidators(v)
}

func registerDecimalValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && value.IsPositive()
	}); err != nil {
		return fmt.Errorf("failed to register 'positive_decimal': %w", err)
	}

	if err := v.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && !value.IsNegative()
	}); err != nil {
		return fmt.Errorf("failed to register 'nonnegative_decimal': %w", err)
	}
	return nil
}

// parseDecimalParam parses a decimal passed as a query parameter.
func parseDecimalParam(name, raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("query parameter %s is required", name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("query parameter %s is not a number: %w", name, err)
	}
	return d, nil
}
