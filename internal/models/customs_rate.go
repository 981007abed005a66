package models

import (
	"github.com/shopspring/decimal"
)

// CustomsRate is a row of the customs_rates table. A NULL axis is the global default.
type CustomsRate struct {
	RateID              string          `db:"rate_id"`
	AxisID              *string         `db:"axis_id"`
	GasolineFeePerLiter decimal.Decimal `db:"gasoline_fee_per_liter"`
	DieselFeePerLiter   decimal.Decimal `db:"diesel_fee_per_liter"`
	TransitFee          decimal.Decimal `db:"transit_fee"`
}
