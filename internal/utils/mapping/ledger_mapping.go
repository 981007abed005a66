package mapping

import (
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its row.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		Type:                 string(d.Type),
		Amount:               d.Amount,
		Date:                 d.Date,
		Status:               string(d.Status),
		SourceAccountID:      d.SourceAccountID,
		DestinationAccountID: d.DestinationAccountID,
		TripID:               d.TripID,
		TruckID:              d.TruckID,
		PaymentID:            d.PaymentID,
		Description:          d.Description,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a ledger_transactions row.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		Type:                 domain.TransactionType(m.Type),
		Amount:               m.Amount,
		Date:                 m.Date,
		Status:               domain.TransactionStatus(m.Status),
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		TripID:               m.TripID,
		TruckID:              m.TruckID,
		PaymentID:            m.PaymentID,
		Description:          m.Description,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPayment converts a domain.Payment to its row.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		Amount:        d.Amount,
		Beneficiary:   d.Beneficiary,
		Description:   d.Description,
		TripID:        d.TripID,
		TruckID:       d.TruckID,
		Status:        string(d.Status),
		AccountID:     d.AccountID,
		TransactionID: d.TransactionID,
		ValidatedAt:   d.ValidatedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a payments row.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		Amount:        m.Amount,
		Beneficiary:   m.Beneficiary,
		Description:   m.Description,
		TripID:        m.TripID,
		TruckID:       m.TruckID,
		Status:        domain.PaymentStatus(m.Status),
		AccountID:     m.AccountID,
		TransactionID: m.TransactionID,
		ValidatedAt:   m.ValidatedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomsRate converts a customs_rates row.
func ToDomainCustomsRate(m models.CustomsRate) domain.CustomsRate {
	return domain.CustomsRate{
		RateID:              m.RateID,
		AxisID:              m.AxisID,
		GasolineFeePerLiter: m.GasolineFeePerLiter,
		DieselFeePerLiter:   m.DieselFeePerLiter,
		TransitFee:          m.TransitFee,
	}
}
