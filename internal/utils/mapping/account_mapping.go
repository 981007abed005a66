package mapping

import (
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/fatoumatandjim/SFB-sub000/internal/models"
)

// ToModelAccount converts a domain.Account to its row.
func ToModelAccount(d domain.Account) models.Account {
	var bankType *string
	if d.BankType != "" {
		bt := string(d.BankType)
		bankType = &bt
	}
	return models.Account{
		AccountID:   d.AccountID,
		Kind:        string(d.Kind),
		BankType:    bankType,
		Name:        d.Name,
		Balance:     d.Balance,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts an accounts row to a domain.Account.
func ToDomainAccount(m models.Account) domain.Account {
	var bankType domain.BankType
	if m.BankType != nil {
		bankType = domain.BankType(*m.BankType)
	}
	return domain.Account{
		AccountID:   m.AccountID,
		Kind:        domain.AccountKind(m.Kind),
		BankType:    bankType,
		Name:        m.Name,
		Balance:     m.Balance,
		Status:      domain.AccountStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
