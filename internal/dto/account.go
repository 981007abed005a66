package dto

import (
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a bank account or cash register.
type CreateAccountRequest struct {
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=BANK_ACCOUNT CASH_REGISTER"`
	BankType       domain.BankType    `json:"type" binding:"omitempty,oneof=BANK CASH MOBILE_MONEY"`
	Name           string             `json:"nom" binding:"required"`
	InitialBalance decimal.Decimal    `json:"solde" binding:"nonnegative_decimal"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string               `json:"id"`
	Kind          domain.AccountKind   `json:"kind"`
	BankType      domain.BankType      `json:"type,omitempty"`
	Name          string               `json:"nom"`
	Balance       decimal.Decimal      `json:"solde"`
	Status        domain.AccountStatus `json:"statut"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Kind:          acc.Kind,
		BankType:      acc.BankType,
		Name:          acc.Name,
		Balance:       acc.Balance,
		Status:        acc.Status,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}
