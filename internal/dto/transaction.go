package dto

import (
	"fmt"
	"time"

	"github.com/fatoumatandjim/SFB-sub000/internal/apperrors"
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransferRequest is the body of POST /transactions/virement.
// caisseId is the source of a DEPOSIT and the destination of a WITHDRAWAL.
// A SIMPLE_TRANSFER takes exactly one of compteDestinationId and caisseId.
type TransferRequest struct {
	Type                 domain.TransactionType `json:"type" binding:"required,oneof=TRANSFER DEPOSIT WITHDRAWAL SIMPLE_TRANSFER"`
	Amount               decimal.Decimal        `json:"montant" binding:"positive_decimal"`
	Date                 *time.Time             `json:"date"`
	SourceAccountID      string                 `json:"compteSourceId"`
	DestinationAccountID string                 `json:"compteDestinationId"`
	CashID               string                 `json:"caisseId"`
	Description          string                 `json:"description"`
}

// ToDomain resolves which ids are the source and destination legs.
func (r TransferRequest) ToDomain() (domain.TransferRequest, error) {
	req := domain.TransferRequest{Kind: r.Type, Amount: r.Amount, Description: r.Description}
	if r.Date != nil {
		req.Date = *r.Date
	}
	switch r.Type {
	case domain.TxTransfer:
		req.SourceID, req.DestinationID = r.SourceAccountID, r.DestinationAccountID
	case domain.TxDeposit:
		req.SourceID, req.DestinationID = r.CashID, r.DestinationAccountID
	case domain.TxWithdrawal:
		req.SourceID, req.DestinationID = r.SourceAccountID, r.CashID
	case domain.TxSimpleTransfer:
		if r.SourceAccountID != "" {
			return req, fmt.Errorf("%w: a simple transfer has no source account", apperrors.ErrValidation)
		}
		if (r.DestinationAccountID == "") == (r.CashID == "") {
			return req, fmt.Errorf("%w: a simple transfer needs exactly one of compteDestinationId or caisseId", apperrors.ErrValidation)
		}
		req.DestinationID = r.DestinationAccountID
		if req.DestinationID == "" {
			req.DestinationID = r.CashID
		}
	case domain.TxCustomsFee, domain.TxTransportFee, domain.TxOtherFee, domain.TxPayment:
		return req, fmt.Errorf("%w: %s is not a transfer kind", apperrors.ErrValidation, r.Type)
	default:
		return req, fmt.Errorf("%w: unknown transfer kind %q", apperrors.ErrValidation, string(r.Type))
	}
	return req, nil
}

// PostFeeRequest is the body of POST /trips/:id/frais.
type PostFeeRequest struct {
	Category    domain.TransactionType `json:"type" binding:"required,oneof=CUSTOMS_FEE TRANSPORT_FEE OTHER_FEE"`
	Amount      decimal.Decimal        `json:"montant" binding:"positive_decimal"`
	Description string                 `json:"description"`
	AccountSelectorRequest
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID        string                   `json:"id"`
	Type                 domain.TransactionType   `json:"type"`
	Amount               decimal.Decimal          `json:"montant"`
	Date                 time.Time                `json:"date"`
	Status               domain.TransactionStatus `json:"statut"`
	SourceAccountID      *string                  `json:"compteSourceId,omitempty"`
	DestinationAccountID *string                  `json:"compteDestinationId,omitempty"`
	TripID               *string                  `json:"voyageId,omitempty"`
	TruckID              *string                  `json:"camionId,omitempty"`
	PaymentID            *string                  `json:"paiementId,omitempty"`
	Description          string                   `json:"description"`
	CreatedBy            string                   `json:"createdBy"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        t.TransactionID,
		Type:                 t.Type,
		Amount:               t.Amount,
		Date:                 t.Date,
		Status:               t.Status,
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		TripID:               t.TripID,
		TruckID:              t.TruckID,
		PaymentID:            t.PaymentID,
		Description:          t.Description,
		CreatedBy:            t.CreatedBy,
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
