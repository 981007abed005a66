package dto

import (
	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountSelectorRequest picks the account or cash register a fee is drawn from.
// Both empty means the configured default customs account; both set is refused.
type AccountSelectorRequest struct {
	AccountID string `json:"compteId" form:"compteId" binding:"excluded_with=CashID"`
	CashID    string `json:"caisseId" form:"caisseId"`
}

// ToDomain converts the selector.
func (r AccountSelectorRequest) ToDomain() domain.AccountSelector {
	return domain.AccountSelector{AccountID: r.AccountID, CashID: r.CashID}
}

// DeclareManyRequest is the body of PUT /trips/declarer-multiple.
type DeclareManyRequest struct {
	TripIDs []string `json:"voyageIds" binding:"required,min=1,dive,required"`
	AccountSelectorRequest
}

// ReleaseManyRequest is the body of PUT /trips/liberer-multiple.
type ReleaseManyRequest struct {
	TripIDs []string `json:"voyageIds" binding:"required,min=1,dive,required"`
}

// BatchItemResponse reports one item of a best-effort batch.
type BatchItemResponse struct {
	TripID  string        `json:"voyageId"`
	Success bool          `json:"success"`
	Trip    *TripResponse `json:"voyage,omitempty"`
	Error   *ErrorBody    `json:"error,omitempty"`
}

// BatchResponse wraps per-item outcomes with counters.
type BatchResponse struct {
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
	Results   []BatchItemResponse `json:"results"`
}

// ToBatchResponse converts batch results. errBody renders a failed item's error.
func ToBatchResponse(results []domain.BatchResult, errBody func(error) ErrorBody) BatchResponse {
	out := BatchResponse{Results: make([]BatchItemResponse, len(results))}
	for i, r := range results {
		item := BatchItemResponse{TripID: r.TripID}
		if r.Err != nil {
			body := errBody(r.Err)
			item.Error = &body
			out.Failed++
		} else {
			item.Success = true
			if r.Trip != nil {
				tr := ToTripResponse(r.Trip)
				item.Trip = &tr
			}
			out.Succeeded++
		}
		out.Results[i] = item
	}
	return out
}

// DeclarationFeeParams are the query parameters of the fee preview.
type DeclarationFeeParams struct {
	Capacity      string `form:"capacite" binding:"required"`
	ProductFamily string `form:"familleProduit" binding:"required"`
	AxisID        string `form:"axeId"`
}

// DeclarationFeeResponse is the fee a declaration would post.
type DeclarationFeeResponse struct {
	Fee decimal.Decimal `json:"montant"`
}
