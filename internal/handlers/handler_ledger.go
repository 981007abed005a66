package handlers

import (
	"net/http"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves accounts, transfers and fees posted against trips.
type ledgerHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newLedgerHandler(as portssvc.AccountSvcFacade) *ledgerHandler {
	return &ledgerHandler{accountService: as}
}

// createAccount godoc
// @Summary Create a bank account or cash register
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *ledgerHandler) createAccount(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "create account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *ledgerHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// postTransfer godoc
// @Summary Post a transfer, deposit or withdrawal
// @Description Moves the amount and records one VALIDATED transaction, or changes nothing.
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body dto.TransferRequest true "Transfer"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/virement [post]
func (h *ledgerHandler) postTransfer(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var body dto.TransferRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToDomain()
	if err != nil {
		respondWithError(c, err, "post transfer")
		return
	}

	txn, err := h.accountService.PostTransfer(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "post transfer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTripTransactions godoc
// @Summary List the ledger transactions of a trip
// @Tags transactions
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /trips/{id}/transactions [get]
func (h *ledgerHandler) listTripTransactions(c *gin.Context) {
	txns, err := h.accountService.ListTripTransactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "list trip transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// postFee godoc
// @Summary Post a fee against a trip
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body dto.PostFeeRequest true "Fee"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/frais [post]
func (h *ledgerHandler) postFee(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.PostFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.accountService.PostFeeAgainstTrip(c.Request.Context(), actor, domain.FeePosting{
		TripID:      c.Param("id"),
		Selector:    req.AccountSelectorRequest.ToDomain(),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err, "post fee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}
