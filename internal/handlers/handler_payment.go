package handlers

import (
	"net/http"

	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// createPayment godoc
// @Summary Record a pending payment
// @Description No balance moves until treasury validates the payment.
// @Tags payments
// @Accept json
// @Produce json
// @Param body body dto.CreatePaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /paiements [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "create payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /paiements/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	payment, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// validatePayment godoc
// @Summary Validate a pending payment
// @Description Debits the selected account or cash register and links the ledger transaction.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Param compteId query string false "Bank account ID"
// @Param caisseId query string false "Cash register ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /paiements/{id}/valider [put]
func (h *paymentHandler) validatePayment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var selector dto.AccountSelectorRequest
	if err := c.ShouldBindQuery(&selector); err != nil {
		respondBindError(c, err)
		return
	}

	payment, err := h.paymentService.ValidatePendingPayment(c.Request.Context(), actor, c.Param("id"), selector.ToDomain())
	if err != nil {
		respondWithError(c, err, "validate payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// rejectPayment godoc
// @Summary Reject a pending payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /paiements/{id}/rejeter [put]
func (h *paymentHandler) rejectPayment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.RejectPayment(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "reject payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// cancelPayment godoc
// @Summary Cancel a pending payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /paiements/{id}/annuler [put]
func (h *paymentHandler) cancelPayment(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	payment, err := h.paymentService.CancelPayment(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "cancel payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
