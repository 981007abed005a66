package handlers

import (
	"net/http"

	"github.com/fatoumatandjim/SFB-sub000/internal/core/domain"
	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

type customsHandler struct {
	customsService portssvc.CustomsSvcFacade
}

func newCustomsHandler(cs portssvc.CustomsSvcFacade) *customsHandler {
	return &customsHandler{customsService: cs}
}

// declarationFee godoc
// @Summary Preview a customs declaration fee
// @Tags customs
// @Produce json
// @Param capacite query string true "Declared capacity in liters"
// @Param familleProduit query string true "GASOLINE or DIESEL"
// @Param axeId query string false "Axis ID"
// @Success 200 {object} dto.DeclarationFeeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/frais-douane [get]
func (h *customsHandler) declarationFee(c *gin.Context) {
	var params dto.DeclarationFeeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	capacity, err := parseDecimalParam("capacite", params.Capacity)
	if err != nil {
		respondBindError(c, err)
		return
	}
	family, err := domain.ParseProductFamily(params.ProductFamily)
	if err != nil {
		respondWithError(c, err, "compute declaration fee")
		return
	}

	fee, err := h.customsService.ComputeDeclarationFee(c.Request.Context(), capacity, family, params.AxisID)
	if err != nil {
		respondWithError(c, err, "compute declaration fee")
		return
	}
	c.JSON(http.StatusOK, dto.DeclarationFeeResponse{Fee: fee})
}

// declare godoc
// @Summary Declare a trip at customs
// @Description Posts the declaration fee against the selected account (or the configured default) and marks the trip declared.
// @Tags customs
// @Produce json
// @Param id path string true "Trip ID"
// @Param compteId query string false "Bank account ID"
// @Param caisseId query string false "Cash register ID"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/declarer [put]
func (h *customsHandler) declare(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var selector dto.AccountSelectorRequest
	if err := c.ShouldBindQuery(&selector); err != nil {
		respondBindError(c, err)
		return
	}

	trip, err := h.customsService.Declare(c.Request.Context(), actor, c.Param("id"), selector.ToDomain())
	if err != nil {
		respondWithError(c, err, "declare trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// declareMany godoc
// @Summary Declare several trips
// @Description Best effort: each trip is declared on its own and reported separately.
// @Tags customs
// @Accept json
// @Produce json
// @Param body body dto.DeclareManyRequest true "Trips and account"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/declarer-multiple [put]
func (h *customsHandler) declareMany(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.DeclareManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	results := h.customsService.DeclareMany(c.Request.Context(), actor, req.TripIDs, req.AccountSelectorRequest.ToDomain())
	c.JSON(http.StatusOK, dto.ToBatchResponse(results, errorBody))
}

// release godoc
// @Summary Release a trip from customs
// @Tags customs
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/liberer [put]
func (h *customsHandler) release(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	trip, err := h.customsService.Release(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "release trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// releaseMany godoc
// @Summary Release several trips
// @Tags customs
// @Accept json
// @Produce json
// @Param body body dto.ReleaseManyRequest true "Trips"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/liberer-multiple [put]
func (h *customsHandler) releaseMany(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.ReleaseManyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	results := h.customsService.ReleaseMany(c.Request.Context(), actor, req.TripIDs)
	c.JSON(http.StatusOK, dto.ToBatchResponse(results, errorBody))
}

// markPassedUndeclared godoc
// @Summary Flag a trip that crossed customs undeclared
// @Tags customs
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/passer-non-declare [put]
func (h *customsHandler) markPassedUndeclared(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	trip, err := h.customsService.MarkPassedUndeclared(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondWithError(c, err, "mark trip passed undeclared")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}
