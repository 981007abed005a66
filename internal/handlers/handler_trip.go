package handlers

import (
	"net/http"

	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests about the trip lifecycle.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{tripService: ts}
}

// createTrip godoc
// @Summary Create a trip
// @Description Registers a new trip in LOADING. The caller becomes the responsible party unless responsableId is given.
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, err, "create trip")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List trips
// @Description Lists trips newest first using token-based pagination.
// @Tags trips
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Param statut query string false "Status filter"
// @Param responsableId query string false "Responsible party filter"
// @Success 200 {object} dto.ListTripsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	var params dto.ListTripsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.tripService.ListTrips(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "list trips")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTrip godoc
// @Summary Get a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	trip, err := h.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "get trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// deleteTrip godoc
// @Summary Delete a trip
// @Description Deletes a trip no ledger transaction references and whose allocations carry no price or shortfall.
// @Tags trips
// @Param id path string true "Trip ID"
// @Success 204
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	if err := h.tripService.DeleteTrip(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondWithError(c, err, "delete trip")
		return
	}
	c.Status(http.StatusNoContent)
}

// advanceTrip godoc
// @Summary Advance a trip
// @Description Moves the trip to its next state. ALLOCATED takes clients, discharge states take manquants.
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body dto.AdvanceTripRequest true "Target state and payload"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/status [put]
func (h *tripHandler) advanceTrip(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var body dto.AdvanceTripRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	req, err := body.ToDomain()
	if err != nil {
		respondWithError(c, err, "advance trip")
		return
	}

	trip, err := h.tripService.AdvanceTrip(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "advance trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// recordDeliveries godoc
// @Summary Record a delivery round
// @Description Marks further allocations delivered while the trip is PARTIALLY_DISCHARGED. The status does not change.
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body dto.RecordDeliveriesRequest true "Delivered allocations and their shortfalls"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/livraisons [put]
func (h *tripHandler) recordDeliveries(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var body dto.RecordDeliveriesRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBindError(c, err)
		return
	}
	shortfalls, err := body.ToDomain()
	if err != nil {
		respondWithError(c, err, "record deliveries")
		return
	}

	trip, err := h.tripService.RecordDeliveries(c.Request.Context(), actor, c.Param("id"), shortfalls)
	if err != nil {
		respondWithError(c, err, "record deliveries")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// assignCustomsAgent godoc
// @Summary Assign a customs agent
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body dto.AssignCustomsAgentRequest true "Customs agent"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/transitaire [put]
func (h *tripHandler) assignCustomsAgent(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.AssignCustomsAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	trip, err := h.tripService.AssignCustomsAgent(c.Request.Context(), actor, c.Param("id"), req.CustomsAgentID)
	if err != nil {
		respondWithError(c, err, "assign customs agent")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}
