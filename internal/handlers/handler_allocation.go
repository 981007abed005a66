package handlers

import (
	"net/http"

	portssvc "github.com/fatoumatandjim/SFB-sub000/internal/core/ports/services"
	"github.com/fatoumatandjim/SFB-sub000/internal/dto"
	"github.com/gin-gonic/gin"
)

type allocationHandler struct {
	allocationService portssvc.AllocationSvcFacade
}

func newAllocationHandler(as portssvc.AllocationSvcFacade) *allocationHandler {
	return &allocationHandler{allocationService: as}
}

// assignClient godoc
// @Summary Assign cargo to a client
// @Description Creates or replaces the allocation of a client on the trip, within the trip quantity.
// @Tags allocations
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param body body dto.AssignClientRequest true "Client and quantity"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/clients [post]
func (h *allocationHandler) assignClient(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.AssignClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	allocation, err := h.allocationService.AssignClient(c.Request.Context(), actor, c.Param("id"), req.ClientID, req.Quantity)
	if err != nil {
		respondWithError(c, err, "assign client")
		return
	}
	c.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

// listAllocations godoc
// @Summary List the allocations of a trip
// @Tags allocations
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {array} dto.AllocationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/clients [get]
func (h *allocationHandler) listAllocations(c *gin.Context) {
	allocations, err := h.allocationService.ListAllocations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "list allocations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAllocationResponse(allocations))
}

// setPurchasePrice godoc
// @Summary Set the purchase price of an allocation
// @Tags allocations
// @Produce json
// @Param id path string true "Trip ID"
// @Param allocationId query string true "Allocation ID"
// @Param prixAchat query string true "Unit purchase price"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/prix-achat [put]
func (h *allocationHandler) setPurchasePrice(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.SetPriceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	price, err := parseDecimalParam("prixAchat", params.PurchasePrice)
	if err != nil {
		respondBindError(c, err)
		return
	}

	allocation, err := h.allocationService.SetPurchasePrice(c.Request.Context(), actor, c.Param("id"), params.AllocationID, price)
	if err != nil {
		respondWithError(c, err, "set purchase price")
		return
	}
	c.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

// setSalePrice godoc
// @Summary Set the sale price of an allocation
// @Tags allocations
// @Produce json
// @Param id path string true "Trip ID"
// @Param allocationId query string true "Allocation ID"
// @Param prixVente query string true "Unit sale price"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/prix-vente [put]
func (h *allocationHandler) setSalePrice(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.SetPriceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	price, err := parseDecimalParam("prixVente", params.SalePrice)
	if err != nil {
		respondBindError(c, err)
		return
	}

	allocation, err := h.allocationService.SetSalePrice(c.Request.Context(), actor, c.Param("id"), params.AllocationID, price)
	if err != nil {
		respondWithError(c, err, "set sale price")
		return
	}
	c.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

// reassign godoc
// @Summary Change the client and quantity of an allocation
// @Tags allocations
// @Produce json
// @Param id path string true "Trip ID"
// @Param allocationId query string true "Allocation ID"
// @Param clientId query string true "New client"
// @Param quantite query string true "New quantity"
// @Success 200 {object} dto.AllocationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/client-voyage/quantite [put]
func (h *allocationHandler) reassign(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var params dto.ReassignParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	quantity, err := parseDecimalParam("quantite", params.Quantity)
	if err != nil {
		respondBindError(c, err)
		return
	}

	allocation, err := h.allocationService.ReassignClientAndQuantity(c.Request.Context(), actor, c.Param("id"), params.AllocationID, params.ClientID, quantity)
	if err != nil {
		respondWithError(c, err, "reassign allocation")
		return
	}
	c.JSON(http.StatusOK, dto.ToAllocationResponse(allocation))
}

// computeMargin godoc
// @Summary Compute the margin of a trip
// @Tags allocations
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} dto.MarginResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /trips/{id}/marge [get]
func (h *allocationHandler) computeMargin(c *gin.Context) {
	report, err := h.allocationService.ComputeMargin(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "compute margin")
		return
	}
	c.JSON(http.StatusOK, dto.ToMarginResponse(report))
}
