package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// DistributionHandler handles distribution lifecycle operations
type DistributionHandler struct {
	common              *CommonServices
	distributionService interfaces.DistributionService
}

// NewDistributionHandler creates a new distribution handler
func NewDistributionHandler(common *CommonServices, distributionService interfaces.DistributionService) *DistributionHandler {
	return &DistributionHandler{
		common:              common,
		distributionService: distributionService,
	}
}

// createDistributionResponse bundles the declared distribution with its allocations.
type createDistributionResponse struct {
	Distribution responses.DistributionResponse             `json:"distribution"`
	Allocations  []responses.DistributionAllocationResponse `json:"allocations"`
}

// CreateDistribution godoc
// @Summary Declare a distribution
// @Description Declares a distribution and allocates it pro-rata across active commitments
// @Tags distributions
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param distribution body requests.CreateDistributionRequest true "Distribution details"
// @Success 201 {object} createDistributionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id}/distributions [post]
func (h *DistributionHandler) CreateDistribution(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	var req requests.CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	distribution, allocations, err := h.distributionService.CreateDistribution(c.Request.Context(), fundID, req)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveCommitments) {
			sendError(c, http.StatusUnprocessableEntity, "Fund has no active commitments to allocate against", err)
			return
		}
		handleDBError(c, err, "Fund not found")
		return
	}

	allocationResponses := make([]responses.DistributionAllocationResponse, len(allocations))
	for i, allocation := range allocations {
		allocationResponses[i] = toDistributionAllocationResponse(allocation)
	}

	sendSuccess(c, http.StatusCreated, createDistributionResponse{
		Distribution: toDistributionResponse(*distribution),
		Allocations:  allocationResponses,
	})
}

// ListDistributions godoc
// @Summary List distributions
// @Description Retrieves all distributions of a fund in declaration order
// @Tags distributions
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id}/distributions [get]
func (h *DistributionHandler) ListDistributions(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	distributions, err := h.distributionService.ListDistributions(c.Request.Context(), fundID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve distributions", err)
		return
	}

	response := make([]responses.DistributionResponse, len(distributions))
	for i, distribution := range distributions {
		response[i] = toDistributionResponse(distribution)
	}

	sendList(c, response)
}

// GetDistribution godoc
// @Summary Get a distribution
// @Description Retrieves a distribution by ID
// @Tags distributions
// @Accept json
// @Produce json
// @Param distribution_id path string true "Distribution ID"
// @Success 200 {object} responses.DistributionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /distributions/{distribution_id} [get]
func (h *DistributionHandler) GetDistribution(c *gin.Context) {
	distributionID, err := parseUUIDParam(c, "distribution_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid distribution ID format", err)
		return
	}

	distribution, err := h.distributionService.GetDistribution(c.Request.Context(), distributionID)
	if err != nil {
		handleDBError(c, err, "Distribution not found")
		return
	}

	sendSuccess(c, http.StatusOK, toDistributionResponse(*distribution))
}

// ListAllocations godoc
// @Summary List distribution allocations
// @Description Retrieves the per-investor allocations of a distribution
// @Tags distributions
// @Accept json
// @Produce json
// @Param distribution_id path string true "Distribution ID"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /distributions/{distribution_id}/allocations [get]
func (h *DistributionHandler) ListAllocations(c *gin.Context) {
	distributionID, err := parseUUIDParam(c, "distribution_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid distribution ID format", err)
		return
	}

	allocations, err := h.distributionService.ListAllocations(c.Request.Context(), distributionID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve allocations", err)
		return
	}

	response := make([]responses.DistributionAllocationResponse, len(allocations))
	for i, allocation := range allocations {
		response[i] = toDistributionAllocationResponse(allocation)
	}

	sendList(c, response)
}

// MarkAllocationPaid godoc
// @Summary Mark an allocation paid
// @Description Marks a distribution allocation as paid out to the investor
// @Tags distributions
// @Accept json
// @Produce json
// @Param distribution_id path string true "Distribution ID"
// @Param allocation body requests.MarkDistributionPaidRequest true "Allocation to mark paid"
// @Success 200 {object} responses.DistributionAllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /distributions/{distribution_id}/mark-paid [post]
func (h *DistributionHandler) MarkAllocationPaid(c *gin.Context) {
	var req requests.MarkDistributionPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	allocationID, err := uuid.Parse(req.AllocationID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid allocation ID format", err)
		return
	}

	allocation, err := h.distributionService.MarkAllocationPaid(c.Request.Context(), allocationID)
	if err != nil {
		handleDBError(c, err, "Allocation not found")
		return
	}

	sendSuccess(c, http.StatusOK, toDistributionAllocationResponse(*allocation))
}
