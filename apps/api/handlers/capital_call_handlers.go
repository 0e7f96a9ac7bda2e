package handlers

import (
	"errors"
	"net/http"

	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// CapitalCallHandler handles capital call lifecycle operations
type CapitalCallHandler struct {
	common             *CommonServices
	capitalCallService interfaces.CapitalCallService
}

// NewCapitalCallHandler creates a new capital call handler
func NewCapitalCallHandler(common *CommonServices, capitalCallService interfaces.CapitalCallService) *CapitalCallHandler {
	return &CapitalCallHandler{
		common:             common,
		capitalCallService: capitalCallService,
	}
}

// issueCapitalCallResponse bundles the issued call with its allocations.
type issueCapitalCallResponse struct {
	CapitalCall responses.CapitalCallResponse             `json:"capital_call"`
	Allocations []responses.CapitalCallAllocationResponse `json:"allocations"`
}

// CreateCapitalCall godoc
// @Summary Draft a capital call
// @Description Creates a draft capital call against a fund
// @Tags capital-calls
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param capital_call body requests.CreateCapitalCallRequest true "Capital call details"
// @Success 201 {object} responses.CapitalCallResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id}/capital-calls [post]
func (h *CapitalCallHandler) CreateCapitalCall(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	var req requests.CreateCapitalCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	call, err := h.capitalCallService.CreateCapitalCall(c.Request.Context(), fundID, req)
	if err != nil {
		handleDBError(c, err, "Fund not found")
		return
	}

	sendSuccess(c, http.StatusCreated, toCapitalCallResponse(*call))
}

// ListCapitalCalls godoc
// @Summary List capital calls
// @Description Retrieves all capital calls of a fund in call order
// @Tags capital-calls
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id}/capital-calls [get]
func (h *CapitalCallHandler) ListCapitalCalls(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	calls, err := h.capitalCallService.ListCapitalCalls(c.Request.Context(), fundID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve capital calls", err)
		return
	}

	response := make([]responses.CapitalCallResponse, len(calls))
	for i, call := range calls {
		response[i] = toCapitalCallResponse(call)
	}

	sendList(c, response)
}

// GetCapitalCall godoc
// @Summary Get a capital call
// @Description Retrieves a capital call by ID
// @Tags capital-calls
// @Accept json
// @Produce json
// @Param call_id path string true "Capital Call ID"
// @Success 200 {object} responses.CapitalCallResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /capital-calls/{call_id} [get]
func (h *CapitalCallHandler) GetCapitalCall(c *gin.Context) {
	callID, err := parseUUIDParam(c, "call_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid capital call ID format", err)
		return
	}

	call, err := h.capitalCallService.GetCapitalCall(c.Request.Context(), callID)
	if err != nil {
		handleDBError(c, err, "Capital call not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCapitalCallResponse(*call))
}

// ListAllocations godoc
// @Summary List capital call allocations
// @Description Retrieves the per-investor allocations of a capital call
// @Tags capital-calls
// @Accept json
// @Produce json
// @Param call_id path string true "Capital Call ID"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /capital-calls/{call_id}/allocations [get]
func (h *CapitalCallHandler) ListAllocations(c *gin.Context) {
	callID, err := parseUUIDParam(c, "call_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid capital call ID format", err)
		return
	}

	allocations, err := h.capitalCallService.ListAllocations(c.Request.Context(), callID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve allocations", err)
		return
	}

	response := make([]responses.CapitalCallAllocationResponse, len(allocations))
	for i, allocation := range allocations {
		response[i] = toCapitalCallAllocationResponse(allocation)
	}

	sendList(c, response)
}

// IssueCapitalCall godoc
// @Summary Issue a capital call
// @Description Issues a draft capital call, allocating the total pro-rata across active commitments
// @Tags capital-calls
// @Accept json
// @Produce json
// @Param call_id path string true "Capital Call ID"
// @Success 200 {object} issueCapitalCallResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /capital-calls/{call_id}/issue [post]
func (h *CapitalCallHandler) IssueCapitalCall(c *gin.Context) {
	callID, err := parseUUIDParam(c, "call_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid capital call ID format", err)
		return
	}

	call, allocations, err := h.capitalCallService.IssueCapitalCall(c.Request.Context(), callID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCapitalCallNotDraft):
			sendError(c, http.StatusConflict, "Capital call has already been issued", err)
		case errors.Is(err, services.ErrNoActiveCommitments):
			sendError(c, http.StatusUnprocessableEntity, "Fund has no active commitments to allocate against", err)
		default:
			handleDBError(c, err, "Capital call not found")
		}
		return
	}

	allocationResponses := make([]responses.CapitalCallAllocationResponse, len(allocations))
	for i, allocation := range allocations {
		allocationResponses[i] = toCapitalCallAllocationResponse(allocation)
	}

	sendSuccess(c, http.StatusOK, issueCapitalCallResponse{
		CapitalCall: toCapitalCallResponse(*call),
		Allocations: allocationResponses,
	})
}

// ConfirmWire godoc
// @Summary Confirm a received wire
// @Description Marks an investor's capital call allocation as paid and updates the commitment
// @Tags capital-calls
// @Accept json
// @Produce json
// @Param call_id path string true "Capital Call ID"
// @Param wire body requests.ConfirmWireRequest true "Wire confirmation details"
// @Success 200 {object} responses.CapitalCallAllocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /capital-calls/{call_id}/confirm-wire [post]
func (h *CapitalCallHandler) ConfirmWire(c *gin.Context) {
	callID, err := parseUUIDParam(c, "call_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid capital call ID format", err)
		return
	}

	var req requests.ConfirmWireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	allocation, err := h.capitalCallService.ConfirmWire(c.Request.Context(), callID, req)
	if err != nil {
		if errors.Is(err, services.ErrAllocationNotPending) {
			sendError(c, http.StatusConflict, "Allocation has already been settled", err)
			return
		}
		handleDBError(c, err, "Allocation not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCapitalCallAllocationResponse(*allocation))
}

// RescindCapitalCall godoc
// @Summary Rescind a capital call
// @Description Rescinds a capital call that has not yet settled
// @Tags capital-calls
// @Accept json
// @Produce json
// @Param call_id path string true "Capital Call ID"
// @Success 200 {object} responses.CapitalCallResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /capital-calls/{call_id}/rescind [post]
func (h *CapitalCallHandler) RescindCapitalCall(c *gin.Context) {
	callID, err := parseUUIDParam(c, "call_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid capital call ID format", err)
		return
	}

	call, err := h.capitalCallService.RescindCapitalCall(c.Request.Context(), callID)
	if err != nil {
		if errors.Is(err, services.ErrCapitalCallSettled) {
			sendError(c, http.StatusConflict, "A settled capital call cannot be rescinded", err)
			return
		}
		handleDBError(c, err, "Capital call not found")
		return
	}

	sendSuccess(c, http.StatusOK, toCapitalCallResponse(*call))
}

// ProcessOverdueAllocations godoc
// @Summary Process overdue allocations
// @Description Scans for issued allocations past their due date and publishes overdue notices
// @Tags capital-calls
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/capital-calls/process-overdue [post]
func (h *CapitalCallHandler) ProcessOverdueAllocations(c *gin.Context) {
	count, err := h.capitalCallService.ProcessOverdueAllocations(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to process overdue allocations", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{"processed": count})
}
