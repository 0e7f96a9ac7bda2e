package handlers

import (
	"errors"
	"net/http"

	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// InvestorHandler handles investor lifecycle operations
type InvestorHandler struct {
	common          *CommonServices
	investorService interfaces.InvestorService
}

// NewInvestorHandler creates a new investor handler
func NewInvestorHandler(common *CommonServices, investorService interfaces.InvestorService) *InvestorHandler {
	return &InvestorHandler{
		common:          common,
		investorService: investorService,
	}
}

// RegisterInvestor godoc
// @Summary Register an investor
// @Description Registers a new investor under the authenticated account
// @Tags investors
// @Accept json
// @Produce json
// @Param investor body requests.CreateInvestorRequest true "Investor details"
// @Success 201 {object} responses.InvestorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors [post]
func (h *InvestorHandler) RegisterInvestor(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	var req requests.CreateInvestorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	investor, err := h.investorService.RegisterInvestor(c.Request.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, services.ErrInvestorEmailTaken) {
			sendError(c, http.StatusConflict, "An investor with this email already exists", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to register investor", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toInvestorResponse(*investor))
}

// GetInvestor godoc
// @Summary Get an investor
// @Description Retrieves an investor by ID
// @Tags investors
// @Accept json
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Success 200 {object} responses.InvestorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors/{investor_id} [get]
func (h *InvestorHandler) GetInvestor(c *gin.Context) {
	investorID, err := parseUUIDParam(c, "investor_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid investor ID format", err)
		return
	}

	investor, err := h.investorService.GetInvestor(c.Request.Context(), investorID)
	if err != nil {
		handleDBError(c, err, "Investor not found")
		return
	}

	sendSuccess(c, http.StatusOK, toInvestorResponse(*investor))
}

// ListInvestors godoc
// @Summary List investors
// @Description Retrieves the investors of the authenticated account with pagination
// @Tags investors
// @Accept json
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors [get]
func (h *InvestorHandler) ListInvestors(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	investors, total, err := h.investorService.ListInvestors(c.Request.Context(), accountID, pagination.Limit, pagination.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve investors", err)
		return
	}

	response := make([]responses.InvestorResponse, len(investors))
	for i, investor := range investors {
		response[i] = toInvestorResponse(investor)
	}

	sendPaginatedSuccess(c, http.StatusOK, response, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateInvestor godoc
// @Summary Update an investor
// @Description Updates an investor's contact and entity details
// @Tags investors
// @Accept json
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Param investor body requests.UpdateInvestorRequest true "Fields to update"
// @Success 200 {object} responses.InvestorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors/{investor_id} [put]
func (h *InvestorHandler) UpdateInvestor(c *gin.Context) {
	investorID, err := parseUUIDParam(c, "investor_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid investor ID format", err)
		return
	}

	var req requests.UpdateInvestorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	investor, err := h.investorService.UpdateInvestor(c.Request.Context(), investorID, req)
	if err != nil {
		handleDBError(c, err, "Investor not found")
		return
	}

	sendSuccess(c, http.StatusOK, toInvestorResponse(*investor))
}

// UpdateKYCStatus godoc
// @Summary Update KYC status
// @Description Moves an investor through the KYC review lifecycle
// @Tags investors
// @Accept json
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Param status body requests.UpdateKYCStatusRequest true "New KYC status"
// @Success 200 {object} responses.InvestorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors/{investor_id}/kyc-status [patch]
func (h *InvestorHandler) UpdateKYCStatus(c *gin.Context) {
	investorID, err := parseUUIDParam(c, "investor_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid investor ID format", err)
		return
	}

	var req requests.UpdateKYCStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	investor, err := h.investorService.UpdateKYCStatus(c.Request.Context(), investorID, req)
	if err != nil {
		handleDBError(c, err, "Investor not found")
		return
	}

	sendSuccess(c, http.StatusOK, toInvestorResponse(*investor))
}

// UpdateAccreditationStatus godoc
// @Summary Update accreditation status
// @Description Moves an investor through the accreditation lifecycle
// @Tags investors
// @Accept json
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Param status body requests.UpdateAccreditationStatusRequest true "New accreditation status"
// @Success 200 {object} responses.InvestorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors/{investor_id}/accreditation-status [patch]
func (h *InvestorHandler) UpdateAccreditationStatus(c *gin.Context) {
	investorID, err := parseUUIDParam(c, "investor_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid investor ID format", err)
		return
	}

	var req requests.UpdateAccreditationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	investor, err := h.investorService.UpdateAccreditationStatus(c.Request.Context(), investorID, req)
	if err != nil {
		handleDBError(c, err, "Investor not found")
		return
	}

	sendSuccess(c, http.StatusOK, toInvestorResponse(*investor))
}

// DeleteInvestor godoc
// @Summary Delete an investor
// @Description Removes an investor from the authenticated account
// @Tags investors
// @Accept json
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors/{investor_id} [delete]
func (h *InvestorHandler) DeleteInvestor(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	investorID, err := parseUUIDParam(c, "investor_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid investor ID format", err)
		return
	}

	if err := h.investorService.DeleteInvestor(c.Request.Context(), accountID, investorID); err != nil {
		handleDBError(c, err, "Investor not found")
		return
	}

	sendSuccess(c, http.StatusNoContent, nil)
}
