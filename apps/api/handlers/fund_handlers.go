package handlers

import (
	"net/http"

	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// FundHandler handles fund and commitment operations
type FundHandler struct {
	common      *CommonServices
	fundService interfaces.FundService
}

// NewFundHandler creates a new fund handler
func NewFundHandler(common *CommonServices, fundService interfaces.FundService) *FundHandler {
	return &FundHandler{
		common:      common,
		fundService: fundService,
	}
}

// CreateFund godoc
// @Summary Create a fund
// @Description Creates a new fund under the authenticated account
// @Tags funds
// @Accept json
// @Produce json
// @Param fund body requests.CreateFundRequest true "Fund details"
// @Success 201 {object} responses.FundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds [post]
func (h *FundHandler) CreateFund(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	var req requests.CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fund, err := h.fundService.CreateFund(c.Request.Context(), accountID, req)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create fund", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toFundResponse(*fund))
}

// GetFund godoc
// @Summary Get a fund
// @Description Retrieves a fund by ID
// @Tags funds
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Success 200 {object} responses.FundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	fund, err := h.fundService.GetFund(c.Request.Context(), fundID)
	if err != nil {
		handleDBError(c, err, "Fund not found")
		return
	}

	sendSuccess(c, http.StatusOK, toFundResponse(*fund))
}

// ListFunds godoc
// @Summary List funds
// @Description Retrieves all funds of the authenticated account
// @Tags funds
// @Accept json
// @Produce json
// @Success 200 {object} PaginatedResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds [get]
func (h *FundHandler) ListFunds(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	funds, err := h.fundService.ListFunds(c.Request.Context(), accountID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve funds", err)
		return
	}

	response := make([]responses.FundResponse, len(funds))
	for i, fund := range funds {
		response[i] = toFundResponse(fund)
	}

	sendList(c, response)
}

// UpdateFundStatus godoc
// @Summary Update fund status
// @Description Moves a fund through its lifecycle
// @Tags funds
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param status body requests.UpdateFundStatusRequest true "New fund status"
// @Success 200 {object} responses.FundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id}/status [patch]
func (h *FundHandler) UpdateFundStatus(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	var req requests.UpdateFundStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	fund, err := h.fundService.UpdateFundStatus(c.Request.Context(), fundID, req.Status)
	if err != nil {
		handleDBError(c, err, "Fund not found")
		return
	}

	sendSuccess(c, http.StatusOK, toFundResponse(*fund))
}

// CreateCommitment godoc
// @Summary Record a commitment
// @Description Records an investor's capital commitment to a fund
// @Tags commitments
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Param commitment body requests.CreateCommitmentRequest true "Commitment details"
// @Success 201 {object} responses.CommitmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id}/commitments [post]
func (h *FundHandler) CreateCommitment(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	var req requests.CreateCommitmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	commitment, err := h.fundService.CreateCommitment(c.Request.Context(), fundID, req)
	if err != nil {
		handleDBError(c, err, "Fund or investor not found")
		return
	}

	sendSuccess(c, http.StatusCreated, toCommitmentResponse(*commitment))
}

// ListCommitments godoc
// @Summary List fund commitments
// @Description Retrieves all commitments recorded against a fund
// @Tags commitments
// @Accept json
// @Produce json
// @Param fund_id path string true "Fund ID"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /funds/{fund_id}/commitments [get]
func (h *FundHandler) ListCommitments(c *gin.Context) {
	fundID, err := parseUUIDParam(c, "fund_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid fund ID format", err)
		return
	}

	commitments, err := h.fundService.ListCommitments(c.Request.Context(), fundID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve commitments", err)
		return
	}

	response := make([]responses.CommitmentResponse, len(commitments))
	for i, commitment := range commitments {
		response[i] = toCommitmentResponse(commitment)
	}

	sendList(c, response)
}

// ListInvestorCommitments godoc
// @Summary List investor commitments
// @Description Retrieves all commitments an investor holds across funds
// @Tags commitments
// @Accept json
// @Produce json
// @Param investor_id path string true "Investor ID"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /investors/{investor_id}/commitments [get]
func (h *FundHandler) ListInvestorCommitments(c *gin.Context) {
	investorID, err := parseUUIDParam(c, "investor_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid investor ID format", err)
		return
	}

	commitments, err := h.fundService.ListCommitmentsByInvestor(c.Request.Context(), investorID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve commitments", err)
		return
	}

	response := make([]responses.CommitmentResponse, len(commitments))
	for i, commitment := range commitments {
		response[i] = toCommitmentResponse(commitment)
	}

	sendList(c, response)
}
