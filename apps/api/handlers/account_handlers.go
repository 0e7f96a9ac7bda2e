package handlers

import (
	"net/http"

	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles fund manager account operations
type AccountHandler struct {
	common         *CommonServices
	accountService interfaces.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(common *CommonServices, accountService interfaces.AccountService) *AccountHandler {
	return &AccountHandler{
		common:         common,
		accountService: accountService,
	}
}

// CreateAccount godoc
// @Summary Create an account
// @Description Creates a new fund manager account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body requests.CreateAccountRequest true "Account details"
// @Success 201 {object} responses.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req requests.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req.Name, req.ContactEmail)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create account", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toAccountResponse(*account))
}

// GetAccount godoc
// @Summary Get an account
// @Description Retrieves a fund manager account by its ID
// @Tags accounts
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} responses.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /accounts/{account_id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, err := parseUUIDParam(c, "account_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID format", err)
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		handleDBError(c, err, "Account not found")
		return
	}

	sendSuccess(c, http.StatusOK, toAccountResponse(*account))
}

// ListAccounts godoc
// @Summary List accounts
// @Description Retrieves all fund manager accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Success 200 {object} PaginatedResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve accounts", err)
		return
	}

	response := make([]responses.AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = toAccountResponse(account)
	}

	sendList(c, response)
}
