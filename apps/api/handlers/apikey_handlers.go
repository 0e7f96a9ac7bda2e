package handlers

import (
	"net/http"

	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyHandler handles API key operations
type APIKeyHandler struct {
	common        *CommonServices
	logger        *zap.Logger
	apiKeyService interfaces.APIKeyService
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(common *CommonServices, logger *zap.Logger) *APIKeyHandler {
	return &APIKeyHandler{
		common:        common,
		logger:        logger,
		apiKeyService: common.GetAPIKeyService(),
	}
}

// Use types from the centralized packages
type CreateAPIKeyRequest = requests.CreateAPIKeyRequest
type APIKeyResponse = responses.APIKeyResponse
type ListAPIKeysResponse = responses.ListAPIKeysResponse

// CreateAPIKey godoc
// @Summary Create a new API key
// @Description Creates a new API key with the specified name and access level. The full key is returned only once.
// @Tags api-keys
// @Accept json
// @Produce json
// @Param api_key body CreateAPIKeyRequest true "API key details"
// @Success 201 {object} APIKeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	var req CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// The response carries the full key; it is never retrievable again.
	apiKey, err := h.apiKeyService.CreateAPIKey(c.Request.Context(), accountID, req)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create API key", err)
		return
	}

	sendSuccess(c, http.StatusCreated, apiKey)
}

// GetAPIKeyByID godoc
// @Summary Get an API key
// @Description Retrieves a specific API key by its ID
// @Tags api-keys
// @Accept json
// @Produce json
// @Param api_key_id path string true "API Key ID"
// @Success 200 {object} APIKeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys/{api_key_id} [get]
func (h *APIKeyHandler) GetAPIKeyByID(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	keyID, err := parseUUIDParam(c, "api_key_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid UUID format", err)
		return
	}

	apiKey, err := h.apiKeyService.GetAPIKey(c.Request.Context(), accountID, keyID)
	if err != nil {
		handleDBError(c, err, "API key not found")
		return
	}

	sendSuccess(c, http.StatusOK, apiKey)
}

// ListAPIKeys godoc
// @Summary List API keys
// @Description Retrieves all API keys for the authenticated account
// @Tags api-keys
// @Accept json
// @Produce json
// @Success 200 {object} ListAPIKeysResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	apiKeys, err := h.apiKeyService.ListAPIKeys(c.Request.Context(), accountID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve API keys", err)
		return
	}

	sendSuccess(c, http.StatusOK, ListAPIKeysResponse{
		Object:  "list",
		Data:    apiKeys,
		HasMore: false,
		Total:   int64(len(apiKeys)),
	})
}

// DeleteAPIKey godoc
// @Summary Delete API key
// @Description Deletes an API key belonging to the authenticated account
// @Tags api-keys
// @Accept json
// @Produce json
// @Param api_key_id path string true "API Key ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api-keys/{api_key_id} [delete]
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid account ID", err)
		return
	}

	keyID, err := parseUUIDParam(c, "api_key_id")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid UUID format", err)
		return
	}

	if err := h.apiKeyService.DeleteAPIKey(c.Request.Context(), accountID, keyID); err != nil {
		handleDBError(c, err, "API key not found")
		return
	}

	sendSuccess(c, http.StatusNoContent, nil)
}
