package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles templated notification operations
type NotificationHandler struct {
	common              *CommonServices
	notificationService interfaces.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(common *CommonServices, notificationService interfaces.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		common:              common,
		notificationService: notificationService,
	}
}

// SendNotification godoc
// @Summary Send a notification
// @Description Renders a registered template with the supplied data and delivers it
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body requests.SendNotificationRequest true "Notification details"
// @Success 200 {object} responses.NotificationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/send [post]
func (h *NotificationHandler) SendNotification(c *gin.Context) {
	var req requests.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	investorID := uuid.Nil
	if req.InvestorID != "" {
		parsed, err := uuid.Parse(req.InvestorID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid investor ID format", err)
			return
		}
		investorID = parsed
	}

	notification, err := h.notificationService.SendJSON(c.Request.Context(), email.Kind(req.Kind), req.Recipient, investorID, req.Data)
	if err != nil {
		switch {
		case errors.Is(err, email.ErrUnknownKind):
			sendError(c, http.StatusBadRequest, "Unknown notification kind", err)
		case errors.Is(err, email.ErrInvalidData):
			sendError(c, http.StatusBadRequest, "Template data does not match the notification kind", err)
		case notification != nil:
			// Delivery failed but the attempt was recorded.
			sendError(c, http.StatusBadGateway, "Notification delivery failed", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to send notification", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, toNotificationResponse(*notification))
}

// PreviewNotification godoc
// @Summary Preview a notification
// @Description Renders a registered template with the supplied data without sending it
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body requests.PreviewNotificationRequest true "Preview details"
// @Success 200 {object} responses.NotificationPreviewResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications/preview [post]
func (h *NotificationHandler) PreviewNotification(c *gin.Context) {
	var req requests.PreviewNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	subject, html, err := h.notificationService.Preview(email.Kind(req.Kind), req.Data)
	if err != nil {
		switch {
		case errors.Is(err, email.ErrUnknownKind):
			sendError(c, http.StatusBadRequest, "Unknown notification kind", err)
		case errors.Is(err, email.ErrInvalidData):
			sendError(c, http.StatusBadRequest, "Template data does not match the notification kind", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to render preview", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, responses.NotificationPreviewResponse{
		Object:  "notification_preview",
		Kind:    req.Kind,
		Subject: subject,
		HTML:    html,
	})
}

// ListKinds godoc
// @Summary List notification kinds
// @Description Lists every registered notification template kind
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {object} responses.NotificationKindsResponse
// @Security ApiKeyAuth
// @Router /notifications/kinds [get]
func (h *NotificationHandler) ListKinds(c *gin.Context) {
	kinds := email.Kinds()
	data := make([]string, len(kinds))
	for i, kind := range kinds {
		data[i] = string(kind)
	}

	sendSuccess(c, http.StatusOK, responses.NotificationKindsResponse{
		Object: "list",
		Data:   data,
	})
}

// ListNotifications godoc
// @Summary List notifications
// @Description Retrieves recent notifications, optionally filtered by investor
// @Tags notifications
// @Accept json
// @Produce json
// @Param investor_id query string false "Filter by investor ID"
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	var notifications []db.Notification
	if investorIDStr := c.Query("investor_id"); investorIDStr != "" {
		investorID, parseErr := uuid.Parse(investorIDStr)
		if parseErr != nil {
			sendError(c, http.StatusBadRequest, "Invalid investor ID format", parseErr)
			return
		}
		notifications, err = h.notificationService.ListForInvestor(c.Request.Context(), investorID, pagination.Limit, pagination.Offset)
	} else {
		notifications, err = h.notificationService.ListRecent(c.Request.Context(), pagination.Limit, pagination.Offset)
	}
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve notifications", err)
		return
	}

	response := make([]responses.NotificationResponse, len(notifications))
	for i, notification := range notifications {
		response[i] = toNotificationResponse(notification)
	}

	sendList(c, response)
}
