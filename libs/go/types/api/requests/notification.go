package requests

import "encoding/json"

// SendNotificationRequest represents the request body for sending a templated notification
type SendNotificationRequest struct {
	Kind       string          `json:"kind" binding:"required"`
	Recipient  string          `json:"recipient" binding:"required,email"`
	InvestorID string          `json:"investor_id,omitempty" binding:"omitempty,uuid"`
	Data       json.RawMessage `json:"data" binding:"required"`
}

// PreviewNotificationRequest represents the request body for previewing a rendered template
type PreviewNotificationRequest struct {
	Kind string          `json:"kind" binding:"required"`
	Data json.RawMessage `json:"data" binding:"required"`
}
