package responses

// NotificationResponse represents the standardized API response for notification operations
type NotificationResponse struct {
	ID                string `json:"id"`
	Object            string `json:"object"`
	InvestorID        string `json:"investor_id,omitempty"`
	Kind              string `json:"kind"`
	Recipient         string `json:"recipient"`
	Subject           string `json:"subject"`
	ProviderMessageID string `json:"provider_message_id,omitempty"`
	Status            string `json:"status"`
	ErrorMessage      string `json:"error_message,omitempty"`
	CreatedAt         int64  `json:"created_at"`
}

// NotificationPreviewResponse represents a rendered template preview
type NotificationPreviewResponse struct {
	Object  string `json:"object"`
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NotificationKindsResponse lists every registered template kind
type NotificationKindsResponse struct {
	Object string   `json:"object"`
	Data   []string `json:"data"`
}
