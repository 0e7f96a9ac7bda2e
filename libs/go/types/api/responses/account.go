package responses

// AccountResponse represents the standardized API response for account operations
type AccountResponse struct {
	ID           string `json:"id"`
	Object       string `json:"object"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}
