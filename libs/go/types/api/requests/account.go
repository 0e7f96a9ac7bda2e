package requests

// CreateAccountRequest represents the request body for creating a fund manager account
type CreateAccountRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
}
