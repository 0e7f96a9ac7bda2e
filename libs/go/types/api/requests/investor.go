package requests

// CreateInvestorRequest represents the request body for registering an investor
type CreateInvestorRequest struct {
	Email      string `json:"email" binding:"required,email"`
	LegalName  string `json:"legal_name" binding:"required"`
	EntityType string `json:"entity_type" binding:"required,oneof=individual entity trust retirement_plan"`
}

// UpdateInvestorRequest represents the request body for updating an investor
type UpdateInvestorRequest struct {
	Email      string `json:"email,omitempty" binding:"omitempty,email"`
	LegalName  string `json:"legal_name,omitempty"`
	EntityType string `json:"entity_type,omitempty" binding:"omitempty,oneof=individual entity trust retirement_plan"`
}

// UpdateKYCStatusRequest represents the request body for updating KYC status
type UpdateKYCStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected expired"`
	Reason string `json:"reason,omitempty"`
}

// UpdateAccreditationStatusRequest represents the request body for updating accreditation status
type UpdateAccreditationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved expired"`
}
