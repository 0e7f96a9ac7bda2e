package responses

// InvestorResponse represents the standardized API response for investor operations
type InvestorResponse struct {
	ID                  string `json:"id"`
	Object              string `json:"object"`
	Email               string `json:"email"`
	LegalName           string `json:"legal_name"`
	EntityType          string `json:"entity_type"`
	KycStatus           string `json:"kyc_status"`
	AccreditationStatus string `json:"accreditation_status"`
	PortalActivatedAt   *int64 `json:"portal_activated_at,omitempty"`
	CreatedAt           int64  `json:"created_at"`
	UpdatedAt           int64  `json:"updated_at"`
}
