package requests

// CreateFundRequest represents the request body for creating a fund
type CreateFundRequest struct {
	Name        string `json:"name" binding:"required"`
	ManagerName string `json:"manager_name" binding:"required"`
	Currency    string `json:"currency,omitempty" binding:"omitempty,len=3"`
	VintageYear int32  `json:"vintage_year,omitempty" binding:"omitempty,min=1980,max=2100"`
}

// UpdateFundStatusRequest represents the request body for moving a fund through its lifecycle
type UpdateFundStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=fundraising investing harvesting winding_down closed"`
}

// CreateCommitmentRequest represents the request body for recording an investor commitment
type CreateCommitmentRequest struct {
	InvestorID     string `json:"investor_id" binding:"required,uuid"`
	CommittedCents int64  `json:"committed_cents" binding:"required,gt=0"`
}
