package responses

// FundResponse represents the standardized API response for fund operations
type FundResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	ManagerName string `json:"manager_name"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	VintageYear *int32 `json:"vintage_year,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// CommitmentResponse represents the standardized API response for commitment operations
type CommitmentResponse struct {
	ID               string `json:"id"`
	Object           string `json:"object"`
	FundID           string `json:"fund_id"`
	InvestorID       string `json:"investor_id"`
	CommittedCents   int64  `json:"committed_cents"`
	ContributedCents int64  `json:"contributed_cents"`
	DistributedCents int64  `json:"distributed_cents"`
	Status           string `json:"status"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
}
