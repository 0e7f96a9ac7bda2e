package responses

// DistributionResponse represents the standardized API response for distribution operations
type DistributionResponse struct {
	ID                 string `json:"id"`
	Object             string `json:"object"`
	FundID             string `json:"fund_id"`
	DistributionNumber int32  `json:"distribution_number"`
	TotalAmountCents   int64  `json:"total_amount_cents"`
	PaymentDate        string `json:"payment_date,omitempty"`
	Source             string `json:"source,omitempty"`
	Classification     string `json:"classification"`
	Recallable         bool   `json:"recallable"`
	Status             string `json:"status"`
	CreatedAt          int64  `json:"created_at"`
	UpdatedAt          int64  `json:"updated_at"`
}

// DistributionAllocationResponse represents a single investor's share of a distribution
type DistributionAllocationResponse struct {
	ID               string `json:"id"`
	Object           string `json:"object"`
	DistributionID   string `json:"distribution_id"`
	InvestorID       string `json:"investor_id"`
	AmountCents      int64  `json:"amount_cents"`
	WithholdingCents int64  `json:"withholding_cents"`
	Status           string `json:"status"`
	PaidAt           *int64 `json:"paid_at,omitempty"`
	CreatedAt        int64  `json:"created_at"`
}
