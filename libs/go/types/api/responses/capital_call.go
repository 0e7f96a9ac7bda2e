package responses

// WireInstructionsResponse carries the wire details attached to a capital call
type WireInstructionsResponse struct {
	BankName      string `json:"bank_name,omitempty"`
	BankAddress   string `json:"bank_address,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	RoutingNumber string `json:"routing_number,omitempty"`
	SwiftCode     string `json:"swift_code,omitempty"`
}

// CapitalCallResponse represents the standardized API response for capital call operations
type CapitalCallResponse struct {
	ID               string                    `json:"id"`
	Object           string                    `json:"object"`
	FundID           string                    `json:"fund_id"`
	CallNumber       int32                     `json:"call_number"`
	TotalAmountCents int64                     `json:"total_amount_cents"`
	DueDate          string                    `json:"due_date,omitempty"`
	Purpose          string                    `json:"purpose,omitempty"`
	Status           string                    `json:"status"`
	WireInstructions *WireInstructionsResponse `json:"wire_instructions,omitempty"`
	IssuedAt         *int64                    `json:"issued_at,omitempty"`
	CreatedAt        int64                     `json:"created_at"`
	UpdatedAt        int64                     `json:"updated_at"`
}

// CapitalCallAllocationResponse represents a single investor's share of a capital call
type CapitalCallAllocationResponse struct {
	ID             string `json:"id"`
	Object         string `json:"object"`
	CapitalCallID  string `json:"capital_call_id"`
	InvestorID     string `json:"investor_id"`
	AmountCents    int64  `json:"amount_cents"`
	Status         string `json:"status"`
	WireReference  string `json:"wire_reference,omitempty"`
	WireReceivedAt *int64 `json:"wire_received_at,omitempty"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}
