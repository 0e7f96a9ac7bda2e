package requests

// WireInstructionsRequest carries the wire details attached to a capital call
type WireInstructionsRequest struct {
	BankName      string `json:"bank_name" binding:"required"`
	BankAddress   string `json:"bank_address,omitempty"`
	AccountName   string `json:"account_name" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	RoutingNumber string `json:"routing_number,omitempty"`
	SwiftCode     string `json:"swift_code,omitempty"`
}

// CreateCapitalCallRequest represents the request body for drafting a capital call
type CreateCapitalCallRequest struct {
	TotalAmountCents int64                    `json:"total_amount_cents" binding:"required,gt=0"`
	DueDate          string                   `json:"due_date" binding:"required,datetime=2006-01-02"`
	Purpose          string                   `json:"purpose,omitempty"`
	WireInstructions *WireInstructionsRequest `json:"wire_instructions,omitempty"`
}

// ConfirmWireRequest represents the request body for confirming a received wire
type ConfirmWireRequest struct {
	InvestorID    string `json:"investor_id" binding:"required,uuid"`
	WireReference string `json:"wire_reference,omitempty"`
}
