package requests

// CreateDistributionRequest represents the request body for declaring a distribution.
// WithholdingBps is a tax withholding rate in basis points applied to every
// investor's gross allocation.
type CreateDistributionRequest struct {
	TotalAmountCents int64  `json:"total_amount_cents" binding:"required,gt=0"`
	PaymentDate      string `json:"payment_date" binding:"required,datetime=2006-01-02"`
	Source           string `json:"source,omitempty"`
	Classification   string `json:"classification" binding:"required,oneof=return_of_capital capital_gain income"`
	Recallable       bool   `json:"recallable,omitempty"`
	WithholdingBps   int32  `json:"withholding_bps,omitempty" binding:"omitempty,gte=0,lte=10000"`
}

// MarkDistributionPaidRequest represents the request body for marking an allocation paid
type MarkDistributionPaidRequest struct {
	AllocationID string `json:"allocation_id" binding:"required,uuid"`
}
