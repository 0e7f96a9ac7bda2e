package constants

// Fund statuses
const (
	FundStatusFundraising = "fundraising"
	FundStatusInvesting   = "investing"
	FundStatusHarvesting  = "harvesting"
	FundStatusWindingDown = "winding_down"
	FundStatusClosed      = "closed"
)

// Capital call statuses
const (
	CapitalCallStatusDraft     = "draft"
	CapitalCallStatusIssued    = "issued"
	CapitalCallStatusSettled   = "settled"
	CapitalCallStatusRescinded = "rescinded"
)

// Distribution classifications
const (
	DistributionReturnOfCapital = "return_of_capital"
	DistributionCapitalGain     = "capital_gain"
	DistributionIncome          = "income"
)

// KYC statuses
const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
	KYCStatusExpired  = "expired"
)
