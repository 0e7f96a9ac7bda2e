package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// User roles
	AdminRole    = "admin"
	ManagerRole  = "manager"
	InvestorRole = "investor"

	// Status values
	PendingStatus = "pending"
	PaidStatus    = "paid"
	FailedStatus  = "failed"
	SentStatus    = "sent"

	// Currencies
	USDCurrency = "USD"
)
