package interfaces

import (
	"context"

	"github.com/google/uuid"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/types/api/params"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"
)

// EmailService handles email sending operations
type EmailService interface {
	SendTransactionalEmail(ctx context.Context, params params.TransactionalEmailParams) (messageID string, err error)
}

// NotificationService renders templated notifications, delivers them, and
// records the outcome.
type NotificationService interface {
	Send(ctx context.Context, kind email.Kind, recipient string, investorID uuid.UUID, data any) (*db.Notification, error)
	SendJSON(ctx context.Context, kind email.Kind, recipient string, investorID uuid.UUID, raw []byte) (*db.Notification, error)
	Preview(kind email.Kind, raw []byte) (subject, html string, err error)
	ListForInvestor(ctx context.Context, investorID uuid.UUID, limit, offset int32) ([]db.Notification, error)
	ListRecent(ctx context.Context, limit, offset int32) ([]db.Notification, error)
}

// AccountService handles fund manager account operations
type AccountService interface {
	CreateAccount(ctx context.Context, name, contactEmail string) (*db.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*db.Account, error)
	ListAccounts(ctx context.Context) ([]db.Account, error)
}

// APIKeyService handles API key lifecycle operations
type APIKeyService interface {
	CreateAPIKey(ctx context.Context, accountID uuid.UUID, req requests.CreateAPIKeyRequest) (*responses.APIKeyResponse, error)
	GetAPIKey(ctx context.Context, accountID, keyID uuid.UUID) (*responses.APIKeyResponse, error)
	ListAPIKeys(ctx context.Context, accountID uuid.UUID) ([]responses.APIKeyResponse, error)
	DeleteAPIKey(ctx context.Context, accountID, keyID uuid.UUID) error
	ValidateAPIKey(ctx context.Context, fullKey string) (*db.ApiKey, error)
}

// InvestorService handles investor lifecycle operations
type InvestorService interface {
	RegisterInvestor(ctx context.Context, accountID uuid.UUID, req requests.CreateInvestorRequest) (*db.Investor, error)
	GetInvestor(ctx context.Context, id uuid.UUID) (*db.Investor, error)
	ListInvestors(ctx context.Context, accountID uuid.UUID, limit, offset int32) ([]db.Investor, int64, error)
	UpdateInvestor(ctx context.Context, id uuid.UUID, req requests.UpdateInvestorRequest) (*db.Investor, error)
	UpdateKYCStatus(ctx context.Context, id uuid.UUID, req requests.UpdateKYCStatusRequest) (*db.Investor, error)
	UpdateAccreditationStatus(ctx context.Context, id uuid.UUID, req requests.UpdateAccreditationStatusRequest) (*db.Investor, error)
	DeleteInvestor(ctx context.Context, accountID, id uuid.UUID) error
}

// FundService handles fund and commitment operations
type FundService interface {
	CreateFund(ctx context.Context, accountID uuid.UUID, req requests.CreateFundRequest) (*db.Fund, error)
	GetFund(ctx context.Context, id uuid.UUID) (*db.Fund, error)
	ListFunds(ctx context.Context, accountID uuid.UUID) ([]db.Fund, error)
	UpdateFundStatus(ctx context.Context, id uuid.UUID, status string) (*db.Fund, error)
	CreateCommitment(ctx context.Context, fundID uuid.UUID, req requests.CreateCommitmentRequest) (*db.Commitment, error)
	ListCommitments(ctx context.Context, fundID uuid.UUID) ([]db.Commitment, error)
	ListCommitmentsByInvestor(ctx context.Context, investorID uuid.UUID) ([]db.Commitment, error)
}

// CapitalCallService handles capital call lifecycle operations
type CapitalCallService interface {
	CreateCapitalCall(ctx context.Context, fundID uuid.UUID, req requests.CreateCapitalCallRequest) (*db.CapitalCall, error)
	GetCapitalCall(ctx context.Context, id uuid.UUID) (*db.CapitalCall, error)
	ListCapitalCalls(ctx context.Context, fundID uuid.UUID) ([]db.CapitalCall, error)
	ListAllocations(ctx context.Context, callID uuid.UUID) ([]db.CapitalCallAllocation, error)
	IssueCapitalCall(ctx context.Context, id uuid.UUID) (*db.CapitalCall, []db.CapitalCallAllocation, error)
	ConfirmWire(ctx context.Context, callID uuid.UUID, req requests.ConfirmWireRequest) (*db.CapitalCallAllocation, error)
	RescindCapitalCall(ctx context.Context, id uuid.UUID) (*db.CapitalCall, error)
	ProcessOverdueAllocations(ctx context.Context) (int, error)
}

// DistributionService handles distribution lifecycle operations
type DistributionService interface {
	CreateDistribution(ctx context.Context, fundID uuid.UUID, req requests.CreateDistributionRequest) (*db.Distribution, []db.DistributionAllocation, error)
	GetDistribution(ctx context.Context, id uuid.UUID) (*db.Distribution, error)
	ListDistributions(ctx context.Context, fundID uuid.UUID) ([]db.Distribution, error)
	ListAllocations(ctx context.Context, distributionID uuid.UUID) ([]db.DistributionAllocation, error)
	MarkAllocationPaid(ctx context.Context, allocationID uuid.UUID) (*db.DistributionAllocation, error)
}
