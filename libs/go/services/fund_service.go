package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/meridianfund/meridian-api/libs/go/constants"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
)

// FundService handles business logic for fund and commitment operations
type FundService struct {
	db db.Querier
}

// NewFundService creates a new instance of FundService
func NewFundService(database db.Querier) *FundService {
	return &FundService{
		db: database,
	}
}

// CreateFund creates a fund in the fundraising state. Currency defaults to
// USD when omitted.
func (s *FundService) CreateFund(ctx context.Context, accountID uuid.UUID, req requests.CreateFundRequest) (*db.Fund, error) {
	currency := req.Currency
	if currency == "" {
		currency = constants.USDCurrency
	}

	fund, err := s.db.CreateFund(ctx, db.CreateFundParams{
		AccountID:   accountID,
		Name:        req.Name,
		ManagerName: req.ManagerName,
		Currency:    currency,
		VintageYear: helpers.Int32ToNullableInt4(req.VintageYear),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fund: %w", err)
	}
	return &fund, nil
}

// GetFund retrieves a fund by ID.
func (s *FundService) GetFund(ctx context.Context, id uuid.UUID) (*db.Fund, error) {
	fund, err := s.db.GetFund(ctx, id)
	if err != nil {
		return nil, err
	}
	return &fund, nil
}

// ListFunds retrieves all funds for an account.
func (s *FundService) ListFunds(ctx context.Context, accountID uuid.UUID) ([]db.Fund, error) {
	return s.db.ListFunds(ctx, accountID)
}

// UpdateFundStatus moves a fund through its lifecycle.
func (s *FundService) UpdateFundStatus(ctx context.Context, id uuid.UUID, status string) (*db.Fund, error) {
	fund, err := s.db.UpdateFundStatus(ctx, db.UpdateFundStatusParams{
		ID:     id,
		Status: status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update fund status: %w", err)
	}
	return &fund, nil
}

// CreateCommitment records an investor's capital commitment to a fund.
func (s *FundService) CreateCommitment(ctx context.Context, fundID uuid.UUID, req requests.CreateCommitmentRequest) (*db.Commitment, error) {
	investorID, err := uuid.Parse(req.InvestorID)
	if err != nil {
		return nil, fmt.Errorf("invalid investor id: %w", err)
	}

	commitment, err := s.db.CreateCommitment(ctx, db.CreateCommitmentParams{
		FundID:         fundID,
		InvestorID:     investorID,
		CommittedCents: req.CommittedCents,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create commitment: %w", err)
	}
	return &commitment, nil
}

// ListCommitments retrieves all commitments to a fund.
func (s *FundService) ListCommitments(ctx context.Context, fundID uuid.UUID) ([]db.Commitment, error) {
	return s.db.ListCommitmentsByFund(ctx, fundID)
}

// ListCommitmentsByInvestor retrieves an investor's commitments across funds.
func (s *FundService) ListCommitmentsByInvestor(ctx context.Context, investorID uuid.UUID) ([]db.Commitment, error) {
	return s.db.ListCommitmentsByInvestor(ctx, investorID)
}
