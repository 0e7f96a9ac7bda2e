package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

// ErrInvestorEmailTaken is returned when registering an investor whose email
// already exists in the account.
var ErrInvestorEmailTaken = errors.New("investor email already registered")

// InvestorService handles business logic for investor operations
type InvestorService struct {
	db        db.Querier
	publisher interfaces.QueuePublisher
}

// NewInvestorService creates a new instance of InvestorService
func NewInvestorService(database db.Querier, publisher interfaces.QueuePublisher) *InvestorService {
	return &InvestorService{
		db:        database,
		publisher: publisher,
	}
}

// RegisterInvestor creates an investor record and publishes a registration
// event for notification fan-out. Email uniqueness is enforced per account.
func (s *InvestorService) RegisterInvestor(ctx context.Context, accountID uuid.UUID, req requests.CreateInvestorRequest) (*db.Investor, error) {
	_, err := s.db.GetInvestorByEmail(ctx, db.GetInvestorByEmailParams{
		AccountID: accountID,
		Email:     req.Email,
	})
	if err == nil {
		return nil, ErrInvestorEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check investor email: %w", err)
	}

	investor, err := s.db.CreateInvestor(ctx, db.CreateInvestorParams{
		AccountID:  accountID,
		Email:      req.Email,
		LegalName:  req.LegalName,
		EntityType: req.EntityType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create investor: %w", err)
	}

	s.publishEvent(ctx, business.QueueEvent{
		EventType:  business.EventInvestorRegistered,
		InvestorID: investor.ID,
	})

	return &investor, nil
}

// GetInvestor retrieves an investor by ID.
func (s *InvestorService) GetInvestor(ctx context.Context, id uuid.UUID) (*db.Investor, error) {
	investor, err := s.db.GetInvestor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &investor, nil
}

// ListInvestors returns a page of investors plus the account-wide total.
func (s *InvestorService) ListInvestors(ctx context.Context, accountID uuid.UUID, limit, offset int32) ([]db.Investor, int64, error) {
	investors, err := s.db.ListInvestors(ctx, db.ListInvestorsParams{
		AccountID: accountID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list investors: %w", err)
	}

	total, err := s.db.CountInvestors(ctx, accountID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count investors: %w", err)
	}

	return investors, total, nil
}

// UpdateInvestor updates contact and entity details. Fields left empty in
// the request keep their current value.
func (s *InvestorService) UpdateInvestor(ctx context.Context, id uuid.UUID, req requests.UpdateInvestorRequest) (*db.Investor, error) {
	current, err := s.db.GetInvestor(ctx, id)
	if err != nil {
		return nil, err
	}

	params := db.UpdateInvestorParams{
		ID:         id,
		Email:      current.Email,
		LegalName:  current.LegalName,
		EntityType: current.EntityType,
	}
	if req.Email != "" {
		params.Email = req.Email
	}
	if req.LegalName != "" {
		params.LegalName = req.LegalName
	}
	if req.EntityType != "" {
		params.EntityType = req.EntityType
	}

	investor, err := s.db.UpdateInvestor(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to update investor: %w", err)
	}
	return &investor, nil
}

// UpdateKYCStatus moves an investor through the KYC lifecycle and publishes
// a status-change event for notification fan-out.
func (s *InvestorService) UpdateKYCStatus(ctx context.Context, id uuid.UUID, req requests.UpdateKYCStatusRequest) (*db.Investor, error) {
	investor, err := s.db.UpdateInvestorKYCStatus(ctx, db.UpdateInvestorKYCStatusParams{
		ID:        id,
		KycStatus: req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update KYC status: %w", err)
	}

	s.publishEvent(ctx, business.QueueEvent{
		EventType:  business.EventKYCStatusChanged,
		InvestorID: investor.ID,
	})

	return &investor, nil
}

// UpdateAccreditationStatus moves an investor through the accreditation
// lifecycle.
func (s *InvestorService) UpdateAccreditationStatus(ctx context.Context, id uuid.UUID, req requests.UpdateAccreditationStatusRequest) (*db.Investor, error) {
	investor, err := s.db.UpdateInvestorAccreditationStatus(ctx, db.UpdateInvestorAccreditationStatusParams{
		ID:                  id,
		AccreditationStatus: req.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update accreditation status: %w", err)
	}
	return &investor, nil
}

// DeleteInvestor removes an investor scoped to an account.
func (s *InvestorService) DeleteInvestor(ctx context.Context, accountID, id uuid.UUID) error {
	return s.db.DeleteInvestor(ctx, db.DeleteInvestorParams{
		ID:        id,
		AccountID: accountID,
	})
}

// publishEvent publishes a queue event without failing the caller. Delivery
// of notifications is best effort relative to the database write.
func (s *InvestorService) publishEvent(ctx context.Context, event business.QueueEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Log.Warn("failed to publish notification event",
			zap.Error(err),
			zap.String("event_type", event.EventType))
	}
}
