package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

// DistributionService handles the distribution lifecycle: declaration with
// pro-rata allocation and per-investor payment confirmation.
type DistributionService struct {
	db        db.Querier
	publisher interfaces.QueuePublisher
}

// NewDistributionService creates a new instance of DistributionService
func NewDistributionService(database db.Querier, publisher interfaces.QueuePublisher) *DistributionService {
	return &DistributionService{
		db:        database,
		publisher: publisher,
	}
}

// CreateDistribution declares a distribution, allocates the total pro-rata
// across the fund's commitments, and publishes a declaration event per
// allocated investor. Distribution numbers are sequential per fund.
func (s *DistributionService) CreateDistribution(ctx context.Context, fundID uuid.UUID, req requests.CreateDistributionRequest) (*db.Distribution, []db.DistributionAllocation, error) {
	if _, err := s.db.GetFund(ctx, fundID); err != nil {
		return nil, nil, fmt.Errorf("failed to load fund: %w", err)
	}

	existing, err := s.db.ListDistributionsByFund(ctx, fundID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list distributions: %w", err)
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid payment date: %w", err)
	}

	commitments, err := s.db.ListCommitmentsByFund(ctx, fundID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list commitments: %w", err)
	}
	shares := allocateProRata(req.TotalAmountCents, commitments)
	if len(shares) == 0 {
		return nil, nil, ErrNoActiveCommitments
	}

	distribution, err := s.db.CreateDistribution(ctx, db.CreateDistributionParams{
		FundID:             fundID,
		DistributionNumber: int32(len(existing)) + 1,
		TotalAmountCents:   req.TotalAmountCents,
		PaymentDate:        pgtype.Date{Time: paymentDate, Valid: true},
		Source:             helpers.StringToNullableText(req.Source),
		Classification:     req.Classification,
		Recallable:         req.Recallable,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create distribution: %w", err)
	}

	allocations := make([]db.DistributionAllocation, 0, len(shares))
	for _, share := range shares {
		allocation, err := s.db.CreateDistributionAllocation(ctx, db.CreateDistributionAllocationParams{
			DistributionID:   distribution.ID,
			InvestorID:       share.investorID,
			AmountCents:      share.amountCents,
			WithholdingCents: withholdingCents(share.amountCents, req.WithholdingBps),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create allocation: %w", err)
		}
		allocations = append(allocations, allocation)

		s.publishEvent(ctx, business.QueueEvent{
			EventType:      business.EventDistributionDeclared,
			FundID:         fundID,
			InvestorID:     share.investorID,
			DistributionID: distribution.ID,
		})
	}

	return &distribution, allocations, nil
}

// GetDistribution retrieves a distribution by ID.
func (s *DistributionService) GetDistribution(ctx context.Context, id uuid.UUID) (*db.Distribution, error) {
	distribution, err := s.db.GetDistribution(ctx, id)
	if err != nil {
		return nil, err
	}
	return &distribution, nil
}

// ListDistributions retrieves all distributions for a fund.
func (s *DistributionService) ListDistributions(ctx context.Context, fundID uuid.UUID) ([]db.Distribution, error) {
	return s.db.ListDistributionsByFund(ctx, fundID)
}

// ListAllocations retrieves the per-investor allocations of a distribution.
func (s *DistributionService) ListAllocations(ctx context.Context, distributionID uuid.UUID) ([]db.DistributionAllocation, error) {
	return s.db.ListAllocationsByDistribution(ctx, distributionID)
}

// MarkAllocationPaid records that an investor's distribution payment went
// out, credits the commitment's distributed total, and publishes a payment
// event.
func (s *DistributionService) MarkAllocationPaid(ctx context.Context, allocationID uuid.UUID) (*db.DistributionAllocation, error) {
	paid, err := s.db.MarkDistributionAllocationPaid(ctx, allocationID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark allocation paid: %w", err)
	}

	distribution, err := s.db.GetDistribution(ctx, paid.DistributionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load distribution: %w", err)
	}

	if _, err := s.db.AddCommitmentDistribution(ctx, db.AddCommitmentDistributionParams{
		FundID:      distribution.FundID,
		InvestorID:  paid.InvestorID,
		AmountCents: paid.AmountCents,
	}); err != nil {
		return nil, fmt.Errorf("failed to credit commitment: %w", err)
	}

	s.publishEvent(ctx, business.QueueEvent{
		EventType:      business.EventDistributionPaid,
		FundID:         distribution.FundID,
		InvestorID:     paid.InvestorID,
		DistributionID: distribution.ID,
	})

	return &paid, nil
}

// withholdingCents applies a basis-point withholding rate to a gross
// allocation, rounding down so withholding never exceeds the rate.
func withholdingCents(amountCents int64, rateBps int32) int64 {
	if rateBps <= 0 {
		return 0
	}
	return amountCents * int64(rateBps) / 10000
}

func (s *DistributionService) publishEvent(ctx context.Context, event business.QueueEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Log.Warn("failed to publish notification event",
			zap.Error(err),
			zap.String("event_type", event.EventType))
	}
}
