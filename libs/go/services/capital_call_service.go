package services

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/meridianfund/meridian-api/libs/go/constants"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

var (
	// ErrCapitalCallNotDraft is returned when issuing a call that already
	// left the draft state.
	ErrCapitalCallNotDraft = errors.New("capital call is not in draft state")
	// ErrCapitalCallSettled is returned when rescinding a call that has
	// already settled.
	ErrCapitalCallSettled = errors.New("capital call already settled")
	// ErrNoActiveCommitments is returned when issuing a call for a fund with
	// no commitments to allocate against.
	ErrNoActiveCommitments = errors.New("fund has no active commitments")
	// ErrAllocationNotPending is returned when confirming a wire against an
	// allocation that is not awaiting payment.
	ErrAllocationNotPending = errors.New("allocation is not pending")
)

// CapitalCallService handles the capital call lifecycle: draft, issue with
// pro-rata allocation, wire confirmation, settlement, and overdue sweeps.
type CapitalCallService struct {
	db        db.Querier
	publisher interfaces.QueuePublisher
}

// NewCapitalCallService creates a new instance of CapitalCallService
func NewCapitalCallService(database db.Querier, publisher interfaces.QueuePublisher) *CapitalCallService {
	return &CapitalCallService{
		db:        database,
		publisher: publisher,
	}
}

// CreateCapitalCall drafts a capital call. Call numbers are sequential per
// fund. The call is not visible to investors until issued.
func (s *CapitalCallService) CreateCapitalCall(ctx context.Context, fundID uuid.UUID, req requests.CreateCapitalCallRequest) (*db.CapitalCall, error) {
	if _, err := s.db.GetFund(ctx, fundID); err != nil {
		return nil, fmt.Errorf("failed to load fund: %w", err)
	}

	existing, err := s.db.ListCapitalCallsByFund(ctx, fundID)
	if err != nil {
		return nil, fmt.Errorf("failed to list capital calls: %w", err)
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %w", err)
	}

	params := db.CreateCapitalCallParams{
		FundID:           fundID,
		CallNumber:       int32(len(existing)) + 1,
		TotalAmountCents: req.TotalAmountCents,
		DueDate:          pgtype.Date{Time: dueDate, Valid: true},
		Purpose:          helpers.StringToNullableText(req.Purpose),
	}
	if wire := req.WireInstructions; wire != nil {
		params.WireBankName = helpers.StringToNullableText(wire.BankName)
		params.WireBankAddress = helpers.StringToNullableText(wire.BankAddress)
		params.WireAccountName = helpers.StringToNullableText(wire.AccountName)
		params.WireAccountNo = helpers.StringToNullableText(wire.AccountNumber)
		params.WireRoutingNo = helpers.StringToNullableText(wire.RoutingNumber)
		params.WireSwiftCode = helpers.StringToNullableText(wire.SwiftCode)
	}

	call, err := s.db.CreateCapitalCall(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create capital call: %w", err)
	}
	return &call, nil
}

// GetCapitalCall retrieves a capital call by ID.
func (s *CapitalCallService) GetCapitalCall(ctx context.Context, id uuid.UUID) (*db.CapitalCall, error) {
	call, err := s.db.GetCapitalCall(ctx, id)
	if err != nil {
		return nil, err
	}
	return &call, nil
}

// ListCapitalCalls retrieves all capital calls for a fund in call order.
func (s *CapitalCallService) ListCapitalCalls(ctx context.Context, fundID uuid.UUID) ([]db.CapitalCall, error) {
	return s.db.ListCapitalCallsByFund(ctx, fundID)
}

// ListAllocations retrieves the per-investor allocations of a capital call.
func (s *CapitalCallService) ListAllocations(ctx context.Context, callID uuid.UUID) ([]db.CapitalCallAllocation, error) {
	return s.db.ListAllocationsByCapitalCall(ctx, callID)
}

// IssueCapitalCall moves a draft call to issued, allocates the total
// pro-rata across the fund's commitments, and publishes one notification
// event per allocated investor. Allocation happens exactly once: the status
// transition is guarded in the database, so a concurrent second issue sees
// no row and fails before allocating.
func (s *CapitalCallService) IssueCapitalCall(ctx context.Context, id uuid.UUID) (*db.CapitalCall, []db.CapitalCallAllocation, error) {
	current, err := s.db.GetCapitalCall(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load capital call: %w", err)
	}

	commitments, err := s.db.ListCommitmentsByFund(ctx, current.FundID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list commitments: %w", err)
	}
	shares := allocateProRata(current.TotalAmountCents, commitments)
	if len(shares) == 0 {
		return nil, nil, ErrNoActiveCommitments
	}

	call, err := s.db.MarkCapitalCallIssued(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrCapitalCallNotDraft
		}
		return nil, nil, fmt.Errorf("failed to issue capital call: %w", err)
	}

	allocations := make([]db.CapitalCallAllocation, 0, len(shares))
	for _, share := range shares {
		allocation, err := s.db.CreateCapitalCallAllocation(ctx, db.CreateCapitalCallAllocationParams{
			CapitalCallID: call.ID,
			InvestorID:    share.investorID,
			AmountCents:   share.amountCents,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create allocation: %w", err)
		}
		allocations = append(allocations, allocation)

		s.publishEvent(ctx, business.QueueEvent{
			EventType:     business.EventCapitalCallIssued,
			FundID:        call.FundID,
			InvestorID:    share.investorID,
			CapitalCallID: call.ID,
		})
	}

	return &call, allocations, nil
}

// ConfirmWire marks an investor's allocation as paid, credits the
// commitment's contributed total, and settles the call once every
// allocation has funded.
func (s *CapitalCallService) ConfirmWire(ctx context.Context, callID uuid.UUID, req requests.ConfirmWireRequest) (*db.CapitalCallAllocation, error) {
	investorID, err := uuid.Parse(req.InvestorID)
	if err != nil {
		return nil, fmt.Errorf("invalid investor id: %w", err)
	}

	allocation, err := s.db.GetCapitalCallAllocation(ctx, db.GetCapitalCallAllocationParams{
		CapitalCallID: callID,
		InvestorID:    investorID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load allocation: %w", err)
	}
	if allocation.Status != constants.PendingStatus {
		return nil, ErrAllocationNotPending
	}

	call, err := s.db.GetCapitalCall(ctx, callID)
	if err != nil {
		return nil, fmt.Errorf("failed to load capital call: %w", err)
	}

	paid, err := s.db.MarkAllocationPaid(ctx, db.MarkAllocationPaidParams{
		ID:            allocation.ID,
		WireReference: helpers.StringToNullableText(req.WireReference),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark allocation paid: %w", err)
	}

	if _, err := s.db.AddCommitmentContribution(ctx, db.AddCommitmentContributionParams{
		FundID:      call.FundID,
		InvestorID:  investorID,
		AmountCents: paid.AmountCents,
	}); err != nil {
		return nil, fmt.Errorf("failed to credit commitment: %w", err)
	}

	s.publishEvent(ctx, business.QueueEvent{
		EventType:     business.EventWireConfirmed,
		FundID:        call.FundID,
		InvestorID:    investorID,
		CapitalCallID: callID,
	})

	if err := s.settleIfFunded(ctx, callID); err != nil {
		return nil, err
	}

	return &paid, nil
}

// RescindCapitalCall cancels a draft or issued call. Settled calls cannot
// be rescinded.
func (s *CapitalCallService) RescindCapitalCall(ctx context.Context, id uuid.UUID) (*db.CapitalCall, error) {
	current, err := s.db.GetCapitalCall(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load capital call: %w", err)
	}
	if current.Status == constants.CapitalCallStatusSettled {
		return nil, ErrCapitalCallSettled
	}

	call, err := s.db.UpdateCapitalCallStatus(ctx, db.UpdateCapitalCallStatusParams{
		ID:     id,
		Status: constants.CapitalCallStatusRescinded,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rescind capital call: %w", err)
	}
	return &call, nil
}

// ProcessOverdueAllocations publishes an overdue event for every unpaid
// allocation of an issued call past its due date. Returns the number of
// events published. Intended for a scheduled sweep.
func (s *CapitalCallService) ProcessOverdueAllocations(ctx context.Context) (int, error) {
	overdue, err := s.db.ListOverdueAllocations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue allocations: %w", err)
	}

	for _, allocation := range overdue {
		s.publishEvent(ctx, business.QueueEvent{
			EventType:     business.EventCapitalCallOverdue,
			InvestorID:    allocation.InvestorID,
			CapitalCallID: allocation.CapitalCallID,
		})
	}

	return len(overdue), nil
}

// settleIfFunded settles the call when no allocation remains pending.
func (s *CapitalCallService) settleIfFunded(ctx context.Context, callID uuid.UUID) error {
	allocations, err := s.db.ListAllocationsByCapitalCall(ctx, callID)
	if err != nil {
		return fmt.Errorf("failed to list allocations: %w", err)
	}
	for _, allocation := range allocations {
		if allocation.Status == constants.PendingStatus {
			return nil
		}
	}

	if _, err := s.db.UpdateCapitalCallStatus(ctx, db.UpdateCapitalCallStatusParams{
		ID:     callID,
		Status: constants.CapitalCallStatusSettled,
	}); err != nil {
		return fmt.Errorf("failed to settle capital call: %w", err)
	}
	return nil
}

func (s *CapitalCallService) publishEvent(ctx context.Context, event business.QueueEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Log.Warn("failed to publish notification event",
			zap.Error(err),
			zap.String("event_type", event.EventType))
	}
}

// proRataShare is one investor's slice of a called or distributed total.
type proRataShare struct {
	investorID  uuid.UUID
	amountCents int64
}

// allocateProRata splits totalCents across commitments in proportion to
// committed capital. The intermediate product totalCents*committed exceeds
// int64 at fund scale, so shares are computed with 128-bit division; the
// floor quotients then leave at most len(shares)-1 leftover cents, handed
// to the largest remainders first so the shares always sum exactly to the
// total.
func allocateProRata(totalCents int64, commitments []db.Commitment) []proRataShare {
	var committedTotal int64
	for _, c := range commitments {
		if c.CommittedCents > 0 {
			committedTotal += c.CommittedCents
		}
	}
	if committedTotal <= 0 || totalCents < 0 {
		return nil
	}

	type weighted struct {
		proRataShare
		remainder uint64
	}
	shares := make([]weighted, 0, len(commitments))
	var allocated int64
	for _, c := range commitments {
		committed := c.CommittedCents
		if committed < 0 {
			committed = 0
		}
		hi, lo := bits.Mul64(uint64(totalCents), uint64(committed))
		quotient, remainder := bits.Div64(hi, lo, uint64(committedTotal))
		share := weighted{
			proRataShare: proRataShare{
				investorID:  c.InvestorID,
				amountCents: int64(quotient),
			},
			remainder: remainder,
		}
		allocated += share.amountCents
		shares = append(shares, share)
	}

	leftover := totalCents - allocated
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].remainder > shares[j].remainder })
	for i := int64(0); i < leftover; i++ {
		shares[i].amountCents++
	}

	result := make([]proRataShare, 0, len(shares))
	for _, share := range shares {
		result = append(result, share.proRataShare)
	}
	return result
}
