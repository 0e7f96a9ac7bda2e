package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

// NotificationProcessor consumes lifecycle events from the notification
// queue, re-reads entity state from the database, and sends the matching
// templated email. Events carry identifiers only; all display data is
// loaded fresh so a delayed message never sends stale amounts.
type NotificationProcessor struct {
	db            db.Querier
	notifications interfaces.NotificationService
	portalBaseURL string
	supportEmail  string
}

// NewNotificationProcessor creates a new instance of NotificationProcessor
func NewNotificationProcessor(database db.Querier, notifications interfaces.NotificationService, portalBaseURL, supportEmail string) *NotificationProcessor {
	return &NotificationProcessor{
		db:            database,
		notifications: notifications,
		portalBaseURL: portalBaseURL,
		supportEmail:  supportEmail,
	}
}

// ProcessingResult records the outcome of one queue record.
type ProcessingResult struct {
	MessageID string `json:"message_id"`
	EventType string `json:"event_type"`
	Processed bool   `json:"processed"`
	Error     string `json:"error,omitempty"`
}

// HandleSQSEvent processes a batch of queue records. A failed record fails
// the batch so SQS redrives it; already-sent emails in the same batch are
// recorded as notifications and not resent by the redrive (delivery is
// keyed per record, not per batch).
func (p *NotificationProcessor) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Notification processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	results := make([]ProcessingResult, 0, len(event.Records))
	failed := 0
	for _, record := range event.Records {
		result := p.processRecord(ctx, record)
		results = append(results, result)
		if !result.Processed {
			failed++
		}
	}

	logger.Info("Notification processing completed",
		zap.Int("total", len(results)),
		zap.Int("succeeded", len(results)-failed),
		zap.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("failed to process %d of %d messages", failed, len(results))
	}
	return nil
}

// processRecord parses and dispatches a single queue record.
func (p *NotificationProcessor) processRecord(ctx context.Context, record events.SQSMessage) ProcessingResult {
	result := ProcessingResult{MessageID: record.MessageId}

	var queueEvent business.QueueEvent
	if err := json.Unmarshal([]byte(record.Body), &queueEvent); err != nil {
		logger.Error("Failed to unmarshal queue event",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		result.Error = fmt.Sprintf("unmarshal error: %v", err)
		return result
	}
	result.EventType = queueEvent.EventType

	if err := p.Dispatch(ctx, queueEvent); err != nil {
		logger.Error("Failed to process queue event",
			zap.String("message_id", record.MessageId),
			zap.String("event_type", queueEvent.EventType),
			zap.Error(err))
		result.Error = err.Error()
		return result
	}

	result.Processed = true
	return result
}

// Dispatch routes a queue event to its notification builder.
func (p *NotificationProcessor) Dispatch(ctx context.Context, event business.QueueEvent) error {
	switch event.EventType {
	case business.EventInvestorRegistered:
		return p.sendPortalActivation(ctx, event)
	case business.EventKYCStatusChanged:
		return p.sendKYCStatusNotice(ctx, event)
	case business.EventCapitalCallIssued:
		return p.sendCapitalCallNotice(ctx, event)
	case business.EventCapitalCallReminder:
		return p.sendCapitalCallReminder(ctx, event)
	case business.EventCapitalCallOverdue:
		return p.sendCapitalCallOverdue(ctx, event)
	case business.EventWireConfirmed:
		return p.sendWireConfirmation(ctx, event)
	case business.EventDistributionDeclared:
		return p.sendDistributionNotice(ctx, event)
	case business.EventDistributionPaid:
		return p.sendDistributionPaid(ctx, event)
	default:
		return fmt.Errorf("unsupported event type: %s", event.EventType)
	}
}

func (p *NotificationProcessor) sendPortalActivation(ctx context.Context, event business.QueueEvent) error {
	investor, err := p.db.GetInvestor(ctx, event.InvestorID)
	if err != nil {
		return errors.Wrap(err, "failed to load investor")
	}

	data := email.PortalActivationData{
		RecipientName: investor.LegalName,
		ActivationURL: p.portalURL("/activate/" + investor.ID.String()),
		ExpiresIn:     "72 hours",
	}
	_, err = p.notifications.Send(ctx, email.KindPortalActivation, investor.Email, investor.ID, data)
	return errors.Wrap(err, "failed to send portal activation")
}

func (p *NotificationProcessor) sendKYCStatusNotice(ctx context.Context, event business.QueueEvent) error {
	investor, err := p.db.GetInvestor(ctx, event.InvestorID)
	if err != nil {
		return errors.Wrap(err, "failed to load investor")
	}
	account, err := p.db.GetAccount(ctx, investor.AccountID)
	if err != nil {
		return errors.Wrap(err, "failed to load account")
	}

	switch investor.KycStatus {
	case "approved":
		data := email.KYCApprovedData{
			RecipientName: investor.LegalName,
			FundName:      account.Name,
			PortalURL:     p.portalURL(""),
		}
		_, err = p.notifications.Send(ctx, email.KindKYCApproved, investor.Email, investor.ID, data)
	case "rejected":
		data := email.KYCRejectedData{
			RecipientName: investor.LegalName,
			FundName:      account.Name,
			SupportEmail:  p.supportEmail,
			RetryURL:      p.portalURL("/kyc"),
		}
		_, err = p.notifications.Send(ctx, email.KindKYCRejected, investor.Email, investor.ID, data)
	case "pending":
		data := email.KYCInviteData{
			RecipientName: investor.LegalName,
			FundName:      account.Name,
			Deadline:      helpers.FormatDate(datePlusDays(14)),
			VerifyURL:     p.portalURL("/kyc"),
		}
		_, err = p.notifications.Send(ctx, email.KindKYCInvite, investor.Email, investor.ID, data)
	default:
		// Expired and other transitions have no investor-facing email.
		return nil
	}
	return errors.Wrap(err, "failed to send KYC status notice")
}

func (p *NotificationProcessor) sendCapitalCallNotice(ctx context.Context, event business.QueueEvent) error {
	call, fund, investor, allocation, err := p.loadCallContext(ctx, event)
	if err != nil {
		return err
	}

	data := email.CapitalCallRequestData{
		RecipientName:    investor.LegalName,
		FundName:         fund.Name,
		CallNumber:       strconv.Itoa(int(call.CallNumber)),
		AmountDue:        helpers.FormatAmountCents(allocation.AmountCents, fund.Currency),
		Deadline:         helpers.FormatDate(call.DueDate),
		Purpose:          call.Purpose.String,
		WireInstructions: wireInstructionsFromCall(call),
		PortalURL:        p.portalURL("/capital-calls/" + call.ID.String()),
	}
	_, err = p.notifications.Send(ctx, email.KindCapitalCallRequest, investor.Email, investor.ID, data)
	return errors.Wrap(err, "failed to send capital call notice")
}

func (p *NotificationProcessor) sendCapitalCallReminder(ctx context.Context, event business.QueueEvent) error {
	call, fund, investor, allocation, err := p.loadCallContext(ctx, event)
	if err != nil {
		return err
	}

	daysRemaining := int(time.Until(call.DueDate.Time).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	data := email.CapitalCallReminderData{
		RecipientName: investor.LegalName,
		FundName:      fund.Name,
		AmountDue:     helpers.FormatAmountCents(allocation.AmountCents, fund.Currency),
		Deadline:      helpers.FormatDate(call.DueDate),
		DaysRemaining: strconv.Itoa(daysRemaining),
		PortalURL:     p.portalURL("/capital-calls/" + call.ID.String()),
	}
	_, err = p.notifications.Send(ctx, email.KindCapitalCallReminder, investor.Email, investor.ID, data)
	return errors.Wrap(err, "failed to send capital call reminder")
}

func (p *NotificationProcessor) sendCapitalCallOverdue(ctx context.Context, event business.QueueEvent) error {
	call, fund, investor, allocation, err := p.loadCallContext(ctx, event)
	if err != nil {
		return err
	}

	daysOverdue := int(time.Since(call.DueDate.Time).Hours() / 24)
	if daysOverdue < 1 {
		daysOverdue = 1
	}
	data := email.CapitalCallOverdueData{
		RecipientName: investor.LegalName,
		FundName:      fund.Name,
		AmountDue:     helpers.FormatAmountCents(allocation.AmountCents, fund.Currency),
		Deadline:      helpers.FormatDate(call.DueDate),
		DaysOverdue:   strconv.Itoa(daysOverdue),
		SupportEmail:  p.supportEmail,
		PortalURL:     p.portalURL("/capital-calls/" + call.ID.String()),
	}
	_, err = p.notifications.Send(ctx, email.KindCapitalCallOverdue, investor.Email, investor.ID, data)
	return errors.Wrap(err, "failed to send overdue notice")
}

func (p *NotificationProcessor) sendWireConfirmation(ctx context.Context, event business.QueueEvent) error {
	call, fund, investor, allocation, err := p.loadCallContext(ctx, event)
	if err != nil {
		return err
	}

	commitment, err := p.db.GetCommitment(ctx, db.GetCommitmentParams{
		FundID:     call.FundID,
		InvestorID: investor.ID,
	})
	if err != nil {
		return errors.Wrap(err, "failed to load commitment")
	}
	unfunded := commitment.CommittedCents - commitment.ContributedCents
	if unfunded < 0 {
		unfunded = 0
	}

	data := email.WireConfirmationData{
		RecipientName:     investor.LegalName,
		FundName:          fund.Name,
		AmountReceived:    helpers.FormatAmountCents(allocation.AmountCents, fund.Currency),
		ReceivedDate:      helpers.FormatTimestamp(allocation.WireReceivedAt),
		CallNumber:        strconv.Itoa(int(call.CallNumber)),
		RemainingUnfunded: helpers.FormatAmountCents(unfunded, fund.Currency),
		PortalURL:         p.portalURL("/capital-account"),
	}
	_, err = p.notifications.Send(ctx, email.KindWireConfirmation, investor.Email, investor.ID, data)
	return errors.Wrap(err, "failed to send wire confirmation")
}

func (p *NotificationProcessor) sendDistributionNotice(ctx context.Context, event business.QueueEvent) error {
	distribution, fund, investor, allocation, err := p.loadDistributionContext(ctx, event)
	if err != nil {
		return err
	}

	net := allocation.AmountCents - allocation.WithholdingCents
	withholding := ""
	if allocation.WithholdingCents > 0 {
		withholding = helpers.FormatAmountCents(allocation.WithholdingCents, fund.Currency)
	}
	data := email.DistributionNoticeData{
		RecipientName:      investor.LegalName,
		FundName:           fund.Name,
		DistributionNumber: strconv.Itoa(int(distribution.DistributionNumber)),
		GrossAmount:        helpers.FormatAmountCents(allocation.AmountCents, fund.Currency),
		Withholding:        withholding,
		NetAmount:          helpers.FormatAmountCents(net, fund.Currency),
		PaymentDate:        helpers.FormatDate(distribution.PaymentDate),
		Source:             distribution.Source.String,
		PortalURL:          p.portalURL("/distributions/" + distribution.ID.String()),
	}
	_, err = p.notifications.Send(ctx, email.KindDistributionNotice, investor.Email, investor.ID, data)
	return errors.Wrap(err, "failed to send distribution notice")
}

func (p *NotificationProcessor) sendDistributionPaid(ctx context.Context, event business.QueueEvent) error {
	distribution, fund, investor, allocation, err := p.loadDistributionContext(ctx, event)
	if err != nil {
		return err
	}

	net := allocation.AmountCents - allocation.WithholdingCents
	data := email.DistributionPaidData{
		RecipientName: investor.LegalName,
		FundName:      fund.Name,
		NetAmount:     helpers.FormatAmountCents(net, fund.Currency),
		PaidDate:      helpers.FormatTimestamp(allocation.PaidAt),
		AccountTail:   "the account on file",
		PortalURL:     p.portalURL("/distributions/" + distribution.ID.String()),
	}
	_, err = p.notifications.Send(ctx, email.KindDistributionPaid, investor.Email, investor.ID, data)
	return errors.Wrap(err, "failed to send distribution paid confirmation")
}

// loadCallContext loads the call, its fund, the investor, and the
// investor's allocation for capital call events.
func (p *NotificationProcessor) loadCallContext(ctx context.Context, event business.QueueEvent) (db.CapitalCall, db.Fund, db.Investor, db.CapitalCallAllocation, error) {
	var (
		call       db.CapitalCall
		fund       db.Fund
		investor   db.Investor
		allocation db.CapitalCallAllocation
	)

	call, err := p.db.GetCapitalCall(ctx, event.CapitalCallID)
	if err != nil {
		return call, fund, investor, allocation, errors.Wrap(err, "failed to load capital call")
	}
	fund, err = p.db.GetFund(ctx, call.FundID)
	if err != nil {
		return call, fund, investor, allocation, errors.Wrap(err, "failed to load fund")
	}
	investor, err = p.db.GetInvestor(ctx, event.InvestorID)
	if err != nil {
		return call, fund, investor, allocation, errors.Wrap(err, "failed to load investor")
	}
	allocation, err = p.db.GetCapitalCallAllocation(ctx, db.GetCapitalCallAllocationParams{
		CapitalCallID: call.ID,
		InvestorID:    investor.ID,
	})
	if err != nil {
		return call, fund, investor, allocation, errors.Wrap(err, "failed to load allocation")
	}
	return call, fund, investor, allocation, nil
}

// loadDistributionContext loads the distribution, its fund, the investor,
// and the investor's allocation for distribution events.
func (p *NotificationProcessor) loadDistributionContext(ctx context.Context, event business.QueueEvent) (db.Distribution, db.Fund, db.Investor, db.DistributionAllocation, error) {
	var (
		distribution db.Distribution
		fund         db.Fund
		investor     db.Investor
		allocation   db.DistributionAllocation
	)

	distribution, err := p.db.GetDistribution(ctx, event.DistributionID)
	if err != nil {
		return distribution, fund, investor, allocation, errors.Wrap(err, "failed to load distribution")
	}
	fund, err = p.db.GetFund(ctx, distribution.FundID)
	if err != nil {
		return distribution, fund, investor, allocation, errors.Wrap(err, "failed to load fund")
	}
	investor, err = p.db.GetInvestor(ctx, event.InvestorID)
	if err != nil {
		return distribution, fund, investor, allocation, errors.Wrap(err, "failed to load investor")
	}

	allocations, err := p.db.ListAllocationsByDistribution(ctx, distribution.ID)
	if err != nil {
		return distribution, fund, investor, allocation, errors.Wrap(err, "failed to list allocations")
	}
	for _, a := range allocations {
		if a.InvestorID == investor.ID {
			return distribution, fund, investor, a, nil
		}
	}
	return distribution, fund, investor, allocation,
		fmt.Errorf("no allocation for investor %s in distribution %s", investor.ID, distribution.ID)
}

func (p *NotificationProcessor) portalURL(path string) string {
	return p.portalBaseURL + path
}

// wireInstructionsFromCall maps the call's stored banking details into the
// template's wire block.
func wireInstructionsFromCall(call db.CapitalCall) email.WireInstructions {
	return email.WireInstructions{
		BankName:      call.WireBankName.String,
		BankAddress:   call.WireBankAddress.String,
		AccountName:   call.WireAccountName.String,
		AccountNumber: call.WireAccountNo.String,
		RoutingNumber: call.WireRoutingNo.String,
		SwiftCode:     call.WireSwiftCode.String,
		Reference:     fmt.Sprintf("Call %d / %s", call.CallNumber, call.ID.String()[:8]),
	}
}

// datePlusDays returns today plus n days as a pgtype.Date for deadline
// rendering.
func datePlusDays(n int) pgtype.Date {
	return pgtype.Date{Time: time.Now().AddDate(0, 0, n), Valid: true}
}
