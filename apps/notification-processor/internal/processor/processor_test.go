package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/mocks"
	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

func TestMain(m *testing.M) {
	logger.InitLogger(helpers.StageLocal)
	os.Exit(m.Run())
}

var (
	procAccountID  = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	procInvestorID = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	procFundID     = uuid.MustParse("20000000-0000-0000-0000-000000000002")
	procCallID     = uuid.MustParse("30000000-0000-0000-0000-000000000003")
	procDistID     = uuid.MustParse("40000000-0000-0000-0000-000000000004")
)

// sentEmail captures one Send call made by the processor.
type sentEmail struct {
	kind      email.Kind
	recipient string
	data      any
}

// fakeNotifier stands in for the notification service so tests can
// inspect exactly what the processor asked to send.
type fakeNotifier struct {
	sent    []sentEmail
	sendErr error
}

func (f *fakeNotifier) Send(_ context.Context, kind email.Kind, recipient string, _ uuid.UUID, data any) (*db.Notification, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, sentEmail{kind: kind, recipient: recipient, data: data})
	return &db.Notification{ID: uuid.New(), Kind: string(kind), Recipient: recipient, Status: "sent"}, nil
}

func (f *fakeNotifier) SendJSON(ctx context.Context, kind email.Kind, recipient string, investorID uuid.UUID, raw []byte) (*db.Notification, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return f.Send(ctx, kind, recipient, investorID, data)
}

func (f *fakeNotifier) Preview(kind email.Kind, raw []byte) (string, string, error) {
	html, err := email.RenderJSON(kind, raw)
	return "Test Subject", html, err
}

func (f *fakeNotifier) ListForInvestor(context.Context, uuid.UUID, int32, int32) ([]db.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) ListRecent(context.Context, int32, int32) ([]db.Notification, error) {
	return nil, nil
}

func newTestProcessor(t *testing.T) (*NotificationProcessor, *mocks.MockQuerier, *fakeNotifier) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	notifier := &fakeNotifier{}
	p := NewNotificationProcessor(mockQuerier, notifier, "https://portal.test.example.com", "support@test.example.com")
	return p, mockQuerier, notifier
}

func testProcInvestor() db.Investor {
	return db.Investor{
		ID:        procInvestorID,
		AccountID: procAccountID,
		Email:     "jane@example.com",
		LegalName: "Jane Smith Revocable Trust",
		KycStatus: "approved",
	}
}

func testProcFund() db.Fund {
	return db.Fund{
		ID:          procFundID,
		AccountID:   procAccountID,
		Name:        "Meridian Growth Fund II",
		ManagerName: "Meridian Capital Management",
		Currency:    "USD",
		Status:      "raising",
	}
}

func testProcCall(due time.Time) db.CapitalCall {
	return db.CapitalCall{
		ID:               procCallID,
		FundID:           procFundID,
		CallNumber:       3,
		TotalAmountCents: 10_000_000,
		DueDate:          pgtype.Date{Time: due, Valid: true},
		Purpose:          pgtype.Text{String: "Follow-on investment in portfolio company", Valid: true},
		Status:           "issued",
		WireBankName:     pgtype.Text{String: "First National Bank", Valid: true},
		WireAccountNo:    pgtype.Text{String: "123456789", Valid: true},
		WireRoutingNo:    pgtype.Text{String: "021000021", Valid: true},
	}
}

func expectCallContext(mockQuerier *mocks.MockQuerier, call db.CapitalCall, allocation db.CapitalCallAllocation) {
	mockQuerier.EXPECT().GetCapitalCall(gomock.Any(), procCallID).Return(call, nil)
	mockQuerier.EXPECT().GetFund(gomock.Any(), procFundID).Return(testProcFund(), nil)
	mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(testProcInvestor(), nil)
	mockQuerier.EXPECT().GetCapitalCallAllocation(gomock.Any(), db.GetCapitalCallAllocationParams{
		CapitalCallID: procCallID,
		InvestorID:    procInvestorID,
	}).Return(allocation, nil)
}

func TestDispatch_CapitalCallIssued(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	expectCallContext(mockQuerier, testProcCall(due), db.CapitalCallAllocation{
		ID:            uuid.New(),
		CapitalCallID: procCallID,
		InvestorID:    procInvestorID,
		AmountCents:   2_500_000,
		Status:        "pending",
	})

	err := p.Dispatch(context.Background(), business.QueueEvent{
		EventType:     business.EventCapitalCallIssued,
		FundID:        procFundID,
		InvestorID:    procInvestorID,
		CapitalCallID: procCallID,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, email.KindCapitalCallRequest, notifier.sent[0].kind)
	assert.Equal(t, "jane@example.com", notifier.sent[0].recipient)

	data, ok := notifier.sent[0].data.(email.CapitalCallRequestData)
	require.True(t, ok)
	assert.Equal(t, "Jane Smith Revocable Trust", data.RecipientName)
	assert.Equal(t, "Meridian Growth Fund II", data.FundName)
	assert.Equal(t, "3", data.CallNumber)
	assert.Equal(t, "$25,000.00", data.AmountDue)
	assert.Equal(t, "September 15, 2026", data.Deadline)
	assert.Equal(t, "First National Bank", data.WireInstructions.BankName)
	assert.Contains(t, data.WireInstructions.Reference, "Call 3")
	assert.Contains(t, data.PortalURL, procCallID.String())
}

func TestDispatch_CapitalCallReminder_DaysRemainingFloorsAtZero(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	// Due date already past: reminder still sends with zero days remaining.
	expectCallContext(mockQuerier, testProcCall(time.Now().AddDate(0, 0, -2)), db.CapitalCallAllocation{
		CapitalCallID: procCallID,
		InvestorID:    procInvestorID,
		AmountCents:   500_000,
		Status:        "pending",
	})

	err := p.Dispatch(context.Background(), business.QueueEvent{
		EventType:     business.EventCapitalCallReminder,
		InvestorID:    procInvestorID,
		CapitalCallID: procCallID,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	data, ok := notifier.sent[0].data.(email.CapitalCallReminderData)
	require.True(t, ok)
	assert.Equal(t, "0", data.DaysRemaining)
}

func TestDispatch_WireConfirmed(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	received := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	expectCallContext(mockQuerier, testProcCall(time.Now().AddDate(0, 0, 10)), db.CapitalCallAllocation{
		CapitalCallID:  procCallID,
		InvestorID:     procInvestorID,
		AmountCents:    2_500_000,
		Status:         "paid",
		WireReceivedAt: pgtype.Timestamptz{Time: received, Valid: true},
	})
	mockQuerier.EXPECT().GetCommitment(gomock.Any(), db.GetCommitmentParams{
		FundID:     procFundID,
		InvestorID: procInvestorID,
	}).Return(db.Commitment{
		FundID:           procFundID,
		InvestorID:       procInvestorID,
		CommittedCents:   10_000_000,
		ContributedCents: 2_500_000,
		Status:           "active",
	}, nil)

	err := p.Dispatch(context.Background(), business.QueueEvent{
		EventType:     business.EventWireConfirmed,
		InvestorID:    procInvestorID,
		CapitalCallID: procCallID,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, email.KindWireConfirmation, notifier.sent[0].kind)
	data, ok := notifier.sent[0].data.(email.WireConfirmationData)
	require.True(t, ok)
	assert.Equal(t, "$25,000.00", data.AmountReceived)
	assert.Equal(t, "$75,000.00", data.RemainingUnfunded)
}

func TestDispatch_DistributionDeclared_PicksInvestorAllocation(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	otherInvestorID := uuid.New()
	distribution := db.Distribution{
		ID:                 procDistID,
		FundID:             procFundID,
		DistributionNumber: 2,
		TotalAmountCents:   5_000_000,
		PaymentDate:        pgtype.Date{Time: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		Source:             pgtype.Text{String: "Sale of portfolio company", Valid: true},
		Classification:     "return_of_capital",
		Status:             "declared",
	}
	mockQuerier.EXPECT().GetDistribution(gomock.Any(), procDistID).Return(distribution, nil)
	mockQuerier.EXPECT().GetFund(gomock.Any(), procFundID).Return(testProcFund(), nil)
	mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(testProcInvestor(), nil)
	mockQuerier.EXPECT().ListAllocationsByDistribution(gomock.Any(), procDistID).Return([]db.DistributionAllocation{
		{DistributionID: procDistID, InvestorID: otherInvestorID, AmountCents: 3_750_000},
		{DistributionID: procDistID, InvestorID: procInvestorID, AmountCents: 1_250_000, WithholdingCents: 250_000},
	}, nil)

	err := p.Dispatch(context.Background(), business.QueueEvent{
		EventType:      business.EventDistributionDeclared,
		InvestorID:     procInvestorID,
		DistributionID: procDistID,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, email.KindDistributionNotice, notifier.sent[0].kind)
	data, ok := notifier.sent[0].data.(email.DistributionNoticeData)
	require.True(t, ok)
	assert.Equal(t, "$12,500.00", data.GrossAmount)
	assert.Equal(t, "$2,500.00", data.Withholding)
	assert.Equal(t, "$10,000.00", data.NetAmount)
	assert.Equal(t, "October 1, 2026", data.PaymentDate)
	assert.Equal(t, "Sale of portfolio company", data.Source)
}

func TestDispatch_DistributionDeclared_NoAllocationForInvestor(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	mockQuerier.EXPECT().GetDistribution(gomock.Any(), procDistID).Return(db.Distribution{
		ID:     procDistID,
		FundID: procFundID,
		Status: "declared",
	}, nil)
	mockQuerier.EXPECT().GetFund(gomock.Any(), procFundID).Return(testProcFund(), nil)
	mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(testProcInvestor(), nil)
	mockQuerier.EXPECT().ListAllocationsByDistribution(gomock.Any(), procDistID).Return([]db.DistributionAllocation{
		{DistributionID: procDistID, InvestorID: uuid.New(), AmountCents: 5_000_000},
	}, nil)

	err := p.Dispatch(context.Background(), business.QueueEvent{
		EventType:      business.EventDistributionDeclared,
		InvestorID:     procInvestorID,
		DistributionID: procDistID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no allocation for investor")
	assert.Empty(t, notifier.sent)
}

func TestDispatch_KYCStatusChanged(t *testing.T) {
	tests := []struct {
		name      string
		kycStatus string
		wantKind  email.Kind
		wantSend  bool
	}{
		{name: "approved sends approval notice", kycStatus: "approved", wantKind: email.KindKYCApproved, wantSend: true},
		{name: "rejected sends rejection notice", kycStatus: "rejected", wantKind: email.KindKYCRejected, wantSend: true},
		{name: "pending sends verification invite", kycStatus: "pending", wantKind: email.KindKYCInvite, wantSend: true},
		{name: "expired sends nothing", kycStatus: "expired", wantSend: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mockQuerier, notifier := newTestProcessor(t)

			investor := testProcInvestor()
			investor.KycStatus = tt.kycStatus
			mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(investor, nil)
			mockQuerier.EXPECT().GetAccount(gomock.Any(), procAccountID).Return(db.Account{
				ID:   procAccountID,
				Name: "Meridian Capital Management",
			}, nil)

			err := p.Dispatch(context.Background(), business.QueueEvent{
				EventType:  business.EventKYCStatusChanged,
				InvestorID: procInvestorID,
			})
			require.NoError(t, err)

			if !tt.wantSend {
				assert.Empty(t, notifier.sent)
				return
			}
			require.Len(t, notifier.sent, 1)
			assert.Equal(t, tt.wantKind, notifier.sent[0].kind)
		})
	}
}

func TestDispatch_InvestorRegistered(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(testProcInvestor(), nil)

	err := p.Dispatch(context.Background(), business.QueueEvent{
		EventType:  business.EventInvestorRegistered,
		InvestorID: procInvestorID,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, email.KindPortalActivation, notifier.sent[0].kind)
	data, ok := notifier.sent[0].data.(email.PortalActivationData)
	require.True(t, ok)
	assert.Equal(t, "https://portal.test.example.com/activate/"+procInvestorID.String(), data.ActivationURL)
	assert.Equal(t, "72 hours", data.ExpiresIn)
}

func TestDispatch_UnsupportedEventType(t *testing.T) {
	p, _, notifier := newTestProcessor(t)

	err := p.Dispatch(context.Background(), business.QueueEvent{EventType: "fund.renamed"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported event type")
	assert.Empty(t, notifier.sent)
}

func TestHandleSQSEvent_AllRecordsSucceed(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(testProcInvestor(), nil).Times(2)

	body, err := json.Marshal(business.QueueEvent{
		EventType:  business.EventInvestorRegistered,
		InvestorID: procInvestorID,
	})
	require.NoError(t, err)

	err = p.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "msg-1", Body: string(body)},
		{MessageId: "msg-2", Body: string(body)},
	}})
	require.NoError(t, err)
	assert.Len(t, notifier.sent, 2)
}

func TestHandleSQSEvent_PartialFailure(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)

	mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(testProcInvestor(), nil)

	body, err := json.Marshal(business.QueueEvent{
		EventType:  business.EventInvestorRegistered,
		InvestorID: procInvestorID,
	})
	require.NoError(t, err)

	err = p.HandleSQSEvent(context.Background(), events.SQSEvent{Records: []events.SQSMessage{
		{MessageId: "msg-1", Body: string(body)},
		{MessageId: "msg-2", Body: "{not valid json"},
	}})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("failed to process %d of %d messages", 1, 2), err.Error())
	assert.Len(t, notifier.sent, 1)
}

func TestProcessRecord_SendFailure(t *testing.T) {
	p, mockQuerier, notifier := newTestProcessor(t)
	notifier.sendErr = fmt.Errorf("provider unavailable")

	mockQuerier.EXPECT().GetInvestor(gomock.Any(), procInvestorID).Return(testProcInvestor(), nil)

	body, err := json.Marshal(business.QueueEvent{
		EventType:  business.EventInvestorRegistered,
		InvestorID: procInvestorID,
	})
	require.NoError(t, err)

	result := p.processRecord(context.Background(), events.SQSMessage{MessageId: "msg-1", Body: string(body)})
	assert.False(t, result.Processed)
	assert.Equal(t, business.EventInvestorRegistered, result.EventType)
	assert.Contains(t, result.Error, "provider unavailable")
}
