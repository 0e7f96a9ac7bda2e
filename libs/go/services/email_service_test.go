package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/types/api/params"
)

// fakeResendSender captures requests bound for the Resend API.
type fakeResendSender struct {
	requests []*resend.SendEmailRequest
	err      error
}

func (f *fakeResendSender) SendWithContext(_ context.Context, req *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &resend.SendEmailResponse{Id: "re_msg_1"}, nil
}

func TestEmailService_SendTransactionalEmail(t *testing.T) {
	sender := &fakeResendSender{}
	service := services.NewEmailServiceWithSender(sender, "notices@meridianfund.com", "Meridian Fund Services", zap.NewNop())
	ctx := context.Background()

	messageID, err := service.SendTransactionalEmail(ctx, params.TransactionalEmailParams{
		To:          []string{"jane@meridianfund.com"},
		Subject:     "Capital Call Notice - Meridian Growth Fund II",
		HTMLContent: "<!DOCTYPE html><html><body>notice</body></html>",
		Tags:        map[string]interface{}{"kind": "capital_call.request"},
	})

	require.NoError(t, err)
	assert.Equal(t, "re_msg_1", messageID)

	require.Len(t, sender.requests, 1)
	sent := sender.requests[0]
	assert.Equal(t, "Meridian Fund Services <notices@meridianfund.com>", sent.From)
	assert.Equal(t, []string{"jane@meridianfund.com"}, sent.To)
	assert.NotEmpty(t, sent.Headers["X-Entity-Ref-ID"])
	require.Len(t, sent.Tags, 1)
	assert.Equal(t, "kind", sent.Tags[0].Name)
	assert.Equal(t, "capital_call.request", sent.Tags[0].Value)
}

func TestEmailService_SendTransactionalEmail_FromOverride(t *testing.T) {
	sender := &fakeResendSender{}
	service := services.NewEmailServiceWithSender(sender, "notices@meridianfund.com", "Meridian Fund Services", zap.NewNop())

	_, err := service.SendTransactionalEmail(context.Background(), params.TransactionalEmailParams{
		To:       []string{"ops@meridianfund.com"},
		From:     "alerts@meridianfund.com",
		FromName: "Meridian Alerts",
		Subject:  "Wire received",
	})

	require.NoError(t, err)
	assert.Equal(t, "Meridian Alerts <alerts@meridianfund.com>", sender.requests[0].From)
}

func TestEmailService_SendTransactionalEmail_ProviderError(t *testing.T) {
	sender := &fakeResendSender{err: errors.New("rate limited")}
	service := services.NewEmailServiceWithSender(sender, "notices@meridianfund.com", "Meridian Fund Services", zap.NewNop())

	_, err := service.SendTransactionalEmail(context.Background(), params.TransactionalEmailParams{
		To:      []string{"jane@meridianfund.com"},
		Subject: "Capital Call Notice",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestEmailService_SendBatchEmails(t *testing.T) {
	sender := &fakeResendSender{}
	service := services.NewEmailServiceWithSender(sender, "notices@meridianfund.com", "Meridian Fund Services", zap.NewNop())

	results, err := service.SendBatchEmails(context.Background(), []services.BatchEmailRequest{
		{To: []string{"a@meridianfund.com"}, Subject: "Distribution Notice"},
		{To: []string{"b@meridianfund.com"}, Subject: "Distribution Notice"},
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	for i, result := range results {
		assert.Equal(t, i, result.Index)
		assert.True(t, result.Success)
		assert.Equal(t, "re_msg_1", result.MessageID)
	}
	assert.Len(t, sender.requests, 2)
}
