package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/meridianfund/meridian-api/libs/go/constants"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/mocks"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/types/api/params"
)

// fakeEmailService records the last send and returns a canned result.
type fakeEmailService struct {
	lastParams params.TransactionalEmailParams
	messageID  string
	err        error
	calls      int
}

func (f *fakeEmailService) SendTransactionalEmail(_ context.Context, p params.TransactionalEmailParams) (string, error) {
	f.calls++
	f.lastParams = p
	if f.err != nil {
		return "", f.err
	}
	return f.messageID, nil
}

func TestNotificationService_Send(t *testing.T) {
	ctx := context.Background()
	investorID := uuid.New()

	t.Run("renders, sends, and records the notification", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		sender := &fakeEmailService{messageID: "re_abc123"}
		service := services.NewNotificationService(mockQuerier, sender)

		mockQuerier.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
			assert.Equal(t, "security.password_reset", arg.Kind)
			assert.Equal(t, "jane@meridianfund.com", arg.Recipient)
			assert.Equal(t, "Reset your password", arg.Subject)
			assert.Equal(t, constants.SentStatus, arg.Status)
			assert.Equal(t, "re_abc123", arg.ProviderMessageID.String)
			assert.True(t, arg.InvestorID.Valid)
			return db.Notification{
				ID:         uuid.New(),
				InvestorID: arg.InvestorID,
				Kind:       arg.Kind,
				Recipient:  arg.Recipient,
				Subject:    arg.Subject,
				Status:     arg.Status,
			}, nil
		})

		notification, err := service.Send(ctx, email.KindPasswordReset, "jane@meridianfund.com", investorID, email.PasswordResetData{
			RecipientName: "Jane Smith",
			ResetURL:      "https://portal.meridianfund.com/reset",
			ExpiresIn:     "30 minutes",
		})

		require.NoError(t, err)
		assert.Equal(t, constants.SentStatus, notification.Status)
		assert.Equal(t, 1, sender.calls)
		assert.Equal(t, []string{"jane@meridianfund.com"}, sender.lastParams.To)
		assert.Contains(t, sender.lastParams.HTMLContent, "Jane Smith")
	})

	t.Run("failed delivery is recorded with the error", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		sender := &fakeEmailService{err: errors.New("provider unavailable")}
		service := services.NewNotificationService(mockQuerier, sender)

		mockQuerier.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
			assert.Equal(t, constants.FailedStatus, arg.Status)
			assert.Contains(t, arg.ErrorMessage.String, "provider unavailable")
			assert.False(t, arg.ProviderMessageID.Valid)
			return db.Notification{ID: uuid.New(), Status: arg.Status}, nil
		})

		notification, err := service.Send(ctx, email.KindPasswordReset, "jane@meridianfund.com", investorID, email.PasswordResetData{
			RecipientName: "Jane Smith",
			ResetURL:      "https://portal.meridianfund.com/reset",
			ExpiresIn:     "30 minutes",
		})

		require.Error(t, err)
		require.NotNil(t, notification)
		assert.Equal(t, constants.FailedStatus, notification.Status)
	})

	t.Run("mismatched data type fails before sending", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		sender := &fakeEmailService{messageID: "re_unused"}
		service := services.NewNotificationService(mockQuerier, sender)

		_, err := service.Send(ctx, email.KindPasswordReset, "jane@meridianfund.com", investorID, email.CapitalCallRequestData{})

		require.ErrorIs(t, err, email.ErrInvalidData)
		assert.Zero(t, sender.calls)
	})
}

func TestNotificationService_SendJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("renders from wire payload with resolved subject", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		sender := &fakeEmailService{messageID: "re_json1"}
		service := services.NewNotificationService(mockQuerier, sender)

		mockQuerier.EXPECT().CreateNotification(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, arg db.CreateNotificationParams) (db.Notification, error) {
			assert.Equal(t, "Capital Call Notice - Meridian Growth Fund II", arg.Subject)
			assert.False(t, arg.InvestorID.Valid)
			return db.Notification{ID: uuid.New(), Subject: arg.Subject, Status: arg.Status}, nil
		})

		raw := []byte(`{"RecipientName":"Jane Smith","FundName":"Meridian Growth Fund II","CallNumber":"3","AmountDue":"$50,000.00","Deadline":"January 31, 2026"}`)
		notification, err := service.SendJSON(ctx, email.KindCapitalCallRequest, "jane@meridianfund.com", uuid.Nil, raw)

		require.NoError(t, err)
		assert.Equal(t, "Capital Call Notice - Meridian Growth Fund II", notification.Subject)
		assert.Contains(t, sender.lastParams.HTMLContent, "Meridian Growth Fund II")
	})

	t.Run("unknown kind", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		sender := &fakeEmailService{}
		service := services.NewNotificationService(mockQuerier, sender)

		_, err := service.SendJSON(ctx, email.Kind("marketing.newsletter"), "jane@meridianfund.com", uuid.Nil, []byte(`{}`))

		require.ErrorIs(t, err, email.ErrUnknownKind)
		assert.Zero(t, sender.calls)
	})
}

func TestNotificationService_Preview(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewNotificationService(mockQuerier, &fakeEmailService{})

	subject, html, err := service.Preview(email.KindDistributionNotice, []byte(`{"RecipientName":"Pat","FundName":"Meridian Credit Fund","GrossAmount":"$12,000.00","NetAmount":"$12,000.00","PaymentDate":"March 31, 2026"}`))

	require.NoError(t, err)
	assert.Equal(t, "Distribution Notice - Meridian Credit Fund", subject)
	assert.Contains(t, html, "Meridian Credit Fund")
}
