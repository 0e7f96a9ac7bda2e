package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridianfund/meridian-api/libs/go/constants"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/interfaces"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/types/api/params"
)

// NotificationService renders templated notifications, delivers them through
// the email service, and records every attempt in the notification log.
type NotificationService struct {
	db           db.Querier
	emailService interfaces.EmailService
	log          *logger.StructuredLogger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(database db.Querier, emailService interfaces.EmailService) *NotificationService {
	return &NotificationService{
		db:           database,
		emailService: emailService,
		log:          logger.NewStructuredLogger(logger.ComponentNotification),
	}
}

// Send renders the template for kind with a typed data record and delivers
// it to recipient. The notification log row is written regardless of
// delivery outcome; a failed send is recorded with status failed.
func (s *NotificationService) Send(ctx context.Context, kind email.Kind, recipient string, investorID uuid.UUID, data any) (*db.Notification, error) {
	html, err := email.Render(kind, data)
	if err != nil {
		return nil, fmt.Errorf("failed to render notification: %w", err)
	}
	return s.deliver(ctx, kind, recipient, investorID, SubjectFor(kind, data), html)
}

// SendJSON renders the template for kind from a JSON-encoded data record.
// Used by the API send endpoint and the queue processor, where template
// data arrives over the wire.
func (s *NotificationService) SendJSON(ctx context.Context, kind email.Kind, recipient string, investorID uuid.UUID, raw []byte) (*db.Notification, error) {
	html, err := email.RenderJSON(kind, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to render notification: %w", err)
	}
	return s.deliver(ctx, kind, recipient, investorID, SubjectFor(kind, json.RawMessage(raw)), html)
}

// Preview renders the template and resolves the subject without sending or
// logging anything.
func (s *NotificationService) Preview(kind email.Kind, raw []byte) (string, string, error) {
	html, err := email.RenderJSON(kind, raw)
	if err != nil {
		return "", "", fmt.Errorf("failed to render notification: %w", err)
	}
	return SubjectFor(kind, json.RawMessage(raw)), html, nil
}

func (s *NotificationService) deliver(ctx context.Context, kind email.Kind, recipient string, investorID uuid.UUID, subject, html string) (*db.Notification, error) {
	var investorRef pgtype.UUID
	if investorID != uuid.Nil {
		investorRef = pgtype.UUID{Bytes: investorID, Valid: true}
	}

	messageID, sendErr := s.emailService.SendTransactionalEmail(ctx, params.TransactionalEmailParams{
		To:          []string{recipient},
		Subject:     subject,
		HTMLContent: html,
		Tags: map[string]interface{}{
			"kind": string(kind),
		},
	})

	notificationParams := db.CreateNotificationParams{
		InvestorID: investorRef,
		Kind:       string(kind),
		Recipient:  recipient,
		Subject:    subject,
		Status:     constants.SentStatus,
	}
	if sendErr != nil {
		notificationParams.Status = constants.FailedStatus
		notificationParams.ErrorMessage = pgtype.Text{String: sendErr.Error(), Valid: true}
	} else {
		notificationParams.ProviderMessageID = pgtype.Text{String: messageID, Valid: true}
	}

	notification, err := s.db.CreateNotification(ctx, notificationParams)
	if err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	entry := s.log
	if investorID != uuid.Nil {
		entry = entry.WithInvestorID(investorID.String())
	}
	entry.LogNotificationEvent(string(kind), recipient, notification.Status)

	if sendErr != nil {
		return &notification, fmt.Errorf("failed to deliver notification: %w", sendErr)
	}
	return &notification, nil
}

// ListForInvestor returns the notification log for one investor, newest first.
func (s *NotificationService) ListForInvestor(ctx context.Context, investorID uuid.UUID, limit, offset int32) ([]db.Notification, error) {
	return s.db.ListNotificationsByInvestor(ctx, db.ListNotificationsByInvestorParams{
		InvestorID: pgtype.UUID{Bytes: investorID, Valid: true},
		Limit:      limit,
		Offset:     offset,
	})
}

// ListRecent returns the account-wide notification log, newest first.
func (s *NotificationService) ListRecent(ctx context.Context, limit, offset int32) ([]db.Notification, error) {
	return s.db.ListRecentNotifications(ctx, db.ListRecentNotificationsParams{
		Limit:  limit,
		Offset: offset,
	})
}
