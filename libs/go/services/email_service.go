package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/meridianfund/meridian-api/libs/go/types/api/params"
)

// EmailSender is the subset of the Resend client the service depends on.
// Tests substitute a fake; production wiring passes resend.Client.Emails.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailService sends transactional email through Resend.
type EmailService struct {
	sender    EmailSender
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewEmailService creates an email service backed by the Resend API.
func NewEmailService(apiKey string, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)

	return &EmailService{
		sender:    client.Emails,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// NewEmailServiceWithSender creates an email service with a custom sender.
func NewEmailServiceWithSender(sender EmailSender, fromEmail string, fromName string, logger *zap.Logger) *EmailService {
	return &EmailService{
		sender:    sender,
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendTransactionalEmail sends a single transactional email and returns the
// provider message ID.
func (s *EmailService) SendTransactionalEmail(ctx context.Context, p params.TransactionalEmailParams) (string, error) {
	from := p.From
	fromName := p.FromName
	if from == "" {
		from = s.fromEmail
	}
	if fromName == "" {
		fromName = s.fromName
	}

	emailParams := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", fromName, from),
		To:      p.To,
		Subject: p.Subject,
		Html:    p.HTMLContent,
		Text:    p.TextContent,
		Cc:      p.CC,
		Bcc:     p.BCC,
		Headers: buildHeaders(p.Headers),
		Tags:    convertToResendTags(p.Tags),
	}
	if p.ReplyTo != nil {
		emailParams.ReplyTo = *p.ReplyTo
	}
	for _, att := range p.Attachments {
		emailParams.Attachments = append(emailParams.Attachments, &resend.Attachment{
			Filename:    att.Filename,
			Content:     att.Content,
			ContentType: att.ContentType,
		})
	}

	sent, err := s.sender.SendWithContext(ctx, emailParams)
	if err != nil {
		s.logger.Error("failed to send transactional email",
			zap.Error(err),
			zap.Strings("to", p.To),
			zap.String("subject", p.Subject))
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("transactional email sent",
		zap.String("email_id", sent.Id),
		zap.Strings("to", p.To),
		zap.String("subject", p.Subject))

	return sent.Id, nil
}

// BatchEmailRequest is one email in a batch send.
type BatchEmailRequest struct {
	To      []string
	Subject string
	HTML    string
	Text    string
	Tags    map[string]interface{}
}

// BatchEmailResult records the outcome of one email in a batch.
type BatchEmailResult struct {
	Index     int
	MessageID string
	Success   bool
	Error     error
}

// SendBatchEmails sends multiple emails sequentially with a short pause
// between sends to stay under the provider rate limit.
func (s *EmailService) SendBatchEmails(ctx context.Context, requests []BatchEmailRequest) ([]BatchEmailResult, error) {
	results := make([]BatchEmailResult, len(requests))

	for i, req := range requests {
		messageID, err := s.SendTransactionalEmail(ctx, params.TransactionalEmailParams{
			To:          req.To,
			Subject:     req.Subject,
			HTMLContent: req.HTML,
			TextContent: req.Text,
			Tags:        req.Tags,
		})
		results[i] = BatchEmailResult{
			Index:     i,
			MessageID: messageID,
			Success:   err == nil,
			Error:     err,
		}

		if i < len(requests)-1 {
			select {
			case <-ctx.Done():
				return results, ctx.Err()
			case <-time.After(100 * time.Millisecond):
			}
		}
	}

	return results, nil
}

// buildHeaders merges caller headers with a unique entity reference header
// used for provider-side deduplication.
func buildHeaders(headers map[string]string) map[string]string {
	merged := map[string]string{
		"X-Entity-Ref-ID": uuid.New().String(),
	}
	for k, v := range headers {
		merged[k] = v
	}
	return merged
}

func convertToResendTags(tags map[string]interface{}) []resend.Tag {
	var resendTags []resend.Tag
	for name, value := range tags {
		resendTags = append(resendTags, resend.Tag{
			Name:  name,
			Value: fmt.Sprintf("%v", value),
		})
	}
	return resendTags
}
