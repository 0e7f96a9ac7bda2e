package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

// QueueClient publishes notification events to the SQS queue consumed by the
// notification processor.
type QueueClient struct {
	client   *sqs.Client
	queueURL string
}

// NewQueueClient creates an SQS-backed queue client. The queue URL comes from
// the NOTIFICATION_QUEUE_URL environment variable. In the local stage the
// client targets a local SQS-compatible endpoint (elasticmq/localstack) with
// static credentials.
func NewQueueClient(ctx context.Context, stage string) (*QueueClient, error) {
	queueURL := os.Getenv("NOTIFICATION_QUEUE_URL")
	if queueURL == "" {
		return nil, fmt.Errorf("NOTIFICATION_QUEUE_URL environment variable is required")
	}

	var cfg aws.Config
	var err error

	if stage == helpers.StageLocal {
		endpoint := os.Getenv("SQS_LOCAL_ENDPOINT")
		if endpoint == "" {
			endpoint = "http://localhost:9324"
		}
		cfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion("us-east-1"),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return &QueueClient{
			client: sqs.NewFromConfig(cfg, func(o *sqs.Options) {
				o.BaseEndpoint = aws.String(endpoint)
			}),
			queueURL: queueURL,
		}, nil
	}

	cfg, err = config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &QueueClient{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// Publish sends a notification event to the queue. The event type rides along
// as a message attribute so consumers can filter without parsing the body.
func (q *QueueClient) Publish(ctx context.Context, event business.QueueEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal queue event: %w", err)
	}

	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &q.queueURL,
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"EventType": {
				StringValue: &event.EventType,
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	logger.Log.Debug("Published queue event",
		zap.String("event_type", event.EventType),
	)

	return nil
}
