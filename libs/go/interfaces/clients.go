package interfaces

import (
	"context"

	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

// QueuePublisher publishes domain events to the notification queue
type QueuePublisher interface {
	Publish(ctx context.Context, event business.QueueEvent) error
}

// SecretsClient fetches secret values from the secrets store
type SecretsClient interface {
	GetSecretString(ctx context.Context, arnEnvVar, fallbackEnvVar string) (string, error)
}
