package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"
)

// ErrAPIKeyInvalid is returned when a presented API key does not match any
// active key.
var ErrAPIKeyInvalid = errors.New("invalid API key")

// ErrAPIKeyExpired is returned when a presented API key matched but is past
// its expiry.
var ErrAPIKeyExpired = errors.New("API key expired")

// APIKeyService handles business logic for API key operations
type APIKeyService struct {
	db db.Querier
}

// NewAPIKeyService creates a new instance of APIKeyService
func NewAPIKeyService(database db.Querier) *APIKeyService {
	return &APIKeyService{
		db: database,
	}
}

// CreateAPIKey generates a new key, stores its bcrypt hash, and returns the
// plaintext key exactly once in the response.
func (s *APIKeyService) CreateAPIKey(ctx context.Context, accountID uuid.UUID, req requests.CreateAPIKeyRequest) (*responses.APIKeyResponse, error) {
	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	hashedKey, err := helpers.HashAPIKey(fullKey)
	if err != nil {
		return nil, err
	}

	var expiresAt pgtype.Timestamptz
	if req.ExpiresAt != nil {
		expiresAt.Time = *req.ExpiresAt
		expiresAt.Valid = true
	}

	apiKey, err := s.db.CreateAPIKey(ctx, db.CreateAPIKeyParams{
		AccountID:   accountID,
		Name:        req.Name,
		Description: helpers.StringToNullableText(req.Description),
		KeyPrefix:   keyPrefix,
		KeyHash:     hashedKey,
		AccessLevel: req.AccessLevel,
		ExpiresAt:   expiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API key: %w", err)
	}

	resp := toAPIKeyResponse(apiKey)
	resp.Key = fullKey
	return resp, nil
}

// GetAPIKey retrieves an API key scoped to an account.
func (s *APIKeyService) GetAPIKey(ctx context.Context, accountID, keyID uuid.UUID) (*responses.APIKeyResponse, error) {
	apiKey, err := s.db.GetAPIKey(ctx, db.GetAPIKeyParams{
		ID:        keyID,
		AccountID: accountID,
	})
	if err != nil {
		return nil, err
	}
	return toAPIKeyResponse(apiKey), nil
}

// ListAPIKeys retrieves all API keys for an account.
func (s *APIKeyService) ListAPIKeys(ctx context.Context, accountID uuid.UUID) ([]responses.APIKeyResponse, error) {
	apiKeys, err := s.db.ListAPIKeys(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list API keys: %w", err)
	}

	result := make([]responses.APIKeyResponse, 0, len(apiKeys))
	for _, apiKey := range apiKeys {
		result = append(result, *toAPIKeyResponse(apiKey))
	}
	return result, nil
}

// DeleteAPIKey removes an API key scoped to an account.
func (s *APIKeyService) DeleteAPIKey(ctx context.Context, accountID, keyID uuid.UUID) error {
	return s.db.DeleteAPIKey(ctx, db.DeleteAPIKeyParams{
		ID:        keyID,
		AccountID: accountID,
	})
}

// ValidateAPIKey checks a presented key against the stored hash. Keys are
// looked up by their stored prefix so only a single bcrypt compare runs per
// request. A successful validation refreshes last_used_at; failure to do so
// does not reject the key.
func (s *APIKeyService) ValidateAPIKey(ctx context.Context, fullKey string) (*db.ApiKey, error) {
	if !strings.HasPrefix(fullKey, helpers.APIKeyPrefix+"_") {
		return nil, ErrAPIKeyInvalid
	}

	apiKey, err := s.db.GetAPIKeyByPrefix(ctx, helpers.ExtractKeyPrefix(fullKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAPIKeyInvalid
		}
		return nil, fmt.Errorf("failed to look up API key: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(apiKey.KeyHash), []byte(fullKey)); err != nil {
		return nil, ErrAPIKeyInvalid
	}

	if apiKey.ExpiresAt.Valid && apiKey.ExpiresAt.Time.Before(time.Now()) {
		return nil, ErrAPIKeyExpired
	}

	if err := s.db.UpdateAPIKeyLastUsed(ctx, apiKey.ID); err != nil {
		logger.Log.Warn("failed to update API key last used",
			zap.Error(err),
			zap.String("key_id", apiKey.ID.String()))
	}

	return &apiKey, nil
}

func toAPIKeyResponse(apiKey db.ApiKey) *responses.APIKeyResponse {
	resp := &responses.APIKeyResponse{
		ID:          apiKey.ID.String(),
		Object:      "api_key",
		Name:        apiKey.Name,
		AccessLevel: apiKey.AccessLevel,
		KeyPrefix:   apiKey.KeyPrefix,
		CreatedAt:   apiKey.CreatedAt.Time.Unix(),
		UpdatedAt:   apiKey.UpdatedAt.Time.Unix(),
	}
	if apiKey.ExpiresAt.Valid {
		expiresAt := apiKey.ExpiresAt.Time.Unix()
		resp.ExpiresAt = &expiresAt
	}
	if apiKey.LastUsedAt.Valid {
		lastUsedAt := apiKey.LastUsedAt.Time.Unix()
		resp.LastUsedAt = &lastUsedAt
	}
	return resp
}
