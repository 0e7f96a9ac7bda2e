package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/logger"
	"github.com/meridianfund/meridian-api/libs/go/mocks"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
)

func init() {
	logger.InitLogger("test")
}

func TestAPIKeyService_CreateAPIKey(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewAPIKeyService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	futureTime := time.Now().Add(30 * 24 * time.Hour)

	tests := []struct {
		name        string
		req         requests.CreateAPIKeyRequest
		setupMocks  func()
		wantErr     bool
		errorString string
	}{
		{
			name: "successfully creates API key",
			req: requests.CreateAPIKeyRequest{
				Name:        "Reporting integration",
				Description: "Read-only key for the reporting pipeline",
				ExpiresAt:   &futureTime,
				AccessLevel: "read",
			},
			setupMocks: func() {
				mockQuerier.EXPECT().CreateAPIKey(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, arg db.CreateAPIKeyParams) (db.ApiKey, error) {
						assert.Equal(t, accountID, arg.AccountID)
						assert.Equal(t, "Reporting integration", arg.Name)
						assert.True(t, strings.HasPrefix(arg.KeyPrefix, "mrk_"))
						assert.True(t, strings.HasPrefix(arg.KeyHash, "$2"))
						assert.True(t, arg.ExpiresAt.Valid)
						return db.ApiKey{
							ID:          uuid.New(),
							AccountID:   accountID,
							Name:        arg.Name,
							KeyPrefix:   arg.KeyPrefix,
							AccessLevel: arg.AccessLevel,
							ExpiresAt:   arg.ExpiresAt,
						}, nil
					})
			},
		},
		{
			name: "database error",
			req: requests.CreateAPIKeyRequest{
				Name:        "Broken key",
				AccessLevel: "write",
			},
			setupMocks: func() {
				mockQuerier.EXPECT().CreateAPIKey(ctx, gomock.Any()).
					Return(db.ApiKey{}, errors.New("connection refused"))
			},
			wantErr:     true,
			errorString: "failed to create API key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			resp, err := service.CreateAPIKey(ctx, accountID, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "api_key", resp.Object)
			assert.True(t, strings.HasPrefix(resp.Key, "mrk_"))
			assert.True(t, strings.HasPrefix(resp.Key, resp.KeyPrefix))
			assert.NotNil(t, resp.ExpiresAt)
		})
	}
}

func TestAPIKeyService_ValidateAPIKey(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	fullKey, keyPrefix, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	keyHash, err := helpers.HashAPIKey(fullKey)
	require.NoError(t, err)

	storedKey := db.ApiKey{
		ID:          uuid.New(),
		AccountID:   accountID,
		Name:        "Portal key",
		KeyPrefix:   keyPrefix,
		KeyHash:     keyHash,
		AccessLevel: "admin",
	}

	tests := []struct {
		name       string
		presented  string
		setupMocks func(m *mocks.MockQuerier)
		wantErr    error
	}{
		{
			name:      "valid key",
			presented: fullKey,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetAPIKeyByPrefix(ctx, keyPrefix).Return(storedKey, nil)
				m.EXPECT().UpdateAPIKeyLastUsed(ctx, storedKey.ID).Return(nil)
			},
		},
		{
			name:       "wrong prefix scheme",
			presented:  "sk_live_abcdef",
			setupMocks: func(m *mocks.MockQuerier) {},
			wantErr:    services.ErrAPIKeyInvalid,
		},
		{
			name:      "unknown key",
			presented: fullKey,
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().GetAPIKeyByPrefix(ctx, keyPrefix).Return(db.ApiKey{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrAPIKeyInvalid,
		},
		{
			name:      "hash mismatch",
			presented: fullKey,
			setupMocks: func(m *mocks.MockQuerier) {
				tampered := storedKey
				tampered.KeyHash = "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv"
				m.EXPECT().GetAPIKeyByPrefix(ctx, keyPrefix).Return(tampered, nil)
			},
			wantErr: services.ErrAPIKeyInvalid,
		},
		{
			name:      "expired key",
			presented: fullKey,
			setupMocks: func(m *mocks.MockQuerier) {
				expired := storedKey
				expired.ExpiresAt = pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true}
				m.EXPECT().GetAPIKeyByPrefix(ctx, keyPrefix).Return(expired, nil)
			},
			wantErr: services.ErrAPIKeyExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuerier := mocks.NewMockQuerierForTest(t)
			tt.setupMocks(mockQuerier)
			service := services.NewAPIKeyService(mockQuerier)

			apiKey, err := service.ValidateAPIKey(ctx, tt.presented)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, apiKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, storedKey.ID, apiKey.ID)
			assert.Equal(t, accountID, apiKey.AccountID)
		})
	}
}

func TestAPIKeyService_ListAPIKeys(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewAPIKeyService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	mockQuerier.EXPECT().ListAPIKeys(ctx, accountID).Return([]db.ApiKey{
		{ID: uuid.New(), AccountID: accountID, Name: "First", KeyPrefix: "mrk_aaaaaaaa", AccessLevel: "read", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), AccountID: accountID, Name: "Second", KeyPrefix: "mrk_bbbbbbbb", AccessLevel: "admin", CreatedAt: now, UpdatedAt: now, LastUsedAt: now},
	}, nil)

	keys, err := service.ListAPIKeys(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "First", keys[0].Name)
	assert.Empty(t, keys[0].Key)
	assert.Nil(t, keys[0].LastUsedAt)
	assert.NotNil(t, keys[1].LastUsedAt)
}
