package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/meridianfund/meridian-api/libs/go/constants"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/mocks"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
)

func TestFundService_CreateFund(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewFundService(mockQuerier)
	ctx := context.Background()

	accountID := uuid.New()
	mockQuerier.EXPECT().CreateFund(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateFundParams) (db.Fund, error) {
			assert.Equal(t, accountID, arg.AccountID)
			assert.Equal(t, constants.USDCurrency, arg.Currency)
			assert.Equal(t, int32(2026), arg.VintageYear.Int32)
			return db.Fund{
				ID:          uuid.New(),
				AccountID:   accountID,
				Name:        arg.Name,
				Currency:    arg.Currency,
				Status:      constants.FundStatusFundraising,
				VintageYear: arg.VintageYear,
			}, nil
		})

	fund, err := service.CreateFund(ctx, accountID, requests.CreateFundRequest{
		Name:        "Meridian Growth Fund II",
		ManagerName: "Meridian Capital Management",
		VintageYear: 2026,
	})

	require.NoError(t, err)
	assert.Equal(t, constants.FundStatusFundraising, fund.Status)
	assert.Equal(t, constants.USDCurrency, fund.Currency)
}

func TestFundService_CreateCommitment(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewFundService(mockQuerier)
	ctx := context.Background()

	fundID := uuid.New()
	investorID := uuid.New()

	t.Run("records a commitment", func(t *testing.T) {
		mockQuerier.EXPECT().CreateCommitment(ctx, db.CreateCommitmentParams{
			FundID:         fundID,
			InvestorID:     investorID,
			CommittedCents: 100_000_000,
		}).Return(db.Commitment{
			ID:             uuid.New(),
			FundID:         fundID,
			InvestorID:     investorID,
			CommittedCents: 100_000_000,
		}, nil)

		commitment, err := service.CreateCommitment(ctx, fundID, requests.CreateCommitmentRequest{
			InvestorID:     investorID.String(),
			CommittedCents: 100_000_000,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(100_000_000), commitment.CommittedCents)
	})

	t.Run("rejects malformed investor id", func(t *testing.T) {
		_, err := service.CreateCommitment(ctx, fundID, requests.CreateCommitmentRequest{
			InvestorID:     "not-a-uuid",
			CommittedCents: 100,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid investor id")
	})
}
