package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/meridianfund/meridian-api/libs/go/constants"
	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/mocks"
	"github.com/meridianfund/meridian-api/libs/go/services"
	"github.com/meridianfund/meridian-api/libs/go/testutil"
	"github.com/meridianfund/meridian-api/libs/go/types/api/requests"
	"github.com/meridianfund/meridian-api/libs/go/types/business"
)

func TestDistributionService_CreateDistribution(t *testing.T) {
	ctx := context.Background()

	fundID := uuid.New()
	investorA := uuid.New()
	investorB := uuid.New()

	t.Run("declares with pro-rata allocations and publishes per investor", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		publisher := &fakePublisher{}
		service := services.NewDistributionService(mockQuerier, publisher)

		distributionID := uuid.New()

		mockQuerier.EXPECT().GetFund(ctx, fundID).Return(db.Fund{ID: fundID}, nil)
		mockQuerier.EXPECT().ListDistributionsByFund(ctx, fundID).Return([]db.Distribution{
			{ID: uuid.New(), DistributionNumber: 1},
		}, nil)
		mockQuerier.EXPECT().ListCommitmentsByFund(ctx, fundID).Return([]db.Commitment{
			{FundID: fundID, InvestorID: investorA, CommittedCents: 60_000_000},
			{FundID: fundID, InvestorID: investorB, CommittedCents: 40_000_000},
		}, nil)
		mockQuerier.EXPECT().CreateDistribution(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateDistributionParams) (db.Distribution, error) {
				assert.Equal(t, int32(2), arg.DistributionNumber)
				assert.Equal(t, "capital_gain", arg.Classification)
				assert.Equal(t, "2026-06-30", arg.PaymentDate.Time.Format("2006-01-02"))
				assert.True(t, arg.Recallable)
				return db.Distribution{
					ID:                 distributionID,
					FundID:             fundID,
					DistributionNumber: arg.DistributionNumber,
					TotalAmountCents:   arg.TotalAmountCents,
					Classification:     arg.Classification,
					Recallable:         arg.Recallable,
				}, nil
			})
		mockQuerier.EXPECT().CreateDistributionAllocation(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.CreateDistributionAllocationParams) (db.DistributionAllocation, error) {
				assert.Equal(t, distributionID, arg.DistributionID)
				return db.DistributionAllocation{
					ID:               uuid.New(),
					DistributionID:   arg.DistributionID,
					InvestorID:       arg.InvestorID,
					AmountCents:      arg.AmountCents,
					WithholdingCents: arg.WithholdingCents,
					Status:           constants.PendingStatus,
				}, nil
			}).Times(2)

		distribution, allocations, err := service.CreateDistribution(ctx, fundID, requests.CreateDistributionRequest{
			TotalAmountCents: 5_000_000,
			PaymentDate:      "2026-06-30",
			Source:           "Sale of portfolio company Apex Logistics",
			Classification:   "capital_gain",
			Recallable:       true,
			WithholdingBps:   500,
		})

		require.NoError(t, err)
		assert.Equal(t, int32(2), distribution.DistributionNumber)
		require.Len(t, allocations, 2)

		amounts := map[uuid.UUID]int64{}
		withheld := map[uuid.UUID]int64{}
		var total int64
		for _, a := range allocations {
			amounts[a.InvestorID] = a.AmountCents
			withheld[a.InvestorID] = a.WithholdingCents
			total += a.AmountCents
		}
		assert.Equal(t, int64(3_000_000), amounts[investorA])
		assert.Equal(t, int64(2_000_000), amounts[investorB])
		assert.Equal(t, int64(5_000_000), total)

		// 500 bps withheld from each gross allocation.
		assert.Equal(t, int64(150_000), withheld[investorA])
		assert.Equal(t, int64(100_000), withheld[investorB])

		require.Len(t, publisher.events, 2)
		for _, event := range publisher.events {
			assert.Equal(t, business.EventDistributionDeclared, event.EventType)
			assert.Equal(t, distributionID, event.DistributionID)
		}
	})

	t.Run("no commitments", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		service := services.NewDistributionService(mockDB.Querier, &fakePublisher{})

		mockDB.ExpectFundExists(fundID, true)
		mockDB.Querier.EXPECT().ListDistributionsByFund(ctx, fundID).Return(nil, nil)
		mockDB.ExpectCommitments(fundID, nil)

		_, _, err := service.CreateDistribution(ctx, fundID, requests.CreateDistributionRequest{
			TotalAmountCents: 100,
			PaymentDate:      "2026-06-30",
			Classification:   "income",
		})

		require.ErrorIs(t, err, services.ErrNoActiveCommitments)
	})

	t.Run("unknown fund", func(t *testing.T) {
		mockDB := testutil.NewMockDatabase(t)
		service := services.NewDistributionService(mockDB.Querier, &fakePublisher{})

		mockDB.ExpectFundExists(fundID, false)

		_, _, err := service.CreateDistribution(ctx, fundID, requests.CreateDistributionRequest{
			TotalAmountCents: 100,
			PaymentDate:      "2026-06-30",
			Classification:   "income",
		})

		require.Error(t, err)
	})
}

func TestDistributionService_MarkAllocationPaid(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	publisher := &fakePublisher{}
	service := services.NewDistributionService(mockQuerier, publisher)
	ctx := context.Background()

	fundID := uuid.New()
	distributionID := uuid.New()
	investorID := uuid.New()
	allocationID := uuid.New()

	paid := db.DistributionAllocation{
		ID:             allocationID,
		DistributionID: distributionID,
		InvestorID:     investorID,
		AmountCents:    1_250_000,
		Status:         constants.PaidStatus,
		PaidAt:         pgtype.Timestamptz{Valid: true},
	}

	mockQuerier.EXPECT().MarkDistributionAllocationPaid(ctx, allocationID).Return(paid, nil)
	mockQuerier.EXPECT().GetDistribution(ctx, distributionID).Return(db.Distribution{
		ID:     distributionID,
		FundID: fundID,
	}, nil)
	mockQuerier.EXPECT().AddCommitmentDistribution(ctx, db.AddCommitmentDistributionParams{
		FundID:      fundID,
		InvestorID:  investorID,
		AmountCents: 1_250_000,
	}).Return(db.Commitment{}, nil)

	result, err := service.MarkAllocationPaid(ctx, allocationID)

	require.NoError(t, err)
	assert.Equal(t, constants.PaidStatus, result.Status)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, business.EventDistributionPaid, publisher.events[0].EventType)
	assert.Equal(t, investorID, publisher.events[0].InvestorID)
}
