package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/meridianfund/meridian-api/libs/go/db"
)

// Test helpers and fixtures

var (
	testAccountID  = uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	testInvestorID = uuid.MustParse("11234567-89ab-cdef-0123-456789abcdef")
	testFundID     = uuid.MustParse("21234567-89ab-cdef-0123-456789abcdef")
	testCallID     = uuid.MustParse("31234567-89ab-cdef-0123-456789abcdef")
)

// createTestInvestor creates a test investor with required fields
func createTestInvestor() db.Investor {
	now := time.Now()
	return db.Investor{
		ID:                  testInvestorID,
		AccountID:           testAccountID,
		Email:               "jane@example.com",
		LegalName:           "Jane Smith Revocable Trust",
		EntityType:          "trust",
		KycStatus:           "pending",
		AccreditationStatus: "pending",
		CreatedAt:           pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// createTestCapitalCall creates a draft capital call against the test fund
func createTestCapitalCall(totalCents int64) db.CapitalCall {
	now := time.Now()
	return db.CapitalCall{
		ID:               testCallID,
		FundID:           testFundID,
		CallNumber:       1,
		TotalAmountCents: totalCents,
		DueDate:          pgtype.Date{Time: now.Add(14 * 24 * time.Hour), Valid: true},
		Status:           "draft",
		CreatedAt:        pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// createTestCommitment creates an active commitment for an investor
func createTestCommitment(investorID uuid.UUID, committedCents int64) db.Commitment {
	now := time.Now()
	return db.Commitment{
		ID:             uuid.New(),
		FundID:         testFundID,
		InvestorID:     investorID,
		CommittedCents: committedCents,
		Status:         "active",
		CreatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: now, Valid: true},
	}
}
