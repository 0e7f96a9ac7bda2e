package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/mock/gomock"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/mocks"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// ExpectFundExists sets up expectation for a fund lookup
func (m *MockDatabase) ExpectFundExists(fundID uuid.UUID, exists bool) {
	if exists {
		m.Querier.EXPECT().
			GetFund(gomock.Any(), fundID).
			Return(db.Fund{
				ID:       fundID,
				Name:     "Meridian Growth Fund II",
				Currency: "USD",
				Status:   "investing",
			}, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetFund(gomock.Any(), fundID).
			Return(db.Fund{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectInvestorExists sets up expectation for an investor lookup
func (m *MockDatabase) ExpectInvestorExists(investorID uuid.UUID, investor *db.Investor) {
	if investor != nil {
		m.Querier.EXPECT().
			GetInvestor(gomock.Any(), investorID).
			Return(*investor, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetInvestor(gomock.Any(), investorID).
			Return(db.Investor{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectCommitments sets up expectation for a fund's commitment list
func (m *MockDatabase) ExpectCommitments(fundID uuid.UUID, commitments []db.Commitment) {
	m.Querier.EXPECT().
		ListCommitmentsByFund(gomock.Any(), fundID).
		Return(commitments, nil).
		Times(1)
}

// ExpectCapitalCallExists sets up expectation for a capital call lookup
func (m *MockDatabase) ExpectCapitalCallExists(callID uuid.UUID, call *db.CapitalCall) {
	if call != nil {
		m.Querier.EXPECT().
			GetCapitalCall(gomock.Any(), callID).
			Return(*call, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetCapitalCall(gomock.Any(), callID).
			Return(db.CapitalCall{}, pgx.ErrNoRows).
			Times(1)
	}
}
