package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianfund/meridian-api/libs/go/helpers"
	"github.com/meridianfund/meridian-api/libs/go/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(helpers.StageLocal)
	os.Exit(m.Run())
}

func TestHandleDBError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		notFoundMsg    string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "no rows maps to 404",
			err:            pgx.ErrNoRows,
			notFoundMsg:    "Investor not found",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Investor not found",
		},
		{
			name:           "wrapped no rows maps to 404",
			err:            errors.Join(errors.New("query failed"), pgx.ErrNoRows),
			notFoundMsg:    "Fund not found",
			expectedStatus: http.StatusNotFound,
			expectedError:  "Fund not found",
		},
		{
			name:           "other errors map to 500",
			err:            errors.New("connection refused"),
			notFoundMsg:    "Investor not found",
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			handleDBError(c, tt.err, tt.notFoundMsg)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]string
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedError, response["error"])
		})
	}
}

func TestSendError_IncludesCorrelationID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	c.Set("correlationID", "corr-1234")

	sendError(c, http.StatusBadRequest, "Invalid request body", errors.New("bad json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "Invalid request body", response["error"])
	assert.Equal(t, "corr-1234", response["correlation_id"])
}

func TestRequestAccountID(t *testing.T) {
	t.Run("reads account set by auth middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("accountID", testAccountID.String())

		accountID, err := requestAccountID(c)
		require.NoError(t, err)
		assert.Equal(t, testAccountID, accountID)
	})

	t.Run("fails when middleware did not run", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		_, err := requestAccountID(c)
		assert.Error(t, err)
	})

	t.Run("fails on malformed account ID", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set("accountID", "not-a-uuid")

		_, err := requestAccountID(c)
		assert.Error(t, err)
	})
}

func TestSendPaginatedSuccess(t *testing.T) {
	tests := []struct {
		name            string
		page            int
		limit           int
		total           int
		expectedHasMore bool
		expectedPages   int
	}{
		{"first of three pages", 1, 10, 25, true, 3},
		{"last page", 3, 10, 25, false, 3},
		{"exact fit", 2, 10, 20, false, 2},
		{"empty result", 1, 10, 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			sendPaginatedSuccess(c, http.StatusOK, []string{}, tt.page, tt.limit, tt.total)

			assert.Equal(t, http.StatusOK, w.Code)

			var response PaginatedResponse
			err := json.Unmarshal(w.Body.Bytes(), &response)
			require.NoError(t, err)

			assert.Equal(t, "list", response.Object)
			assert.Equal(t, tt.expectedHasMore, response.HasMore)
			assert.Equal(t, tt.page, response.Pagination.CurrentPage)
			assert.Equal(t, tt.limit, response.Pagination.PerPage)
			assert.Equal(t, tt.total, response.Pagination.TotalItems)
			assert.Equal(t, tt.expectedPages, response.Pagination.TotalPages)
		})
	}
}
