package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianfund/meridian-api/libs/go/db"
	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/types/api/responses"
)

// fakeNotificationService records send calls and returns canned results.
type fakeNotificationService struct {
	sent          []email.Kind
	sendErr       error
	notifications []db.Notification
}

func (f *fakeNotificationService) Send(ctx context.Context, kind email.Kind, recipient string, investorID uuid.UUID, data any) (*db.Notification, error) {
	return f.SendJSON(ctx, kind, recipient, investorID, nil)
}

func (f *fakeNotificationService) SendJSON(_ context.Context, kind email.Kind, recipient string, investorID uuid.UUID, _ []byte) (*db.Notification, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, kind)
	return &db.Notification{
		ID:         uuid.New(),
		InvestorID: pgtype.UUID{Bytes: investorID, Valid: investorID != uuid.Nil},
		Kind:       string(kind),
		Recipient:  recipient,
		Subject:    "Test Subject",
		Status:     "sent",
		CreatedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}, nil
}

func (f *fakeNotificationService) Preview(kind email.Kind, raw []byte) (string, string, error) {
	// Delegate to the real registry so preview errors match production.
	html, err := email.RenderJSON(kind, raw)
	if err != nil {
		return "", "", err
	}
	return "Test Subject", html, nil
}

func (f *fakeNotificationService) ListForInvestor(_ context.Context, investorID uuid.UUID, _, _ int32) ([]db.Notification, error) {
	var out []db.Notification
	for _, n := range f.notifications {
		if n.InvestorID.Valid && uuid.UUID(n.InvestorID.Bytes) == investorID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationService) ListRecent(_ context.Context, _, _ int32) ([]db.Notification, error) {
	return f.notifications, nil
}

func newNotificationTestRouter(t *testing.T, svc *fakeNotificationService) *gin.Engine {
	t.Helper()

	common := CreateMockCommonServices(nil, nil)
	handler := NewNotificationHandler(common, svc)

	router := gin.New()
	router.POST("/notifications/send", handler.SendNotification)
	router.POST("/notifications/preview", handler.PreviewNotification)
	router.GET("/notifications/kinds", handler.ListKinds)
	router.GET("/notifications", handler.ListNotifications)
	return router
}

func TestNotificationHandler_SendNotification(t *testing.T) {
	t.Run("sends and returns the recorded notification", func(t *testing.T) {
		svc := &fakeNotificationService{}
		router := newNotificationTestRouter(t, svc)

		body, _ := json.Marshal(map[string]any{
			"kind":        string(email.KindKYCApproved),
			"recipient":   "jane@example.com",
			"investor_id": testInvestorID.String(),
			"data":        map[string]string{"RecipientName": "Jane"},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/send", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, svc.sent, 1)
		assert.Equal(t, email.KindKYCApproved, svc.sent[0])

		var response responses.NotificationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "sent", response.Status)
		assert.Equal(t, "jane@example.com", response.Recipient)
	})

	t.Run("rejects an unknown kind with 400", func(t *testing.T) {
		svc := &fakeNotificationService{sendErr: email.ErrUnknownKind}
		router := newNotificationTestRouter(t, svc)

		body, _ := json.Marshal(map[string]any{
			"kind":      "nonsense.kind",
			"recipient": "jane@example.com",
			"data":      map[string]string{},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/send", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown notification kind")
	})

	t.Run("rejects a missing recipient with 400", func(t *testing.T) {
		svc := &fakeNotificationService{}
		router := newNotificationTestRouter(t, svc)

		body, _ := json.Marshal(map[string]any{
			"kind": string(email.KindKYCApproved),
			"data": map[string]string{},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/send", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.sent)
	})
}

func TestNotificationHandler_PreviewNotification(t *testing.T) {
	t.Run("renders a registered template", func(t *testing.T) {
		router := newNotificationTestRouter(t, &fakeNotificationService{})

		body, _ := json.Marshal(map[string]any{
			"kind": string(email.KindPortalActivation),
			"data": map[string]string{
				"RecipientName": "Jane",
				"ActivationURL": "https://portal.example.com/activate/abc",
				"ExpiresIn":     "72 hours",
			},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/preview", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response responses.NotificationPreviewResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "notification_preview", response.Object)
		assert.Equal(t, string(email.KindPortalActivation), response.Kind)
		assert.Contains(t, response.HTML, "Jane")
		assert.Contains(t, response.HTML, "https://portal.example.com/activate/abc")
	})

	t.Run("rejects an unknown kind with 400", func(t *testing.T) {
		router := newNotificationTestRouter(t, &fakeNotificationService{})

		body, _ := json.Marshal(map[string]any{
			"kind": "nonsense.kind",
			"data": map[string]string{},
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/notifications/preview", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown notification kind")
	})
}

func TestNotificationHandler_ListKinds(t *testing.T) {
	router := newNotificationTestRouter(t, &fakeNotificationService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications/kinds", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response responses.NotificationKindsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "list", response.Object)
	assert.Contains(t, response.Data, string(email.KindCapitalCallRequest))
	assert.Contains(t, response.Data, string(email.KindDistributionNotice))
	assert.Contains(t, response.Data, string(email.KindWelcomeInvestor))
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	other := uuid.New()
	svc := &fakeNotificationService{
		notifications: []db.Notification{
			{ID: uuid.New(), InvestorID: pgtype.UUID{Bytes: testInvestorID, Valid: true}, Kind: "kyc.approved", Recipient: "jane@example.com", Status: "sent"},
			{ID: uuid.New(), InvestorID: pgtype.UUID{Bytes: other, Valid: true}, Kind: "kyc.invite", Recipient: "bob@example.com", Status: "sent"},
		},
	}
	router := newNotificationTestRouter(t, svc)

	t.Run("lists recent notifications", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Object string                           `json:"object"`
			Data   []responses.NotificationResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "list", response.Object)
		assert.Len(t, response.Data, 2)
	})

	t.Run("filters by investor", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/notifications?investor_id="+testInvestorID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Data []responses.NotificationResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, "kyc.approved", response.Data[0].Kind)
	})

	t.Run("rejects a malformed investor filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/notifications?investor_id=bad", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
