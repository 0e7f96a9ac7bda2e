package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_UnknownKind(t *testing.T) {
	html, err := Render(Kind("nonsense.kind"), WelcomeInvestorData{})
	assert.Empty(t, html)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Contains(t, err.Error(), "nonsense.kind")
}

func TestRender_MismatchedData(t *testing.T) {
	html, err := Render(KindPasswordReset, WelcomeInvestorData{RecipientName: "Jane"})
	assert.Empty(t, html)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidData)
	assert.Contains(t, err.Error(), "PasswordResetData")
	assert.Contains(t, err.Error(), "WelcomeInvestorData")
}

func TestRender_Dispatch(t *testing.T) {
	html, err := Render(KindPasswordReset, PasswordResetData{
		RecipientName: "Jane Smith",
		ResetURL:      "https://portal.example.com/reset?token=abc",
		ExpiresIn:     "30 minutes",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Jane Smith")
	assert.Contains(t, html, "30 minutes")
}

func TestRenderJSON(t *testing.T) {
	raw := []byte(`{
		"RecipientName": "Jane Smith",
		"ResetURL": "https://portal.example.com/reset?token=abc",
		"ExpiresIn": "30 minutes"
	}`)
	html, err := RenderJSON(KindPasswordReset, raw)
	require.NoError(t, err)
	assert.Contains(t, html, "Jane Smith")
	assert.Contains(t, html, "30 minutes")
}

func TestRenderJSON_UnknownKind(t *testing.T) {
	_, err := RenderJSON(Kind("nonsense.kind"), []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRenderJSON_MalformedPayload(t *testing.T) {
	_, err := RenderJSON(KindPasswordReset, []byte(`{"RecipientName": 42`))
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestIsRegistered(t *testing.T) {
	assert.True(t, IsRegistered(KindCapitalCallRequest))
	assert.True(t, IsRegistered(KindFinalExitStatement))
	assert.False(t, IsRegistered(Kind("capital_call.bogus")))
}

func TestKinds_SortedAndComplete(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, len(registry))
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, string(kinds[i-1]), string(kinds[i]))
	}
	for _, k := range kinds {
		assert.True(t, IsRegistered(k))
	}
}
