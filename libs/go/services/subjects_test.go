package services_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianfund/meridian-api/libs/go/email"
	"github.com/meridianfund/meridian-api/libs/go/services"
)

func TestSubjectFor(t *testing.T) {
	tests := []struct {
		name string
		kind email.Kind
		data any
		want string
	}{
		{
			name: "static subject",
			kind: email.KindPasswordReset,
			data: email.PasswordResetData{RecipientName: "Jane"},
			want: "Reset your password",
		},
		{
			name: "fund name token",
			kind: email.KindCapitalCallRequest,
			data: email.CapitalCallRequestData{FundName: "Meridian Growth Fund II"},
			want: "Capital Call Notice - Meridian Growth Fund II",
		},
		{
			name: "multiple tokens",
			kind: email.KindCapitalCallReminder,
			data: email.CapitalCallReminderData{FundName: "Meridian Growth Fund II", Deadline: "January 31, 2026"},
			want: "Reminder: capital call due January 31, 2026 - Meridian Growth Fund II",
		},
		{
			name: "wire payload",
			kind: email.KindQuarterlyReport,
			data: json.RawMessage(`{"FundName":"Meridian Credit Fund","Quarter":"Q2 2026"}`),
			want: "Q2 2026 Report - Meridian Credit Fund",
		},
		{
			name: "empty field replaces token with nothing",
			kind: email.KindCapitalCallRequest,
			data: email.CapitalCallRequestData{},
			want: "Capital Call Notice - ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.SubjectFor(tt.kind, tt.data))
		})
	}
}

func TestSubjectFor_EveryKindHasASubject(t *testing.T) {
	for _, kind := range email.Kinds() {
		subject := services.SubjectFor(kind, json.RawMessage(`{}`))
		assert.NotEmpty(t, subject, "kind %s", kind)
		assert.NotEqual(t, string(kind), subject, "kind %s has no subject entry", kind)
	}
}
