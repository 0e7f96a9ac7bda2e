package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument(t *testing.T) {
	doc := document(section(para("Hello")), "Preview text")

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(doc, "</html>"))
	assert.Contains(t, doc, "Preview text")
	assert.Contains(t, doc, "Hello")
	assert.Contains(t, doc, "Please do not reply to this email.")
	assert.Contains(t, doc, `name="viewport"`)
	assert.Equal(t, 1, strings.Count(doc, "<!DOCTYPE html>"))
	assert.Equal(t, strings.Count(doc, "<table"), strings.Count(doc, "</table>"))
}

func TestDocument_OmitsEmptyPreheader(t *testing.T) {
	doc := document(section(para("x")), "")
	assert.NotContains(t, doc, "display:none")
}

func TestHeader(t *testing.T) {
	withSub := header("Capital Call Notice", "Meridian Growth Fund II")
	assert.Contains(t, withSub, "Capital Call Notice")
	assert.Contains(t, withSub, "Meridian Growth Fund II")

	withoutSub := header("Password Reset", "")
	assert.Contains(t, withoutSub, "Password Reset")
	// A single <p> when the sub-label is omitted.
	assert.Equal(t, 1, strings.Count(withoutSub, "<p "))
}

func TestButtonRow(t *testing.T) {
	t.Run("empty slice renders nothing", func(t *testing.T) {
		assert.Equal(t, "", buttonRow(nil))
		assert.Equal(t, "", buttonRow([]emailButton{}))
	})

	t.Run("primary and secondary styling", func(t *testing.T) {
		row := buttonRow([]emailButton{
			{Label: "Approve", URL: "https://portal.example.com/approve"},
			{Label: "Decline", URL: "https://portal.example.com/decline", Secondary: true},
		})
		assert.Contains(t, row, "Approve")
		assert.Contains(t, row, "Decline")
		assert.Contains(t, row, "background-color:#1a56db")
		assert.Contains(t, row, "border:1px solid #1a56db")
		assert.Equal(t, strings.Count(row, "<table"), strings.Count(row, "</table>"))
	})
}

func TestInfoBox(t *testing.T) {
	tests := []struct {
		sev        severity
		background string
	}{
		{severityInfo, "#eff6ff"},
		{severityWarning, "#fffbeb"},
		{severitySuccess, "#ecfdf5"},
		{severityError, "#fef2f2"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sev), func(t *testing.T) {
			box := infoBox(tt.sev, "callout content")
			assert.Contains(t, box, "callout content")
			assert.Contains(t, box, tt.background)
		})
	}

	t.Run("unknown severity falls back to info", func(t *testing.T) {
		box := infoBox(severity("bogus"), "x")
		assert.Contains(t, box, "#eff6ff")
	})
}

func TestDetailBox(t *testing.T) {
	t.Run("empty slice renders nothing", func(t *testing.T) {
		assert.Equal(t, "", detailBox(nil))
	})

	t.Run("renders rows in order", func(t *testing.T) {
		box := detailBox([]detailRow{
			{Label: "Amount Due", Value: "$50,000"},
			{Label: "Deadline", Value: "January 31, 2026"},
		})
		assert.Contains(t, box, "Amount Due")
		assert.Contains(t, box, "$50,000")
		assert.Less(t, strings.Index(box, "Amount Due"), strings.Index(box, "Deadline"))
		assert.Equal(t, strings.Count(box, "<tr>"), strings.Count(box, "</tr>"))
	})
}
