package email_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianfund/meridian-api/libs/go/email"
)

// sampleData provides a valid data record for every registered kind, used
// by the structural tests that sweep the whole template library.
var sampleData = map[email.Kind]any{
	email.KindWelcomeInvestor:           email.WelcomeInvestorData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", ManagerName: "Crestline Partners", ActivationURL: "https://portal.example.com/activate"},
	email.KindPortalActivation:          email.PortalActivationData{RecipientName: "Alice Johnson", ActivationURL: "https://portal.example.com/activate", ExpiresIn: "72 hours"},
	email.KindActivationReminder:        email.ActivationReminderData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", ActivationURL: "https://portal.example.com/activate", ExpiresIn: "48 hours"},
	email.KindProfileCompletionReminder: email.ProfileCompletionReminderData{RecipientName: "Alice Johnson", MissingItems: []string{"Tax residency", "Bank details"}, ProfileURL: "https://portal.example.com/profile"},
	email.KindSubscriptionDocsRequest:   email.SubscriptionDocsRequestData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", CommitmentAmount: "$1,000,000", Deadline: "March 15, 2026", DocumentsURL: "https://portal.example.com/docs"},
	email.KindSubscriptionDocsReceived:  email.SubscriptionDocsReceivedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", ReceivedAt: "March 10, 2026"},
	email.KindSubscriptionAccepted:      email.SubscriptionAcceptedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", CommitmentAmount: "$1,000,000", EffectiveDate: "April 1, 2026", PortalURL: "https://portal.example.com"},
	email.KindCommitmentConfirmation:    email.CommitmentConfirmationData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", CommitmentAmount: "$1,000,000", OwnershipPercent: "2.5%", FirstCloseDate: "April 1, 2026", PortalURL: "https://portal.example.com"},

	email.KindKYCInvite:              email.KYCInviteData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", Deadline: "March 1, 2026", VerifyURL: "https://portal.example.com/kyc"},
	email.KindKYCReminder:            email.KYCReminderData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", Deadline: "March 1, 2026", VerifyURL: "https://portal.example.com/kyc"},
	email.KindKYCApproved:            email.KYCApprovedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", PortalURL: "https://portal.example.com"},
	email.KindKYCRejected:            email.KYCRejectedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", Reason: "Document illegible", SupportEmail: "support@example.com", RetryURL: "https://portal.example.com/kyc"},
	email.KindKYCExpiring:            email.KYCExpiringData{RecipientName: "Alice Johnson", ExpiryDate: "June 30, 2026", RenewURL: "https://portal.example.com/kyc"},
	email.KindAccreditationRequest:   email.AccreditationRequestData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", Deadline: "March 1, 2026", SubmitURL: "https://portal.example.com/accreditation"},
	email.KindAccreditationApproved:  email.AccreditationApprovedData{RecipientName: "Alice Johnson", ValidUntil: "March 1, 2027"},
	email.KindAccreditationExpiring:  email.AccreditationExpiringData{RecipientName: "Alice Johnson", ExpiryDate: "March 1, 2027", RenewURL: "https://portal.example.com/accreditation"},
	email.KindReverificationRequired: email.ReverificationRequiredData{RecipientName: "Alice Johnson", Reason: "Periodic review cycle", Deadline: "May 1, 2026", VerifyURL: "https://portal.example.com/kyc"},

	email.KindCapitalCallRequest:        email.CapitalCallRequestData{RecipientName: "John Doe", FundName: "Meridian Growth Fund II", CallNumber: "Call 4", AmountDue: "$50,000", Deadline: "January 31, 2026", Purpose: "Acquisition of Riverside Plaza", WireInstructions: sampleWire, PortalURL: "https://portal.example.com/calls/4"},
	email.KindCapitalCallReminder:       email.CapitalCallReminderData{RecipientName: "John Doe", FundName: "Meridian Growth Fund II", AmountDue: "$50,000", Deadline: "January 31, 2026", DaysRemaining: "5", PortalURL: "https://portal.example.com/calls/4"},
	email.KindCapitalCallOverdue:        email.CapitalCallOverdueData{RecipientName: "John Doe", FundName: "Meridian Growth Fund II", AmountDue: "$50,000", Deadline: "January 31, 2026", DaysOverdue: "7", SupportEmail: "ir@example.com", PortalURL: "https://portal.example.com/calls/4"},
	email.KindCapitalCallDefaultNotice:  email.CapitalCallDefaultNoticeData{RecipientName: "John Doe", FundName: "Meridian Growth Fund II", AmountDue: "$50,000", NoticeContent: "<p>Pursuant to Section 6.3 of the LPA...</p>", SupportEmail: "ir@example.com"},
	email.KindWireConfirmation:          email.WireConfirmationData{RecipientName: "John Doe", FundName: "Meridian Growth Fund II", AmountReceived: "$50,000", ReceivedDate: "January 28, 2026", CallNumber: "Call 4", RemainingUnfunded: "$450,000", PortalURL: "https://portal.example.com/account"},
	email.KindCapitalCallRescinded:      email.CapitalCallRescindedData{RecipientName: "John Doe", FundName: "Meridian Growth Fund II", CallNumber: "Call 4", Reason: "Transaction terminated"},
	email.KindFundingInstructionsUpdate: email.FundingInstructionsUpdateData{RecipientName: "John Doe", FundName: "Meridian Growth Fund II", EffectiveDate: "February 1, 2026", WireInstructions: sampleWire, PortalURL: "https://portal.example.com"},

	email.KindDistributionNotice:     email.DistributionNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", DistributionNumber: "D-7", GrossAmount: "$120,000", Withholding: "$12,000", NetAmount: "$108,000", PaymentDate: "February 15, 2026", Source: "Sale of Riverside Plaza", PortalURL: "https://portal.example.com"},
	email.KindDistributionPaid:       email.DistributionPaidData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", NetAmount: "$108,000", PaidDate: "February 15, 2026", AccountTail: "4821", PortalURL: "https://portal.example.com"},
	email.KindReinvestmentElection:   email.ReinvestmentElectionData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", EligibleAmount: "$108,000", ElectionDeadline: "February 10, 2026", ElectionURL: "https://portal.example.com/elections"},
	email.KindTaxWithholdingNotice:   email.TaxWithholdingNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", GrossAmount: "$120,000", WithheldAmount: "$12,000", WithholdingRate: "10%", Jurisdiction: "Germany", SupportEmail: "tax@example.com"},
	email.KindRecallableDistribution: email.RecallableDistributionData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", NetAmount: "$108,000", RecallableAmount: "$40,000", PaymentDate: "February 15, 2026", PortalURL: "https://portal.example.com"},

	email.KindDocumentRequest:           email.DocumentRequestData{RecipientName: "Alice Johnson", DocumentName: "Certificate of Formation", Reason: "Entity refresh", Deadline: "March 1, 2026", UploadURL: "https://portal.example.com/docs"},
	email.KindDocumentExpiring:          email.DocumentExpiringData{RecipientName: "Alice Johnson", DocumentName: "Passport", ExpiryDate: "April 1, 2026", UploadURL: "https://portal.example.com/docs"},
	email.KindW9Request:                 email.W9RequestData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", FormName: "W-9", Deadline: "March 1, 2026", SubmitURL: "https://portal.example.com/tax"},
	email.KindTaxDocumentAvailable:      email.TaxDocumentAvailableData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", DocumentName: "Schedule K-1", TaxYear: "2025", PortalURL: "https://portal.example.com/tax"},
	email.KindAmendedK1Notice:           email.AmendedK1NoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", TaxYear: "2025", ChangeSummary: "Revised depreciation allocation", PortalURL: "https://portal.example.com/tax"},
	email.KindComplianceCertification:   email.ComplianceCertificationData{RecipientName: "Alice Johnson", Year: "2026", Deadline: "April 30, 2026", CertifyURL: "https://portal.example.com/certify"},
	email.KindAMLReviewHold:             email.AMLReviewHoldData{RecipientName: "Alice Johnson", Reference: "AML-2026-0113", SupportEmail: "compliance@example.com"},
	email.KindBeneficialOwnershipUpdate: email.BeneficialOwnershipUpdateData{RecipientName: "Alice Johnson", EntityName: "Johnson Family Trust", Deadline: "April 30, 2026", UpdateURL: "https://portal.example.com/ownership"},

	email.KindQuarterlyReport:         email.QuarterlyReportData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", Quarter: "Q4 2025", Highlights: "NAV rose 3.2% over the quarter.", PortalURL: "https://portal.example.com/reports"},
	email.KindAnnualReport:            email.AnnualReportData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", FiscalYear: "2025", AuditorName: "Hartwell & Co. LLP", PortalURL: "https://portal.example.com/reports"},
	email.KindCapitalAccountStatement: email.CapitalAccountStatementData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", PeriodEnd: "December 31, 2025", EndingBalance: "$1,184,400", UnfundedCommitment: "$450,000", PortalURL: "https://portal.example.com/statements"},
	email.KindNAVUpdate:               email.NAVUpdateData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", AsOfDate: "December 31, 2025", NAVPerUnit: "$1,184.40", ChangePercent: "+3.2%", PortalURL: "https://portal.example.com/performance"},
	email.KindMaterialEventNotice:     email.MaterialEventNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", EventTitle: "Key person change", EventContent: "<p>The fund's managing partner...</p>", PortalURL: "https://portal.example.com"},
	email.KindAmendmentNotice:         email.AmendmentNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", DocumentName: "Limited Partnership Agreement", EffectiveDate: "May 1, 2026", AmendmentSummary: "<ul><li>Extended investment period</li></ul>", ConsentRequired: true, ConsentDeadline: "April 15, 2026", PortalURL: "https://portal.example.com/amendments"},
	email.KindAnnualMeetingInvite:     email.AnnualMeetingInviteData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", MeetingDate: "June 12, 2026", MeetingTime: "10:00 AM ET", Location: "New York, NY", RSVPDeadline: "May 29, 2026", RSVPURL: "https://portal.example.com/rsvp"},

	email.KindTransferRequestReceived: email.TransferRequestReceivedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", TransfereeName: "Beacon Holdings LLC", InterestAmount: "$500,000", Reference: "TR-2026-004", PortalURL: "https://portal.example.com/transfers"},
	email.KindTransferApproved:        email.TransferApprovedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", TransfereeName: "Beacon Holdings LLC", InterestAmount: "$500,000", EffectiveDate: "July 1, 2026", TransferProcessNote: "Executed assignment agreement required before the effective date.", PortalURL: "https://portal.example.com/transfers"},
	email.KindTransferRejected:        email.TransferRejectedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", Reference: "TR-2026-004", Reason: "Transferee failed eligibility review", SupportEmail: "ir@example.com"},
	email.KindTransferCompleted:       email.TransferCompletedData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", InterestAmount: "$500,000", RemainingInterest: "$500,000", CompletedDate: "July 1, 2026", PortalURL: "https://portal.example.com/account"},
	email.KindAssignmentNotice:        email.AssignmentNoticeData{RecipientName: "Beacon Holdings LLC", FundName: "Meridian Growth Fund II", TransferorName: "Alice Johnson", InterestAmount: "$500,000", EffectiveDate: "July 1, 2026", ActivationURL: "https://portal.example.com/activate"},

	email.KindRealizationNotice:  email.RealizationNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", AssetName: "Riverside Plaza", EventType: "sale", ExpectedProceeds: "$24,000,000", PortalURL: "https://portal.example.com"},
	email.KindDispositionSummary: email.DispositionSummaryData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", AssetName: "Riverside Plaza", ClosedDate: "August 3, 2026", Summary: "<p>Gross proceeds of $24.0M...</p>", PortalURL: "https://portal.example.com"},
	email.KindAcquisitionNotice:  email.AcquisitionNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", AssetName: "Lakeview Business Park", ClosedDate: "August 20, 2026", Summary: "<p>Acquired at a 6.1% cap rate...</p>", PortalURL: "https://portal.example.com"},
	email.KindRefinanceNotice:    email.RefinanceNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", AssetName: "Lakeview Business Park", Summary: "<p>New 7-year fixed facility...</p>", PortalURL: "https://portal.example.com"},
	email.KindFinalExitStatement: email.FinalExitStatementData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", TotalContributed: "$1,000,000", TotalDistributed: "$1,840,000", NetMultiple: "1.84x", FinalDistributionDate: "October 30, 2026", ExitClosingMessage: "Thank you for your partnership.", PortalURL: "https://portal.example.com"},
	email.KindWindDownNotice:     email.WindDownNoticeData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", ExpectedTimeline: "12 to 18 months", PortalURL: "https://portal.example.com"},
	email.KindFinalCapitalReturn: email.FinalCapitalReturnData{RecipientName: "Alice Johnson", FundName: "Meridian Growth Fund II", Amount: "$62,000", PaymentDate: "October 30, 2026", AccountTail: "4821"},

	email.KindNewInvestorRegistered: email.NewInvestorRegisteredData{ManagerName: "Dana Reese", InvestorName: "Alice Johnson", InvestorEmail: "alice@example.com", FundName: "Meridian Growth Fund II", RegisteredAt: "January 5, 2026", DashboardURL: "https://manage.example.com"},
	email.KindInvestorDocsSigned:    email.InvestorDocsSignedData{ManagerName: "Dana Reese", InvestorName: "Alice Johnson", FundName: "Meridian Growth Fund II", DocumentName: "Subscription Agreement", SignedAt: "March 10, 2026", ReviewURL: "https://manage.example.com/docs"},
	email.KindWireReceivedAlert:     email.WireReceivedAlertData{ManagerName: "Dana Reese", InvestorName: "John Doe", FundName: "Meridian Growth Fund II", Amount: "$50,000", CallNumber: "Call 4", ReceivedAt: "January 28, 2026", DashboardURL: "https://manage.example.com"},
	email.KindKYCSubmittedAlert:     email.KYCSubmittedAlertData{ManagerName: "Dana Reese", InvestorName: "Alice Johnson", SubmittedAt: "February 20, 2026", ReviewURL: "https://manage.example.com/kyc"},
	email.KindCapitalCallDigest:     email.CapitalCallDigestData{ManagerName: "Dana Reese", FundName: "Meridian Growth Fund II", CallNumber: "Call 4", TotalCalled: "$2,500,000", TotalReceived: "$1,900,000", FundedCount: "31", PendingCount: "6", OverdueCount: "2", DashboardURL: "https://manage.example.com"},

	email.KindPasswordReset:           email.PasswordResetData{RecipientName: "Alice Johnson", ResetURL: "https://portal.example.com/reset", ExpiresIn: "30 minutes"},
	email.KindNewLoginAlert:           email.NewLoginAlertData{RecipientName: "Alice Johnson", Device: "Chrome on macOS", IPAddress: "203.0.113.7", Location: "Boston, US", LoginTime: "January 5, 2026 14:02 ET", SecureURL: "https://portal.example.com/security"},
	email.KindEmailChangeConfirmation: email.EmailChangeConfirmationData{RecipientName: "Alice Johnson", NewEmail: "alice.new@example.com", ConfirmURL: "https://portal.example.com/confirm", ExpiresIn: "24 hours"},
}

var sampleWire = email.WireInstructions{
	BankName:      "First National Bank",
	BankAddress:   "100 Main St, New York, NY",
	AccountName:   "Meridian Growth Fund II LP",
	AccountNumber: "000123456789",
	RoutingNumber: "021000021",
	SwiftCode:     "FNBKUS33",
	Reference:     "MGFII-CALL4-DOE",
}

// TestTemplates_StructuralCompleteness sweeps every registered template and
// checks the structural invariants shared by all rendered emails.
func TestTemplates_StructuralCompleteness(t *testing.T) {
	kinds := email.Kinds()
	require.Len(t, sampleData, len(kinds), "sampleData must cover every registered kind")

	for _, kind := range kinds {
		t.Run(string(kind), func(t *testing.T) {
			data, ok := sampleData[kind]
			require.True(t, ok, "missing sample data for %s", kind)

			html, err := email.Render(kind, data)
			require.NoError(t, err)

			assert.Equal(t, 1, strings.Count(html, "<!DOCTYPE html>"))
			assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
			assert.True(t, strings.HasSuffix(html, "</html>"))
			assert.Equal(t, 1, strings.Count(html, "<head>"))
			assert.Equal(t, 1, strings.Count(html, "</head>"))
			assert.Equal(t, 1, strings.Count(html, "<body "))
			assert.Equal(t, 1, strings.Count(html, "</body>"))
			assert.Equal(t, strings.Count(html, "<table"), strings.Count(html, "</table>"), "unbalanced <table>")
			assert.Equal(t, strings.Count(html, "<tr>"), strings.Count(html, "</tr>"), "unbalanced <tr>")
			assert.Equal(t, strings.Count(html, "<td"), strings.Count(html, "</td>"), "unbalanced <td>")
			assert.NotContains(t, html, "—", "em dash in template copy")
		})
	}
}

func TestTemplates_EscapesInvestorSuppliedText(t *testing.T) {
	html := email.RenderKYCRejected(email.KYCRejectedData{
		RecipientName: `"><img src=x onerror=alert(1)>`,
		FundName:      "Fund <script>alert('x')</script>",
		Reason:        "Name & ID mismatch",
		SupportEmail:  "support@example.com",
		RetryURL:      "https://portal.example.com/kyc",
	})

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, `"><img`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&quot;&gt;&lt;img")
	assert.Contains(t, html, "Name &amp; ID mismatch")
}

func TestTemplates_TrustedHTMLPassThrough(t *testing.T) {
	tests := []struct {
		name string
		html string
		raw  string
	}{
		{
			name: "amendment summary",
			html: email.RenderAmendmentNotice(email.AmendmentNoticeData{
				RecipientName:    "Alice Johnson",
				FundName:         "Meridian Growth Fund II",
				DocumentName:     "LPA",
				EffectiveDate:    "May 1, 2026",
				AmendmentSummary: "<ul><li>Extended investment period</li></ul>",
				PortalURL:        "https://portal.example.com",
			}),
			raw: "<ul><li>Extended investment period</li></ul>",
		},
		{
			name: "material event content",
			html: email.RenderMaterialEventNotice(email.MaterialEventNoticeData{
				RecipientName: "Alice Johnson",
				FundName:      "Meridian Growth Fund II",
				EventTitle:    "Key person change",
				EventContent:  "<p><strong>Effective immediately</strong>...</p>",
				PortalURL:     "https://portal.example.com",
			}),
			raw: "<p><strong>Effective immediately</strong>...</p>",
		},
		{
			name: "legal default notice content",
			html: email.RenderCapitalCallDefaultNotice(email.CapitalCallDefaultNoticeData{
				RecipientName: "John Doe",
				FundName:      "Meridian Growth Fund II",
				AmountDue:     "$50,000",
				NoticeContent: "<ol><li>Cure period of 10 business days</li></ol>",
				SupportEmail:  "ir@example.com",
			}),
			raw: "<ol><li>Cure period of 10 business days</li></ol>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.html, tt.raw, "trusted HTML must appear verbatim")
		})
	}
}

func TestTemplates_ConditionalBlocks(t *testing.T) {
	t.Run("capital call purpose omitted when empty", func(t *testing.T) {
		data := sampleData[email.KindCapitalCallRequest].(email.CapitalCallRequestData)

		data.Purpose = "Acquisition of Riverside Plaza"
		withPurpose := email.RenderCapitalCallRequest(data)
		assert.Contains(t, withPurpose, "Purpose of this call:")
		assert.Contains(t, withPurpose, "Acquisition of Riverside Plaza")

		data.Purpose = ""
		withoutPurpose := email.RenderCapitalCallRequest(data)
		assert.NotContains(t, withoutPurpose, "Purpose of this call:")
	})

	t.Run("transfer process note omitted when empty", func(t *testing.T) {
		data := sampleData[email.KindTransferApproved].(email.TransferApprovedData)

		data.TransferProcessNote = "Executed assignment agreement required."
		withNote := email.RenderTransferApproved(data)
		assert.Contains(t, withNote, "Executed assignment agreement required.")

		data.TransferProcessNote = ""
		withoutNote := email.RenderTransferApproved(data)
		// The info-box callout disappears entirely with the note.
		assert.NotContains(t, withoutNote, "#eff6ff")
	})

	t.Run("amendment consent block only when required", func(t *testing.T) {
		data := sampleData[email.KindAmendmentNotice].(email.AmendmentNoticeData)

		data.ConsentRequired = true
		withConsent := email.RenderAmendmentNotice(data)
		assert.Contains(t, withConsent, "requires investor consent")
		assert.Contains(t, withConsent, "Review &amp; Respond")

		data.ConsentRequired = false
		withoutConsent := email.RenderAmendmentNotice(data)
		assert.NotContains(t, withoutConsent, "requires investor consent")
		assert.Contains(t, withoutConsent, "View Full Amendment")
	})

	t.Run("login alert location row omitted when empty", func(t *testing.T) {
		data := sampleData[email.KindNewLoginAlert].(email.NewLoginAlertData)
		data.Location = ""
		html := email.RenderNewLoginAlert(data)
		assert.NotContains(t, html, "Location")
	})
}

// TestCapitalCallRequest_Scenario is the canonical capital call example.
func TestCapitalCallRequest_Scenario(t *testing.T) {
	html := email.RenderCapitalCallRequest(email.CapitalCallRequestData{
		RecipientName: "John Doe",
		FundName:      "Meridian Growth Fund II",
		CallNumber:    "Call 4",
		AmountDue:     "$50,000",
		Deadline:      "January 31, 2026",
		WireInstructions: email.WireInstructions{
			BankName:      "First National Bank",
			AccountName:   "Meridian Growth Fund II LP",
			AccountNumber: "000123456789",
			RoutingNumber: "021000021",
		},
		PortalURL: "https://portal.example.com/calls/4",
	})

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "John Doe")
	assert.Contains(t, html, "$50,000")
	assert.Contains(t, html, "January 31, 2026")
	assert.Contains(t, html, "First National Bank")
	assert.Equal(t, strings.Count(html, "<table"), strings.Count(html, "</table>"))
}

// TestFinalExitStatement_Scenario checks the closing-message omission case.
func TestFinalExitStatement_Scenario(t *testing.T) {
	html := email.RenderFinalExitStatement(email.FinalExitStatementData{
		RecipientName:         "Alice Johnson",
		FundName:              "Meridian Growth Fund II",
		TotalContributed:      "$1,000,000",
		TotalDistributed:      "$1,840,000",
		NetMultiple:           "1.84x",
		FinalDistributionDate: "October 30, 2026",
		ExitClosingMessage:    "",
		PortalURL:             "https://portal.example.com",
	})

	assert.Contains(t, html, "fully liquidated")
	assert.Contains(t, html, "$1,000,000")
	assert.Contains(t, html, "$1,840,000")
	assert.Contains(t, html, "1.84x")
	assert.Contains(t, html, "October 30, 2026")
	assert.NotContains(t, html, "Thank you for your partnership")
}
