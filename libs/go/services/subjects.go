package services

import (
	"encoding/json"
	"strings"

	"github.com/meridianfund/meridian-api/libs/go/email"
)

// subjects maps every notification kind to its subject line. Tokens in
// double braces name fields of the template's data record and are replaced
// with the field value at send time.
var subjects = map[email.Kind]string{
	email.KindWelcomeInvestor:           "Welcome to {{FundName}}",
	email.KindPortalActivation:          "Activate your {{FundName}} investor portal account",
	email.KindActivationReminder:        "Reminder: activate your investor portal account",
	email.KindProfileCompletionReminder: "Action needed: complete your investor profile",
	email.KindSubscriptionDocsRequest:   "Subscription documents for {{FundName}}",
	email.KindSubscriptionDocsReceived:  "We received your subscription documents",
	email.KindSubscriptionAccepted:      "Your subscription to {{FundName}} has been accepted",
	email.KindCommitmentConfirmation:    "Commitment confirmation - {{FundName}}",

	email.KindKYCInvite:              "Complete your identity verification",
	email.KindKYCReminder:            "Reminder: identity verification pending",
	email.KindKYCApproved:            "Identity verification approved",
	email.KindKYCRejected:            "Identity verification - additional information required",
	email.KindKYCExpiring:            "Your identity verification is expiring soon",
	email.KindAccreditationRequest:   "Accreditation verification required",
	email.KindAccreditationApproved:  "Accreditation verification approved",
	email.KindAccreditationExpiring:  "Your accreditation verification is expiring soon",
	email.KindReverificationRequired: "Re-verification required for your account",

	email.KindCapitalCallRequest:        "Capital Call Notice - {{FundName}}",
	email.KindCapitalCallReminder:       "Reminder: capital call due {{Deadline}} - {{FundName}}",
	email.KindCapitalCallOverdue:        "Overdue: capital call payment - {{FundName}}",
	email.KindCapitalCallDefaultNotice:  "Notice of Default - {{FundName}}",
	email.KindWireConfirmation:          "Wire received - {{FundName}}",
	email.KindCapitalCallRescinded:      "Capital call rescinded - {{FundName}}",
	email.KindFundingInstructionsUpdate: "Updated wire instructions - {{FundName}}",

	email.KindDistributionNotice:     "Distribution Notice - {{FundName}}",
	email.KindDistributionPaid:       "Distribution paid - {{FundName}}",
	email.KindReinvestmentElection:   "Reinvestment election - {{FundName}}",
	email.KindTaxWithholdingNotice:   "Tax withholding notice - {{FundName}}",
	email.KindRecallableDistribution: "Recallable distribution notice - {{FundName}}",

	email.KindDocumentRequest:           "Document request from {{FundName}}",
	email.KindDocumentExpiring:          "Document expiring: {{DocumentName}}",
	email.KindW9Request:                 "W-9 form required",
	email.KindTaxDocumentAvailable:      "Your {{TaxYear}} tax documents are available",
	email.KindAmendedK1Notice:           "Amended Schedule K-1 - {{FundName}}",
	email.KindComplianceCertification:   "Annual compliance certification required",
	email.KindAMLReviewHold:             "Account under review",
	email.KindBeneficialOwnershipUpdate: "Beneficial ownership information update required",

	email.KindQuarterlyReport:         "{{Quarter}} Report - {{FundName}}",
	email.KindAnnualReport:            "{{FiscalYear}} Annual Report - {{FundName}}",
	email.KindCapitalAccountStatement: "Capital account statement - {{FundName}}",
	email.KindNAVUpdate:               "NAV update - {{FundName}}",
	email.KindMaterialEventNotice:     "Material event notice - {{FundName}}",
	email.KindAmendmentNotice:         "Amendment to fund documents - {{FundName}}",
	email.KindAnnualMeetingInvite:     "Annual investor meeting - {{FundName}}",

	email.KindTransferRequestReceived: "Transfer request received",
	email.KindTransferApproved:        "Transfer request approved",
	email.KindTransferRejected:        "Transfer request declined",
	email.KindTransferCompleted:       "Transfer completed",
	email.KindAssignmentNotice:        "Notice of assignment - {{FundName}}",

	email.KindRealizationNotice:  "Realization notice - {{FundName}}",
	email.KindDispositionSummary: "Disposition summary - {{FundName}}",
	email.KindAcquisitionNotice:  "New investment - {{FundName}}",
	email.KindRefinanceNotice:    "Refinancing notice - {{FundName}}",
	email.KindFinalExitStatement: "Final exit statement - {{FundName}}",
	email.KindWindDownNotice:     "Fund wind-down notice - {{FundName}}",
	email.KindFinalCapitalReturn: "Final capital return - {{FundName}}",

	email.KindNewInvestorRegistered: "New investor registered: {{InvestorName}}",
	email.KindInvestorDocsSigned:    "Subscription documents signed: {{InvestorName}}",
	email.KindWireReceivedAlert:     "Wire received: {{InvestorName}}",
	email.KindKYCSubmittedAlert:     "KYC submitted: {{InvestorName}}",
	email.KindCapitalCallDigest:     "Capital call funding digest - {{FundName}}",

	email.KindPasswordReset:           "Reset your password",
	email.KindNewLoginAlert:           "New sign-in to your account",
	email.KindEmailChangeConfirmation: "Confirm your new email address",
}

// SubjectFor resolves the subject line for a notification. Tokens are
// replaced with matching string fields from the template data record;
// unmatched tokens are left in place.
func SubjectFor(kind email.Kind, data any) string {
	subject, ok := subjects[kind]
	if !ok {
		return string(kind)
	}
	if !strings.Contains(subject, "{{") {
		return subject
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return subject
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return subject
	}

	var pairs []string
	for name, value := range fields {
		if s, ok := value.(string); ok {
			pairs = append(pairs, "{{"+name+"}}", s)
		}
	}
	return strings.NewReplacer(pairs...).Replace(subject)
}
