// Package email renders the HTML notification emails sent to investors and
// fund managers. Every template is a pure function from a typed data record
// to a complete HTML document; plain-text fields are HTML-escaped exactly
// once, fields typed TrustedHTML are interpolated verbatim, and rendering
// never performs I/O.
package email

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Kind identifies a notification template for callers that select templates
// dynamically (the dispatch service, the notification queue).
type Kind string

const (
	KindWelcomeInvestor           Kind = "onboarding.welcome"
	KindPortalActivation          Kind = "onboarding.activation"
	KindActivationReminder        Kind = "onboarding.activation_reminder"
	KindProfileCompletionReminder Kind = "onboarding.profile_reminder"
	KindSubscriptionDocsRequest   Kind = "onboarding.subscription_docs_request"
	KindSubscriptionDocsReceived  Kind = "onboarding.subscription_docs_received"
	KindSubscriptionAccepted      Kind = "onboarding.subscription_accepted"
	KindCommitmentConfirmation    Kind = "onboarding.commitment_confirmation"

	KindKYCInvite              Kind = "kyc.invite"
	KindKYCReminder            Kind = "kyc.reminder"
	KindKYCApproved            Kind = "kyc.approved"
	KindKYCRejected            Kind = "kyc.rejected"
	KindKYCExpiring            Kind = "kyc.expiring"
	KindAccreditationRequest   Kind = "kyc.accreditation_request"
	KindAccreditationApproved  Kind = "kyc.accreditation_approved"
	KindAccreditationExpiring  Kind = "kyc.accreditation_expiring"
	KindReverificationRequired Kind = "kyc.reverification_required"

	KindCapitalCallRequest        Kind = "capital_call.request"
	KindCapitalCallReminder       Kind = "capital_call.reminder"
	KindCapitalCallOverdue        Kind = "capital_call.overdue"
	KindCapitalCallDefaultNotice  Kind = "capital_call.default_notice"
	KindWireConfirmation          Kind = "capital_call.wire_confirmation"
	KindCapitalCallRescinded      Kind = "capital_call.rescinded"
	KindFundingInstructionsUpdate Kind = "capital_call.funding_instructions_update"

	KindDistributionNotice     Kind = "distribution.notice"
	KindDistributionPaid       Kind = "distribution.paid"
	KindReinvestmentElection   Kind = "distribution.reinvestment_election"
	KindTaxWithholdingNotice   Kind = "distribution.tax_withholding"
	KindRecallableDistribution Kind = "distribution.recallable"

	KindDocumentRequest           Kind = "compliance.document_request"
	KindDocumentExpiring          Kind = "compliance.document_expiring"
	KindW9Request                 Kind = "compliance.w9_request"
	KindTaxDocumentAvailable      Kind = "compliance.tax_document_available"
	KindAmendedK1Notice           Kind = "compliance.amended_k1"
	KindComplianceCertification   Kind = "compliance.annual_certification"
	KindAMLReviewHold             Kind = "compliance.aml_review_hold"
	KindBeneficialOwnershipUpdate Kind = "compliance.beneficial_ownership_update"

	KindQuarterlyReport         Kind = "reporting.quarterly_report"
	KindAnnualReport            Kind = "reporting.annual_report"
	KindCapitalAccountStatement Kind = "reporting.capital_account_statement"
	KindNAVUpdate               Kind = "reporting.nav_update"
	KindMaterialEventNotice     Kind = "reporting.material_event"
	KindAmendmentNotice         Kind = "reporting.amendment_notice"
	KindAnnualMeetingInvite     Kind = "reporting.annual_meeting_invite"

	KindTransferRequestReceived Kind = "transfer.request_received"
	KindTransferApproved        Kind = "transfer.approved"
	KindTransferRejected        Kind = "transfer.rejected"
	KindTransferCompleted       Kind = "transfer.completed"
	KindAssignmentNotice        Kind = "transfer.assignment_notice"

	KindRealizationNotice  Kind = "exit.realization_notice"
	KindDispositionSummary Kind = "exit.disposition_summary"
	KindAcquisitionNotice  Kind = "exit.acquisition_notice"
	KindRefinanceNotice    Kind = "exit.refinance_notice"
	KindFinalExitStatement Kind = "exit.final_statement"
	KindWindDownNotice     Kind = "exit.wind_down_notice"
	KindFinalCapitalReturn Kind = "exit.final_capital_return"

	KindNewInvestorRegistered Kind = "manager.new_investor_registered"
	KindInvestorDocsSigned    Kind = "manager.investor_docs_signed"
	KindWireReceivedAlert     Kind = "manager.wire_received"
	KindKYCSubmittedAlert     Kind = "manager.kyc_submitted"
	KindCapitalCallDigest     Kind = "manager.capital_call_digest"

	KindPasswordReset           Kind = "security.password_reset"
	KindNewLoginAlert           Kind = "security.new_login_alert"
	KindEmailChangeConfirmation Kind = "security.email_change_confirmation"
)

var (
	// ErrUnknownKind is returned when no template is registered for a kind.
	ErrUnknownKind = errors.New("email: unknown template kind")
	// ErrInvalidData is returned when the data record does not match the
	// template's input type.
	ErrInvalidData = errors.New("email: invalid template data")
)

// entry pairs a template's typed renderer with a JSON decoder for callers
// that receive the data record over the wire.
type entry struct {
	render     func(data any) (string, error)
	renderJSON func(raw []byte) (string, error)
}

// adapt converts a typed template function into a registry entry.
func adapt[T any](render func(T) string) entry {
	return entry{
		render: func(data any) (string, error) {
			typed, ok := data.(T)
			if !ok {
				return "", fmt.Errorf("%w: want %T, got %T", ErrInvalidData, *new(T), data)
			}
			return render(typed), nil
		},
		renderJSON: func(raw []byte) (string, error) {
			var typed T
			if err := json.Unmarshal(raw, &typed); err != nil {
				return "", fmt.Errorf("%w: %v", ErrInvalidData, err)
			}
			return render(typed), nil
		},
	}
}

// registry maps every notification kind to its template function. Assembled
// once at package load; never mutated afterwards.
var registry = map[Kind]entry{
	KindWelcomeInvestor:           adapt(RenderWelcomeInvestor),
	KindPortalActivation:          adapt(RenderPortalActivation),
	KindActivationReminder:        adapt(RenderActivationReminder),
	KindProfileCompletionReminder: adapt(RenderProfileCompletionReminder),
	KindSubscriptionDocsRequest:   adapt(RenderSubscriptionDocsRequest),
	KindSubscriptionDocsReceived:  adapt(RenderSubscriptionDocsReceived),
	KindSubscriptionAccepted:      adapt(RenderSubscriptionAccepted),
	KindCommitmentConfirmation:    adapt(RenderCommitmentConfirmation),

	KindKYCInvite:              adapt(RenderKYCInvite),
	KindKYCReminder:            adapt(RenderKYCReminder),
	KindKYCApproved:            adapt(RenderKYCApproved),
	KindKYCRejected:            adapt(RenderKYCRejected),
	KindKYCExpiring:            adapt(RenderKYCExpiring),
	KindAccreditationRequest:   adapt(RenderAccreditationRequest),
	KindAccreditationApproved:  adapt(RenderAccreditationApproved),
	KindAccreditationExpiring:  adapt(RenderAccreditationExpiring),
	KindReverificationRequired: adapt(RenderReverificationRequired),

	KindCapitalCallRequest:        adapt(RenderCapitalCallRequest),
	KindCapitalCallReminder:       adapt(RenderCapitalCallReminder),
	KindCapitalCallOverdue:        adapt(RenderCapitalCallOverdue),
	KindCapitalCallDefaultNotice:  adapt(RenderCapitalCallDefaultNotice),
	KindWireConfirmation:          adapt(RenderWireConfirmation),
	KindCapitalCallRescinded:      adapt(RenderCapitalCallRescinded),
	KindFundingInstructionsUpdate: adapt(RenderFundingInstructionsUpdate),

	KindDistributionNotice:     adapt(RenderDistributionNotice),
	KindDistributionPaid:       adapt(RenderDistributionPaid),
	KindReinvestmentElection:   adapt(RenderReinvestmentElection),
	KindTaxWithholdingNotice:   adapt(RenderTaxWithholdingNotice),
	KindRecallableDistribution: adapt(RenderRecallableDistribution),

	KindDocumentRequest:           adapt(RenderDocumentRequest),
	KindDocumentExpiring:          adapt(RenderDocumentExpiring),
	KindW9Request:                 adapt(RenderW9Request),
	KindTaxDocumentAvailable:      adapt(RenderTaxDocumentAvailable),
	KindAmendedK1Notice:           adapt(RenderAmendedK1Notice),
	KindComplianceCertification:   adapt(RenderComplianceCertification),
	KindAMLReviewHold:             adapt(RenderAMLReviewHold),
	KindBeneficialOwnershipUpdate: adapt(RenderBeneficialOwnershipUpdate),

	KindQuarterlyReport:         adapt(RenderQuarterlyReport),
	KindAnnualReport:            adapt(RenderAnnualReport),
	KindCapitalAccountStatement: adapt(RenderCapitalAccountStatement),
	KindNAVUpdate:               adapt(RenderNAVUpdate),
	KindMaterialEventNotice:     adapt(RenderMaterialEventNotice),
	KindAmendmentNotice:         adapt(RenderAmendmentNotice),
	KindAnnualMeetingInvite:     adapt(RenderAnnualMeetingInvite),

	KindTransferRequestReceived: adapt(RenderTransferRequestReceived),
	KindTransferApproved:        adapt(RenderTransferApproved),
	KindTransferRejected:        adapt(RenderTransferRejected),
	KindTransferCompleted:       adapt(RenderTransferCompleted),
	KindAssignmentNotice:        adapt(RenderAssignmentNotice),

	KindRealizationNotice:  adapt(RenderRealizationNotice),
	KindDispositionSummary: adapt(RenderDispositionSummary),
	KindAcquisitionNotice:  adapt(RenderAcquisitionNotice),
	KindRefinanceNotice:    adapt(RenderRefinanceNotice),
	KindFinalExitStatement: adapt(RenderFinalExitStatement),
	KindWindDownNotice:     adapt(RenderWindDownNotice),
	KindFinalCapitalReturn: adapt(RenderFinalCapitalReturn),

	KindNewInvestorRegistered: adapt(RenderNewInvestorRegistered),
	KindInvestorDocsSigned:    adapt(RenderInvestorDocsSigned),
	KindWireReceivedAlert:     adapt(RenderWireReceivedAlert),
	KindKYCSubmittedAlert:     adapt(RenderKYCSubmittedAlert),
	KindCapitalCallDigest:     adapt(RenderCapitalCallDigest),

	KindPasswordReset:           adapt(RenderPasswordReset),
	KindNewLoginAlert:           adapt(RenderNewLoginAlert),
	KindEmailChangeConfirmation: adapt(RenderEmailChangeConfirmation),
}

// Render looks up the template for kind and renders it with data. The data
// record must be the exact input type of the template (e.g.
// CapitalCallRequestData for KindCapitalCallRequest).
func Render(kind Kind, data any) (string, error) {
	e, ok := registry[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e.render(data)
}

// RenderJSON renders the template for kind from a JSON-encoded data record.
// Used by callers that receive template data over the wire rather than as a
// typed struct.
func RenderJSON(kind Kind, raw []byte) (string, error) {
	e, ok := registry[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return e.renderJSON(raw)
}

// IsRegistered reports whether a template exists for kind.
func IsRegistered(kind Kind) bool {
	_, ok := registry[kind]
	return ok
}

// Kinds returns every registered notification kind, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
