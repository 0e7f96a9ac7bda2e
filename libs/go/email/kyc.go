package email

// KYC and accreditation templates.

// KYCInviteData contains the fields for the KYC invitation.
type KYCInviteData struct {
	RecipientName string
	FundName      string
	Deadline      string
	VerifyURL     string
}

// RenderKYCInvite builds the email asking an investor to complete identity
// verification.
func RenderKYCInvite(data KYCInviteData) string {
	inner := header("Identity Verification Required", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Before your subscription to "+escapeString(data.FundName)+" can be finalized, we are required to verify your identity. The process takes a few minutes; please have a government-issued photo ID available.")) +
		detailBox([]detailRow{
			{Label: "Verification Deadline", Value: escapeString(data.Deadline)},
		}) +
		buttonRow([]emailButton{{Label: "Start Verification", URL: escapeString(data.VerifyURL)}}) +
		signoff()
	return document(inner, "Please complete identity verification for "+escapeString(data.FundName)+".")
}

// KYCReminderData contains the fields for the KYC reminder.
type KYCReminderData struct {
	RecipientName string
	FundName      string
	Deadline      string
	VerifyURL     string
}

// RenderKYCReminder builds the reminder for an unfinished verification.
func RenderKYCReminder(data KYCReminderData) string {
	inner := header("Reminder: Identity Verification", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Our records show your identity verification for "+escapeString(data.FundName)+" has not been completed. Your subscription cannot be accepted until verification is finished.")) +
		infoBox(severityWarning, "Verification must be completed by "+escapeString(data.Deadline)+".") +
		buttonRow([]emailButton{{Label: "Complete Verification", URL: escapeString(data.VerifyURL)}}) +
		signoff()
	return document(inner, "Your identity verification is still pending.")
}

// KYCApprovedData contains the fields for the verification approval notice.
type KYCApprovedData struct {
	RecipientName string
	FundName      string
	PortalURL     string
}

// RenderKYCApproved builds the email confirming identity verification passed.
func RenderKYCApproved(data KYCApprovedData) string {
	inner := header("Verification Approved", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Your identity verification has been approved. Your subscription to "+escapeString(data.FundName)+" can now proceed to closing.")) +
		infoBox(severitySuccess, "No further action is required. We will notify you when your subscription is accepted.") +
		buttonRow([]emailButton{{Label: "Go to Portal", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Your identity verification has been approved.")
}

// KYCRejectedData contains the fields for the verification rejection notice.
type KYCRejectedData struct {
	RecipientName string
	FundName      string
	Reason        string
	SupportEmail  string
	RetryURL      string
}

// RenderKYCRejected builds the email sent when verification fails. The
// reason is reviewer-entered free text and is escaped.
func RenderKYCRejected(data KYCRejectedData) string {
	body := greeting(data.RecipientName) +
		para("We were unable to verify your identity for "+escapeString(data.FundName)+".")
	if data.Reason != "" {
		body += para("Reason provided by the reviewer: "+escapeString(data.Reason))
	}
	inner := header("Verification Unsuccessful", escapeString(data.FundName)) +
		section(body) +
		infoBox(severityError, "You may retry verification with corrected documents. If you believe this is in error, contact "+escapeString(data.SupportEmail)+".") +
		buttonRow([]emailButton{{Label: "Retry Verification", URL: escapeString(data.RetryURL)}}) +
		signoff()
	return document(inner, "We were unable to verify your identity.")
}

// KYCExpiringData contains the fields for the verification expiry warning.
type KYCExpiringData struct {
	RecipientName string
	ExpiryDate    string
	RenewURL      string
}

// RenderKYCExpiring builds the advance warning that verification documents
// are approaching expiry.
func RenderKYCExpiring(data KYCExpiringData) string {
	inner := header("Verification Expiring Soon", "") +
		section(greeting(data.RecipientName)+
			para("The identity documents on file for your account expire on "+escapeString(data.ExpiryDate)+". To keep your account in good standing and avoid delays on future capital activity, please renew your verification before that date.")) +
		buttonRow([]emailButton{{Label: "Renew Verification", URL: escapeString(data.RenewURL)}}) +
		signoff()
	return document(inner, "Your identity verification expires on "+escapeString(data.ExpiryDate)+".")
}

// AccreditationRequestData contains the fields for the accreditation request.
type AccreditationRequestData struct {
	RecipientName string
	FundName      string
	Deadline      string
	SubmitURL     string
}

// RenderAccreditationRequest builds the email requesting proof of
// accredited investor status.
func RenderAccreditationRequest(data AccreditationRequestData) string {
	inner := header("Accreditation Evidence Required", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para(escapeString(data.FundName)+" is offered exclusively to accredited investors. Please upload evidence of your accredited status, such as a third-party verification letter or supporting financial documentation, by"+escapeString(data.Deadline)+".")) +
		buttonRow([]emailButton{{Label: "Upload Evidence", URL: escapeString(data.SubmitURL)}}) +
		signoff()
	return document(inner, "Accreditation evidence is required for "+escapeString(data.FundName)+".")
}

// AccreditationApprovedData contains the fields for the accreditation
// approval notice.
type AccreditationApprovedData struct {
	RecipientName string
	ValidUntil    string
}

func RenderAccreditationApproved(data AccreditationApprovedData) string {
	inner := header("Accreditation Verified", "") +
		section(greeting(data.RecipientName)+
			para("Your accredited investor status has been verified and recorded.")) +
		detailBox([]detailRow{
			{Label: "Valid Through", Value: escapeString(data.ValidUntil)},
		}) +
		signoff()
	return document(inner, "Your accredited investor status has been verified.")
}

// AccreditationExpiringData contains the fields for the accreditation
// expiry warning.
type AccreditationExpiringData struct {
	RecipientName string
	ExpiryDate    string
	RenewURL      string
}

func RenderAccreditationExpiring(data AccreditationExpiringData) string {
	inner := header("Accreditation Expiring", "") +
		section(greeting(data.RecipientName)+
			para("The accreditation evidence on file for your account expires on "+escapeString(data.ExpiryDate)+". Renewed evidence is required before you can participate in new offerings.")) +
		infoBox(severityWarning, "Accounts with lapsed accreditation are restricted from new commitments until renewed.") +
		buttonRow([]emailButton{{Label: "Renew Accreditation", URL: escapeString(data.RenewURL)}}) +
		signoff()
	return document(inner, "Your accreditation evidence expires on "+escapeString(data.ExpiryDate)+".")
}

// ReverificationRequiredData contains the fields for a compliance-triggered
// re-verification.
type ReverificationRequiredData struct {
	RecipientName string
	Reason        string
	Deadline      string
	VerifyURL     string
}

// RenderReverificationRequired builds the email sent when compliance
// requires an existing investor to re-verify. The optional reason paragraph
// is omitted when empty.
func RenderReverificationRequired(data ReverificationRequiredData) string {
	body := greeting(data.RecipientName) +
		para("As part of our ongoing compliance obligations, we need you to re-verify your identity and account details.")
	if data.Reason != "" {
		body += para(escapeString(data.Reason))
	}
	inner := header("Re-verification Required", "") +
		section(body) +
		infoBox(severityWarning, "Please complete re-verification by "+escapeString(data.Deadline)+". Distributions and transfers may be held until re-verification is complete.") +
		buttonRow([]emailButton{{Label: "Re-verify Now", URL: escapeString(data.VerifyURL)}}) +
		signoff()
	return document(inner, "Account re-verification is required by "+escapeString(data.Deadline)+".")
}
