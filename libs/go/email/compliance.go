package email

// Compliance and tax document templates.

// DocumentRequestData contains the fields for an ad-hoc document request.
type DocumentRequestData struct {
	RecipientName string
	DocumentName  string
	Reason        string
	Deadline      string
	UploadURL     string
}

// RenderDocumentRequest builds the email asking an investor to supply a
// document. The optional reason paragraph is omitted when empty.
func RenderDocumentRequest(data DocumentRequestData) string {
	body := greeting(data.RecipientName) +
		para("We need an additional document from you: "+escapeString(data.DocumentName)+".")
	if data.Reason != "" {
		body += para(escapeString(data.Reason))
	}
	inner := header("Document Request", "") +
		section(body) +
		detailBox([]detailRow{
			{Label: "Document", Value: escapeString(data.DocumentName)},
			{Label: "Needed By", Value: escapeString(data.Deadline)},
		}) +
		buttonRow([]emailButton{{Label: "Upload Document", URL: escapeString(data.UploadURL)}}) +
		signoff()
	return document(inner, "Please upload "+escapeString(data.DocumentName)+" by "+escapeString(data.Deadline)+".")
}

// DocumentExpiringData contains the fields for a document expiry warning.
type DocumentExpiringData struct {
	RecipientName string
	DocumentName  string
	ExpiryDate    string
	UploadURL     string
}

func RenderDocumentExpiring(data DocumentExpiringData) string {
	inner := header("Document Expiring", "") +
		section(greeting(data.RecipientName)+
			para("The "+escapeString(data.DocumentName)+" on file for your account expires on "+escapeString(data.ExpiryDate)+". Please upload a current version to avoid interruptions to your account.")) +
		buttonRow([]emailButton{{Label: "Upload Replacement", URL: escapeString(data.UploadURL)}}) +
		signoff()
	return document(inner, escapeString(data.DocumentName)+" on file expires "+escapeString(data.ExpiryDate)+".")
}

// W9RequestData contains the fields for the tax form request.
type W9RequestData struct {
	RecipientName string
	FundName      string
	FormName      string
	Deadline      string
	SubmitURL     string
}

// RenderW9Request builds the email requesting a W-9 (or W-8 series) form.
func RenderW9Request(data W9RequestData) string {
	inner := header("Tax Form Required", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("A completed "+escapeString(data.FormName)+" is required before "+escapeString(data.FundName)+" can make payments to you. Without a current form on file, payments may be subject to backup withholding.")) +
		detailBox([]detailRow{
			{Label: "Form", Value: escapeString(data.FormName)},
			{Label: "Needed By", Value: escapeString(data.Deadline)},
		}) +
		buttonRow([]emailButton{{Label: "Complete Form", URL: escapeString(data.SubmitURL)}}) +
		signoff()
	return document(inner, "A completed "+escapeString(data.FormName)+" is required for "+escapeString(data.FundName)+".")
}

// TaxDocumentAvailableData contains the fields for a tax document
// availability notice (typically the Schedule K-1).
type TaxDocumentAvailableData struct {
	RecipientName string
	FundName      string
	DocumentName  string
	TaxYear       string
	PortalURL     string
}

// RenderTaxDocumentAvailable builds the notice that a tax document is ready
// for download.
func RenderTaxDocumentAvailable(data TaxDocumentAvailableData) string {
	inner := header("Tax Document Available", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Your "+escapeString(data.DocumentName)+" for tax year "+escapeString(data.TaxYear)+" from "+escapeString(data.FundName)+" is now available in the portal.")) +
		infoBox(severityInfo, "For security, tax documents are never attached to email. Download them from the portal after signing in.") +
		buttonRow([]emailButton{{Label: "Download Document", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "Your "+escapeString(data.TaxYear)+" "+escapeString(data.DocumentName)+" is ready.")
}

// AmendedK1NoticeData contains the fields for an amended K-1 notice.
type AmendedK1NoticeData struct {
	RecipientName string
	FundName      string
	TaxYear       string
	ChangeSummary string
	PortalURL     string
}

// RenderAmendedK1Notice builds the notice that a previously issued K-1 has
// been amended. The optional change summary is omitted when empty.
func RenderAmendedK1Notice(data AmendedK1NoticeData) string {
	body := greeting(data.RecipientName) +
		para("An amended Schedule K-1 for tax year "+escapeString(data.TaxYear)+" has been issued for your interest in "+escapeString(data.FundName)+". The amended document replaces the version previously provided.")
	if data.ChangeSummary != "" {
		body += para("Summary of changes: "+escapeString(data.ChangeSummary))
	}
	inner := header("Amended K-1 Issued", escapeString(data.FundName)) +
		section(body) +
		infoBox(severityWarning, "If you have already filed for "+escapeString(data.TaxYear)+", consult your tax advisor about whether an amended return is required.") +
		buttonRow([]emailButton{{Label: "Download Amended K-1", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "An amended "+escapeString(data.TaxYear)+" K-1 has been issued.")
}

// ComplianceCertificationData contains the fields for the annual
// certification request.
type ComplianceCertificationData struct {
	RecipientName string
	Year          string
	Deadline      string
	CertifyURL    string
}

// RenderComplianceCertification builds the annual investor certification
// request.
func RenderComplianceCertification(data ComplianceCertificationData) string {
	inner := header("Annual Certification Required", "") +
		section(greeting(data.RecipientName)+
			para("As part of the "+escapeString(data.Year)+" annual compliance cycle, all investors are asked to certify that the information we hold (identity, tax status, beneficial ownership and contact details) remains accurate.")) +
		detailBox([]detailRow{
			{Label: "Certification Year", Value: escapeString(data.Year)},
			{Label: "Due By", Value: escapeString(data.Deadline)},
		}) +
		buttonRow([]emailButton{{Label: "Complete Certification", URL: escapeString(data.CertifyURL)}}) +
		signoff()
	return document(inner, "Annual investor certification is due by "+escapeString(data.Deadline)+".")
}

// AMLReviewHoldData contains the fields for the AML review hold notice.
type AMLReviewHoldData struct {
	RecipientName string
	Reference     string
	SupportEmail  string
}

// RenderAMLReviewHold builds the notice that account activity is paused
// pending an anti-money-laundering review.
func RenderAMLReviewHold(data AMLReviewHoldData) string {
	inner := header("Account Review In Progress", "") +
		section(greeting(data.RecipientName)+
			para("Your account has been placed under a routine compliance review. While the review is open, distributions and transfer requests are temporarily held.")) +
		detailBox([]detailRow{
			{Label: "Review Reference", Value: escapeString(data.Reference)},
		}) +
		section(para("No action is required unless our compliance team contacts you for additional information. Questions may be directed to "+escapeString(data.SupportEmail)+" quoting the reference above.")) +
		signoff()
	return document(inner, "Your account is under a routine compliance review.")
}

// BeneficialOwnershipUpdateData contains the fields for the ownership
// information refresh request.
type BeneficialOwnershipUpdateData struct {
	RecipientName string
	EntityName    string
	Deadline      string
	UpdateURL     string
}

// RenderBeneficialOwnershipUpdate builds the request to refresh beneficial
// ownership information for an entity investor.
func RenderBeneficialOwnershipUpdate(data BeneficialOwnershipUpdateData) string {
	inner := header("Beneficial Ownership Update", "") +
		section(greeting(data.RecipientName)+
			para("Regulations require us to keep current beneficial ownership information for "+escapeString(data.EntityName)+". Please review and confirm or update the ownership details we hold.")) +
		detailBox([]detailRow{
			{Label: "Entity", Value: escapeString(data.EntityName)},
			{Label: "Due By", Value: escapeString(data.Deadline)},
		}) +
		buttonRow([]emailButton{{Label: "Review Ownership Details", URL: escapeString(data.UpdateURL)}}) +
		signoff()
	return document(inner, "Beneficial ownership confirmation is due by "+escapeString(data.Deadline)+".")
}
