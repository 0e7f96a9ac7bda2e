package email

// Interest transfer templates.

// TransferRequestReceivedData contains the fields for the transfer request
// acknowledgment.
type TransferRequestReceivedData struct {
	RecipientName  string
	FundName       string
	TransfereeName string
	InterestAmount string
	Reference      string
	PortalURL      string
}

// RenderTransferRequestReceived builds the acknowledgment sent to the
// transferor when a request is lodged.
func RenderTransferRequestReceived(data TransferRequestReceivedData) string {
	inner := header("Transfer Request Received", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("We have received your request to transfer part of your interest in "+escapeString(data.FundName)+" to "+escapeString(data.TransfereeName)+". The request is now with the fund manager for review.")) +
		detailBox([]detailRow{
			{Label: "Interest To Transfer", Value: escapeString(data.InterestAmount)},
			{Label: "Proposed Transferee", Value: escapeString(data.TransfereeName)},
			{Label: "Request Reference", Value: escapeString(data.Reference)},
		}) +
		buttonRow([]emailButton{{Label: "Track Request", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Your transfer request "+escapeString(data.Reference)+" has been received.")
}

// TransferApprovedData contains the fields for the transfer approval
// notice. ProcessNote is optional manager guidance; when empty its block is
// omitted entirely.
type TransferApprovedData struct {
	RecipientName       string
	FundName            string
	TransfereeName      string
	InterestAmount      string
	EffectiveDate       string
	TransferProcessNote string
	PortalURL           string
}

// RenderTransferApproved builds the email confirming manager consent to a
// transfer.
func RenderTransferApproved(data TransferApprovedData) string {
	inner := header("Transfer Approved", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The manager of "+escapeString(data.FundName)+" has consented to your requested transfer.")) +
		detailBox([]detailRow{
			{Label: "Interest Transferred", Value: escapeString(data.InterestAmount)},
			{Label: "Transferee", Value: escapeString(data.TransfereeName)},
			{Label: "Effective Date", Value: escapeString(data.EffectiveDate)},
		})
	if data.TransferProcessNote != "" {
		inner += infoBox(severityInfo, escapeString(data.TransferProcessNote))
	}
	inner += buttonRow([]emailButton{{Label: "View Transfer", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "Your transfer of "+escapeString(data.InterestAmount)+" has been approved.")
}

// TransferRejectedData contains the fields for the transfer rejection
// notice.
type TransferRejectedData struct {
	RecipientName string
	FundName      string
	Reference     string
	Reason        string
	SupportEmail  string
}

// RenderTransferRejected builds the email sent when the manager withholds
// consent. The optional reason paragraph is omitted when empty.
func RenderTransferRejected(data TransferRejectedData) string {
	body := greeting(data.RecipientName) +
		para("The manager of "+escapeString(data.FundName)+" has declined transfer request "+escapeString(data.Reference)+".")
	if data.Reason != "" {
		body += para("Reason: "+escapeString(data.Reason))
	}
	inner := header("Transfer Request Declined", escapeString(data.FundName)) +
		section(body) +
		section(para("To discuss this decision or submit a revised request, contact "+escapeString(data.SupportEmail)+".")) +
		signoff()
	return document(inner, "Transfer request "+escapeString(data.Reference)+" was declined.")
}

// TransferCompletedData contains the fields for the transfer completion
// notice sent to the transferor.
type TransferCompletedData struct {
	RecipientName     string
	FundName          string
	InterestAmount    string
	RemainingInterest string
	CompletedDate     string
	PortalURL         string
}

func RenderTransferCompleted(data TransferCompletedData) string {
	inner := header("Transfer Completed", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Your transfer of interest in "+escapeString(data.FundName)+" was completed on "+escapeString(data.CompletedDate)+".")) +
		detailBox([]detailRow{
			{Label: "Interest Transferred", Value: escapeString(data.InterestAmount)},
			{Label: "Your Remaining Interest", Value: escapeString(data.RemainingInterest)},
		}) +
		buttonRow([]emailButton{{Label: "View Capital Account", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Your transfer completed on "+escapeString(data.CompletedDate)+".")
}

// AssignmentNoticeData contains the fields for the notice sent to the
// transferee when an interest is assigned to them.
type AssignmentNoticeData struct {
	RecipientName  string
	FundName       string
	TransferorName string
	InterestAmount string
	EffectiveDate  string
	ActivationURL  string
}

// RenderAssignmentNotice builds the welcome/assignment notice for the
// incoming transferee.
func RenderAssignmentNotice(data AssignmentNoticeData) string {
	inner := header("Interest Assigned to You", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("An interest in "+escapeString(data.FundName)+" has been assigned to you by "+escapeString(data.TransferorName)+", effective "+escapeString(data.EffectiveDate)+".")) +
		detailBox([]detailRow{
			{Label: "Assigned Interest", Value: escapeString(data.InterestAmount)},
			{Label: "Assignor", Value: escapeString(data.TransferorName)},
			{Label: "Effective Date", Value: escapeString(data.EffectiveDate)},
		}) +
		section(para("To receive statements, notices and tax documents for this interest, activate your investor portal account.")) +
		buttonRow([]emailButton{{Label: "Activate Account", URL: escapeString(data.ActivationURL)}}) +
		signoff()
	return document(inner, "An interest in "+escapeString(data.FundName)+" has been assigned to you.")
}
