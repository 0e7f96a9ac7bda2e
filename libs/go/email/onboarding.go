package email

// Onboarding templates cover the start of the investor lifecycle: portal
// invitation, activation, subscription documents and commitment
// confirmation.

// WelcomeInvestorData contains the fields for the initial portal welcome.
type WelcomeInvestorData struct {
	RecipientName string
	FundName      string
	ManagerName   string
	ActivationURL string
}

// RenderWelcomeInvestor builds the welcome email sent when a manager adds a
// new investor to a fund.
func RenderWelcomeInvestor(data WelcomeInvestorData) string {
	inner := header("Welcome to Meridian", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("You have been invited by "+escapeString(data.ManagerName)+" to join the investor portal for "+escapeString(data.FundName)+". The portal is where you will receive capital call notices, distribution statements, tax documents and fund reports.")+
			para("To get started, activate your account and set a password.")) +
		buttonRow([]emailButton{{Label: "Activate Your Account", URL: escapeString(data.ActivationURL)}}) +
		signoff()
	return document(inner, "You have been invited to the "+escapeString(data.FundName)+" investor portal.")
}

// PortalActivationData contains the fields for the account activation email.
type PortalActivationData struct {
	RecipientName string
	ActivationURL string
	ExpiresIn     string
}

// RenderPortalActivation builds the account activation email.
func RenderPortalActivation(data PortalActivationData) string {
	inner := header("Activate Your Account", "") +
		section(greeting(data.RecipientName)+
			para("Your Meridian investor account is ready. Use the button below to verify your email address and choose a password.")) +
		buttonRow([]emailButton{{Label: "Activate Account", URL: escapeString(data.ActivationURL)}}) +
		section("") +
		infoBox(severityInfo, "This activation link expires in "+escapeString(data.ExpiresIn)+". If it expires, your fund manager can send a new one.") +
		signoff()
	return document(inner, "Verify your email address to activate your investor account.")
}

// ActivationReminderData contains the fields for the activation reminder.
type ActivationReminderData struct {
	RecipientName string
	FundName      string
	ActivationURL string
	ExpiresIn     string
}

// RenderActivationReminder builds the reminder sent when an invitation has
// not been acted on.
func RenderActivationReminder(data ActivationReminderData) string {
	inner := header("Reminder: Activate Your Account", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("This is a reminder that your invitation to the "+escapeString(data.FundName)+" investor portal is still pending. Your account gives you access to fund documents, statements and notices.")) +
		buttonRow([]emailButton{{Label: "Activate Account", URL: escapeString(data.ActivationURL)}}) +
		infoBox(severityWarning, "Your invitation expires in "+escapeString(data.ExpiresIn)+".") +
		signoff()
	return document(inner, "Your investor portal invitation is still pending.")
}

// ProfileCompletionReminderData contains the fields for the profile
// completion reminder.
type ProfileCompletionReminderData struct {
	RecipientName string
	MissingItems  []string
	ProfileURL    string
}

// RenderProfileCompletionReminder builds the reminder listing outstanding
// profile items. Items are plain text and escaped individually.
func RenderProfileCompletionReminder(data ProfileCompletionReminderData) string {
	items := ""
	for _, item := range data.MissingItems {
		items += "<li>" + escapeString(item) + "</li>"
	}
	body := greeting(data.RecipientName) +
		para("Your investor profile is almost complete. A complete profile is required before you can participate in fund closings.")
	if items != "" {
		body += para("The following items are still outstanding:") +
			`<ul style="` + paragraphStyle + `">` + items + "</ul>"
	}
	inner := header("Complete Your Investor Profile", "") +
		section(body) +
		buttonRow([]emailButton{{Label: "Complete Profile", URL: escapeString(data.ProfileURL)}}) +
		signoff()
	return document(inner, "A few items are still needed to complete your investor profile.")
}

// SubscriptionDocsRequestData contains the fields for the subscription
// documents request.
type SubscriptionDocsRequestData struct {
	RecipientName    string
	FundName         string
	CommitmentAmount string
	Deadline         string
	DocumentsURL     string
}

// RenderSubscriptionDocsRequest builds the email asking an investor to
// review the PPM and execute the subscription agreement.
func RenderSubscriptionDocsRequest(data SubscriptionDocsRequestData) string {
	inner := header("Subscription Documents Ready", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The subscription documents for "+escapeString(data.FundName)+" are ready for your review and signature. The package includes the Private Placement Memorandum, the Limited Partnership Agreement and your subscription agreement.")) +
		detailBox([]detailRow{
			{Label: "Fund", Value: escapeString(data.FundName)},
			{Label: "Proposed Commitment", Value: escapeString(data.CommitmentAmount)},
			{Label: "Signature Deadline", Value: escapeString(data.Deadline)},
		}) +
		buttonRow([]emailButton{{Label: "Review &amp; Sign Documents", URL: escapeString(data.DocumentsURL)}}) +
		signoff()
	return document(inner, "Your subscription documents for "+escapeString(data.FundName)+" are ready to sign.")
}

// SubscriptionDocsReceivedData contains the fields for the signed-documents
// acknowledgment.
type SubscriptionDocsReceivedData struct {
	RecipientName string
	FundName      string
	ReceivedAt    string
}

// RenderSubscriptionDocsReceived builds the acknowledgment sent after an
// investor returns executed subscription documents.
func RenderSubscriptionDocsReceived(data SubscriptionDocsReceivedData) string {
	inner := header("Documents Received", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("We have received your executed subscription documents for "+escapeString(data.FundName)+" on "+escapeString(data.ReceivedAt)+". The fund manager will countersign and confirm your commitment.")) +
		infoBox(severitySuccess, "No further action is required from you at this time.") +
		signoff()
	return document(inner, "Your subscription documents have been received.")
}

// SubscriptionAcceptedData contains the fields for the countersigned
// subscription confirmation.
type SubscriptionAcceptedData struct {
	RecipientName    string
	FundName         string
	CommitmentAmount string
	EffectiveDate    string
	PortalURL        string
}

// RenderSubscriptionAccepted builds the email confirming the manager has
// accepted and countersigned the subscription.
func RenderSubscriptionAccepted(data SubscriptionAcceptedData) string {
	inner := header("Subscription Accepted", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Congratulations, your subscription to "+escapeString(data.FundName)+" has been accepted and countersigned.")) +
		detailBox([]detailRow{
			{Label: "Fund", Value: escapeString(data.FundName)},
			{Label: "Committed Capital", Value: escapeString(data.CommitmentAmount)},
			{Label: "Effective Date", Value: escapeString(data.EffectiveDate)},
		}) +
		section(para("Fully executed copies of your documents are available in the portal.")) +
		buttonRow([]emailButton{{Label: "View Documents", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "Your subscription to "+escapeString(data.FundName)+" has been accepted.")
}

// CommitmentConfirmationData contains the fields for the commitment summary.
type CommitmentConfirmationData struct {
	RecipientName    string
	FundName         string
	CommitmentAmount string
	OwnershipPercent string
	FirstCloseDate   string
	PortalURL        string
}

// RenderCommitmentConfirmation builds the formal commitment confirmation
// issued at closing.
func RenderCommitmentConfirmation(data CommitmentConfirmationData) string {
	inner := header("Commitment Confirmation", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("This confirms your capital commitment to "+escapeString(data.FundName)+" as of the closing on "+escapeString(data.FirstCloseDate)+".")) +
		detailBox([]detailRow{
			{Label: "Committed Capital", Value: escapeString(data.CommitmentAmount)},
			{Label: "Ownership Interest", Value: escapeString(data.OwnershipPercent)},
			{Label: "Closing Date", Value: escapeString(data.FirstCloseDate)},
		}) +
		section(para("Capital will be drawn down over time through capital call notices. Each notice will include wire instructions and a funding deadline.")) +
		buttonRow([]emailButton{{Label: "View Commitment", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Your capital commitment to "+escapeString(data.FundName)+" is confirmed.")
}
