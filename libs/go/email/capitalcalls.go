package email

// Capital call templates. Amounts and dates arrive pre-formatted as
// strings; the templates never do arithmetic or date math.

// WireInstructions carries the banking details rendered into call notices.
type WireInstructions struct {
	BankName      string
	BankAddress   string
	AccountName   string
	AccountNumber string
	RoutingNumber string
	SwiftCode     string
	Reference     string
}

func wireDetailRows(w WireInstructions) []detailRow {
	rows := []detailRow{
		{Label: "Bank", Value: escapeString(w.BankName)},
	}
	if w.BankAddress != "" {
		rows = append(rows, detailRow{Label: "Bank Address", Value: escapeString(w.BankAddress)})
	}
	rows = append(rows,
		detailRow{Label: "Account Name", Value: escapeString(w.AccountName)},
		detailRow{Label: "Account Number", Value: escapeString(w.AccountNumber)},
		detailRow{Label: "Routing Number", Value: escapeString(w.RoutingNumber)},
	)
	if w.SwiftCode != "" {
		rows = append(rows, detailRow{Label: "SWIFT", Value: escapeString(w.SwiftCode)})
	}
	if w.Reference != "" {
		rows = append(rows, detailRow{Label: "Wire Reference", Value: escapeString(w.Reference)})
	}
	return rows
}

// CapitalCallRequestData contains the fields for a capital call notice.
// Purpose is optional; when empty the purpose paragraph is omitted.
type CapitalCallRequestData struct {
	RecipientName    string
	FundName         string
	CallNumber       string
	AmountDue        string
	Deadline         string
	Purpose          string
	WireInstructions WireInstructions
	PortalURL        string
}

// RenderCapitalCallRequest builds the formal capital call notice.
func RenderCapitalCallRequest(data CapitalCallRequestData) string {
	body := greeting(data.RecipientName) +
		para("A capital call has been issued for "+escapeString(data.FundName)+". Please wire your share of the called capital by the funding deadline below.")
	if data.Purpose != "" {
		body += para("Purpose of this call: "+escapeString(data.Purpose))
	}
	inner := header("Capital Call Notice", escapeString(data.FundName)) +
		section(body) +
		detailBox([]detailRow{
			{Label: "Call Number", Value: escapeString(data.CallNumber)},
			{Label: "Amount Due", Value: escapeString(data.AmountDue)},
			{Label: "Funding Deadline", Value: escapeString(data.Deadline)},
		}) +
		section(para("Wire instructions:")) +
		detailBox(wireDetailRows(data.WireInstructions)) +
		infoBox(severityWarning, "Always confirm wire details through the portal before sending funds. We will never change wire instructions by email alone.") +
		buttonRow([]emailButton{{Label: "View Capital Call", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "Capital call of "+escapeString(data.AmountDue)+" due "+escapeString(data.Deadline)+".")
}

// CapitalCallReminderData contains the fields for the pre-deadline reminder.
type CapitalCallReminderData struct {
	RecipientName string
	FundName      string
	AmountDue     string
	Deadline      string
	DaysRemaining string
	PortalURL     string
}

func RenderCapitalCallReminder(data CapitalCallReminderData) string {
	inner := header("Capital Call Reminder", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("This is a reminder that your capital contribution to "+escapeString(data.FundName)+" has not yet been received.")) +
		detailBox([]detailRow{
			{Label: "Amount Due", Value: escapeString(data.AmountDue)},
			{Label: "Funding Deadline", Value: escapeString(data.Deadline)},
			{Label: "Days Remaining", Value: escapeString(data.DaysRemaining)},
		}) +
		buttonRow([]emailButton{{Label: "View Wire Instructions", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "Reminder: "+escapeString(data.AmountDue)+" is due by "+escapeString(data.Deadline)+".")
}

// CapitalCallOverdueData contains the fields for the past-due notice.
type CapitalCallOverdueData struct {
	RecipientName string
	FundName      string
	AmountDue     string
	Deadline      string
	DaysOverdue   string
	SupportEmail  string
	PortalURL     string
}

// RenderCapitalCallOverdue builds the past-due notice sent after the
// funding deadline lapses.
func RenderCapitalCallOverdue(data CapitalCallOverdueData) string {
	inner := header("Capital Call Past Due", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Our records show your capital contribution to "+escapeString(data.FundName)+" was due on "+escapeString(data.Deadline)+" and has not been received.")) +
		infoBox(severityError, "Your contribution of "+escapeString(data.AmountDue)+" is "+escapeString(data.DaysOverdue)+" days past due. Continued non-payment may trigger the default provisions of the Limited Partnership Agreement.") +
		section(para("If your wire is already in flight, or you need to discuss timing, contact us at "+escapeString(data.SupportEmail)+".")) +
		buttonRow([]emailButton{{Label: "View Capital Call", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "Your capital contribution of "+escapeString(data.AmountDue)+" is past due.")
}

// CapitalCallDefaultNoticeData contains the fields for the formal default
// notice. NoticeContent is legal text prepared and sanitized by fund
// counsel upstream; it is rendered verbatim.
type CapitalCallDefaultNoticeData struct {
	RecipientName string
	FundName      string
	AmountDue     string
	NoticeContent TrustedHTML
	SupportEmail  string
}

// RenderCapitalCallDefaultNotice builds the formal notice of default.
func RenderCapitalCallDefaultNotice(data CapitalCallDefaultNoticeData) string {
	inner := header("Notice of Default", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("You are hereby notified that your unpaid capital contribution of "+escapeString(data.AmountDue)+" to "+escapeString(data.FundName)+" constitutes a default under the fund's governing documents.")) +
		section(string(data.NoticeContent)) +
		section(para("To discuss remediation, contact "+escapeString(data.SupportEmail)+" immediately.")) +
		signoff()
	return document(inner, "Formal notice of default regarding your capital contribution.")
}

// WireConfirmationData contains the fields for the capital-received
// confirmation.
type WireConfirmationData struct {
	RecipientName     string
	FundName          string
	AmountReceived    string
	ReceivedDate      string
	CallNumber        string
	RemainingUnfunded string
	PortalURL         string
}

// RenderWireConfirmation builds the confirmation sent when an investor's
// wire settles.
func RenderWireConfirmation(data WireConfirmationData) string {
	inner := header("Capital Contribution Received", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("We have received your capital contribution to "+escapeString(data.FundName)+". Thank you.")) +
		detailBox([]detailRow{
			{Label: "Amount Received", Value: escapeString(data.AmountReceived)},
			{Label: "Date Received", Value: escapeString(data.ReceivedDate)},
			{Label: "Call Number", Value: escapeString(data.CallNumber)},
			{Label: "Remaining Unfunded Commitment", Value: escapeString(data.RemainingUnfunded)},
		}) +
		infoBox(severitySuccess, "Your contribution has been recorded against your commitment.") +
		buttonRow([]emailButton{{Label: "View Capital Account", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Your contribution of "+escapeString(data.AmountReceived)+" has been received.")
}

// CapitalCallRescindedData contains the fields for a rescinded call notice.
type CapitalCallRescindedData struct {
	RecipientName string
	FundName      string
	CallNumber    string
	Reason        string
}

// RenderCapitalCallRescinded builds the notice that a previously issued
// call has been withdrawn. The optional reason paragraph is omitted when
// empty.
func RenderCapitalCallRescinded(data CapitalCallRescindedData) string {
	body := greeting(data.RecipientName) +
		para("Capital call "+escapeString(data.CallNumber)+" for "+escapeString(data.FundName)+" has been rescinded. No payment is required, and any amount already wired for this call will be returned or credited.")
	if data.Reason != "" {
		body += para(escapeString(data.Reason))
	}
	inner := header("Capital Call Rescinded", escapeString(data.FundName)) +
		section(body) +
		signoff()
	return document(inner, "Capital call "+escapeString(data.CallNumber)+" has been rescinded.")
}

// FundingInstructionsUpdateData contains the fields for a banking details
// change notice.
type FundingInstructionsUpdateData struct {
	RecipientName    string
	FundName         string
	EffectiveDate    string
	WireInstructions WireInstructions
	PortalURL        string
}

// RenderFundingInstructionsUpdate builds the notice that the fund's wire
// instructions have changed.
func RenderFundingInstructionsUpdate(data FundingInstructionsUpdateData) string {
	inner := header("Updated Wire Instructions", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The wire instructions for "+escapeString(data.FundName)+" are changing effective "+escapeString(data.EffectiveDate)+". All future contributions should use the details below.")) +
		detailBox(wireDetailRows(data.WireInstructions)) +
		infoBox(severityWarning, "Wire instruction changes are a common fraud target. Verify these details in the portal, or by phone with your fund contact, before sending any funds.") +
		buttonRow([]emailButton{{Label: "Verify in Portal", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "The wire instructions for "+escapeString(data.FundName)+" have changed.")
}
