package email

// Reporting and fund communication templates. Several of these carry rich
// HTML bodies authored in the manager dashboard and sanitized upstream;
// those fields are typed TrustedHTML and rendered verbatim.

// QuarterlyReportData contains the fields for the quarterly report notice.
type QuarterlyReportData struct {
	RecipientName string
	FundName      string
	Quarter       string
	Highlights    string
	PortalURL     string
}

// RenderQuarterlyReport builds the notice that a quarterly report has been
// published. The optional highlights paragraph is omitted when empty.
func RenderQuarterlyReport(data QuarterlyReportData) string {
	body := greeting(data.RecipientName) +
		para("The "+escapeString(data.Quarter)+" report for "+escapeString(data.FundName)+" has been published to the portal.")
	if data.Highlights != "" {
		body += para(escapeString(data.Highlights))
	}
	inner := header("Quarterly Report Available", escapeString(data.FundName)) +
		section(body) +
		buttonRow([]emailButton{{Label: "Read Report", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "The "+escapeString(data.Quarter)+" report for "+escapeString(data.FundName)+" is available.")
}

// AnnualReportData contains the fields for the audited annual report notice.
type AnnualReportData struct {
	RecipientName string
	FundName      string
	FiscalYear    string
	AuditorName   string
	PortalURL     string
}

func RenderAnnualReport(data AnnualReportData) string {
	inner := header("Annual Report Available", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The audited financial statements of "+escapeString(data.FundName)+" for fiscal year "+escapeString(data.FiscalYear)+", audited by "+escapeString(data.AuditorName)+", are now available in the portal.")) +
		buttonRow([]emailButton{{Label: "View Annual Report", URL: escapeString(data.PortalURL)}}) +
		signoff()
	return document(inner, "The "+escapeString(data.FiscalYear)+" audited annual report is available.")
}

// CapitalAccountStatementData contains the fields for the capital account
// statement notice.
type CapitalAccountStatementData struct {
	RecipientName      string
	FundName           string
	PeriodEnd          string
	EndingBalance      string
	UnfundedCommitment string
	PortalURL          string
}

// RenderCapitalAccountStatement builds the periodic capital account
// statement notice.
func RenderCapitalAccountStatement(data CapitalAccountStatementData) string {
	inner := header("Capital Account Statement", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Your capital account statement for the period ending "+escapeString(data.PeriodEnd)+" is available.")) +
		detailBox([]detailRow{
			{Label: "Period End", Value: escapeString(data.PeriodEnd)},
			{Label: "Ending Capital Balance", Value: escapeString(data.EndingBalance)},
			{Label: "Unfunded Commitment", Value: escapeString(data.UnfundedCommitment)},
		}) +
		buttonRow([]emailButton{{Label: "View Statement", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Your capital account statement through "+escapeString(data.PeriodEnd)+" is ready.")
}

// NAVUpdateData contains the fields for the NAV update notice.
type NAVUpdateData struct {
	RecipientName string
	FundName      string
	AsOfDate      string
	NAVPerUnit    string
	ChangePercent string
	PortalURL     string
}

func RenderNAVUpdate(data NAVUpdateData) string {
	inner := header("NAV Update", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The net asset value of "+escapeString(data.FundName)+" has been updated as of "+escapeString(data.AsOfDate)+".")) +
		detailBox([]detailRow{
			{Label: "As Of", Value: escapeString(data.AsOfDate)},
			{Label: "NAV Per Unit", Value: escapeString(data.NAVPerUnit)},
			{Label: "Change Since Last Period", Value: escapeString(data.ChangePercent)},
		}) +
		buttonRow([]emailButton{{Label: "View Performance", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Updated NAV for "+escapeString(data.FundName)+" as of "+escapeString(data.AsOfDate)+".")
}

// MaterialEventNoticeData contains the fields for a material event notice.
// EventContent is authored by the manager in the dashboard's rich-text
// editor and sanitized upstream; it is rendered verbatim.
type MaterialEventNoticeData struct {
	RecipientName string
	FundName      string
	EventTitle    string
	EventContent  TrustedHTML
	PortalURL     string
}

// RenderMaterialEventNotice builds a material event disclosure.
func RenderMaterialEventNotice(data MaterialEventNoticeData) string {
	inner := header("Material Event Notice", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The manager of "+escapeString(data.FundName)+" is notifying investors of the following material event: "+escapeString(data.EventTitle)+".")) +
		section(string(data.EventContent)) +
		buttonRow([]emailButton{{Label: "View in Portal", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Material event notice for "+escapeString(data.FundName)+": "+escapeString(data.EventTitle))
}

// AmendmentNoticeData contains the fields for a fund document amendment
// notice. AmendmentSummary is counsel-prepared rich HTML, rendered verbatim.
type AmendmentNoticeData struct {
	RecipientName    string
	FundName         string
	DocumentName     string
	EffectiveDate    string
	AmendmentSummary TrustedHTML
	ConsentRequired  bool
	ConsentDeadline  string
	PortalURL        string
}

// RenderAmendmentNotice builds the notice of an amendment to the fund's
// governing documents. The consent block renders only when consent is
// required.
func RenderAmendmentNotice(data AmendmentNoticeData) string {
	inner := header("Amendment Notice", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The "+escapeString(data.DocumentName)+" of "+escapeString(data.FundName)+" is being amended, effective "+escapeString(data.EffectiveDate)+". A summary of the amendment follows.")) +
		section(string(data.AmendmentSummary))
	if data.ConsentRequired {
		inner += infoBox(severityWarning, "This amendment requires investor consent. Please submit your consent or objection by "+escapeString(data.ConsentDeadline)+".") +
			buttonRow([]emailButton{{Label: "Review &amp; Respond", URL: escapeString(data.PortalURL)}})
	} else {
		inner += buttonRow([]emailButton{{Label: "View Full Amendment", URL: escapeString(data.PortalURL), Secondary: true}})
	}
	inner += signoff()
	return document(inner, "Notice of amendment to the "+escapeString(data.DocumentName)+".")
}

// AnnualMeetingInviteData contains the fields for the annual meeting
// invitation.
type AnnualMeetingInviteData struct {
	RecipientName string
	FundName      string
	MeetingDate   string
	MeetingTime   string
	Location      string
	RSVPDeadline  string
	RSVPURL       string
}

// RenderAnnualMeetingInvite builds the annual investor meeting invitation.
func RenderAnnualMeetingInvite(data AnnualMeetingInviteData) string {
	inner := header("Annual Investor Meeting", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("You are invited to the annual investor meeting for "+escapeString(data.FundName)+".")) +
		detailBox([]detailRow{
			{Label: "Date", Value: escapeString(data.MeetingDate)},
			{Label: "Time", Value: escapeString(data.MeetingTime)},
			{Label: "Location", Value: escapeString(data.Location)},
			{Label: "RSVP By", Value: escapeString(data.RSVPDeadline)},
		}) +
		buttonRow([]emailButton{{Label: "RSVP", URL: escapeString(data.RSVPURL)}}) +
		signoff()
	return document(inner, "Annual investor meeting on "+escapeString(data.MeetingDate)+". RSVP by "+escapeString(data.RSVPDeadline)+".")
}
