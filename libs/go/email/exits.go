package email

// Exit, realization and wind-down templates. The summary bodies for
// dispositions, acquisitions and refinances are prepared in the manager
// dashboard and sanitized upstream; those fields are TrustedHTML.

// RealizationNoticeData contains the fields for a realization event notice.
type RealizationNoticeData struct {
	RecipientName    string
	FundName         string
	AssetName        string
	EventType        string
	ExpectedProceeds string
	PortalURL        string
}

// RenderRealizationNotice builds the notice of a realization event on a
// fund asset.
func RenderRealizationNotice(data RealizationNoticeData) string {
	inner := header("Realization Event", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para(escapeString(data.FundName)+" has entered into a "+escapeString(data.EventType)+" of "+escapeString(data.AssetName)+".")) +
		detailBox([]detailRow{
			{Label: "Asset", Value: escapeString(data.AssetName)},
			{Label: "Event", Value: escapeString(data.EventType)},
			{Label: "Expected Proceeds", Value: escapeString(data.ExpectedProceeds)},
		}) +
		section(para("Distribution of proceeds, if any, will be announced separately once the transaction closes.")) +
		buttonRow([]emailButton{{Label: "View Details", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Realization event: "+escapeString(data.EventType)+" of "+escapeString(data.AssetName)+".")
}

// DispositionSummaryData contains the fields for a completed disposition
// report. Summary is rendered verbatim.
type DispositionSummaryData struct {
	RecipientName string
	FundName      string
	AssetName     string
	ClosedDate    string
	Summary       TrustedHTML
	PortalURL     string
}

// RenderDispositionSummary builds the post-close disposition report.
func RenderDispositionSummary(data DispositionSummaryData) string {
	inner := header("Disposition Completed", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The sale of "+escapeString(data.AssetName)+" closed on "+escapeString(data.ClosedDate)+". A summary of the transaction is below.")) +
		section(string(data.Summary)) +
		buttonRow([]emailButton{{Label: "View Full Report", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "The sale of "+escapeString(data.AssetName)+" has closed.")
}

// AcquisitionNoticeData contains the fields for a new acquisition
// announcement. Summary is rendered verbatim.
type AcquisitionNoticeData struct {
	RecipientName string
	FundName      string
	AssetName     string
	ClosedDate    string
	Summary       TrustedHTML
	PortalURL     string
}

func RenderAcquisitionNotice(data AcquisitionNoticeData) string {
	inner := header("New Acquisition", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para(escapeString(data.FundName)+" completed the acquisition of "+escapeString(data.AssetName)+" on "+escapeString(data.ClosedDate)+".")) +
		section(string(data.Summary)) +
		buttonRow([]emailButton{{Label: "View in Portal", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, escapeString(data.FundName)+" has acquired "+escapeString(data.AssetName)+".")
}

// RefinanceNoticeData contains the fields for a refinance announcement.
// Summary is rendered verbatim.
type RefinanceNoticeData struct {
	RecipientName string
	FundName      string
	AssetName     string
	Summary       TrustedHTML
	PortalURL     string
}

func RenderRefinanceNotice(data RefinanceNoticeData) string {
	inner := header("Refinance Completed", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("A refinancing of "+escapeString(data.AssetName)+" has been completed. Details are summarized below.")) +
		section(string(data.Summary)) +
		buttonRow([]emailButton{{Label: "View Details", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Refinance completed on "+escapeString(data.AssetName)+".")
}

// FinalExitStatementData contains the fields for the final exit statement
// after a fund is fully liquidated. ExitClosingMessage is an optional
// personal note from the manager; when empty the block is fully omitted.
type FinalExitStatementData struct {
	RecipientName         string
	FundName              string
	TotalContributed      string
	TotalDistributed      string
	NetMultiple           string
	FinalDistributionDate string
	ExitClosingMessage    string
	PortalURL             string
}

// RenderFinalExitStatement builds the final account statement for a fully
// liquidated fund.
func RenderFinalExitStatement(data FinalExitStatementData) string {
	inner := header("Final Exit Statement", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para(escapeString(data.FundName)+" has been fully liquidated and your interest in the fund is now closed. Your final statement is summarized below.")) +
		detailBox([]detailRow{
			{Label: "Total Capital Contributed", Value: escapeString(data.TotalContributed)},
			{Label: "Total Distributions Received", Value: escapeString(data.TotalDistributed)},
			{Label: "Net Multiple", Value: escapeString(data.NetMultiple)},
			{Label: "Final Distribution Date", Value: escapeString(data.FinalDistributionDate)},
		})
	if data.ExitClosingMessage != "" {
		inner += section(para(escapeString(data.ExitClosingMessage)))
	}
	inner += section(para("Your records, statements and tax documents will remain available in the portal.")) +
		buttonRow([]emailButton{{Label: "View Final Statement", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, escapeString(data.FundName)+" has been fully liquidated. Your final statement is ready.")
}

// WindDownNoticeData contains the fields for the wind-down commencement
// notice.
type WindDownNoticeData struct {
	RecipientName    string
	FundName         string
	ExpectedTimeline string
	PortalURL        string
}

// RenderWindDownNotice builds the notice that the fund has entered its
// wind-down period.
func RenderWindDownNotice(data WindDownNoticeData) string {
	inner := header("Fund Wind-Down Commenced", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para(escapeString(data.FundName)+" has entered its wind-down period. Remaining assets will be realized and proceeds distributed to investors in accordance with the fund agreement.")) +
		detailBox([]detailRow{
			{Label: "Expected Timeline", Value: escapeString(data.ExpectedTimeline)},
		}) +
		section(para("You will receive distribution notices as proceeds become available, followed by a final exit statement when the wind-down completes.")) +
		buttonRow([]emailButton{{Label: "View Wind-Down Plan", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, escapeString(data.FundName)+" has entered its wind-down period.")
}

// FinalCapitalReturnData contains the fields for the final capital return
// payment notice.
type FinalCapitalReturnData struct {
	RecipientName string
	FundName      string
	Amount        string
	PaymentDate   string
	AccountTail   string
}

func RenderFinalCapitalReturn(data FinalCapitalReturnData) string {
	inner := header("Final Capital Return", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("The final return of capital from "+escapeString(data.FundName)+" has been paid.")) +
		detailBox([]detailRow{
			{Label: "Amount", Value: escapeString(data.Amount)},
			{Label: "Payment Date", Value: escapeString(data.PaymentDate)},
			{Label: "Account", Value: "Ending in " + escapeString(data.AccountTail)},
		}) +
		infoBox(severitySuccess, "This is the final payment for this fund. Your final exit statement will follow shortly.") +
		signoff()
	return document(inner, "Final capital return of "+escapeString(data.Amount)+" has been paid.")
}
