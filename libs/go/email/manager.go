package email

// Manager-side notification templates. These go to fund managers rather
// than investors, so they favor compact detail tables over narrative copy.

// NewInvestorRegisteredData contains the fields for the new registration
// alert.
type NewInvestorRegisteredData struct {
	ManagerName   string
	InvestorName  string
	InvestorEmail string
	FundName      string
	RegisteredAt  string
	DashboardURL  string
}

// RenderNewInvestorRegistered builds the alert sent to a manager when an
// invited investor activates their account.
func RenderNewInvestorRegistered(data NewInvestorRegisteredData) string {
	inner := header("New Investor Registered", escapeString(data.FundName)) +
		section(greeting(data.ManagerName)+
			para("A new investor has activated their account.")) +
		detailBox([]detailRow{
			{Label: "Investor", Value: escapeString(data.InvestorName)},
			{Label: "Email", Value: escapeString(data.InvestorEmail)},
			{Label: "Fund", Value: escapeString(data.FundName)},
			{Label: "Registered", Value: escapeString(data.RegisteredAt)},
		}) +
		buttonRow([]emailButton{{Label: "Open Dashboard", URL: escapeString(data.DashboardURL), Secondary: true}}) +
		signoff()
	return document(inner, escapeString(data.InvestorName)+" has activated their investor account.")
}

// InvestorDocsSignedData contains the fields for the signed-documents alert.
type InvestorDocsSignedData struct {
	ManagerName  string
	InvestorName string
	FundName     string
	DocumentName string
	SignedAt     string
	ReviewURL    string
}

// RenderInvestorDocsSigned builds the alert that an investor executed
// subscription documents awaiting countersignature.
func RenderInvestorDocsSigned(data InvestorDocsSignedData) string {
	inner := header("Documents Signed", escapeString(data.FundName)) +
		section(greeting(data.ManagerName)+
			para(escapeString(data.InvestorName)+" has signed "+escapeString(data.DocumentName)+" and it is awaiting your countersignature.")) +
		detailBox([]detailRow{
			{Label: "Investor", Value: escapeString(data.InvestorName)},
			{Label: "Document", Value: escapeString(data.DocumentName)},
			{Label: "Signed", Value: escapeString(data.SignedAt)},
		}) +
		buttonRow([]emailButton{{Label: "Review &amp; Countersign", URL: escapeString(data.ReviewURL)}}) +
		signoff()
	return document(inner, escapeString(data.InvestorName)+" signed "+escapeString(data.DocumentName)+".")
}

// WireReceivedAlertData contains the fields for the incoming wire alert.
type WireReceivedAlertData struct {
	ManagerName  string
	InvestorName string
	FundName     string
	Amount       string
	CallNumber   string
	ReceivedAt   string
	DashboardURL string
}

// RenderWireReceivedAlert builds the manager alert for a settled investor
// wire.
func RenderWireReceivedAlert(data WireReceivedAlertData) string {
	inner := header("Wire Received", escapeString(data.FundName)) +
		section(greeting(data.ManagerName)+
			para("An investor contribution has settled.")) +
		detailBox([]detailRow{
			{Label: "Investor", Value: escapeString(data.InvestorName)},
			{Label: "Amount", Value: escapeString(data.Amount)},
			{Label: "Capital Call", Value: escapeString(data.CallNumber)},
			{Label: "Received", Value: escapeString(data.ReceivedAt)},
		}) +
		buttonRow([]emailButton{{Label: "Reconcile", URL: escapeString(data.DashboardURL), Secondary: true}}) +
		signoff()
	return document(inner, "Wire of "+escapeString(data.Amount)+" received from "+escapeString(data.InvestorName)+".")
}

// KYCSubmittedAlertData contains the fields for the KYC review alert.
type KYCSubmittedAlertData struct {
	ManagerName  string
	InvestorName string
	SubmittedAt  string
	ReviewURL    string
}

func RenderKYCSubmittedAlert(data KYCSubmittedAlertData) string {
	inner := header("KYC Submission Pending Review", "") +
		section(greeting(data.ManagerName)+
			para(escapeString(data.InvestorName)+" submitted identity verification documents on "+escapeString(data.SubmittedAt)+" and is awaiting review.")) +
		buttonRow([]emailButton{{Label: "Review Submission", URL: escapeString(data.ReviewURL)}}) +
		signoff()
	return document(inner, escapeString(data.InvestorName)+" has submitted KYC documents for review.")
}

// CapitalCallDigestData contains the fields for the daily capital call
// status digest.
type CapitalCallDigestData struct {
	ManagerName   string
	FundName      string
	CallNumber    string
	TotalCalled   string
	TotalReceived string
	FundedCount   string
	PendingCount  string
	OverdueCount  string
	DashboardURL  string
}

// RenderCapitalCallDigest builds the funding status summary for an open
// capital call.
func RenderCapitalCallDigest(data CapitalCallDigestData) string {
	inner := header("Capital Call Status", escapeString(data.FundName)) +
		section(greeting(data.ManagerName)+
			para("Funding status for capital call "+escapeString(data.CallNumber)+":")) +
		detailBox([]detailRow{
			{Label: "Total Called", Value: escapeString(data.TotalCalled)},
			{Label: "Total Received", Value: escapeString(data.TotalReceived)},
			{Label: "Investors Funded", Value: escapeString(data.FundedCount)},
			{Label: "Investors Pending", Value: escapeString(data.PendingCount)},
			{Label: "Investors Overdue", Value: escapeString(data.OverdueCount)},
		}) +
		buttonRow([]emailButton{{Label: "Open Call Dashboard", URL: escapeString(data.DashboardURL), Secondary: true}}) +
		signoff()
	return document(inner, "Capital call "+escapeString(data.CallNumber)+": "+escapeString(data.TotalReceived)+" of "+escapeString(data.TotalCalled)+" received.")
}
