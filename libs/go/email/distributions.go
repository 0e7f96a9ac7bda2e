package email

// Distribution templates.

// DistributionNoticeData contains the fields for a distribution
// announcement.
type DistributionNoticeData struct {
	RecipientName      string
	FundName           string
	DistributionNumber string
	GrossAmount        string
	Withholding        string
	NetAmount          string
	PaymentDate        string
	Source             string
	PortalURL          string
}

// RenderDistributionNotice builds the advance notice of an upcoming
// distribution.
func RenderDistributionNotice(data DistributionNoticeData) string {
	rows := []detailRow{
		{Label: "Distribution Number", Value: escapeString(data.DistributionNumber)},
		{Label: "Gross Amount", Value: escapeString(data.GrossAmount)},
	}
	if data.Withholding != "" {
		rows = append(rows, detailRow{Label: "Tax Withholding", Value: escapeString(data.Withholding)})
	}
	rows = append(rows,
		detailRow{Label: "Net Amount", Value: escapeString(data.NetAmount)},
		detailRow{Label: "Expected Payment Date", Value: escapeString(data.PaymentDate)},
	)
	body := greeting(data.RecipientName) +
		para(escapeString(data.FundName)+" will make a distribution to investors. Your share is summarized below.")
	if data.Source != "" {
		body += para("Source of distribution: "+escapeString(data.Source))
	}
	inner := header("Distribution Notice", escapeString(data.FundName)) +
		section(body) +
		detailBox(rows) +
		buttonRow([]emailButton{{Label: "View Distribution", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "A distribution of "+escapeString(data.NetAmount)+" is scheduled for "+escapeString(data.PaymentDate)+".")
}

// DistributionPaidData contains the fields for the payment confirmation.
type DistributionPaidData struct {
	RecipientName string
	FundName      string
	NetAmount     string
	PaidDate      string
	AccountTail   string
	PortalURL     string
}

// RenderDistributionPaid builds the confirmation that a distribution has
// been paid out.
func RenderDistributionPaid(data DistributionPaidData) string {
	inner := header("Distribution Paid", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Your distribution from "+escapeString(data.FundName)+" has been paid.")) +
		detailBox([]detailRow{
			{Label: "Amount Paid", Value: escapeString(data.NetAmount)},
			{Label: "Payment Date", Value: escapeString(data.PaidDate)},
			{Label: "Account", Value: "Ending in " + escapeString(data.AccountTail)},
		}) +
		infoBox(severitySuccess, "Depending on your bank, funds may take one to two business days to appear.") +
		buttonRow([]emailButton{{Label: "View Statement", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "Your distribution of "+escapeString(data.NetAmount)+" has been paid.")
}

// ReinvestmentElectionData contains the fields for the reinvestment
// election request.
type ReinvestmentElectionData struct {
	RecipientName    string
	FundName         string
	EligibleAmount   string
	ElectionDeadline string
	ElectionURL      string
}

// RenderReinvestmentElection builds the email offering the investor a
// choice between cash payout and reinvestment.
func RenderReinvestmentElection(data ReinvestmentElectionData) string {
	inner := header("Reinvestment Election", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("An upcoming distribution from "+escapeString(data.FundName)+" is eligible for reinvestment. You may elect to receive cash or reinvest all or part of your share.")) +
		detailBox([]detailRow{
			{Label: "Eligible Amount", Value: escapeString(data.EligibleAmount)},
			{Label: "Election Deadline", Value: escapeString(data.ElectionDeadline)},
		}) +
		infoBox(severityInfo, "If no election is made by the deadline, your distribution will be paid in cash to your account on file.") +
		buttonRow([]emailButton{{Label: "Make Election", URL: escapeString(data.ElectionURL)}}) +
		signoff()
	return document(inner, "Reinvestment election due by "+escapeString(data.ElectionDeadline)+".")
}

// TaxWithholdingNoticeData contains the fields for a withholding
// explanation.
type TaxWithholdingNoticeData struct {
	RecipientName   string
	FundName        string
	GrossAmount     string
	WithheldAmount  string
	WithholdingRate string
	Jurisdiction    string
	SupportEmail    string
}

// RenderTaxWithholdingNotice builds the notice explaining tax withheld from
// a distribution.
func RenderTaxWithholdingNotice(data TaxWithholdingNoticeData) string {
	inner := header("Tax Withholding Notice", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para("Tax was withheld from your most recent distribution from "+escapeString(data.FundName)+", as required for your tax jurisdiction.")) +
		detailBox([]detailRow{
			{Label: "Gross Distribution", Value: escapeString(data.GrossAmount)},
			{Label: "Amount Withheld", Value: escapeString(data.WithheldAmount)},
			{Label: "Withholding Rate", Value: escapeString(data.WithholdingRate)},
			{Label: "Jurisdiction", Value: escapeString(data.Jurisdiction)},
		}) +
		section(para("Withheld amounts are remitted to the relevant tax authority on your behalf and will be reflected on your annual tax documents. Questions may be directed to "+escapeString(data.SupportEmail)+".")) +
		signoff()
	return document(inner, "Tax withholding applied to your recent distribution.")
}

// RecallableDistributionData contains the fields for a recallable
// distribution notice.
type RecallableDistributionData struct {
	RecipientName    string
	FundName         string
	NetAmount        string
	RecallableAmount string
	PaymentDate      string
	PortalURL        string
}

// RenderRecallableDistribution builds the notice that part of a
// distribution remains subject to recall under the fund agreement.
func RenderRecallableDistribution(data RecallableDistributionData) string {
	inner := header("Recallable Distribution Notice", escapeString(data.FundName)) +
		section(greeting(data.RecipientName)+
			para(escapeString(data.FundName)+" will make a distribution of "+escapeString(data.NetAmount)+" on "+escapeString(data.PaymentDate)+".")) +
		infoBox(severityInfo, escapeString(data.RecallableAmount)+" of this distribution is recallable: the fund may call this amount back as part of a future capital call, and it will be added back to your unfunded commitment.") +
		buttonRow([]emailButton{{Label: "View Details", URL: escapeString(data.PortalURL), Secondary: true}}) +
		signoff()
	return document(inner, "A recallable distribution of "+escapeString(data.NetAmount)+" is scheduled.")
}
