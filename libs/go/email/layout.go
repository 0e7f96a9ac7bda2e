package email

import "strings"

// Layout primitives. Each function is a pure builder from pre-escaped
// strings to an HTML fragment; fragments are table rows that stack inside
// the 600px content table produced by document(). Callers are responsible
// for escaping plain text before it reaches a primitive.

const fontStack = "-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif"

const paragraphStyle = "margin:0 0 16px;color:#374151;font-size:15px;line-height:1.6;font-family:" + fontStack + ";"

// para wraps already-escaped inline content in the standard body paragraph.
func para(inner string) string {
	return `<p style="` + paragraphStyle + `">` + inner + `</p>`
}

// greeting renders the standard salutation line. The name is plain text
// and is escaped here.
func greeting(name string) string {
	return para("Dear " + escapeString(name) + ",")
}

// document wraps assembled rows into a complete, self-contained HTML email.
// The preheader is the hidden preview snippet email clients show before the
// message is opened; it must be pre-escaped by the caller.
func document(inner, preheader string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">`)
	b.WriteString("<head>")
	b.WriteString(`<meta charset="utf-8">`)
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	b.WriteString(`<meta http-equiv="X-UA-Compatible" content="IE=edge">`)
	b.WriteString("<title>Meridian Investor Relations</title>")
	b.WriteString("</head>")
	b.WriteString(`<body style="margin:0;padding:0;background-color:#f4f5f7;font-family:` + fontStack + `;">`)
	if preheader != "" {
		b.WriteString(`<span style="display:none;max-height:0;overflow:hidden;mso-hide:all;">` + preheader + `</span>`)
	}
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color:#f4f5f7;">`)
	b.WriteString(`<tr><td align="center" style="padding:24px 12px;">`)
	b.WriteString(`<table role="presentation" width="600" cellpadding="0" cellspacing="0" border="0" style="max-width:600px;width:100%;background-color:#ffffff;border-radius:8px;overflow:hidden;">`)
	b.WriteString(inner)
	// Bottom spacer so the last block never sits on the card edge.
	b.WriteString(`<tr><td style="padding:0 0 28px;"></td></tr>`)
	b.WriteString("</table>")
	b.WriteString(`<table role="presentation" width="600" cellpadding="0" cellspacing="0" border="0" style="max-width:600px;width:100%;">`)
	b.WriteString(`<tr><td style="padding:20px 32px;text-align:center;color:#9ca3af;font-size:12px;line-height:1.5;font-family:` + fontStack + `;">`)
	b.WriteString("This is an automated message from Meridian Investor Relations. Please do not reply to this email.")
	b.WriteString("</td></tr>")
	b.WriteString("</table>")
	b.WriteString("</td></tr>")
	b.WriteString("</table>")
	b.WriteString("</body>")
	b.WriteString("</html>")
	return b.String()
}

// header renders the banner row. subLabel (typically the fund name) is
// omitted entirely when empty.
func header(title, subLabel string) string {
	var b strings.Builder
	b.WriteString(`<tr><td style="background-color:#1f2a44;padding:28px 32px;">`)
	b.WriteString(`<p style="margin:0;color:#ffffff;font-size:20px;font-weight:600;font-family:` + fontStack + `;">` + title + `</p>`)
	if subLabel != "" {
		b.WriteString(`<p style="margin:6px 0 0;color:#aab4cf;font-size:13px;font-family:` + fontStack + `;">` + subLabel + `</p>`)
	}
	b.WriteString("</td></tr>")
	return b.String()
}

// section wraps arbitrary inner HTML in a padded content cell.
func section(inner string) string {
	return `<tr><td style="padding:24px 32px 0;">` + inner + `</td></tr>`
}

type emailButton struct {
	Label     string
	URL       string
	Secondary bool
}

// button renders a single table-based call-to-action link. Table-based
// buttons survive Outlook's renderer where CSS buttons do not.
func button(btn emailButton) string {
	style := "display:inline-block;padding:12px 24px;border-radius:6px;font-size:14px;font-weight:600;text-decoration:none;font-family:" + fontStack + ";"
	cellStyle := "border-radius:6px;background-color:#1a56db;"
	if btn.Secondary {
		style += "color:#1a56db;"
		cellStyle = "border-radius:6px;background-color:#ffffff;border:1px solid #1a56db;"
	} else {
		style += "color:#ffffff;"
	}
	return `<table role="presentation" cellpadding="0" cellspacing="0" border="0" style="display:inline-table;"><tr>` +
		`<td style="` + cellStyle + `"><a href="` + btn.URL + `" style="` + style + `">` + btn.Label + `</a></td>` +
		`</tr></table>`
}

// buttonRow lays out one or more call-to-action buttons in a single row.
// An empty slice renders nothing.
func buttonRow(buttons []emailButton) string {
	if len(buttons) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<tr><td style="padding:24px 32px 0;">`)
	b.WriteString(`<table role="presentation" cellpadding="0" cellspacing="0" border="0"><tr>`)
	for i, btn := range buttons {
		pad := "0"
		if i < len(buttons)-1 {
			pad = "0 12px 0 0"
		}
		b.WriteString(`<td style="padding:` + pad + `;">` + button(btn) + `</td>`)
	}
	b.WriteString("</tr></table>")
	b.WriteString("</td></tr>")
	return b.String()
}

type severity string

const (
	severityInfo    severity = "info"
	severityWarning severity = "warning"
	severitySuccess severity = "success"
	severityError   severity = "error"
)

type palette struct {
	Background string
	Border     string
	Text       string
}

var severityPalettes = map[severity]palette{
	severityInfo:    {Background: "#eff6ff", Border: "#bfdbfe", Text: "#1e40af"},
	severityWarning: {Background: "#fffbeb", Border: "#fde68a", Text: "#92400e"},
	severitySuccess: {Background: "#ecfdf5", Border: "#a7f3d0", Text: "#065f46"},
	severityError:   {Background: "#fef2f2", Border: "#fecaca", Text: "#991b1b"},
}

// infoBox renders a styled callout. Unknown severities fall back to info.
func infoBox(sev severity, inner string) string {
	p, ok := severityPalettes[sev]
	if !ok {
		p = severityPalettes[severityInfo]
	}
	return `<tr><td style="padding:20px 32px 0;">` +
		`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0"><tr>` +
		`<td style="background-color:` + p.Background + `;border:1px solid ` + p.Border + `;border-radius:6px;padding:14px 16px;color:` + p.Text + `;font-size:14px;line-height:1.6;font-family:` + fontStack + `;">` +
		inner +
		`</td></tr></table>` +
		`</td></tr>`
}

type detailRow struct {
	Label string
	Value string
}

// detailBox renders an ordered label/value list, e.g. "Amount Due: $50,000".
// Values must be pre-escaped. An empty slice renders nothing.
func detailBox(rows []detailRow) string {
	if len(rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<tr><td style="padding:20px 32px 0;">`)
	b.WriteString(`<table role="presentation" width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color:#f9fafb;border:1px solid #e5e7eb;border-radius:6px;">`)
	for i, row := range rows {
		borderTop := ""
		if i > 0 {
			borderTop = "border-top:1px solid #e5e7eb;"
		}
		b.WriteString("<tr>")
		b.WriteString(`<td style="padding:10px 16px;` + borderTop + `color:#6b7280;font-size:13px;font-family:` + fontStack + `;">` + row.Label + `</td>`)
		b.WriteString(`<td align="right" style="padding:10px 16px;` + borderTop + `color:#111827;font-size:13px;font-weight:600;font-family:` + fontStack + `;">` + row.Value + `</td>`)
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	b.WriteString("</td></tr>")
	return b.String()
}

// signoff renders the shared closing signature block.
func signoff() string {
	return section(para("Best regards,<br>The Meridian Investor Relations Team"))
}
