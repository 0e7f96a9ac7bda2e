package email

// Account security templates.

// PasswordResetData contains the fields for the password reset email.
type PasswordResetData struct {
	RecipientName string
	ResetURL      string
	ExpiresIn     string
}

// RenderPasswordReset builds the password reset email.
func RenderPasswordReset(data PasswordResetData) string {
	inner := header("Password Reset", "") +
		section(greeting(data.RecipientName)+
			para("We received a request to reset the password for your Meridian investor account. Use the button below to choose a new password.")) +
		buttonRow([]emailButton{{Label: "Reset Password", URL: escapeString(data.ResetURL)}}) +
		infoBox(severityInfo, "This link expires in "+escapeString(data.ExpiresIn)+". If you did not request a reset, you can safely ignore this email; your password will not change.") +
		signoff()
	return document(inner, "Reset the password for your Meridian investor account.")
}

// NewLoginAlertData contains the fields for the new sign-in alert. Location
// is optional and its detail row is omitted when empty.
type NewLoginAlertData struct {
	RecipientName string
	Device        string
	IPAddress     string
	Location      string
	LoginTime     string
	SecureURL     string
}

// RenderNewLoginAlert builds the alert sent after a sign-in from an
// unrecognized device.
func RenderNewLoginAlert(data NewLoginAlertData) string {
	rows := []detailRow{
		{Label: "Device", Value: escapeString(data.Device)},
		{Label: "IP Address", Value: escapeString(data.IPAddress)},
	}
	if data.Location != "" {
		rows = append(rows, detailRow{Label: "Location", Value: escapeString(data.Location)})
	}
	rows = append(rows, detailRow{Label: "Time", Value: escapeString(data.LoginTime)})
	inner := header("New Sign-In to Your Account", "") +
		section(greeting(data.RecipientName)+
			para("Your Meridian investor account was just signed in to from a device we did not recognize.")) +
		detailBox(rows) +
		infoBox(severityWarning, "If this was not you, secure your account immediately and contact your fund administrator.") +
		buttonRow([]emailButton{{Label: "Secure My Account", URL: escapeString(data.SecureURL)}}) +
		signoff()
	return document(inner, "New sign-in to your investor account from "+escapeString(data.Device)+".")
}

// EmailChangeConfirmationData contains the fields for the email change
// confirmation.
type EmailChangeConfirmationData struct {
	RecipientName string
	NewEmail      string
	ConfirmURL    string
	ExpiresIn     string
}

// RenderEmailChangeConfirmation builds the confirmation sent to the new
// address when an investor changes their email.
func RenderEmailChangeConfirmation(data EmailChangeConfirmationData) string {
	inner := header("Confirm Your New Email", "") +
		section(greeting(data.RecipientName)+
			para("You asked to change the email address on your Meridian investor account to "+escapeString(data.NewEmail)+". Confirm the change using the button below.")) +
		buttonRow([]emailButton{{Label: "Confirm Email Change", URL: escapeString(data.ConfirmURL)}}) +
		infoBox(severityInfo, "This confirmation link expires in "+escapeString(data.ExpiresIn)+". Until confirmed, notices continue to go to your previous address.") +
		signoff()
	return document(inner, "Confirm the new email address for your investor account.")
}
