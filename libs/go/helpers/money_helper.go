package helpers

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// currencySymbols maps ISO currency codes to their display symbols.
// Codes without an entry fall back to "CODE amount" formatting.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// FormatAmountCents formats an integer cents amount as a display string with
// thousands separators, e.g. 5000000 USD -> "$50,000.00".
func FormatAmountCents(cents int64, currency string) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	amount := fmt.Sprintf("%s.%02d", b.String(), frac)

	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		if negative {
			return fmt.Sprintf("%s -%s", strings.ToUpper(currency), amount)
		}
		return fmt.Sprintf("%s %s", strings.ToUpper(currency), amount)
	}
	if negative {
		return fmt.Sprintf("-%s%s", symbol, amount)
	}
	return symbol + amount
}

// FormatDate formats a date for display in notifications, e.g. "January 31, 2026".
// Invalid (null) dates format as an empty string.
func FormatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("January 2, 2006")
}

// FormatTimestamp formats a timestamp for display in notifications,
// e.g. "January 31, 2026 at 3:04 PM UTC".
func FormatTimestamp(t pgtype.Timestamptz) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format("January 2, 2006 at 3:04 PM MST")
}
