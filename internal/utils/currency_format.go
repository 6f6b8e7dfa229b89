package utils

import (
	"strings"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/SscSPs/invoice_form_app/internal/utils/numeric"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.English)

// FormatGrouped formats an amount as a thousands-grouped integer.
// Example: 1234567.6 returns "1,234,568"
func FormatGrouped(amount decimal.Decimal) string {
	n := numeric.RoundUnit(amount).BigInt()
	if n.IsInt64() {
		return displayPrinter.Sprintf("%d", n.Int64())
	}
	return groupDigits(n.String())
}

// groupDigits inserts thousands separators into a base-10 integer string.
func groupDigits(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	b.WriteString(sign)
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatSettlement formats an amount in the settlement currency for display.
// Example: 1000 returns "1,000 SAR"; -188 returns "-188 SAR"
func FormatSettlement(amount decimal.Decimal) string {
	return FormatGrouped(amount) + " " + string(domain.SettlementCurrency)
}
