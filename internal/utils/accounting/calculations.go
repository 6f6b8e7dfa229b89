package accounting

import (
	"strings"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/SscSPs/invoice_form_app/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

var unpaidThreshold = decimal.NewFromFloat(0.5)

// ClassifyReservationBalance grades a reservation by its remaining balance.
// Nothing left is PAID; more than half of the total left is UNPAID; anything else is PARTIAL.
func ClassifyReservationBalance(total, remaining decimal.Decimal) domain.BalanceClass {
	switch {
	case remaining.IsZero():
		return domain.BalancePaid
	case remaining.GreaterThan(total.Mul(unpaidThreshold)):
		return domain.BalanceUnpaid
	default:
		return domain.BalancePartial
	}
}

// CalculateReservationBalances attributes payments to reservations by reference.
// paymentValues holds the rounded settlement value of each payment, index-aligned with payments.
// Payments without a reference are not attributed; rows sharing a reference each see the full paid amount.
func CalculateReservationBalances(reservations []domain.ReservationItem, payments []domain.PaymentItem, paymentValues []decimal.Decimal) []domain.ReservationBalance {
	paidByRef := make(map[string]decimal.Decimal)
	for i, p := range payments {
		ref := strings.TrimSpace(p.ReservationReference)
		if ref == "" || i >= len(paymentValues) {
			continue
		}
		paidByRef[ref] = paidByRef[ref].Add(paymentValues[i])
	}

	balances := make([]domain.ReservationBalance, 0, len(reservations))
	for i, r := range reservations {
		ref := strings.TrimSpace(r.Reference)
		total := numeric.RoundUnit(numeric.CoerceAmount(r.Total))
		paid := decimal.Zero
		if ref != "" {
			paid = paidByRef[ref]
		}
		remaining := total.Sub(paid)
		balances = append(balances, domain.ReservationBalance{
			Index:     i,
			Reference: ref,
			Total:     total,
			Paid:      paid,
			Remaining: remaining,
			Class:     ClassifyReservationBalance(total, remaining),
		})
	}
	return balances
}
