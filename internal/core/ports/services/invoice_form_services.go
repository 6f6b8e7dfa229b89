package services

import (
	"context"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
)

// TotalsSvc computes running totals for an invoice form snapshot.
type TotalsSvc interface {
	// ComputeTotals sums reservations and settlement-converted payments. It never fails.
	ComputeTotals(reservations []domain.ReservationItem, payments []domain.PaymentItem) domain.TotalsResult

	// ReservationBalances reports the remaining balance of each reservation row.
	ReservationBalances(reservations []domain.ReservationItem, payments []domain.PaymentItem) []domain.ReservationBalance
}

// ReferenceSvc keeps payment reservation-reference selectors in sync.
type ReferenceSvc interface {
	// BuildReferenceOptions lists the selectable references, led by the empty option.
	BuildReferenceOptions(reservations []domain.ReservationItem) []string

	// ApplyReferenceOptions returns previous if it is still selectable, otherwise "".
	ApplyReferenceOptions(options []string, previous string) string

	// SyncPaymentSelections applies the current options to every payment row.
	SyncPaymentSelections(reservations []domain.ReservationItem, payments []domain.PaymentItem) []string
}

// ExchangeRateSvc governs the exchange rate input of a payment row.
type ExchangeRateSvc interface {
	// ConvertToSettlement returns the settlement-currency value of one payment.
	ConvertToSettlement(payment domain.PaymentItem) domain.PaymentValue

	// ToggleExchangeRate returns the rate field state after a currency change.
	ToggleExchangeRate(currency string, currentRate string) domain.ExchangeRateField
}

// InvoiceFormSvcFacade combines the pure invoice form computations.
type InvoiceFormSvcFacade interface {
	TotalsSvc
	ReferenceSvc
	ExchangeRateSvc
}

// FormEventSvc applies explicit form commands to a snapshot.
type FormEventSvc interface {
	// Apply runs event against a copy of form and returns the new snapshot with its view.
	Apply(ctx context.Context, form domain.Form, event domain.FormEvent) (*domain.FormState, error)
}
