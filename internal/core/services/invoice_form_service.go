package services

import (
	"slices"
	"strings"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_form_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_form_app/internal/utils/accounting"
	"github.com/SscSPs/invoice_form_app/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// invoiceFormService implements the totals, reference and exchange rate computations.
// It holds no state; every call works on the snapshot it is given.
type invoiceFormService struct {
	exchangeRateService
}

// NewInvoiceFormService creates a new invoice form service.
func NewInvoiceFormService() portssvc.InvoiceFormSvcFacade {
	return &invoiceFormService{}
}

// ComputeTotals implements portssvc.TotalsSvc.
func (s *invoiceFormService) ComputeTotals(reservations []domain.ReservationItem, payments []domain.PaymentItem) domain.TotalsResult {
	totalReserved := decimal.Zero
	for _, r := range reservations {
		totalReserved = totalReserved.Add(numeric.CoerceAmount(r.Total))
	}

	result := domain.TotalsResult{
		Payments:    make([]domain.PaymentValue, 0, len(payments)),
		Unconverted: []int{},
	}

	paid := decimal.Zero
	for i, p := range payments {
		value := s.ConvertToSettlement(p)
		value.Index = i
		if !value.Converted {
			result.Unconverted = append(result.Unconverted, i)
		}
		paid = paid.Add(value.Exact)
		result.Payments = append(result.Payments, value)
	}

	// The remaining balance uses the rounded paid figure, so it agrees with what is displayed.
	totalPaid := numeric.RoundUnit(paid)
	remaining := totalReserved.Sub(totalPaid)

	result.TotalReserved = numeric.RoundUnit(totalReserved)
	result.TotalPaid = totalPaid
	result.Remaining = numeric.RoundUnit(remaining)
	result.State = domain.ClassifyRemaining(remaining)
	return result
}

// ReservationBalances implements portssvc.TotalsSvc.
func (s *invoiceFormService) ReservationBalances(reservations []domain.ReservationItem, payments []domain.PaymentItem) []domain.ReservationBalance {
	rounded := make([]decimal.Decimal, len(payments))
	for i, p := range payments {
		rounded[i] = s.ConvertToSettlement(p).Rounded
	}
	return accounting.CalculateReservationBalances(reservations, payments, rounded)
}

// BuildReferenceOptions implements portssvc.ReferenceSvc.
func (s *invoiceFormService) BuildReferenceOptions(reservations []domain.ReservationItem) []string {
	options := make([]string, 0, len(reservations)+1)
	options = append(options, "")
	for _, r := range reservations {
		if ref := strings.TrimSpace(r.Reference); ref != "" {
			options = append(options, ref)
		}
	}
	return options
}

// ApplyReferenceOptions implements portssvc.ReferenceSvc.
func (s *invoiceFormService) ApplyReferenceOptions(options []string, previous string) string {
	if previous == "" || !slices.Contains(options, previous) {
		return ""
	}
	return previous
}

// SyncPaymentSelections implements portssvc.ReferenceSvc.
func (s *invoiceFormService) SyncPaymentSelections(reservations []domain.ReservationItem, payments []domain.PaymentItem) []string {
	options := s.BuildReferenceOptions(reservations)
	selections := make([]string, len(payments))
	for i, p := range payments {
		selections[i] = s.ApplyReferenceOptions(options, p.ReservationReference)
	}
	return selections
}
