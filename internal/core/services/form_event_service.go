package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/invoice_form_app/internal/apperrors"
	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_form_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_form_app/internal/utils"
	"github.com/google/uuid"
)

// formEventService applies form commands to caller-owned snapshots.
type formEventService struct {
	BaseService
	invoiceForm portssvc.InvoiceFormSvcFacade
	newRowID    func() string
}

// FormEventServiceOption configures a formEventService.
type FormEventServiceOption func(*formEventService)

// WithRowIDGenerator overrides how new row IDs are generated.
func WithRowIDGenerator(gen func() string) FormEventServiceOption {
	return func(s *formEventService) {
		s.newRowID = gen
	}
}

// NewFormEventService creates a new form event service on top of the invoice form computations.
func NewFormEventService(invoiceForm portssvc.InvoiceFormSvcFacade, opts ...FormEventServiceOption) portssvc.FormEventSvc {
	s := &formEventService{
		invoiceForm: invoiceForm,
		newRowID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply implements portssvc.FormEventSvc.
func (s *formEventService) Apply(ctx context.Context, form domain.Form, event domain.FormEvent) (*domain.FormState, error) {
	next := form.Clone()
	focus := ""

	switch event.Type {
	case domain.Refresh:
		// Nothing to change; totals and selectors are recomputed below.
	case domain.AddReservation:
		row := domain.ReservationRow{ID: s.newRowID()}
		applyReservationEdit(&row, event)
		next.Reservations = append(next.Reservations, row)
		focus = row.ID
	case domain.EditReservation:
		idx, err := findReservation(next, event.RowID)
		if err != nil {
			return nil, err
		}
		applyReservationEdit(&next.Reservations[idx], event)
	case domain.RemoveReservation:
		idx, err := findReservation(next, event.RowID)
		if err != nil {
			return nil, err
		}
		next.Reservations = slices.Delete(next.Reservations, idx, idx+1)
	case domain.AddPayment:
		row := domain.PaymentRow{
			ID:               s.newRowID(),
			PaymentItem:      domain.PaymentItem{Currency: string(domain.SettlementCurrency), ExchangeRate: "1"},
			ExchangeReadOnly: true,
		}
		s.applyPaymentEdit(&row, event)
		next.Payments = append(next.Payments, row)
		focus = row.ID
	case domain.EditPayment, domain.ChangePaymentCurrency:
		idx, err := findPayment(next, event.RowID)
		if err != nil {
			return nil, err
		}
		s.applyPaymentEdit(&next.Payments[idx], event)
	case domain.RemovePayment:
		idx, err := findPayment(next, event.RowID)
		if err != nil {
			return nil, err
		}
		next.Payments = slices.Delete(next.Payments, idx, idx+1)
	default:
		return nil, fmt.Errorf("%w: unknown form event type '%s'", apperrors.ErrValidation, event.Type)
	}

	reservations := next.ReservationItems()
	selections := s.invoiceForm.SyncPaymentSelections(reservations, next.PaymentItems())
	for i := range next.Payments {
		next.Payments[i].ReservationReference = selections[i]
		enforceRateLock(&next.Payments[i])
	}

	view := s.buildView(reservations, next.PaymentItems())
	view.FocusRowID = focus

	s.LogDebug(ctx, "Applied form event",
		slog.String("event_type", string(event.Type)),
		slog.Int("reservations", len(next.Reservations)),
		slog.Int("payments", len(next.Payments)),
		slog.String("state", string(view.Totals.State)))

	return &domain.FormState{Form: next, View: view}, nil
}

func (s *formEventService) buildView(reservations []domain.ReservationItem, payments []domain.PaymentItem) domain.FormView {
	totals := s.invoiceForm.ComputeTotals(reservations, payments)
	return domain.FormView{
		Totals:            totals,
		TotalReservedText: utils.FormatSettlement(totals.TotalReserved),
		TotalPaidText:     utils.FormatSettlement(totals.TotalPaid),
		RemainingText:     utils.FormatSettlement(totals.Remaining),
		RemainingColor:    totals.State.Color(),
		ReferenceOptions:  s.invoiceForm.BuildReferenceOptions(reservations),
	}
}

func applyReservationEdit(row *domain.ReservationRow, event domain.FormEvent) {
	if event.Reference != nil {
		row.Reference = *event.Reference
	}
	if event.Total != nil {
		row.Total = *event.Total
	}
}

// applyPaymentEdit copies edited fields onto row. A currency change runs first so that
// the settlement currency keeps its locked rate even if the event also carries one.
// Whether the rate is editable follows the row's currency, not the submitted read-only flag.
func (s *formEventService) applyPaymentEdit(row *domain.PaymentRow, event domain.FormEvent) {
	if event.ReservationReference != nil {
		row.ReservationReference = *event.ReservationReference
	}
	if event.Amount != nil {
		row.Amount = *event.Amount
	}
	if event.Currency != nil {
		row.Currency = *event.Currency
		field := s.invoiceForm.ToggleExchangeRate(row.Currency, row.ExchangeRate)
		row.ExchangeRate = field.Value
	}
	enforceRateLock(row)
	if event.ExchangeRate != nil && !row.ExchangeReadOnly {
		row.ExchangeRate = *event.ExchangeRate
	}
}

// enforceRateLock keeps the settlement currency's rate at "1" and read-only.
func enforceRateLock(row *domain.PaymentRow) {
	if c, _ := domain.LookupCurrency(row.Currency); c.IsSettlement() {
		row.ExchangeRate = "1"
		row.ExchangeReadOnly = true
		return
	}
	row.ExchangeReadOnly = false
}

func findReservation(form domain.Form, rowID string) (int, error) {
	for i, r := range form.Reservations {
		if r.ID == rowID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: reservation row '%s'", apperrors.ErrNotFound, rowID)
}

func findPayment(form domain.Form, rowID string) (int, error) {
	for i, p := range form.Payments {
		if p.ID == rowID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: payment row '%s'", apperrors.ErrNotFound, rowID)
}
