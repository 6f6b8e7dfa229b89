package mapping

import (
	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/SscSPs/invoice_form_app/internal/dto"
	"github.com/SscSPs/invoice_form_app/internal/utils"
)

// ToReservationItems converts reservation DTOs to domain items
func ToReservationItems(reqs []dto.ReservationItemRequest) []domain.ReservationItem {
	items := make([]domain.ReservationItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.ReservationItem{Reference: r.Reference, Total: r.Total}
	}
	return items
}

// ToPaymentItems converts payment DTOs to domain items
func ToPaymentItems(reqs []dto.PaymentItemRequest) []domain.PaymentItem {
	items := make([]domain.PaymentItem, len(reqs))
	for i, p := range reqs {
		items[i] = toPaymentItem(p)
	}
	return items
}

func toPaymentItem(p dto.PaymentItemRequest) domain.PaymentItem {
	return domain.PaymentItem{
		ReservationReference: p.ReservationReference,
		Amount:               p.Amount,
		Currency:             p.Currency,
		ExchangeRate:         p.ExchangeRate,
	}
}

func toPaymentItemRequest(p domain.PaymentItem) dto.PaymentItemRequest {
	return dto.PaymentItemRequest{
		ReservationReference: p.ReservationReference,
		Amount:               p.Amount,
		Currency:             p.Currency,
		ExchangeRate:         p.ExchangeRate,
	}
}

// ToTotalsResponse converts computed totals and reservation balances to a TotalsResponse DTO
func ToTotalsResponse(totals domain.TotalsResult, balances []domain.ReservationBalance) dto.TotalsResponse {
	return dto.TotalsResponse{
		TotalReserved:     totals.TotalReserved,
		TotalPaid:         totals.TotalPaid,
		Remaining:         totals.Remaining,
		State:             totals.State,
		RemainingColor:    totals.State.Color(),
		TotalReservedText: utils.FormatSettlement(totals.TotalReserved),
		TotalPaidText:     utils.FormatSettlement(totals.TotalPaid),
		RemainingText:     utils.FormatSettlement(totals.Remaining),
		Payments:          totals.Payments,
		Unconverted:       totals.Unconverted,
		Reservations:      balances,
	}
}

// ToForm converts a FormDTO to a domain.Form
func ToForm(f dto.FormDTO) domain.Form {
	form := domain.Form{
		Reservations: make([]domain.ReservationRow, len(f.Reservations)),
		Payments:     make([]domain.PaymentRow, len(f.Payments)),
	}
	for i, r := range f.Reservations {
		form.Reservations[i] = domain.ReservationRow{
			ID:              r.ID,
			ReservationItem: domain.ReservationItem{Reference: r.Reference, Total: r.Total},
		}
	}
	for i, p := range f.Payments {
		form.Payments[i] = domain.PaymentRow{
			ID:               p.ID,
			PaymentItem:      toPaymentItem(p.PaymentItemRequest),
			ExchangeReadOnly: p.ExchangeReadOnly,
		}
	}
	return form
}

// ToFormDTO converts a domain.Form to a FormDTO
func ToFormDTO(form domain.Form) dto.FormDTO {
	out := dto.FormDTO{
		Reservations: make([]dto.ReservationRowDTO, len(form.Reservations)),
		Payments:     make([]dto.PaymentRowDTO, len(form.Payments)),
	}
	for i, r := range form.Reservations {
		out.Reservations[i] = dto.ReservationRowDTO{
			ID:                     r.ID,
			ReservationItemRequest: dto.ReservationItemRequest{Reference: r.Reference, Total: r.Total},
		}
	}
	for i, p := range form.Payments {
		out.Payments[i] = dto.PaymentRowDTO{
			ID:                 p.ID,
			PaymentItemRequest: toPaymentItemRequest(p.PaymentItem),
			ExchangeReadOnly:   p.ExchangeReadOnly,
		}
	}
	return out
}

// ToFormEvent converts a FormEventPayload to a domain.FormEvent
func ToFormEvent(e dto.FormEventPayload) domain.FormEvent {
	return domain.FormEvent{
		Type:                 domain.FormEventType(e.Type),
		RowID:                e.RowID,
		Reference:            e.Reference,
		Total:                e.Total,
		ReservationReference: e.ReservationReference,
		Amount:               e.Amount,
		Currency:             e.Currency,
		ExchangeRate:         e.ExchangeRate,
	}
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) dto.CurrencyResponse {
	return dto.CurrencyResponse{
		CurrencyCode: string(c.CurrencyCode),
		Symbol:       c.Symbol,
		Name:         c.Name,
		Rule:         string(c.Rule),
		Settlement:   c.IsSettlement(),
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []dto.CurrencyResponse {
	res := make([]dto.CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}
