package dto

import (
	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Numeric fields stay strings: they carry whatever the form inputs hold and are coerced by the services.

// ReservationItemRequest is one reservation row as read from the form.
type ReservationItemRequest struct {
	Reference string `json:"reference" binding:"max=32"`
	Total     string `json:"total" binding:"max=64"`
}

// PaymentItemRequest is one payment row as read from the form.
type PaymentItemRequest struct {
	ReservationReference string `json:"reservationReference" binding:"max=32"`
	Amount               string `json:"amount" binding:"max=64"`
	Currency             string `json:"currency" binding:"max=8"`
	ExchangeRate         string `json:"exchangeRate" binding:"max=64"`
}

// InvoiceSnapshotRequest carries the current reservation and payment rows.
type InvoiceSnapshotRequest struct {
	Reservations []ReservationItemRequest `json:"reservations" binding:"max=500,dive"`
	Payments     []PaymentItemRequest     `json:"payments" binding:"max=500,dive"`
}

// TotalsResponse defines the totals returned for a snapshot.
type TotalsResponse struct {
	TotalReserved     decimal.Decimal             `json:"totalReserved"`
	TotalPaid         decimal.Decimal             `json:"totalPaid"`
	Remaining         decimal.Decimal             `json:"remaining"`
	State             domain.BalanceState         `json:"state"`
	RemainingColor    string                      `json:"remainingColor"`
	TotalReservedText string                      `json:"totalReservedText"`
	TotalPaidText     string                      `json:"totalPaidText"`
	RemainingText     string                      `json:"remainingText"`
	Payments          []domain.PaymentValue       `json:"payments"`
	Unconverted       []int                       `json:"unconverted"`
	Reservations      []domain.ReservationBalance `json:"reservations"`
}

// ReferenceOptionsResponse lists the selectable references and each payment row's restored selection.
type ReferenceOptionsResponse struct {
	Options    []string `json:"options"`
	Selections []string `json:"selections"`
}

// ExchangeRateToggleRequest asks for the rate field state after a currency change.
type ExchangeRateToggleRequest struct {
	Currency     string `json:"currency" binding:"currency_code"`
	ExchangeRate string `json:"exchangeRate" binding:"max=64"`
}

// ExchangeRateFieldResponse is the rate field state for a payment row.
type ExchangeRateFieldResponse struct {
	Value    string `json:"value"`
	ReadOnly bool   `json:"readOnly"`
}

// ReservationRowDTO is a reservation row with its row ID.
type ReservationRowDTO struct {
	ID string `json:"id" binding:"max=64"`
	ReservationItemRequest
}

// PaymentRowDTO is a payment row with its row ID.
type PaymentRowDTO struct {
	ID string `json:"id" binding:"max=64"`
	PaymentItemRequest
	ExchangeReadOnly bool `json:"exchangeReadOnly"`
}

// FormDTO is a full form snapshot.
type FormDTO struct {
	Reservations []ReservationRowDTO `json:"reservations" binding:"max=500,dive"`
	Payments     []PaymentRowDTO     `json:"payments" binding:"max=500,dive"`
}

// FormEventPayload is a single form command.
type FormEventPayload struct {
	Type                 string  `json:"type" binding:"required,oneof=ADD_RESERVATION EDIT_RESERVATION REMOVE_RESERVATION ADD_PAYMENT EDIT_PAYMENT CHANGE_PAYMENT_CURRENCY REMOVE_PAYMENT REFRESH"`
	RowID                string  `json:"rowID" binding:"max=64"`
	Reference            *string `json:"reference" binding:"omitempty,max=32"`
	Total                *string `json:"total" binding:"omitempty,max=64"`
	ReservationReference *string `json:"reservationReference" binding:"omitempty,max=32"`
	Amount               *string `json:"amount" binding:"omitempty,max=64"`
	Currency             *string `json:"currency" binding:"omitempty,currency_code"`
	ExchangeRate         *string `json:"exchangeRate" binding:"omitempty,max=64"`
}

// FormEventRequest applies Event to Form.
type FormEventRequest struct {
	Form  FormDTO          `json:"form"`
	Event FormEventPayload `json:"event" binding:"required"`
}

// FormEventResponse is the form after the event, with what it should display.
type FormEventResponse struct {
	Form FormDTO         `json:"form"`
	View domain.FormView `json:"view"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Rule         string `json:"rule"`
	Settlement   bool   `json:"settlement"`
}
