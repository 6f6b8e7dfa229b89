package domain

// FormEventType names a user action on the invoice form.
type FormEventType string

const (
	AddReservation        FormEventType = "ADD_RESERVATION"
	EditReservation       FormEventType = "EDIT_RESERVATION"
	RemoveReservation     FormEventType = "REMOVE_RESERVATION"
	AddPayment            FormEventType = "ADD_PAYMENT"
	EditPayment           FormEventType = "EDIT_PAYMENT"
	ChangePaymentCurrency FormEventType = "CHANGE_PAYMENT_CURRENCY"
	RemovePayment         FormEventType = "REMOVE_PAYMENT"
	Refresh               FormEventType = "REFRESH" // Page load
)

// ReservationRow is a reservation line item with a stable row ID.
type ReservationRow struct {
	ID string `json:"id" yaml:"id"`
	ReservationItem
}

// PaymentRow is a payment line item with a stable row ID.
type PaymentRow struct {
	ID string `json:"id" yaml:"id"`
	PaymentItem
	ExchangeReadOnly bool `json:"exchangeReadOnly" yaml:"exchangeReadOnly"`
}

// Form is a snapshot of the invoice form rows. It is owned by the caller.
type Form struct {
	Reservations []ReservationRow `json:"reservations" yaml:"reservations"`
	Payments     []PaymentRow     `json:"payments" yaml:"payments"`
}

// ReservationItems returns the reservation items in row order.
func (f Form) ReservationItems() []ReservationItem {
	items := make([]ReservationItem, len(f.Reservations))
	for i, r := range f.Reservations {
		items[i] = r.ReservationItem
	}
	return items
}

// PaymentItems returns the payment items in row order.
func (f Form) PaymentItems() []PaymentItem {
	items := make([]PaymentItem, len(f.Payments))
	for i, p := range f.Payments {
		items[i] = p.PaymentItem
	}
	return items
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	out := Form{
		Reservations: make([]ReservationRow, len(f.Reservations)),
		Payments:     make([]PaymentRow, len(f.Payments)),
	}
	copy(out.Reservations, f.Reservations)
	copy(out.Payments, f.Payments)
	return out
}

// FormEvent is an explicit command applied to a form snapshot.
// Only the fields relevant to Type are read; nil pointers leave a field unchanged on edits.
type FormEvent struct {
	Type                 FormEventType `json:"type"`
	RowID                string        `json:"rowID,omitempty"`
	Reference            *string       `json:"reference,omitempty"`
	Total                *string       `json:"total,omitempty"`
	ReservationReference *string       `json:"reservationReference,omitempty"`
	Amount               *string       `json:"amount,omitempty"`
	Currency             *string       `json:"currency,omitempty"`
	ExchangeRate         *string       `json:"exchangeRate,omitempty"`
}

// FormView holds the values the form displays after an event.
type FormView struct {
	Totals            TotalsResult `json:"totals"`
	TotalReservedText string       `json:"totalReservedText"`
	TotalPaidText     string       `json:"totalPaidText"`
	RemainingText     string       `json:"remainingText"`
	RemainingColor    string       `json:"remainingColor"`
	ReferenceOptions  []string     `json:"referenceOptions"`
	FocusRowID        string       `json:"focusRowID,omitempty"` // Row added by the event, if any
}

// FormState is the result of applying an event: the new snapshot and its view.
type FormState struct {
	Form Form     `json:"form"`
	View FormView `json:"view"`
}
