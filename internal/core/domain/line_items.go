package domain

// ReservationItem is one reservation row of the invoice form.
// Fields hold the raw widget values; numeric coercion happens in the services.
type ReservationItem struct {
	Reference string `json:"reference" yaml:"reference"` // 4-6 digit reservation number, possibly incomplete
	Total     string `json:"total" yaml:"total"`         // Amount in the settlement currency
}

// PaymentItem is one payment row of the invoice form.
type PaymentItem struct {
	ReservationReference string `json:"reservationReference" yaml:"reservationReference"` // Empty when unselected
	Amount               string `json:"amount" yaml:"amount"`
	Currency             string `json:"currency" yaml:"currency"`
	ExchangeRate         string `json:"exchangeRate" yaml:"exchangeRate"` // Locked to "1" for SAR
}

// ExchangeRateField is the state of a payment row's exchange rate input.
type ExchangeRateField struct {
	Value    string `json:"value"`
	ReadOnly bool   `json:"readOnly"`
}
