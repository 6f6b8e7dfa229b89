package domain

import "github.com/shopspring/decimal"

// BalanceState classifies the remaining balance of an invoice.
type BalanceState string

const (
	Settled     BalanceState = "SETTLED"
	Overpaid    BalanceState = "OVERPAID"
	Outstanding BalanceState = "OUTSTANDING"
)

// Display colours for each balance state.
const (
	SettledColor     = "#16a34a"
	OverpaidColor    = "#dc2626"
	OutstandingColor = "#1a1a1a"
)

// Color returns the display colour for the state.
func (s BalanceState) Color() string {
	switch s {
	case Settled:
		return SettledColor
	case Overpaid:
		return OverpaidColor
	default:
		return OutstandingColor
	}
}

// ClassifyRemaining maps a remaining balance to its state.
func ClassifyRemaining(remaining decimal.Decimal) BalanceState {
	switch remaining.Sign() {
	case 0:
		return Settled
	case -1:
		return Overpaid
	default:
		return Outstanding
	}
}

// PaymentValue is the settlement-currency value of a single payment row.
type PaymentValue struct {
	Index     int             `json:"index"`
	Currency  CurrencyCode    `json:"currency"`
	Converted bool            `json:"converted"` // False when the currency is not supported
	Exact     decimal.Decimal `json:"exact"`
	Rounded   decimal.Decimal `json:"rounded"`
}

// TotalsResult is the output of the aggregator. All amounts are integer-rounded SAR.
type TotalsResult struct {
	TotalReserved decimal.Decimal `json:"totalReserved"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Remaining     decimal.Decimal `json:"remaining"`
	// State is classified on the unrounded remaining, so a remaining that rounds to 0 can still be OVERPAID or OUTSTANDING.
	State         BalanceState    `json:"state"`
	Payments      []PaymentValue  `json:"payments"`
	Unconverted   []int           `json:"unconverted"` // Indexes of payments in an unsupported currency
}
