package domain

import (
	"github.com/shopspring/decimal"
)

// BalanceClass grades how much of a single reservation has been paid.
type BalanceClass string

const (
	BalancePaid    BalanceClass = "PAID"
	BalancePartial BalanceClass = "PARTIAL"
	BalanceUnpaid  BalanceClass = "UNPAID"
)

// ReservationBalance represents a single row in the per-reservation balance report
type ReservationBalance struct {
	Index     int             `json:"index"`
	Reference string          `json:"reference"` // Trimmed; empty when the row has no reference yet
	Total     decimal.Decimal `json:"total"`     // Rounded reservation total
	Paid      decimal.Decimal `json:"paid"`      // Sum of rounded payment values against this reference
	Remaining decimal.Decimal `json:"remaining"`
	Class     BalanceClass    `json:"class"`
}
