package domain

import "strings"

// CurrencyCode identifies a currency a payment can be made in.
type CurrencyCode string

const (
	SAR CurrencyCode = "SAR" // Settlement currency
	USD CurrencyCode = "USD"
	IDR CurrencyCode = "IDR"
)

// SettlementCurrency is the single currency every aggregate is expressed in.
const SettlementCurrency = SAR

// ConversionRule says how an amount and its exchange rate combine into a settlement value.
type ConversionRule string

const (
	// Identity leaves the amount unchanged.
	Identity ConversionRule = "IDENTITY"
	// Multiply converts with amount × rate (rate quoted as SAR per unit).
	Multiply ConversionRule = "MULTIPLY"
	// Divide converts with amount ÷ rate (rate quoted as units per SAR).
	Divide ConversionRule = "DIVIDE"
)

// Currency describes a supported payment currency.
type Currency struct {
	CurrencyCode CurrencyCode   `json:"currencyCode"` // e.g., "USD"
	Symbol       string         `json:"symbol"`       // e.g., "$"
	Name         string         `json:"name"`         // e.g., "US Dollar"
	Rule         ConversionRule `json:"rule"`
}

// supportedCurrencies is the closed set of payment currencies, in display order.
var supportedCurrencies = []Currency{
	{CurrencyCode: SAR, Symbol: "﷼", Name: "Saudi Riyal", Rule: Identity},
	{CurrencyCode: USD, Symbol: "$", Name: "US Dollar", Rule: Multiply},
	{CurrencyCode: IDR, Symbol: "Rp", Name: "Indonesian Rupiah", Rule: Divide},
}

// SupportedCurrencies returns a copy of the supported currency set.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// LookupCurrency resolves a raw currency code from the form.
// The code is trimmed and upper-cased; an empty code resolves to the settlement currency.
func LookupCurrency(raw string) (Currency, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if code == "" {
		code = SettlementCurrency
	}
	for _, c := range supportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{CurrencyCode: code}, false
}

// IsSupportedCurrency reports whether raw resolves to a supported currency.
func IsSupportedCurrency(raw string) bool {
	_, ok := LookupCurrency(raw)
	return ok
}

// IsSettlement reports whether c is the settlement currency.
func (c Currency) IsSettlement() bool {
	return c.CurrencyCode == SettlementCurrency
}
