package services

import (
	"strings"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/SscSPs/invoice_form_app/internal/utils/numeric"
	"github.com/shopspring/decimal"
)

// exchangeRateService converts payments into the settlement currency and governs
// the exchange rate input of payment rows.
type exchangeRateService struct{}

// ConvertToSettlement converts a single payment into the settlement currency.
// Payments in an unsupported currency are worth zero and flagged as not converted.
func (s *exchangeRateService) ConvertToSettlement(p domain.PaymentItem) domain.PaymentValue {
	currency, ok := domain.LookupCurrency(p.Currency)
	value := domain.PaymentValue{
		Currency:  currency.CurrencyCode,
		Converted: ok,
		Exact:     decimal.Zero,
	}
	if !ok {
		value.Rounded = decimal.Zero
		return value
	}

	amount := numeric.CoerceAmount(p.Amount)
	switch currency.Rule {
	case domain.Identity:
		value.Exact = amount
	case domain.Divide:
		rate := numeric.CoerceRate(p.ExchangeRate)
		if !rate.IsZero() {
			value.Exact = amount.Div(rate)
		}
	case domain.Multiply:
		value.Exact = amount.Mul(numeric.CoerceMultiplier(p.ExchangeRate))
	}
	value.Rounded = numeric.RoundUnit(value.Exact)
	return value
}

// ToggleExchangeRate implements portssvc.ExchangeRateSvc.
func (s *exchangeRateService) ToggleExchangeRate(currency string, currentRate string) domain.ExchangeRateField {
	if c, _ := domain.LookupCurrency(currency); c.IsSettlement() {
		return domain.ExchangeRateField{Value: "1", ReadOnly: true}
	}
	value := strings.TrimSpace(currentRate)
	if value == "1" {
		value = ""
	}
	return domain.ExchangeRateField{Value: value, ReadOnly: false}
}
