package domain_test

import (
	"testing"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining decimal.Decimal
		want      domain.BalanceState
		wantColor string
	}{
		{name: "zero is settled", remaining: decimal.Zero, want: domain.Settled, wantColor: "#16a34a"},
		{name: "negative is overpaid", remaining: decimal.NewFromInt(-188), want: domain.Overpaid, wantColor: "#dc2626"},
		{name: "small negative is overpaid", remaining: decimal.RequireFromString("-0.4"), want: domain.Overpaid, wantColor: "#dc2626"},
		{name: "positive is outstanding", remaining: decimal.NewFromInt(875), want: domain.Outstanding, wantColor: "#1a1a1a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ClassifyRemaining(tt.remaining)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantColor, got.Color())
		})
	}
}

func TestLookupCurrency(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantCode domain.CurrencyCode
		wantRule domain.ConversionRule
		wantOK   bool
	}{
		{name: "settlement", raw: "SAR", wantCode: domain.SAR, wantRule: domain.Identity, wantOK: true},
		{name: "empty defaults to settlement", raw: "", wantCode: domain.SAR, wantRule: domain.Identity, wantOK: true},
		{name: "trimmed and case-insensitive", raw: " usd ", wantCode: domain.USD, wantRule: domain.Multiply, wantOK: true},
		{name: "divide rule", raw: "IDR", wantCode: domain.IDR, wantRule: domain.Divide, wantOK: true},
		{name: "unsupported", raw: "eur", wantCode: "EUR", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.LookupCurrency(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, got.CurrencyCode)
			assert.Equal(t, tt.wantRule, got.Rule)
			assert.Equal(t, tt.wantOK, domain.IsSupportedCurrency(tt.raw))
		})
	}
}

func TestSupportedCurrencies_ReturnsCopy(t *testing.T) {
	first := domain.SupportedCurrencies()
	first[0].Name = "changed"

	second := domain.SupportedCurrencies()
	assert.Equal(t, "Saudi Riyal", second[0].Name)
	assert.True(t, second[0].IsSettlement())
	assert.False(t, second[1].IsSettlement())
}

func TestForm_CloneDoesNotShareRows(t *testing.T) {
	form := domain.Form{
		Reservations: []domain.ReservationRow{{ID: "r1", ReservationItem: domain.ReservationItem{Reference: "0001", Total: "1000"}}},
		Payments:     []domain.PaymentRow{{ID: "p1", PaymentItem: domain.PaymentItem{Amount: "10", Currency: "SAR", ExchangeRate: "1"}}},
	}

	clone := form.Clone()
	clone.Reservations[0].Reference = "0002"
	clone.Payments[0].Amount = "20"

	assert.Equal(t, "0001", form.Reservations[0].Reference)
	assert.Equal(t, "10", form.Payments[0].Amount)
	assert.Equal(t, []domain.ReservationItem{{Reference: "0001", Total: "1000"}}, form.ReservationItems())
	assert.Equal(t, "20", clone.PaymentItems()[0].Amount)
}
