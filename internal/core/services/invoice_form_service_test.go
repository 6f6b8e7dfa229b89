package services_test

import (
	"testing"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_form_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_form_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type InvoiceFormServiceTestSuite struct {
	suite.Suite
	service portssvc.InvoiceFormSvcFacade
}

func (suite *InvoiceFormServiceTestSuite) SetupTest() {
	suite.service = services.NewInvoiceFormService()
}

func (suite *InvoiceFormServiceTestSuite) assertDecimal(want int64, got decimal.Decimal) {
	suite.T().Helper()
	suite.True(decimal.NewFromInt(want).Equal(got), "want %d, got %s", want, got.String())
}

// --- Aggregator ---

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_SettledScenario() {
	reservations := []domain.ReservationItem{{Reference: "0001", Total: "1000"}}
	payments := []domain.PaymentItem{{ReservationReference: "0001", Amount: "1000", Currency: "SAR", ExchangeRate: "1"}}

	result := suite.service.ComputeTotals(reservations, payments)

	suite.assertDecimal(1000, result.TotalReserved)
	suite.assertDecimal(1000, result.TotalPaid)
	suite.assertDecimal(0, result.Remaining)
	suite.Equal(domain.Settled, result.State)
	suite.Empty(result.Unconverted)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_OutstandingScenario() {
	reservations := []domain.ReservationItem{{Reference: "0001", Total: "1000"}}
	payments := []domain.PaymentItem{{Amount: "500000", Currency: "IDR", ExchangeRate: "4000"}}

	result := suite.service.ComputeTotals(reservations, payments)

	suite.assertDecimal(1000, result.TotalReserved)
	suite.assertDecimal(125, result.TotalPaid)
	suite.assertDecimal(875, result.Remaining)
	suite.Equal(domain.Outstanding, result.State)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_OverpaidScenario() {
	payments := []domain.PaymentItem{{Amount: "50", Currency: "USD", ExchangeRate: "3.75"}}

	result := suite.service.ComputeTotals(nil, payments)

	suite.assertDecimal(0, result.TotalReserved)
	suite.assertDecimal(188, result.TotalPaid)
	suite.assertDecimal(-188, result.Remaining)
	suite.Equal(domain.Overpaid, result.State)
	suite.Require().Len(result.Payments, 1)
	suite.True(decimal.RequireFromString("187.5").Equal(result.Payments[0].Exact))
	suite.assertDecimal(188, result.Payments[0].Rounded)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_ReservedSumIgnoresOrderAndJunk() {
	a := []domain.ReservationItem{{Total: "100"}, {Total: ""}, {Total: "abc"}, {Total: "250.5"}, {Total: " 49.5 "}}
	b := []domain.ReservationItem{{Total: "250.5"}, {Total: " 49.5 "}, {Total: "abc"}, {Total: "100"}, {Total: ""}}

	first := suite.service.ComputeTotals(a, nil)
	second := suite.service.ComputeTotals(b, nil)

	suite.assertDecimal(400, first.TotalReserved)
	suite.True(first.TotalReserved.Equal(second.TotalReserved))
	suite.Equal(domain.Outstanding, first.State)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_SettlementPaymentsAreNotConverted() {
	payments := []domain.PaymentItem{
		{Amount: "100", Currency: "SAR", ExchangeRate: "7"},
		{Amount: "250", Currency: "sar", ExchangeRate: ""},
		{Amount: "50", Currency: "", ExchangeRate: "0"},
	}

	result := suite.service.ComputeTotals(nil, payments)

	suite.assertDecimal(400, result.TotalPaid)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_UnknownCurrencyIsFlagged() {
	reservations := []domain.ReservationItem{{Reference: "0001", Total: "100"}}
	payments := []domain.PaymentItem{
		{Amount: "100", Currency: "EUR", ExchangeRate: "4"},
		{Amount: "40", Currency: "SAR"},
	}

	result := suite.service.ComputeTotals(reservations, payments)

	suite.assertDecimal(40, result.TotalPaid)
	suite.assertDecimal(60, result.Remaining)
	suite.Equal([]int{0}, result.Unconverted)
	suite.False(result.Payments[0].Converted)
	suite.Equal(domain.CurrencyCode("EUR"), result.Payments[0].Currency)
	suite.True(result.Payments[1].Converted)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_RemainingUsesRoundedPaid() {
	reservations := []domain.ReservationItem{{Total: "188"}}
	payments := []domain.PaymentItem{{Amount: "50", Currency: "USD", ExchangeRate: "3.75"}}

	result := suite.service.ComputeTotals(reservations, payments)

	suite.assertDecimal(0, result.Remaining)
	suite.Equal(domain.Settled, result.State)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_StateUsesUnroundedRemaining() {
	reservations := []domain.ReservationItem{{Reference: "0001", Total: "999.6"}}
	payments := []domain.PaymentItem{{ReservationReference: "0001", Amount: "1000", Currency: "SAR", ExchangeRate: "1"}}

	result := suite.service.ComputeTotals(reservations, payments)

	suite.assertDecimal(1000, result.TotalReserved)
	suite.assertDecimal(1000, result.TotalPaid)
	suite.assertDecimal(0, result.Remaining)
	suite.Equal(domain.Overpaid, result.State)
}

func (suite *InvoiceFormServiceTestSuite) TestComputeTotals_OutOfRangeAmountsCountAsZero() {
	reservations := []domain.ReservationItem{{Total: "1e200000000"}, {Total: "100"}}
	payments := []domain.PaymentItem{
		{Amount: "1e200000000", Currency: "SAR"},
		{Amount: "40", Currency: "USD", ExchangeRate: "1e-200000000"},
	}

	result := suite.service.ComputeTotals(reservations, payments)

	suite.assertDecimal(100, result.TotalReserved)
	suite.assertDecimal(40, result.TotalPaid)
	suite.assertDecimal(60, result.Remaining)
	suite.Equal(domain.Outstanding, result.State)
}

// --- Conversion ---

func (suite *InvoiceFormServiceTestSuite) TestConvertToSettlement() {
	tests := []struct {
		name    string
		payment domain.PaymentItem
		want    string
	}{
		{name: "idr divides", payment: domain.PaymentItem{Amount: "100000", Currency: "IDR", ExchangeRate: "4000"}, want: "25"},
		{name: "idr zero rate", payment: domain.PaymentItem{Amount: "100000", Currency: "IDR", ExchangeRate: "0"}, want: "0"},
		{name: "idr empty rate", payment: domain.PaymentItem{Amount: "100000", Currency: "IDR", ExchangeRate: ""}, want: "0"},
		{name: "usd multiplies", payment: domain.PaymentItem{Amount: "100", Currency: "USD", ExchangeRate: "3.75"}, want: "375"},
		{name: "usd zero rate counts as one", payment: domain.PaymentItem{Amount: "100", Currency: "USD", ExchangeRate: "0"}, want: "100"},
		{name: "usd junk rate counts as one", payment: domain.PaymentItem{Amount: "100", Currency: "usd", ExchangeRate: "x"}, want: "100"},
		{name: "sar identity", payment: domain.PaymentItem{Amount: "12.5", Currency: "SAR", ExchangeRate: "3"}, want: "12.5"},
		{name: "empty amount", payment: domain.PaymentItem{Amount: "", Currency: "USD", ExchangeRate: "3.75"}, want: "0"},
		{name: "unknown currency", payment: domain.PaymentItem{Amount: "100", Currency: "EUR", ExchangeRate: "4"}, want: "0"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got := suite.service.ConvertToSettlement(tt.payment)
			suite.True(decimal.RequireFromString(tt.want).Equal(got.Exact), "want %s, got %s", tt.want, got.Exact)
		})
	}
}

func (suite *InvoiceFormServiceTestSuite) TestToggleExchangeRate() {
	tests := []struct {
		name     string
		currency string
		current  string
		want     domain.ExchangeRateField
	}{
		{name: "settlement locks to one", currency: "SAR", current: "3.75", want: domain.ExchangeRateField{Value: "1", ReadOnly: true}},
		{name: "foreign clears default one", currency: "USD", current: "1", want: domain.ExchangeRateField{Value: "", ReadOnly: false}},
		{name: "foreign clears empty", currency: "IDR", current: "", want: domain.ExchangeRateField{Value: "", ReadOnly: false}},
		{name: "foreign keeps typed rate", currency: "IDR", current: "4000", want: domain.ExchangeRateField{Value: "4000", ReadOnly: false}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Equal(tt.want, suite.service.ToggleExchangeRate(tt.currency, tt.current))
		})
	}
}

// --- Synchronizer ---

func (suite *InvoiceFormServiceTestSuite) TestBuildReferenceOptions() {
	reservations := []domain.ReservationItem{
		{Reference: "0002"},
		{Reference: "  "},
		{Reference: " 0001 "},
		{Reference: ""},
		{Reference: "0002"},
	}

	options := suite.service.BuildReferenceOptions(reservations)

	suite.Equal([]string{"", "0002", "0001", "0002"}, options)
}

func (suite *InvoiceFormServiceTestSuite) TestBuildReferenceOptions_Empty() {
	suite.Equal([]string{""}, suite.service.BuildReferenceOptions(nil))
}

func (suite *InvoiceFormServiceTestSuite) TestApplyReferenceOptions() {
	options := []string{"", "0001", "0002"}

	suite.Equal("0001", suite.service.ApplyReferenceOptions(options, "0001"))
	suite.Equal("", suite.service.ApplyReferenceOptions(options, "0003"))
	suite.Equal("", suite.service.ApplyReferenceOptions(options, ""))
	suite.Equal("", suite.service.ApplyReferenceOptions([]string{""}, "0001"))
}

func (suite *InvoiceFormServiceTestSuite) TestSyncPaymentSelections() {
	reservations := []domain.ReservationItem{{Reference: "0001"}, {Reference: "0003"}}
	payments := []domain.PaymentItem{
		{ReservationReference: "0001"},
		{ReservationReference: "0002"},
		{ReservationReference: ""},
		{ReservationReference: "0003"},
	}

	selections := suite.service.SyncPaymentSelections(reservations, payments)

	suite.Equal([]string{"0001", "", "", "0003"}, selections)
	// Inputs are not modified.
	suite.Equal("0002", payments[1].ReservationReference)
}

func (suite *InvoiceFormServiceTestSuite) TestReservationBalances() {
	reservations := []domain.ReservationItem{{Reference: "0001", Total: "1000"}, {Reference: "0002", Total: "200"}}
	payments := []domain.PaymentItem{
		{ReservationReference: "0001", Amount: "500000", Currency: "IDR", ExchangeRate: "4000"},
		{ReservationReference: "0002", Amount: "50", Currency: "USD", ExchangeRate: "3.75"},
	}

	balances := suite.service.ReservationBalances(reservations, payments)

	suite.Require().Len(balances, 2)
	suite.assertDecimal(875, balances[0].Remaining)
	suite.Equal(domain.BalanceUnpaid, balances[0].Class)
	suite.assertDecimal(188, balances[1].Paid)
	suite.assertDecimal(12, balances[1].Remaining)
	suite.Equal(domain.BalancePartial, balances[1].Class)
}

// --- Run Test Suite ---
func TestInvoiceFormServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceFormServiceTestSuite))
}
