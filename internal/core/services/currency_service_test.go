package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/invoice_form_app/internal/apperrors"
	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/SscSPs/invoice_form_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyService_ListCurrencies(t *testing.T) {
	svc := services.NewCurrencyService()

	currencies := svc.ListCurrencies(context.Background())

	require.Len(t, currencies, 3)
	assert.Equal(t, domain.SettlementCurrency, currencies[0].CurrencyCode)
}

func TestCurrencyService_GetCurrencyByCode(t *testing.T) {
	svc := services.NewCurrencyService()

	currency, err := svc.GetCurrencyByCode(context.Background(), "usd")
	require.NoError(t, err)
	assert.Equal(t, domain.USD, currency.CurrencyCode)
	assert.Equal(t, domain.Multiply, currency.Rule)

	currency, err = svc.GetCurrencyByCode(context.Background(), "EUR")
	assert.Nil(t, currency)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
