package services

import (
	"context"

	"github.com/SscSPs/invoice_form_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a supported currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies returns the supported payment currencies.
	ListCurrencies(ctx context.Context) []domain.Currency
}
