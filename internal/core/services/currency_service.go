package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoice_form_app/internal/apperrors"
	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_form_app/internal/core/ports/services"
)

// CurrencyService exposes the closed set of payment currencies.
type CurrencyService struct {
	BaseService
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

// GetCurrencyByCode resolves a currency code the same way payment rows do.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, ok := domain.LookupCurrency(currencyCode)
	if !ok {
		s.LogDebug(ctx, "Currency not supported", "currency_code", currencyCode)
		return nil, fmt.Errorf("%w: currency with code '%s'", apperrors.ErrNotFound, currency.CurrencyCode)
	}
	return &currency, nil
}

// ListCurrencies returns the supported payment currencies, settlement currency first.
func (s *CurrencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	return domain.SupportedCurrencies()
}

var _ portssvc.CurrencyReaderSvc = (*CurrencyService)(nil)
