package handlers

import (
	"github.com/SscSPs/invoice_form_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCode accepts an empty code (the settlement currency) or a supported currency.
func currencyCode(fl validator.FieldLevel) bool {
	return domain.IsSupportedCurrency(fl.Field().String())
}

// RegisterValidators installs the custom binding validators used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currency_code", currencyCode)
}
