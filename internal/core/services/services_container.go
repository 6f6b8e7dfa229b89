package services

import (
	portssvc "github.com/SscSPs/invoice_form_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(opts ...FormEventServiceOption) *portssvc.ServiceContainer {
	invoiceForm := NewInvoiceFormService()

	return &portssvc.ServiceContainer{
		InvoiceForm: invoiceForm,
		FormEvents:  NewFormEventService(invoiceForm, opts...),
		Currency:    NewCurrencyService(),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.InvoiceFormSvcFacade = (*invoiceFormService)(nil)
	_ portssvc.FormEventSvc         = (*formEventService)(nil)
)
