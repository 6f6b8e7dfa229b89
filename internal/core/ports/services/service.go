package services

// ServiceContainer holds instances of all the application services.
// Handlers and the CLI get their dependencies from here.
type ServiceContainer struct {
	InvoiceForm InvoiceFormSvcFacade
	FormEvents  FormEventSvc
	Currency    CurrencyReaderSvc
}
