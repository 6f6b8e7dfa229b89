package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoice_form_app/internal/apperrors"
	portssvc "github.com/SscSPs/invoice_form_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_form_app/internal/dto"
	"github.com/SscSPs/invoice_form_app/internal/middleware"
	"github.com/SscSPs/invoice_form_app/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

// invoiceFormHandler handles the recalculation requests of the invoice form.
// It keeps no state: every request carries the rows it works on.
type invoiceFormHandler struct {
	invoiceFormService portssvc.InvoiceFormSvcFacade
	formEventService   portssvc.FormEventSvc
}

func newInvoiceFormHandler(ifs portssvc.InvoiceFormSvcFacade, fes portssvc.FormEventSvc) *invoiceFormHandler {
	return &invoiceFormHandler{
		invoiceFormService: ifs,
		formEventService:   fes,
	}
}

// RegisterInvoiceFormRoutes registers routes related to the invoice form.
func RegisterInvoiceFormRoutes(rg *gin.RouterGroup, invoiceFormService portssvc.InvoiceFormSvcFacade, formEventService portssvc.FormEventSvc) {
	h := newInvoiceFormHandler(invoiceFormService, formEventService)

	form := rg.Group("/invoice-form")
	{
		form.POST("/totals", h.computeTotals)
		form.POST("/reference-options", h.referenceOptions)
		form.POST("/exchange-rate", h.toggleExchangeRate)
		form.POST("/events", h.applyEvent)
	}
}

// computeTotals godoc
// @Summary Recalculate invoice totals
// @Description Sums reservations and SAR-converted payments and classifies the remaining balance
// @Tags invoice-form
// @Accept  json
// @Produce  json
// @Param   snapshot body dto.InvoiceSnapshotRequest true "Current form rows"
// @Success 200 {object} dto.TotalsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /invoice-form/totals [post]
func (h *invoiceFormHandler) computeTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComputeTotals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reservations := mapping.ToReservationItems(req.Reservations)
	payments := mapping.ToPaymentItems(req.Payments)

	totals := h.invoiceFormService.ComputeTotals(reservations, payments)
	balances := h.invoiceFormService.ReservationBalances(reservations, payments)

	if len(totals.Unconverted) > 0 {
		logger.Warn("Payments in unsupported currencies were not converted", slog.Any("payment_indexes", totals.Unconverted))
	}
	logger.Info("Totals computed",
		slog.Int("reservations", len(reservations)),
		slog.Int("payments", len(payments)),
		slog.String("state", string(totals.State)))
	c.JSON(http.StatusOK, mapping.ToTotalsResponse(totals, balances))
}

// referenceOptions godoc
// @Summary Rebuild reservation reference options
// @Description Lists the reservation references payment rows can select, and restores or clears each payment's selection
// @Tags invoice-form
// @Accept  json
// @Produce  json
// @Param   snapshot body dto.InvoiceSnapshotRequest true "Current form rows"
// @Success 200 {object} dto.ReferenceOptionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /invoice-form/reference-options [post]
func (h *invoiceFormHandler) referenceOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.InvoiceSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReferenceOptions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	reservations := mapping.ToReservationItems(req.Reservations)
	resp := dto.ReferenceOptionsResponse{
		Options:    h.invoiceFormService.BuildReferenceOptions(reservations),
		Selections: h.invoiceFormService.SyncPaymentSelections(reservations, mapping.ToPaymentItems(req.Payments)),
	}

	logger.Info("Reference options rebuilt", slog.Int("options", len(resp.Options)))
	c.JSON(http.StatusOK, resp)
}

// toggleExchangeRate godoc
// @Summary Exchange rate field state
// @Description Returns the exchange rate value and read-only flag after a payment's currency changes
// @Tags invoice-form
// @Accept  json
// @Produce  json
// @Param   request body dto.ExchangeRateToggleRequest true "Selected currency and current rate"
// @Success 200 {object} dto.ExchangeRateFieldResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /invoice-form/exchange-rate [post]
func (h *invoiceFormHandler) toggleExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ExchangeRateToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ToggleExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	field := h.invoiceFormService.ToggleExchangeRate(req.Currency, req.ExchangeRate)
	c.JSON(http.StatusOK, dto.ExchangeRateFieldResponse{Value: field.Value, ReadOnly: field.ReadOnly})
}

// applyEvent godoc
// @Summary Apply a form event
// @Description Applies an add/edit/remove command to the submitted form and returns the new form with its totals and options
// @Tags invoice-form
// @Accept  json
// @Produce  json
// @Param   request body dto.FormEventRequest true "Form snapshot and event"
// @Success 200 {object} dto.FormEventResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Row not found"
// @Failure 500 {object} map[string]string "Failed to apply event"
// @Router /invoice-form/events [post]
func (h *invoiceFormHandler) applyEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FormEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyEvent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("event_type", req.Event.Type), slog.String("row_id", req.Event.RowID))

	state, err := h.formEventService.Apply(c.Request.Context(), mapping.ToForm(req.Form), mapping.ToFormEvent(req.Event))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Form row not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error applying form event", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to apply form event", slog.String("error", err.Error()))
			requestID, _ := middleware.GetRequestIDFromContext(c)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply form event", "request_id": requestID})
		}
		return
	}

	logger.Info("Form event applied", slog.String("state", string(state.View.Totals.State)))
	c.JSON(http.StatusOK, dto.FormEventResponse{
		Form: mapping.ToFormDTO(state.Form),
		View: state.View,
	})
}
