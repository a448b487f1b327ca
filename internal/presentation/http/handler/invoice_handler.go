package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naturenectar/billing-api/internal/application/service"
	"github.com/naturenectar/billing-api/internal/domain/enum"
	"github.com/naturenectar/billing-api/internal/domain/repository"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/request"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles persisted invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func buildInvoiceFilter(query *request.InvoiceListQuery) *repository.InvoiceFilter {
	filter := &repository.InvoiceFilter{Search: query.Search}

	switch query.Status {
	case "paid":
		status := enum.PaymentStatusPaid
		filter.PaymentStatus = &status
	case "unpaid":
		status := enum.PaymentStatusUnpaid
		filter.PaymentStatus = &status
	}

	if query.From != "" {
		if from, err := time.Parse("2006-01-02", query.From); err == nil {
			filter.From = &from
		}
	}
	if query.To != "" {
		if to, err := time.Parse("2006-01-02", query.To); err == nil {
			// Include the whole end day.
			end := to.Add(24*time.Hour - time.Nanosecond)
			filter.To = &end
		}
	}

	return filter
}

// List handles filtered, paginated invoice listing. The response also
// carries the total sales over the filter.
func (h *InvoiceHandler) List(c *gin.Context) {
	var query request.InvoiceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := GetPagination(c)
	output, err := h.invoiceService.List(c.Request.Context(), params, buildInvoiceFilter(&query))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Invoices retrieved successfully", gin.H{
		"invoices":    output.Invoices,
		"total_sales": output.TotalSales,
	}, output.Meta)
}

// Get handles fetching one invoice with its lines
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", gin.H{"invoice": invoice})
}

// UpdatePaymentStatus marks an invoice paid or unpaid
func (h *InvoiceHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.invoiceService.UpdatePaymentStatus(c.Request.Context(), id, *req.PaymentStatus)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment status updated", gin.H{"invoice": invoice})
}

// Delete handles invoice deletion
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}
