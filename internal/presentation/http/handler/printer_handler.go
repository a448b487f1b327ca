package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naturenectar/billing-api/internal/application/service"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal printer HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status returns printer connection status
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", gin.H{"printer": h.printerService.GetStatus()})
}

// TestPrint sends a test page to the printer
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.printerService.TestPrint(); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Test page sent to printer", nil)
}

// PrintInvoice prints a persisted invoice
func (h *PrinterHandler) PrintInvoice(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	invoice, err := h.printerService.PrintInvoice(c.Request.Context(), id)
	if err != nil {
		// Return the invoice data so the client can fall back to
		// browser printing when the thermal printer is unavailable.
		if invoice != nil {
			response.OK(c, "Printer unavailable, returning invoice data", gin.H{"invoice": invoice})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice sent to printer", gin.H{"invoice": invoice})
}
