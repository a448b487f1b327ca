package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naturenectar/billing-api/internal/application/service"
	"github.com/naturenectar/billing-api/internal/domain/billing"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/request"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/response"
)

// BillingHandler handles current-bill HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// GetBill returns the current bill with live totals
func (h *BillingHandler) GetBill(c *gin.Context) {
	userID, ok := RequireUserID(c)
	if !ok {
		return
	}

	view := h.billingService.GetBill(userID)
	response.OK(c, "Bill retrieved successfully", gin.H{"bill": view})
}

// AddItem adds a catalog item to the current bill
func (h *BillingHandler) AddItem(c *gin.Context) {
	userID, ok := RequireUserID(c)
	if !ok {
		return
	}

	var req request.AddBillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.billingService.AddItem(c.Request.Context(), userID, req.ItemID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to bill", gin.H{"bill": view})
}

// UpdateItem changes a bill line's quantity; zero removes the line
func (h *BillingHandler) UpdateItem(c *gin.Context) {
	userID, ok := RequireUserID(c)
	if !ok {
		return
	}

	itemID, ok := ParseUUIDParam(c, "item_id")
	if !ok {
		return
	}

	var req request.UpdateBillItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view := h.billingService.UpdateQuantity(userID, itemID, *req.Quantity)
	response.OK(c, "Bill updated successfully", gin.H{"bill": view})
}

// RemoveItem removes a line from the current bill
func (h *BillingHandler) RemoveItem(c *gin.Context) {
	userID, ok := RequireUserID(c)
	if !ok {
		return
	}

	itemID, ok := ParseUUIDParam(c, "item_id")
	if !ok {
		return
	}

	view := h.billingService.RemoveItem(userID, itemID)
	response.OK(c, "Item removed from bill", gin.H{"bill": view})
}

// ClearBill empties the current bill
func (h *BillingHandler) ClearBill(c *gin.Context) {
	userID, ok := RequireUserID(c)
	if !ok {
		return
	}

	view := h.billingService.ClearBill(userID)
	response.OK(c, "Bill cleared", gin.H{"bill": view})
}

// GenerateInvoice commits the current bill into a persisted invoice
func (h *BillingHandler) GenerateInvoice(c *gin.Context) {
	userID, ok := RequireUserID(c)
	if !ok {
		return
	}

	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.GenerateInvoiceInput{
		ReceiverID:    req.ReceiverID,
		PaymentStatus: req.PaymentStatus,
		Extras: billing.Extras{
			BuyersOrderNo:     req.BuyersOrderNo,
			DispatchedThrough: req.DispatchedThrough,
			Destination:       req.Destination,
		},
	}
	if req.Receiver != nil {
		input.Receiver = receiverInputFromRequest(&req.Receiver.ReceiverRequest)
		input.SaveReceiver = req.Receiver.Save
	}

	invoice, err := h.billingService.GenerateInvoice(c.Request.Context(), userID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice generated successfully", gin.H{"invoice": invoice})
}
