package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naturenectar/billing-api/internal/application/service"
	"github.com/naturenectar/billing-api/internal/domain/entity"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/request"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/response"
)

// ReceiverHandler handles receiver HTTP requests
type ReceiverHandler struct {
	receiverService *service.ReceiverService
}

// NewReceiverHandler creates a new receiver handler
func NewReceiverHandler(receiverService *service.ReceiverService) *ReceiverHandler {
	return &ReceiverHandler{receiverService: receiverService}
}

func addressFromRequest(req request.AddressRequest) entity.Address {
	return entity.Address{
		Attention: req.Attention,
		Line1:     req.Line1,
		Line2:     req.Line2,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Country:   req.Country,
		Phone:     req.Phone,
		Fax:       req.Fax,
	}
}

func receiverInputFromRequest(req *request.ReceiverRequest) *service.ReceiverInput {
	return &service.ReceiverInput{
		CustomerType:    req.CustomerType,
		DisplayName:     req.DisplayName,
		ContactName:     req.ContactName,
		GSTIN:           req.GSTIN,
		Phone:           req.Phone,
		Email:           req.Email,
		BillingAddress:  addressFromRequest(req.BillingAddress),
		ShippingAddress: addressFromRequest(req.ShippingAddress),
	}
}

// Create handles receiver creation
func (h *ReceiverHandler) Create(c *gin.Context) {
	var req request.ReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receiver, err := h.receiverService.Create(c.Request.Context(), receiverInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receiver created successfully", gin.H{"receiver": receiver})
}

// Get handles fetching one receiver
func (h *ReceiverHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	receiver, err := h.receiverService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receiver retrieved successfully", gin.H{"receiver": receiver})
}

// Update handles receiver updates
func (h *ReceiverHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.ReceiverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receiver, err := h.receiverService.Update(c.Request.Context(), id, receiverInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receiver updated successfully", gin.H{"receiver": receiver})
}

// Delete handles receiver deletion
func (h *ReceiverHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.receiverService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receiver deleted successfully", nil)
}

// List handles paginated receiver listing with optional search
func (h *ReceiverHandler) List(c *gin.Context) {
	params := GetPagination(c)
	search := c.Query("search")

	result, err := h.receiverService.List(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Receivers retrieved successfully", result.Items, result.Meta)
}
