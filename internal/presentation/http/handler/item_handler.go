package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/naturenectar/billing-api/internal/application/service"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/request"
	"github.com/naturenectar/billing-api/internal/presentation/http/dto/response"
)

// ItemHandler handles catalog item HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func itemInputFromRequest(req *request.ItemRequest) *service.ItemInput {
	return &service.ItemInput{
		Name:        req.Name,
		Weight:      req.Weight,
		WeightUnit:  req.WeightUnit,
		RateExclGST: req.RateExclGST,
		MRPInclGST:  req.MRPInclGST,
		HSNCode:     req.HSNCode,
		GSTRate:     req.GSTRate,
	}
}

// Create handles item creation
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), itemInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", gin.H{"item": item})
}

// Get handles fetching one item
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", gin.H{"item": item})
}

// Update handles item updates
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, itemInputFromRequest(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", gin.H{"item": item})
}

// Delete handles item deletion
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}

// List handles paginated item listing with optional search
func (h *ItemHandler) List(c *gin.Context) {
	params := GetPagination(c)
	search := c.Query("search")

	result, err := h.itemService.List(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, "Items retrieved successfully", result.Items, result.Meta)
}
