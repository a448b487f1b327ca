package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/naturenectar/billing-api/internal/presentation/http/dto/response"
	"github.com/naturenectar/billing-api/internal/presentation/http/middleware"
	"github.com/naturenectar/billing-api/pkg/pagination"
)

// GetUserID extracts the authenticated user's ID from the context
func GetUserID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// RequireUserID extracts the user ID or writes a 401 response.
// The bool reports whether the handler should continue.
func RequireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return uuid.Nil, false
	}
	return *userID, true
}

// ParseUUIDParam parses a UUID path parameter or writes a 400 response.
// The bool reports whether the handler should continue.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// GetPagination binds pagination query parameters with defaults
func GetPagination(c *gin.Context) *pagination.PaginationParams {
	params := &pagination.PaginationParams{}
	_ = c.ShouldBindQuery(params)
	params.Validate()
	return params
}
