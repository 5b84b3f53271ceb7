package handler

import (
	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// QuickItemHandler serves the quick-add item catalog shown at the till.
type QuickItemHandler struct{}

// NewQuickItemHandler creates a new quick item handler
func NewQuickItemHandler() *QuickItemHandler {
	return &QuickItemHandler{}
}

// List returns the quick-add catalog
// @Summary List quick items
// @Tags quick-items
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /quick-items [get]
func (h *QuickItemHandler) List(c *gin.Context) {
	response.OK(c, "Quick items", gin.H{"items": entity.QuickItems()})
}
