package handler

import (
	"github.com/genzlaundry/pos-api/internal/application/service"
	"github.com/genzlaundry/pos-api/internal/presentation/http/dto/request"
	"github.com/genzlaundry/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles the current-order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Get returns the current order
// @Summary Get current order
// @Tags order
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /order [get]
func (h *OrderHandler) Get(c *gin.Context) {
	response.OK(c, "Current order", gin.H{
		"items":          h.orderService.Items(),
		"subtotal":       h.orderService.Subtotal(),
		"total_quantity": h.orderService.TotalQuantity(),
	})
}

// AddItem adds a line item to the current order
// @Summary Add order item
// @Tags order
// @Accept json
// @Produce json
// @Param request body request.AddItemRequest true "Line item"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /order/items [post]
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.orderService.AddItem(&service.AddItemInput{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		WashType:  req.WashType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added", item)
}

// UpdateQuantity changes a line item's quantity
// @Summary Update order item quantity
// @Tags order
// @Accept json
// @Produce json
// @Param id path string true "Line item ID"
// @Param request body request.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /order/items/{id} [patch]
func (h *OrderHandler) UpdateQuantity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateQuantity(id, *req.Quantity); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", gin.H{
		"items":    h.orderService.Items(),
		"subtotal": h.orderService.Subtotal(),
	})
}

// RemoveItem deletes a line item from the current order
// @Summary Remove order item
// @Tags order
// @Produce json
// @Param id path string true "Line item ID"
// @Success 204
// @Router /order/items/{id} [delete]
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	h.orderService.RemoveItem(id)
	response.NoContent(c)
}

// Clear empties the current order
// @Summary Clear current order
// @Tags order
// @Success 204
// @Router /order [delete]
func (h *OrderHandler) Clear(c *gin.Context) {
	h.orderService.Clear()
	response.NoContent(c)
}
