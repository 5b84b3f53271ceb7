package handler

import (
	"github.com/genzlaundry/pos-api/internal/application/service"
	"github.com/genzlaundry/pos-api/internal/presentation/http/dto/request"
	"github.com/genzlaundry/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BillingHandler handles bill finalization HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Preview computes totals without committing anything
// @Summary Preview bill totals
// @Tags billing
// @Accept json
// @Produce json
// @Param request body request.PreviewRequest true "Charges and selected bills"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /billing/preview [post]
func (h *BillingHandler) Preview(c *gin.Context) {
	var req request.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	totals, err := h.billingService.Preview(c.Request.Context(), &service.ProcessOrderInput{
		SelectedBillIDs: req.SelectedBillIDs,
		PreviousBalance: req.PreviousBalance,
		Discount:        req.Discount,
		DeliveryCharge:  req.DeliveryCharge,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill preview", totals)
}

// Process finalizes the current order into a printed bill
// @Summary Process order
// @Description Print the receipt and consume selected pending bills
// @Tags billing
// @Accept json
// @Produce json
// @Param request body request.ProcessOrderRequest true "Order details"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /billing/process [post]
func (h *BillingHandler) Process(c *gin.Context) {
	var req request.ProcessOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.billingService.ProcessOrder(c.Request.Context(), &service.ProcessOrderInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		SelectedBillIDs: req.SelectedBillIDs,
		PreviousBalance: req.PreviousBalance,
		Discount:        req.Discount,
		DeliveryCharge:  req.DeliveryCharge,
	})
	if err != nil {
		// On a print failure the rendered bill is returned so the client
		// can show it and offer a retry; nothing has been consumed.
		if receipt != nil {
			response.ErrorWithData(c, err, gin.H{"receipt": receipt})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Order processed", gin.H{"receipt": receipt})
}

// PrintTags prints one garment tag per item unit in the current order
// @Summary Print garment tags
// @Tags billing
// @Accept json
// @Produce json
// @Param request body request.PrintTagsRequest true "Customer name"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /billing/tags [post]
func (h *BillingHandler) PrintTags(c *gin.Context) {
	var req request.PrintTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tags, err := h.billingService.PrintTags(c.Request.Context(), req.CustomerName)
	if err != nil {
		if tags != nil {
			response.ErrorWithData(c, err, gin.H{"tags": tags})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Tags printed", gin.H{"tags": tags, "count": len(tags)})
}
