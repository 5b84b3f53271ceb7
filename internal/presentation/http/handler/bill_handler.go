package handler

import (
	"github.com/genzlaundry/pos-api/internal/application/service"
	"github.com/genzlaundry/pos-api/internal/domain/enum"
	"github.com/genzlaundry/pos-api/internal/presentation/http/dto/request"
	"github.com/genzlaundry/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// BillHandler handles pending bill and history HTTP requests
type BillHandler struct {
	billService    *service.PendingBillService
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billService *service.PendingBillService, billingService *service.BillingService) *BillHandler {
	return &BillHandler{
		billService:    billService,
		billingService: billingService,
	}
}

// ListPending lists pending bills, optionally filtered
// @Summary List pending bills
// @Tags bills
// @Produce json
// @Param q query string false "Filter by customer name or bill number"
// @Success 200 {object} response.APIResponse
// @Router /bills/pending [get]
func (h *BillHandler) ListPending(c *gin.Context) {
	bills, err := h.billService.ListPending(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Pending bills", gin.H{"bills": bills, "count": len(bills)})
}

// ListHistory lists completed and delivered bills, optionally filtered
// @Summary List bill history
// @Tags bills
// @Produce json
// @Param q query string false "Filter by customer name or bill number"
// @Success 200 {object} response.APIResponse
// @Router /bills/history [get]
func (h *BillHandler) ListHistory(c *gin.Context) {
	bills, err := h.billService.ListHistory(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Bill history", gin.H{"bills": bills, "count": len(bills)})
}

// AddPrevious records a bill issued before the system was in use
// @Summary Add previous bill
// @Tags bills
// @Accept json
// @Produce json
// @Param request body request.AddPreviousBillRequest true "Previous bill"
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /bills/previous [post]
func (h *BillHandler) AddPrevious(c *gin.Context) {
	var req request.AddPreviousBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.PreviousBillItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.PreviousBillItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Rate:     item.Rate,
		})
	}

	bill, err := h.billService.AddPrevious(c.Request.Context(), &service.AddPreviousBillInput{
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		Items:          items,
		Discount:       req.Discount,
		DeliveryCharge: req.DeliveryCharge,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Previous bill recorded", bill)
}

// UpdateStatus advances a bill's lifecycle status
// @Summary Update bill status
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body request.UpdateBillStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /bills/{id}/status [post]
func (h *BillHandler) UpdateStatus(c *gin.Context) {
	var req request.UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.billService.AdvanceStatus(c.Request.Context(), c.Param("id"), enum.BillStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill status updated", bill)
}

// Reprint prints a recorded bill again
// @Summary Reprint bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Router /bills/{id}/reprint [post]
func (h *BillHandler) Reprint(c *gin.Context) {
	bill, err := h.billService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.billingService.Reprint(c.Request.Context(), bill)
	if err != nil {
		if receipt != nil {
			response.ErrorWithData(c, err, gin.H{"receipt": receipt})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill reprinted", gin.H{"receipt": receipt})
}
