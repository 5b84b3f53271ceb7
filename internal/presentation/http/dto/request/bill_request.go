package request

// PreviousBillItemRequest is one line of a manually entered old bill.
type PreviousBillItemRequest struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
	Rate     float64 `json:"rate" binding:"required"`
}

// AddPreviousBillRequest records a bill issued before the system was in use.
type AddPreviousBillRequest struct {
	CustomerName   string                    `json:"customer_name" binding:"required"`
	CustomerPhone  string                    `json:"customer_phone"`
	Items          []PreviousBillItemRequest `json:"items" binding:"required"`
	Discount       float64                   `json:"discount"`
	DeliveryCharge float64                   `json:"delivery_charge"`
}

// UpdateBillStatusRequest advances a bill's lifecycle status.
type UpdateBillStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed delivered"`
}
