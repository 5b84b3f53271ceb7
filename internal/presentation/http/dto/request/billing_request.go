package request

// ProcessOrderRequest finalizes the current order into a printed bill.
type ProcessOrderRequest struct {
	CustomerName    string   `json:"customer_name" binding:"required"`
	CustomerPhone   string   `json:"customer_phone"`
	SelectedBillIDs []string `json:"selected_bill_ids"`
	PreviousBalance float64  `json:"previous_balance"`
	Discount        float64  `json:"discount"`
	DeliveryCharge  float64  `json:"delivery_charge"`
}

// PreviewRequest computes totals without committing anything. Customer name
// is not needed for a preview.
type PreviewRequest struct {
	SelectedBillIDs []string `json:"selected_bill_ids"`
	PreviousBalance float64  `json:"previous_balance"`
	Discount        float64  `json:"discount"`
	DeliveryCharge  float64  `json:"delivery_charge"`
}

// PrintTagsRequest prints garment tags for the current order.
type PrintTagsRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
}
