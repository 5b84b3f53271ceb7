package request

// AddItemRequest adds a line item to the current order.
type AddItemRequest struct {
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	WashType  string  `json:"wash_type" binding:"required"`
}

// UpdateQuantityRequest changes a line item's quantity. Zero removes the
// item, so the field is not marked required.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
