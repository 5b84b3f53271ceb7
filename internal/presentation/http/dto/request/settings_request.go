package request

// UpdateSettingsRequest updates the shop identity printed on receipts.
type UpdateSettingsRequest struct {
	ShopName  string `json:"shop_name" binding:"required"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	GSTNumber string `json:"gst_number"`
}
