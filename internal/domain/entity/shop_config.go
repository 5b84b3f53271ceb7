package entity

// ShopConfig holds the shop identity printed on receipts and tags.
// It is persisted under its own key and read at bill-rendering time.
type ShopConfig struct {
	ShopName  string `json:"shop_name"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	GSTNumber string `json:"gst_number,omitempty"`
}

// DefaultShopConfig returns the configuration used before the admin has
// saved one.
func DefaultShopConfig() *ShopConfig {
	return &ShopConfig{
		ShopName: "GenZ Laundry",
		Address:  "123 Main Street, City",
		Contact:  "+91 9876543210",
	}
}
