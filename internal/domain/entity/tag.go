package entity

import "github.com/genzlaundry/pos-api/internal/domain/enum"

// Tag describes one physical garment label. A line item with quantity N
// expands into N tags, numbered Index/Total across the whole order.
type Tag struct {
	BusinessName string        `json:"business_name"`
	BillNumber   string        `json:"bill_number"`
	CustomerName string        `json:"customer_name"`
	ItemName     string        `json:"item_name"`
	WashType     enum.WashType `json:"wash_type"`
	Price        float64       `json:"price"`
	Index        int           `json:"index"`
	Total        int           `json:"total"`
	Date         string        `json:"date"`
	Barcode      string        `json:"barcode"`
}
