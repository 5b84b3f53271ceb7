package entity

import (
	"time"

	"github.com/genzlaundry/pos-api/internal/domain/enum"
)

// BillItem is a line item as carried on a persisted or printed bill.
// Unlike LineItem it has no identity of its own; it is copied by value
// when a pending bill is folded into a new order.
type BillItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// PendingBill is a persisted bill awaiting payment, completion or delivery.
// Invariant at creation: GrandTotal == Subtotal - Discount + DeliveryCharge.
type PendingBill struct {
	ID             string          `json:"id"`
	BillNumber     string          `json:"bill_number"`
	CustomerName   string          `json:"customer_name"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	Items          []BillItem      `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	Discount       float64         `json:"discount"`
	DeliveryCharge float64         `json:"delivery_charge"`
	GrandTotal     float64         `json:"grand_total"`
	Status         enum.BillStatus `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	DeliveredAt    *time.Time      `json:"delivered_at,omitempty"`
}

// Matches reports whether the bill matches a case-insensitive substring
// query against customer name or bill number. An empty query matches all.
func (b *PendingBill) Matches(query string) bool {
	if query == "" {
		return true
	}
	return containsFold(b.CustomerName, query) || containsFold(b.BillNumber, query)
}
