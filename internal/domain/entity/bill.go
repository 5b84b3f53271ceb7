package entity

import "strings"

// Bill is the finalized bill handed to the receipt renderer at process-order
// time. It is a value object composed from the current order, any selected
// pending bills and the previous balance; it is NOT persisted by the core.
type Bill struct {
	BusinessName    string     `json:"business_name"`
	Address         string     `json:"address"`
	Phone           string     `json:"phone"`
	GSTNumber       string     `json:"gst_number,omitempty"`
	BillNumber      string     `json:"bill_number"`
	CustomerName    string     `json:"customer_name"`
	Items           []BillItem `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Discount        float64    `json:"discount"`
	DeliveryCharge  float64    `json:"delivery_charge"`
	GrandTotal      float64    `json:"grand_total"`
	ThankYouMessage string     `json:"thank_you_message,omitempty"`
}

// Totals is the result of combining an order subtotal, selected pending
// bills and a previous balance into one bill.
type Totals struct {
	Subtotal       float64    `json:"subtotal"`
	Discount       float64    `json:"discount"`
	DeliveryCharge float64    `json:"delivery_charge"`
	GrandTotal     float64    `json:"grand_total"`
	Items          []BillItem `json:"items"`
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
