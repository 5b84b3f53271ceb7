package entity

import "github.com/genzlaundry/pos-api/internal/domain/enum"

// QuickItem is a catalog entry used to prefill the item entry form.
type QuickItem struct {
	Name      string          `json:"name"`
	Price     float64         `json:"price"`
	WashTypes []enum.WashType `json:"wash_types"`
}

// QuickItems is the fixed garment catalog shown on the billing screen.
func QuickItems() []QuickItem {
	return []QuickItem{
		{Name: "Shirt", Price: 60, WashTypes: []enum.WashType{enum.WashTypeWash, enum.WashTypeIron, enum.WashTypeWashIron}},
		{Name: "Pant", Price: 70, WashTypes: []enum.WashType{enum.WashTypeWash, enum.WashTypeIron, enum.WashTypeWashIron}},
		{Name: "T-Shirt", Price: 40, WashTypes: []enum.WashType{enum.WashTypeWash, enum.WashTypeIron}},
		{Name: "Saree", Price: 150, WashTypes: []enum.WashType{enum.WashTypeWash, enum.WashTypeDryClean}},
		{Name: "Suit", Price: 300, WashTypes: []enum.WashType{enum.WashTypeDryClean}},
		{Name: "Bedsheet", Price: 100, WashTypes: []enum.WashType{enum.WashTypeWash}},
		{Name: "Curtain", Price: 120, WashTypes: []enum.WashType{enum.WashTypeWash, enum.WashTypeDryClean}},
		{Name: "Towel", Price: 30, WashTypes: []enum.WashType{enum.WashTypeWash}},
	}
}
