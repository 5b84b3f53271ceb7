package entity

import (
	"fmt"

	"github.com/genzlaundry/pos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// LineItem is a garment line in the in-progress order. It is owned
// exclusively by the order builder and discarded once the order is
// finalized or cleared.
type LineItem struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Quantity  int           `json:"quantity"`
	UnitPrice float64       `json:"unit_price"`
	WashType  enum.WashType `json:"wash_type"`
	LineTotal float64       `json:"line_total"`
}

// SetQuantity updates the quantity and recomputes the line total.
// Callers must ensure quantity > 0; zero or negative means removal.
func (li *LineItem) SetQuantity(quantity int) {
	li.Quantity = quantity
	li.LineTotal = li.UnitPrice * float64(quantity)
}

// DisplayName is the item name as it appears on receipts, e.g. "Shirt (WASH+IRON)".
func (li *LineItem) DisplayName() string {
	return fmt.Sprintf("%s (%s)", li.Name, li.WashType)
}
