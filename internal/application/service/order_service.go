package service

import (
	"math"
	"strings"
	"sync"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/internal/domain/enum"
	"github.com/genzlaundry/pos-api/pkg/apperror"
	"github.com/google/uuid"
)

// OrderService owns the single in-progress order being built at the till.
// Line items live only in memory; they are discarded when the order is
// finalized or cleared. A mutex guards against overlapping HTTP requests,
// but the system is operated by one clerk at a time.
type OrderService struct {
	mu    sync.Mutex
	items []entity.LineItem
}

// NewOrderService creates an order service with an empty order.
func NewOrderService() *OrderService {
	return &OrderService{}
}

// AddItemInput represents a new line item entry.
type AddItemInput struct {
	Name      string
	UnitPrice float64
	Quantity  int
	WashType  string
}

// AddItem validates the entry and appends it to the order. Invalid input is
// rejected rather than clamped: empty names, non-positive or non-finite
// prices and quantities below one all fail with a validation error.
func (s *OrderService) AddItem(input *AddItemInput) (*entity.LineItem, error) {
	var fieldErrors []apperror.FieldError

	name := strings.TrimSpace(input.Name)
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Item name is required"})
	}
	if input.UnitPrice <= 0 || math.IsNaN(input.UnitPrice) || math.IsInf(input.UnitPrice, 0) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "unit_price", Message: "Price must be a positive number"})
	}
	if input.Quantity < 1 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity must be at least 1"})
	}
	washType, err := enum.ParseWashType(input.WashType)
	if err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "wash_type", Message: "Unknown wash type"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	item := entity.LineItem{
		ID:        uuid.New(),
		Name:      name,
		Quantity:  input.Quantity,
		UnitPrice: input.UnitPrice,
		WashType:  washType,
		LineTotal: input.UnitPrice * float64(input.Quantity),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return &item, nil
}

// UpdateQuantity changes a line item's quantity, recomputing its total.
// A quantity of zero or less removes the item, mirroring RemoveItem.
func (s *OrderService) UpdateQuantity(id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		s.RemoveItem(id)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].SetQuantity(quantity)
			return nil
		}
	}
	return apperror.NewNotFoundError("Order item")
}

// RemoveItem deletes a line item from the order. Removing an absent id is a
// no-op so that removal is idempotent.
func (s *OrderService) RemoveItem(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current line items in insertion order.
func (s *OrderService) Items() []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.LineItem(nil), s.items...)
}

// Subtotal returns the sum of all line totals.
func (s *OrderService) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, item := range s.items {
		sum += item.LineTotal
	}
	return sum
}

// TotalQuantity returns the number of physical garments in the order, which
// is also the number of tags a tag print run produces.
func (s *OrderService) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Clear empties the order. Used after a successful print or an explicit
// clear from the till.
func (s *OrderService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}
