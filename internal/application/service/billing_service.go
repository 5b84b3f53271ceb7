package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/internal/domain/repository"
	"github.com/genzlaundry/pos-api/pkg/apperror"
	"github.com/genzlaundry/pos-api/pkg/billnumber"
)

// BillingService combines the current order, selected pending bills and a
// manual previous balance into one ephemeral bill and prints it. Selected
// pending bills are consumed: they are deleted, not transitioned, once
// their items and amounts are folded into the printed bill.
type BillingService struct {
	orders     *OrderService
	billRepo   repository.BillRepository
	configRepo repository.ShopConfigRepository
	printers   *PrinterService
	numbers    *billnumber.Generator
	now        func() time.Time

	mu         sync.Mutex
	billNumber string // provisional number, shared by tags and the final bill
}

// NewBillingService creates a new billing service.
func NewBillingService(
	orders *OrderService,
	billRepo repository.BillRepository,
	configRepo repository.ShopConfigRepository,
	printers *PrinterService,
	numbers *billnumber.Generator,
) *BillingService {
	return &BillingService{
		orders:     orders,
		billRepo:   billRepo,
		configRepo: configRepo,
		printers:   printers,
		numbers:    numbers,
		now:        time.Now,
	}
}

// ChargesInput carries the adjustable amounts entered at billing time.
type ChargesInput struct {
	PreviousBalance float64
	Discount        float64
	DeliveryCharge  float64
}

// ProcessOrderInput is the full input for finalizing a bill.
type ProcessOrderInput struct {
	CustomerName    string
	CustomerPhone   string
	SelectedBillIDs []string
	PreviousBalance float64
	Discount        float64
	DeliveryCharge  float64
}

// ComputeTotals combines order line items, consumed pending bills and a
// previous balance into bill totals. The combined subtotal is the order
// subtotal plus each selected bill's grand total plus the previous balance;
// the grand total subtracts the discount and adds the delivery charge.
func ComputeTotals(orderItems []entity.LineItem, selected []entity.PendingBill, charges ChargesInput) entity.Totals {
	items := make([]entity.BillItem, 0, len(orderItems)+len(selected)+1)
	var subtotal float64

	for _, item := range orderItems {
		items = append(items, entity.BillItem{
			Name:     item.DisplayName(),
			Quantity: item.Quantity,
			Rate:     item.UnitPrice,
			Amount:   item.LineTotal,
		})
		subtotal += item.LineTotal
	}
	for _, bill := range selected {
		// The consumed bill's items are carried onto the receipt by value;
		// its contribution to the subtotal is its grand total, so any
		// discount or delivery charge it carried stays settled.
		items = append(items, bill.Items...)
		subtotal += bill.GrandTotal
	}
	if charges.PreviousBalance > 0 {
		items = append(items, entity.BillItem{
			Name:     "Previous Balance",
			Quantity: 1,
			Rate:     charges.PreviousBalance,
			Amount:   charges.PreviousBalance,
		})
		subtotal += charges.PreviousBalance
	}

	return entity.Totals{
		Subtotal:       subtotal,
		Discount:       charges.Discount,
		DeliveryCharge: charges.DeliveryCharge,
		GrandTotal:     subtotal - charges.Discount + charges.DeliveryCharge,
		Items:          items,
	}
}

// Preview computes the totals the clerk sees before committing, without
// touching the order or the pending bill store.
func (s *BillingService) Preview(ctx context.Context, input *ProcessOrderInput) (*entity.Totals, error) {
	if err := validateCharges(ChargesInput{
		PreviousBalance: input.PreviousBalance,
		Discount:        input.Discount,
		DeliveryCharge:  input.DeliveryCharge,
	}); err != nil {
		return nil, err
	}

	selected, err := s.resolveSelected(ctx, input.SelectedBillIDs)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(s.orders.Items(), selected, ChargesInput{
		PreviousBalance: input.PreviousBalance,
		Discount:        input.Discount,
		DeliveryCharge:  input.DeliveryCharge,
	})
	return &totals, nil
}

// ProcessOrder finalizes the current order. The receipt is printed first;
// only after a successful print are the consumed pending bills removed and
// the order cleared. A failed print therefore loses nothing and the clerk
// can retry. The finalized bill itself is ephemeral: it is handed to the
// renderer and returned to the caller, never written to the store.
func (s *BillingService) ProcessOrder(ctx context.Context, input *ProcessOrderInput) (*entity.Bill, error) {
	var fieldErrors []apperror.FieldError
	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	charges := ChargesInput{
		PreviousBalance: input.PreviousBalance,
		Discount:        input.Discount,
		DeliveryCharge:  input.DeliveryCharge,
	}
	fieldErrors = append(fieldErrors, chargeFieldErrors(charges)...)

	orderItems := s.orders.Items()
	if len(orderItems) == 0 && len(input.SelectedBillIDs) == 0 && input.PreviousBalance <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "Nothing to bill: add items, select pending bills or enter a previous balance"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	selected, err := s.resolveSelected(ctx, input.SelectedBillIDs)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(orderItems, selected, charges)
	if totals.GrandTotal < 0 {
		return nil, apperror.NewFieldValidationError("discount", "Discount exceeds the bill total")
	}

	number, err := s.currentBillNumber(ctx)
	if err != nil {
		return nil, err
	}

	receipt := s.composeBill(ctx, number, customerName, totals)
	if err := s.printers.PrintBill(receipt); err != nil {
		return receipt, apperror.NewRenderFailureError("Failed to print receipt: " + err.Error())
	}

	if len(input.SelectedBillIDs) > 0 {
		if err := s.billRepo.RemovePending(ctx, input.SelectedBillIDs); err != nil {
			return receipt, err
		}
	}
	s.orders.Clear()
	s.resetBillNumber()

	return receipt, nil
}

// Reprint prints a previously recorded bill again, using the current shop
// identity for the header.
func (s *BillingService) Reprint(ctx context.Context, bill *entity.PendingBill) (*entity.Bill, error) {
	receipt := s.composeBill(ctx, bill.BillNumber, bill.CustomerName, entity.Totals{
		Subtotal:       bill.Subtotal,
		Discount:       bill.Discount,
		DeliveryCharge: bill.DeliveryCharge,
		GrandTotal:     bill.GrandTotal,
		Items:          bill.Items,
	})
	if err := s.printers.PrintBill(receipt); err != nil {
		return receipt, apperror.NewRenderFailureError("Failed to print receipt: " + err.Error())
	}
	return receipt, nil
}

// BuildTags expands the current order into one tag per garment, all carrying
// the provisional bill number so tags printed before the receipt match it.
func (s *BillingService) BuildTags(ctx context.Context, customerName string) ([]entity.Tag, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, apperror.NewFieldValidationError("customer_name", "Customer name is required")
	}
	orderItems := s.orders.Items()
	if len(orderItems) == 0 {
		return nil, apperror.NewFieldValidationError("items", "Order is empty")
	}

	number, err := s.currentBillNumber(ctx)
	if err != nil {
		return nil, err
	}
	config := s.shopConfig(ctx)
	date := s.now().Format("02 Jan 06")

	total := 0
	for _, item := range orderItems {
		total += item.Quantity
	}

	tags := make([]entity.Tag, 0, total)
	index := 0
	for _, item := range orderItems {
		for i := 0; i < item.Quantity; i++ {
			index++
			tags = append(tags, entity.Tag{
				BusinessName: config.ShopName,
				BillNumber:   number,
				CustomerName: customerName,
				ItemName:     item.Name,
				WashType:     item.WashType,
				Price:        item.UnitPrice,
				Index:        index,
				Total:        total,
				Date:         date,
				Barcode:      tagBarcode(number, index),
			})
		}
	}
	return tags, nil
}

// PrintTags builds and prints the tag run for the current order.
func (s *BillingService) PrintTags(ctx context.Context, customerName string) ([]entity.Tag, error) {
	tags, err := s.BuildTags(ctx, customerName)
	if err != nil {
		return nil, err
	}
	if err := s.printers.PrintTags(tags); err != nil {
		return tags, apperror.NewRenderFailureError("Failed to print tags: " + err.Error())
	}
	return tags, nil
}

// currentBillNumber returns the provisional number for the bill being built,
// generating one on first use. It stays stable until ProcessOrder succeeds.
func (s *BillingService) currentBillNumber(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.billNumber != "" {
		return s.billNumber, nil
	}
	inUse, err := billNumbersInUse(ctx, s.billRepo)
	if err != nil {
		return "", err
	}
	s.billNumber = s.numbers.Next(inUse)
	return s.billNumber, nil
}

func (s *BillingService) resetBillNumber() {
	s.mu.Lock()
	s.billNumber = ""
	s.mu.Unlock()
}

// resolveSelected maps ids to pending bills, rejecting ids that are not in
// the pending list (already consumed bills included).
func (s *BillingService) resolveSelected(ctx context.Context, ids []string) ([]entity.PendingBill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	pending, err := s.billRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.PendingBill, len(pending))
	for _, bill := range pending {
		byID[bill.ID] = bill
	}
	selected := make([]entity.PendingBill, 0, len(ids))
	for _, id := range ids {
		bill, ok := byID[id]
		if !ok {
			return nil, apperror.NewNotFoundError("Pending bill")
		}
		selected = append(selected, bill)
	}
	return selected, nil
}

func (s *BillingService) composeBill(ctx context.Context, number, customerName string, totals entity.Totals) *entity.Bill {
	config := s.shopConfig(ctx)
	return &entity.Bill{
		BusinessName:    config.ShopName,
		Address:         config.Address,
		Phone:           config.Contact,
		GSTNumber:       config.GSTNumber,
		BillNumber:      number,
		CustomerName:    customerName,
		Items:           totals.Items,
		Subtotal:        totals.Subtotal,
		Discount:        totals.Discount,
		DeliveryCharge:  totals.DeliveryCharge,
		GrandTotal:      totals.GrandTotal,
		ThankYouMessage: "Thank you! Visit again.",
	}
}

func (s *BillingService) shopConfig(ctx context.Context) *entity.ShopConfig {
	config, err := s.configRepo.Get(ctx)
	if err != nil || config == nil {
		return entity.DefaultShopConfig()
	}
	return config
}

func validateCharges(charges ChargesInput) error {
	if fieldErrors := chargeFieldErrors(charges); len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func chargeFieldErrors(charges ChargesInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	if charges.PreviousBalance < 0 || math.IsNaN(charges.PreviousBalance) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "previous_balance", Message: "Previous balance cannot be negative"})
	}
	if charges.Discount < 0 || math.IsNaN(charges.Discount) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "Discount cannot be negative"})
	}
	if charges.DeliveryCharge < 0 || math.IsNaN(charges.DeliveryCharge) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "delivery_charge", Message: "Delivery charge cannot be negative"})
	}
	return fieldErrors
}

func tagBarcode(billNumber string, index int) string {
	return fmt.Sprintf("%s%03d", billNumber, index)
}
