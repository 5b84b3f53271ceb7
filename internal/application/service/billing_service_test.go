package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/internal/infrastructure/kvstore"
	"github.com/genzlaundry/pos-api/internal/infrastructure/repository"
	"github.com/genzlaundry/pos-api/pkg/apperror"
	"github.com/genzlaundry/pos-api/pkg/billnumber"
	"github.com/genzlaundry/pos-api/pkg/printer"
)

type billingFixture struct {
	orders  *OrderService
	billing *BillingService
	bills   *PendingBillService
	receipt *printer.CapturePrinter
	tags    *printer.CapturePrinter
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()

	store := kvstore.NewMemoryStore()
	billRepo := repository.NewBillRepository(store)
	configRepo := repository.NewShopConfigRepository(store)

	receipt := printer.NewCapturePrinter()
	tags := printer.NewCapturePrinter()
	printers := NewPrinterService(receipt, tags, printer.Width80mm, "usb", "usb")

	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	numbers := billnumber.NewWithClock("GZ", func() time.Time { return clock })

	orders := NewOrderService()
	return &billingFixture{
		orders:  orders,
		billing: NewBillingService(orders, billRepo, configRepo, printers, numbers),
		bills:   NewPendingBillService(billRepo, numbers),
		receipt: receipt,
		tags:    tags,
	}
}

func (f *billingFixture) addItem(t *testing.T, name string, price float64, qty int, washType string) {
	t.Helper()
	if _, err := f.orders.AddItem(&AddItemInput{Name: name, UnitPrice: price, Quantity: qty, WashType: washType}); err != nil {
		t.Fatalf("AddItem(%s): %v", name, err)
	}
}

func (f *billingFixture) addPendingBill(t *testing.T, customer string, grandTotal float64) *entity.PendingBill {
	t.Helper()
	return f.addPendingBillItems(t, customer, []PreviousBillItemInput{{Name: "Old work", Quantity: 1, Rate: grandTotal}})
}

func (f *billingFixture) addPendingBillItems(t *testing.T, customer string, items []PreviousBillItemInput) *entity.PendingBill {
	t.Helper()
	bill, err := f.bills.AddPrevious(context.Background(), &AddPreviousBillInput{
		CustomerName: customer,
		Items:        items,
	})
	if err != nil {
		t.Fatalf("AddPrevious: %v", err)
	}
	return bill
}

func TestPreviewOrderOnly(t *testing.T) {
	f := newBillingFixture(t)
	f.addItem(t, "Shirt", 60, 2, "WASH+IRON")

	totals, err := f.billing.Preview(context.Background(), &ProcessOrderInput{})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if totals.Subtotal != 120 {
		t.Errorf("subtotal = %v, want 120", totals.Subtotal)
	}
	if totals.GrandTotal != 120 {
		t.Errorf("grand total = %v, want 120", totals.GrandTotal)
	}
}

func TestPreviewWithPendingBillAndCharges(t *testing.T) {
	f := newBillingFixture(t)
	f.addItem(t, "Shirt", 60, 2, "WASH+IRON")
	pending := f.addPendingBill(t, "Asha", 200)

	totals, err := f.billing.Preview(context.Background(), &ProcessOrderInput{
		SelectedBillIDs: []string{pending.ID},
		PreviousBalance: 50,
		Discount:        20,
		DeliveryCharge:  30,
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if totals.Subtotal != 370 {
		t.Errorf("combined subtotal = %v, want 370", totals.Subtotal)
	}
	if totals.GrandTotal != 380 {
		t.Errorf("grand total = %v, want 380", totals.GrandTotal)
	}
}

func TestPreviewCarriesSelectedBillItems(t *testing.T) {
	f := newBillingFixture(t)
	f.addItem(t, "Shirt", 60, 1, "WASH")
	pending := f.addPendingBillItems(t, "Asha", []PreviousBillItemInput{
		{Name: "Saree", Quantity: 1, Rate: 150},
		{Name: "Towel", Quantity: 2, Rate: 30},
	})

	totals, err := f.billing.Preview(context.Background(), &ProcessOrderInput{
		SelectedBillIDs: []string{pending.ID},
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	// The consumed bill's full item list appears by value, not a collapsed
	// one-line summary.
	names := make(map[string]bool, len(totals.Items))
	for _, item := range totals.Items {
		names[item.Name] = true
	}
	for _, want := range []string{"Saree", "Towel"} {
		if !names[want] {
			t.Errorf("items missing %q: %v", want, names)
		}
	}
	if len(totals.Items) != 3 {
		t.Errorf("item count = %d, want 3 (order line + two carried lines)", len(totals.Items))
	}
	if totals.Subtotal != 60+210 {
		t.Errorf("subtotal = %v, want 270", totals.Subtotal)
	}
}

func TestPreviewRejectsNegativeCharges(t *testing.T) {
	f := newBillingFixture(t)
	f.addItem(t, "Shirt", 60, 1, "WASH")

	cases := []ProcessOrderInput{
		{Discount: -1},
		{DeliveryCharge: -1},
		{PreviousBalance: -1},
	}
	for _, input := range cases {
		if _, err := f.billing.Preview(context.Background(), &input); !apperror.IsValidation(err) {
			t.Errorf("Preview(%+v) error = %v, want validation error", input, err)
		}
	}
}

func TestProcessOrderConsumesSelectedBills(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	f.addItem(t, "Shirt", 60, 2, "WASH+IRON")
	consumed := f.addPendingBill(t, "Asha", 200)
	untouched := f.addPendingBill(t, "Ravi", 90)

	receipt, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{
		CustomerName:    "Asha",
		SelectedBillIDs: []string{consumed.ID},
		PreviousBalance: 50,
		Discount:        20,
		DeliveryCharge:  30,
	})
	if err != nil {
		t.Fatalf("ProcessOrder: %v", err)
	}
	if receipt.GrandTotal != 380 {
		t.Errorf("receipt grand total = %v, want 380", receipt.GrandTotal)
	}
	if len(f.receipt.Jobs()) != 1 {
		t.Errorf("printed %d receipts, want 1", len(f.receipt.Jobs()))
	}

	// Consumed bill is deleted, not transitioned; the rest stay put. The
	// finalized bill is ephemeral and must not be written anywhere.
	pending, err := f.bills.ListPending(ctx, "")
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending list has %d bills, want only the unselected one", len(pending))
	}
	if pending[0].ID != untouched.ID {
		t.Errorf("pending list holds %s, want %s", pending[0].ID, untouched.ID)
	}

	history, err := f.bills.ListHistory(ctx, "")
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history has %d bills, want 0", len(history))
	}

	// The order is cleared only after a successful print.
	if len(f.orders.Items()) != 0 {
		t.Errorf("order not cleared after processing")
	}
}

func TestProcessOrderPrintFailureLeavesStateIntact(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	f.addItem(t, "Shirt", 60, 2, "WASH+IRON")
	pending := f.addPendingBill(t, "Asha", 200)

	f.receipt.Fail = errors.New("paper jam")
	receipt, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{
		CustomerName:    "Asha",
		SelectedBillIDs: []string{pending.ID},
	})
	if err == nil {
		t.Fatalf("ProcessOrder succeeded despite print failure")
	}
	if receipt == nil {
		t.Errorf("rendered receipt not returned for retry")
	}
	appErr := apperror.GetAppError(err)
	if appErr.Code != 502 {
		t.Errorf("error code = %d, want 502", appErr.Code)
	}

	// Nothing was consumed or cleared.
	if len(f.orders.Items()) != 1 {
		t.Errorf("order mutated on print failure")
	}
	bills, err := f.bills.ListPending(ctx, "")
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(bills) != 1 || bills[0].ID != pending.ID {
		t.Errorf("pending bills mutated on print failure")
	}

	// Retry succeeds with the same state.
	f.receipt.Fail = nil
	if _, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{
		CustomerName:    "Asha",
		SelectedBillIDs: []string{pending.ID},
	}); err != nil {
		t.Fatalf("retry after print failure: %v", err)
	}
}

func TestProcessOrderValidation(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	// Empty customer name.
	f.addItem(t, "Shirt", 60, 1, "WASH")
	if _, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{CustomerName: "  "}); !apperror.IsValidation(err) {
		t.Errorf("empty customer name error = %v, want validation error", err)
	}

	// Nothing to bill.
	f.orders.Clear()
	if _, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{CustomerName: "Asha"}); !apperror.IsValidation(err) {
		t.Errorf("empty order error = %v, want validation error", err)
	}

	// Unknown selected bill id.
	f.addItem(t, "Shirt", 60, 1, "WASH")
	_, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{
		CustomerName:    "Asha",
		SelectedBillIDs: []string{"no-such-bill"},
	})
	if appErr := apperror.GetAppError(err); appErr.Code != 404 {
		t.Errorf("unknown bill id error code = %d, want 404", appErr.Code)
	}

	// Discount larger than the combined subtotal.
	if _, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{
		CustomerName: "Asha",
		Discount:     10000,
	}); !apperror.IsValidation(err) {
		t.Errorf("oversized discount error = %v, want validation error", err)
	}
}

func TestProcessOrderPreviousBalanceOnly(t *testing.T) {
	f := newBillingFixture(t)

	receipt, err := f.billing.ProcessOrder(context.Background(), &ProcessOrderInput{
		CustomerName:    "Ravi",
		PreviousBalance: 250,
	})
	if err != nil {
		t.Fatalf("ProcessOrder: %v", err)
	}
	if receipt.GrandTotal != 250 {
		t.Errorf("grand total = %v, want 250", receipt.GrandTotal)
	}
}

func TestBuildTagsExpandsQuantities(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	f.addItem(t, "Shirt", 60, 2, "WASH+IRON")
	f.addItem(t, "Pant", 70, 1, "IRON")

	tags, err := f.billing.BuildTags(ctx, "Asha")
	if err != nil {
		t.Fatalf("BuildTags: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("built %d tags, want 3", len(tags))
	}
	for i, tag := range tags {
		if tag.Index != i+1 || tag.Total != 3 {
			t.Errorf("tag %d numbered %d/%d, want %d/3", i, tag.Index, tag.Total, i+1)
		}
		if tag.BillNumber == "" || tag.Barcode == "" {
			t.Errorf("tag %d missing bill number or barcode", i)
		}
	}
	if tags[0].ItemName != "Shirt" || tags[2].ItemName != "Pant" {
		t.Errorf("tags not in order: %s ... %s", tags[0].ItemName, tags[2].ItemName)
	}
	if tags[0].Barcode == tags[1].Barcode {
		t.Errorf("tags share a barcode: %s", tags[0].Barcode)
	}

	// Tags printed before processing carry the same number as the bill.
	receipt, err := f.billing.ProcessOrder(ctx, &ProcessOrderInput{CustomerName: "Asha"})
	if err != nil {
		t.Fatalf("ProcessOrder: %v", err)
	}
	if receipt.BillNumber != tags[0].BillNumber {
		t.Errorf("bill number %s does not match tag number %s", receipt.BillNumber, tags[0].BillNumber)
	}
}

func TestBuildTagsRequiresOrderAndCustomer(t *testing.T) {
	f := newBillingFixture(t)
	ctx := context.Background()

	if _, err := f.billing.BuildTags(ctx, "Asha"); !apperror.IsValidation(err) {
		t.Errorf("empty order error = %v, want validation error", err)
	}
	f.addItem(t, "Shirt", 60, 1, "WASH")
	if _, err := f.billing.BuildTags(ctx, " "); !apperror.IsValidation(err) {
		t.Errorf("empty customer error = %v, want validation error", err)
	}
}

func TestPrintTagsSendsOneJobPerGarment(t *testing.T) {
	f := newBillingFixture(t)
	f.addItem(t, "Shirt", 60, 2, "WASH")

	tags, err := f.billing.PrintTags(context.Background(), "Asha")
	if err != nil {
		t.Fatalf("PrintTags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("built %d tags, want 2", len(tags))
	}
	if got := len(f.tags.Jobs()); got != 2 {
		t.Errorf("printed %d labels, want 2", got)
	}
}
