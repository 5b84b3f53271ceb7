package service

import (
	"context"
	"testing"
	"time"

	"github.com/genzlaundry/pos-api/internal/domain/enum"
	"github.com/genzlaundry/pos-api/internal/infrastructure/kvstore"
	"github.com/genzlaundry/pos-api/internal/infrastructure/repository"
	"github.com/genzlaundry/pos-api/pkg/apperror"
	"github.com/genzlaundry/pos-api/pkg/billnumber"
)

func newBillService(t *testing.T) *PendingBillService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	clock := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	numbers := billnumber.NewWithClock("GZ", func() time.Time { return clock })
	return NewPendingBillService(repository.NewBillRepository(store), numbers)
}

func TestAddPreviousEstablishesTotals(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	bill, err := s.AddPrevious(ctx, &AddPreviousBillInput{
		CustomerName: "Asha",
		Items: []PreviousBillItemInput{
			{Name: "Shirt", Quantity: 2, Rate: 60},
			{Name: "Saree", Quantity: 1, Rate: 150},
		},
		Discount:       20,
		DeliveryCharge: 30,
	})
	if err != nil {
		t.Fatalf("AddPrevious: %v", err)
	}
	if bill.Subtotal != 270 {
		t.Errorf("subtotal = %v, want 270", bill.Subtotal)
	}
	if bill.GrandTotal != 280 {
		t.Errorf("grand total = %v, want 280", bill.GrandTotal)
	}
	if bill.Status != enum.BillStatusPending {
		t.Errorf("status = %s, want pending", bill.Status)
	}
	if bill.BillNumber == "" || bill.ID == "" {
		t.Errorf("bill missing identity: number=%q id=%q", bill.BillNumber, bill.ID)
	}

	pending, err := s.ListPending(ctx, "")
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending count = %d, want 1", len(pending))
	}
}

func TestAddPreviousValidation(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input AddPreviousBillInput
	}{
		{"no customer", AddPreviousBillInput{Items: []PreviousBillItemInput{{Name: "Shirt", Quantity: 1, Rate: 60}}}},
		{"no items", AddPreviousBillInput{CustomerName: "Asha"}},
		{"bad item", AddPreviousBillInput{CustomerName: "Asha", Items: []PreviousBillItemInput{{Name: "", Quantity: 1, Rate: 60}}}},
		{"negative discount", AddPreviousBillInput{CustomerName: "Asha", Items: []PreviousBillItemInput{{Name: "Shirt", Quantity: 1, Rate: 60}}, Discount: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.AddPrevious(ctx, &tc.input); !apperror.IsValidation(err) {
				t.Errorf("error = %v, want validation error", err)
			}
		})
	}
}

func TestListPendingFilter(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	add := func(customer string) {
		if _, err := s.AddPrevious(ctx, &AddPreviousBillInput{
			CustomerName: customer,
			Items:        []PreviousBillItemInput{{Name: "Shirt", Quantity: 1, Rate: 60}},
		}); err != nil {
			t.Fatalf("AddPrevious(%s): %v", customer, err)
		}
	}
	add("Asha Patel")
	add("Ravi Kumar")

	matched, err := s.ListPending(ctx, "asha")
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(matched) != 1 || matched[0].CustomerName != "Asha Patel" {
		t.Errorf("filter by name returned %d bills", len(matched))
	}

	// Filter by bill number, case-insensitive.
	byNumber, err := s.ListPending(ctx, matched[0].BillNumber)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(byNumber) != 1 {
		t.Errorf("filter by number returned %d bills", len(byNumber))
	}

	all, err := s.ListPending(ctx, "")
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("empty filter returned %d bills, want 2", len(all))
	}
}

func TestAdvanceStatusLifecycle(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	bill, err := s.AddPrevious(ctx, &AddPreviousBillInput{
		CustomerName: "Asha",
		Items:        []PreviousBillItemInput{{Name: "Shirt", Quantity: 1, Rate: 60}},
	})
	if err != nil {
		t.Fatalf("AddPrevious: %v", err)
	}

	// pending -> completed moves the bill into history.
	completed, err := s.AdvanceStatus(ctx, bill.ID, enum.BillStatusCompleted)
	if err != nil {
		t.Fatalf("AdvanceStatus(completed): %v", err)
	}
	if completed.Status != enum.BillStatusCompleted {
		t.Errorf("status = %s, want completed", completed.Status)
	}
	if completed.DeliveredAt != nil {
		t.Errorf("completed bill has a delivery timestamp")
	}

	pending, _ := s.ListPending(ctx, "")
	if len(pending) != 0 {
		t.Errorf("bill still pending after completion")
	}
	history, _ := s.ListHistory(ctx, "")
	if len(history) != 1 {
		t.Fatalf("history count = %d, want 1", len(history))
	}

	// completed -> delivered stamps deliveredAt.
	delivered, err := s.AdvanceStatus(ctx, bill.ID, enum.BillStatusDelivered)
	if err != nil {
		t.Fatalf("AdvanceStatus(delivered): %v", err)
	}
	if delivered.Status != enum.BillStatusDelivered {
		t.Errorf("status = %s, want delivered", delivered.Status)
	}
	if delivered.DeliveredAt == nil {
		t.Errorf("delivered bill missing delivery timestamp")
	}

	// delivered is terminal.
	if _, err := s.AdvanceStatus(ctx, bill.ID, enum.BillStatusPending); err == nil {
		t.Errorf("delivered -> pending transition accepted")
	} else if apperror.GetAppError(err).Code != 409 {
		t.Errorf("transition error code = %d, want 409", apperror.GetAppError(err).Code)
	}
}

func TestAdvanceStatusDirectDelivery(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	bill, err := s.AddPrevious(ctx, &AddPreviousBillInput{
		CustomerName: "Ravi",
		Items:        []PreviousBillItemInput{{Name: "Suit", Quantity: 1, Rate: 300}},
	})
	if err != nil {
		t.Fatalf("AddPrevious: %v", err)
	}

	// pending -> delivered is allowed for walk-in pickups.
	delivered, err := s.AdvanceStatus(ctx, bill.ID, enum.BillStatusDelivered)
	if err != nil {
		t.Fatalf("AdvanceStatus(delivered): %v", err)
	}
	if delivered.DeliveredAt == nil {
		t.Errorf("delivered bill missing delivery timestamp")
	}
}

func TestAdvanceStatusRejects(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	bill, err := s.AddPrevious(ctx, &AddPreviousBillInput{
		CustomerName: "Asha",
		Items:        []PreviousBillItemInput{{Name: "Shirt", Quantity: 1, Rate: 60}},
	})
	if err != nil {
		t.Fatalf("AddPrevious: %v", err)
	}

	// pending -> pending is not a transition.
	if _, err := s.AdvanceStatus(ctx, bill.ID, enum.BillStatusPending); err == nil {
		t.Errorf("pending -> pending accepted")
	}
	// Unknown status.
	if _, err := s.AdvanceStatus(ctx, bill.ID, enum.BillStatus("lost")); err == nil {
		t.Errorf("unknown status accepted")
	}
	// Unknown bill.
	if _, err := s.AdvanceStatus(ctx, "missing", enum.BillStatusCompleted); err == nil {
		t.Errorf("unknown bill accepted")
	} else if apperror.GetAppError(err).Code != 404 {
		t.Errorf("error code = %d, want 404", apperror.GetAppError(err).Code)
	}
}

func TestGetSearchesBothLists(t *testing.T) {
	s := newBillService(t)
	ctx := context.Background()

	bill, err := s.AddPrevious(ctx, &AddPreviousBillInput{
		CustomerName: "Asha",
		Items:        []PreviousBillItemInput{{Name: "Shirt", Quantity: 1, Rate: 60}},
	})
	if err != nil {
		t.Fatalf("AddPrevious: %v", err)
	}

	if _, err := s.Get(ctx, bill.ID); err != nil {
		t.Errorf("Get pending bill: %v", err)
	}

	if _, err := s.AdvanceStatus(ctx, bill.ID, enum.BillStatusCompleted); err != nil {
		t.Fatalf("AdvanceStatus: %v", err)
	}
	if _, err := s.Get(ctx, bill.ID); err != nil {
		t.Errorf("Get history bill: %v", err)
	}

	if _, err := s.Get(ctx, "missing"); err == nil {
		t.Errorf("Get missing bill succeeded")
	}
}
