package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/internal/domain/enum"
	"github.com/genzlaundry/pos-api/internal/infrastructure/kvstore"
)

func testBill(id string) entity.PendingBill {
	return entity.PendingBill{
		ID:           id,
		BillNumber:   "GZ" + id,
		CustomerName: "Customer " + id,
		Items: []entity.BillItem{
			{Name: "Shirt", Quantity: 1, Rate: 60, Amount: 60},
		},
		Subtotal:   60,
		GrandTotal: 60,
		Status:     enum.BillStatusPending,
		CreatedAt:  time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestBillRepositoryRoundTrip(t *testing.T) {
	repo := NewBillRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	bills, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending on empty store: %v", err)
	}
	if len(bills) != 0 {
		t.Errorf("empty store returned %d bills", len(bills))
	}

	for i := 0; i < 5; i++ {
		if err := repo.AddPending(ctx, testBill(fmt.Sprintf("%06d", i))); err != nil {
			t.Fatalf("AddPending: %v", err)
		}
	}

	bills, err = repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(bills) != 5 {
		t.Fatalf("pending count = %d, want 5", len(bills))
	}
	// Insertion order is preserved.
	for i, bill := range bills {
		if want := fmt.Sprintf("%06d", i); bill.ID != want {
			t.Errorf("bill %d id = %s, want %s", i, bill.ID, want)
		}
	}
	if bills[0].Items[0].Amount != 60 {
		t.Errorf("item amount lost in round trip")
	}
}

func TestBillRepositoryRemovePending(t *testing.T) {
	repo := NewBillRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.AddPending(ctx, testBill(id)); err != nil {
			t.Fatalf("AddPending: %v", err)
		}
	}

	if err := repo.RemovePending(ctx, []string{"b", "not-there"}); err != nil {
		t.Fatalf("RemovePending: %v", err)
	}
	bills, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(bills) != 2 || bills[0].ID != "a" || bills[1].ID != "c" {
		t.Errorf("after removal: %+v", bills)
	}

	// Removing again is a no-op.
	if err := repo.RemovePending(ctx, []string{"b"}); err != nil {
		t.Fatalf("repeat RemovePending: %v", err)
	}
	bills, _ = repo.ListPending(ctx)
	if len(bills) != 2 {
		t.Errorf("repeat removal changed the list")
	}
}

func TestBillRepositoryHistory(t *testing.T) {
	repo := NewBillRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	bill := testBill("h1")
	bill.Status = enum.BillStatusCompleted
	if err := repo.ReplaceHistory(ctx, []entity.PendingBill{bill}); err != nil {
		t.Fatalf("ReplaceHistory: %v", err)
	}

	history, err := repo.ListHistory(ctx)
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(history) != 1 || history[0].Status != enum.BillStatusCompleted {
		t.Errorf("history = %+v", history)
	}

	// Pending list is untouched.
	pending, _ := repo.ListPending(ctx)
	if len(pending) != 0 {
		t.Errorf("history write leaked into pending list")
	}
}

func TestShopConfigRepositoryRoundTrip(t *testing.T) {
	repo := NewShopConfigRepository(kvstore.NewMemoryStore())
	ctx := context.Background()

	config, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get on empty store: %v", err)
	}
	if config != nil {
		t.Errorf("empty store returned a config")
	}

	want := &entity.ShopConfig{
		ShopName:  "Sunrise Laundry",
		Address:   "12 Market Road",
		Contact:   "+91 9000000000",
		GSTNumber: "27AAAAA0000A1Z5",
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || *got != *want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}
}
