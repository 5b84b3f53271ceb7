package repository

import (
	"context"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
)

// BillRepository persists pending bills and bill history as two whole-list
// documents. Every mutation rewrites the full list; there are no partial
// updates and no cross-list transactions (last write wins).
type BillRepository interface {
	// ListPending returns all pending bills in insertion order.
	ListPending(ctx context.Context) ([]entity.PendingBill, error)
	// ListHistory returns all completed/delivered bills in insertion order.
	ListHistory(ctx context.Context) ([]entity.PendingBill, error)
	// AddPending appends a bill to the pending list.
	AddPending(ctx context.Context, bill entity.PendingBill) error
	// RemovePending deletes the bills with the given ids from the pending
	// list. Missing ids are ignored so that consumption is idempotent.
	RemovePending(ctx context.Context, ids []string) error
	// ReplacePending overwrites the entire pending list.
	ReplacePending(ctx context.Context, bills []entity.PendingBill) error
	// ReplaceHistory overwrites the entire history list.
	ReplaceHistory(ctx context.Context, bills []entity.PendingBill) error
}

// ShopConfigRepository persists the shop identity document.
type ShopConfigRepository interface {
	// Get returns the stored config, or nil when none has been saved yet.
	Get(ctx context.Context) (*entity.ShopConfig, error)
	Save(ctx context.Context, cfg *entity.ShopConfig) error
}
