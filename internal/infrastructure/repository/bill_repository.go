package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	domainRepo "github.com/genzlaundry/pos-api/internal/domain/repository"
	"github.com/genzlaundry/pos-api/internal/infrastructure/kvstore"
)

// billRepository stores the pending and history lists as two JSON documents
// in the key-value store. Every mutation reserializes the whole list.
type billRepository struct {
	store kvstore.Store
}

// NewBillRepository creates a bill repository over the given store.
func NewBillRepository(store kvstore.Store) domainRepo.BillRepository {
	return &billRepository{store: store}
}

func (r *billRepository) ListPending(ctx context.Context) ([]entity.PendingBill, error) {
	return r.readList(ctx, kvstore.KeyPendingBills)
}

func (r *billRepository) ListHistory(ctx context.Context) ([]entity.PendingBill, error) {
	return r.readList(ctx, kvstore.KeyBillHistory)
}

func (r *billRepository) AddPending(ctx context.Context, bill entity.PendingBill) error {
	bills, err := r.readList(ctx, kvstore.KeyPendingBills)
	if err != nil {
		return err
	}
	bills = append(bills, bill)
	return r.writeList(ctx, kvstore.KeyPendingBills, bills)
}

func (r *billRepository) RemovePending(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	bills, err := r.readList(ctx, kvstore.KeyPendingBills)
	if err != nil {
		return err
	}

	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	kept := bills[:0]
	for _, bill := range bills {
		if !remove[bill.ID] {
			kept = append(kept, bill)
		}
	}
	// Absent ids are treated as already removed; removal must be
	// idempotent under retry.
	return r.writeList(ctx, kvstore.KeyPendingBills, kept)
}

func (r *billRepository) ReplacePending(ctx context.Context, bills []entity.PendingBill) error {
	return r.writeList(ctx, kvstore.KeyPendingBills, bills)
}

func (r *billRepository) ReplaceHistory(ctx context.Context, bills []entity.PendingBill) error {
	return r.writeList(ctx, kvstore.KeyBillHistory, bills)
}

func (r *billRepository) readList(ctx context.Context, key string) ([]entity.PendingBill, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return []entity.PendingBill{}, nil
	}
	if err != nil {
		return nil, err
	}
	var bills []entity.PendingBill
	if err := json.Unmarshal(raw, &bills); err != nil {
		return nil, fmt.Errorf("repository: corrupt bill list %q: %w", key, err)
	}
	return bills, nil
}

func (r *billRepository) writeList(ctx context.Context, key string, bills []entity.PendingBill) error {
	if bills == nil {
		bills = []entity.PendingBill{}
	}
	raw, err := json.Marshal(bills)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, key, raw)
}
