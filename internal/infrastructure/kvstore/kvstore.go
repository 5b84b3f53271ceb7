package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key has never been written.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Storage keys used by the application.
const (
	KeyPendingBills = "laundry_pending_bills"
	KeyBillHistory  = "laundry_bill_history"
	KeyShopConfig   = "laundry_shop_config"
)

// Store is a string-key to JSON-document store, the persistence contract of
// the system. Values are opaque serialized blobs; callers read and write
// whole documents.
type Store interface {
	// Get returns the raw document stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores the raw document under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases any underlying resources.
	Close() error
}
