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

type shopConfigRepository struct {
	store kvstore.Store
}

// NewShopConfigRepository creates a shop config repository over the given store.
func NewShopConfigRepository(store kvstore.Store) domainRepo.ShopConfigRepository {
	return &shopConfigRepository{store: store}
}

func (r *shopConfigRepository) Get(ctx context.Context) (*entity.ShopConfig, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyShopConfig)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg entity.ShopConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("repository: corrupt shop config: %w", err)
	}
	return &cfg, nil
}

func (r *shopConfigRepository) Save(ctx context.Context, cfg *entity.ShopConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, kvstore.KeyShopConfig, raw)
}
