package service

import (
	"context"
	"strings"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/internal/domain/repository"
	"github.com/genzlaundry/pos-api/pkg/apperror"
)

// SettingsService handles the shop identity printed on receipts and tags.
type SettingsService struct {
	configRepo repository.ShopConfigRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configRepo repository.ShopConfigRepository) *SettingsService {
	return &SettingsService{configRepo: configRepo}
}

// Get returns the saved shop configuration, falling back to defaults when
// nothing has been saved yet.
func (s *SettingsService) Get(ctx context.Context) (*entity.ShopConfig, error) {
	config, err := s.configRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return entity.DefaultShopConfig(), nil
	}
	return config, nil
}

// UpdateSettingsInput represents the input for updating the shop identity.
type UpdateSettingsInput struct {
	ShopName  string
	Address   string
	Contact   string
	GSTNumber string
}

// Update validates and persists the shop configuration.
func (s *SettingsService) Update(ctx context.Context, input *UpdateSettingsInput) (*entity.ShopConfig, error) {
	name := strings.TrimSpace(input.ShopName)
	if name == "" {
		return nil, apperror.NewFieldValidationError("shop_name", "Shop name is required")
	}

	config := &entity.ShopConfig{
		ShopName:  name,
		Address:   strings.TrimSpace(input.Address),
		Contact:   strings.TrimSpace(input.Contact),
		GSTNumber: strings.TrimSpace(input.GSTNumber),
	}
	if err := s.configRepo.Save(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}
