package service

import (
	"context"
	"errors"

	"skyhi-pos/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MenuItemInput struct {
	Name        string
	Category    model.Category
	PriceCents  int64
	CostCents   int64
	Description string
	Emoji       string
	Status      model.ItemStatus
}

// MenuItemPatch carries a partial update; nil fields are left untouched.
type MenuItemPatch struct {
	Name        *string
	Category    *model.Category
	PriceCents  *int64
	CostCents   *int64
	Description *string
	Emoji       *string
	Status      *model.ItemStatus
}

// MenuService is the staff-mutated, read-shared catalog. Listings go through
// a Redis cache that staff mutations invalidate.
type MenuService struct {
	menu  MenuRepo
	cache MenuCache
	log   *zap.Logger
}

func NewMenuService(menu MenuRepo, cache MenuCache, log *zap.Logger) *MenuService {
	return &MenuService{menu: menu, cache: cache, log: log}
}

// List returns the catalog ordered by category then name, served from cache
// when warm. Cache trouble degrades to a direct read.
func (s *MenuService) List(ctx context.Context) ([]model.MenuItem, error) {
	if items, ok, err := s.cache.Get(ctx); err != nil {
		s.log.Warn("menu cache read failed", zap.Error(err))
	} else if ok {
		return items, nil
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, items); err != nil {
		s.log.Warn("menu cache write failed", zap.Error(err))
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*model.MenuItem, error) {
	item, err := s.menu.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, in MenuItemInput) (*model.MenuItem, error) {
	if in.Name == "" {
		return nil, validationf("name", "required")
	}
	if !model.ValidCategory(in.Category) {
		return nil, validationf("category", "unknown category %q", in.Category)
	}
	if in.PriceCents < 0 || in.CostCents < 0 {
		return nil, validationf("price_cents", "price and cost must be >= 0")
	}
	if in.Status == "" {
		in.Status = model.ItemAvailable
	}
	if !model.ValidItemStatus(in.Status) {
		return nil, validationf("status", "unknown status %q", in.Status)
	}

	item := &model.MenuItem{
		Name:        in.Name,
		Category:    in.Category,
		PriceCents:  in.PriceCents,
		CostCents:   in.CostCents,
		Description: in.Description,
		Emoji:       in.Emoji,
		Status:      in.Status,
	}
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *MenuService) Update(ctx context.Context, id uint, patch MenuItemPatch) (*model.MenuItem, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, validationf("name", "must not be empty")
		}
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		if !model.ValidCategory(*patch.Category) {
			return nil, validationf("category", "unknown category %q", *patch.Category)
		}
		item.Category = *patch.Category
	}
	if patch.PriceCents != nil {
		if *patch.PriceCents < 0 {
			return nil, validationf("price_cents", "must be >= 0")
		}
		item.PriceCents = *patch.PriceCents
	}
	if patch.CostCents != nil {
		if *patch.CostCents < 0 {
			return nil, validationf("cost_cents", "must be >= 0")
		}
		item.CostCents = *patch.CostCents
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Emoji != nil {
		item.Emoji = *patch.Emoji
	}
	if patch.Status != nil {
		if !model.ValidItemStatus(*patch.Status) {
			return nil, validationf("status", "unknown status %q", *patch.Status)
		}
		item.Status = *patch.Status
	}

	if err := s.menu.Save(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.menu.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("menu cache invalidate failed", zap.Error(err))
	}
}
