package repository

import (
	"context"

	"skyhi-pos/internal/model"

	"gorm.io/gorm"
)

type MenuRepo struct {
	db *gorm.DB
}

func (r *MenuRepo) Create(ctx context.Context, m *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MenuRepo) GetByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var m model.MenuItem
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns the catalog ordered by category then name.
func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepo) Save(ctx context.Context, m *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MenuRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
