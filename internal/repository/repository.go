// Package repository provides the gorm-backed persistence layer. Each entity
// gets one repo over the shared *gorm.DB; not-found surfaces as
// gorm.ErrRecordNotFound and is translated by the service layer.
package repository

import "gorm.io/gorm"

type Repository struct {
	Users  *UserRepo
	Menu   *MenuRepo
	Orders *OrderRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		Users:  &UserRepo{db: db},
		Menu:   &MenuRepo{db: db},
		Orders: &OrderRepo{db: db},
	}
}
