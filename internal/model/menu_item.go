package model

import (
	"time"

	"gorm.io/gorm"
)

// Category is the closed set of menu sections.
type Category string

const (
	CategoryAppetizers Category = "Appetizers"
	CategoryMainCourse Category = "Main Course"
	CategoryDesserts   Category = "Desserts"
	CategoryBeverages  Category = "Beverages"
	CategorySalads     Category = "Salads"
)

// ValidCategory reports whether c is one of the known menu sections.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryAppetizers, CategoryMainCourse, CategoryDesserts, CategoryBeverages, CategorySalads:
		return true
	}
	return false
}

// ItemStatus is the availability flag staff toggle on a menu item.
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemUnavailable ItemStatus = "unavailable"
	ItemLowStock    ItemStatus = "low_stock"
)

// ValidItemStatus reports whether s is a known availability value.
func ValidItemStatus(s ItemStatus) bool {
	switch s {
	case ItemAvailable, ItemUnavailable, ItemLowStock:
		return true
	}
	return false
}

// MenuItem is a catalog entry. Prices are in cents.
// CostCents backs the profit report and is stripped from non-staff responses.
type MenuItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name        string     `gorm:"size:128;not null;index" json:"name"`
	Category    Category   `gorm:"size:32;not null;index" json:"category"`
	PriceCents  int64      `gorm:"not null" json:"price_cents"`
	CostCents   int64      `gorm:"not null;default:0" json:"cost_cents,omitempty"`
	Description string     `gorm:"size:512" json:"description,omitempty"`
	Emoji       string     `gorm:"size:16;default:'🍽️'" json:"emoji,omitempty"`
	Status      ItemStatus `gorm:"size:16;not null;default:'available'" json:"status"`
}

func (MenuItem) TableName() string { return "menu_items" }
