package model

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the kitchen-side progress of an order,
// independent of payment.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five fulfillment values.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks settlement, driven only by gateway answers.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// OrderType is the fulfillment target kind.
type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
)

// Order is the central aggregate: snapshot line items, totals computed once
// at creation, both status axes and the QR payment handoff artifact.
type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OrderNo string `gorm:"size:64;uniqueIndex;not null" json:"order_no"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`

	OrderType OrderType `gorm:"size:16;not null" json:"order_type"`
	Tables    []int     `gorm:"serializer:json" json:"tables,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	SubtotalCents int64 `gorm:"not null" json:"subtotal_cents"`
	TaxCents      int64 `gorm:"not null" json:"tax_cents"`
	TotalCents    int64 `gorm:"not null" json:"total_cents"`

	Status        OrderStatus   `gorm:"size:16;not null;default:'pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:16;not null;default:'pending';index" json:"payment_status"`

	PaymentIntentID string `gorm:"size:128" json:"payment_intent_id,omitempty"`

	// QRCode is a PNG data URL; QRData is the structured payload it encodes.
	QRCode string `gorm:"type:text" json:"qr_code,omitempty"`
	QRData string `gorm:"size:512" json:"qr_data,omitempty"`
}

func (Order) TableName() string { return "orders" }

// Deletable reports whether the order may still be removed.
func (o *Order) Deletable() bool {
	return o.Status == OrderPending || o.Status == OrderCancelled
}

// OrderItem is a priced snapshot of a menu item at order time.
// Later catalog edits never touch these rows.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	OrderID        uint   `gorm:"not null;index" json:"-"`
	MenuItemID     uint   `gorm:"not null;index" json:"menu_item_id"`
	Name           string `gorm:"size:128;not null" json:"name"`
	UnitPriceCents int64  `gorm:"not null" json:"unit_price_cents"`
	Quantity       int    `gorm:"not null" json:"quantity"`
}

func (OrderItem) TableName() string { return "order_items" }
