package service

import (
	"context"

	"skyhi-pos/internal/model"
	"skyhi-pos/internal/qr"
)

// Repositories are declared here, on the consuming side; the gorm
// implementations live in internal/repository. Not-found is reported as
// gorm.ErrRecordNotFound and translated to the service error set.

type UserRepo interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Save(ctx context.Context, u *model.User) error
	List(ctx context.Context) ([]model.User, error)
}

type MenuRepo interface {
	Create(ctx context.Context, m *model.MenuItem) error
	GetByID(ctx context.Context, id uint) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	Save(ctx context.Context, m *model.MenuItem) error
	Delete(ctx context.Context, id uint) error
}

type OrderRepo interface {
	// Create persists the order together with its line items and QR
	// artifact in one transaction.
	Create(ctx context.Context, o *model.Order) error
	GetByID(ctx context.Context, id uint) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListByPaymentStatus(ctx context.Context, ps model.PaymentStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id uint, s model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uint, ps model.PaymentStatus) error
	SetPaymentIntent(ctx context.Context, id uint, intentID string) error
	Delete(ctx context.Context, id uint) error
}

// QREncoder renders the payment handoff artifact. Pure function of the
// payload; called exactly once per order.
type QREncoder interface {
	Encode(p qr.Payload) (dataURL string, payloadJSON string, err error)
}

// MenuCache is the read-through cache in front of the menu listing.
type MenuCache interface {
	Get(ctx context.Context) ([]model.MenuItem, bool, error)
	Set(ctx context.Context, items []model.MenuItem) error
	Invalidate(ctx context.Context) error
}
