package service

import (
	"context"

	"skyhi-pos/internal/model"
	"skyhi-pos/internal/payment"
	"skyhi-pos/internal/qr"

	"gorm.io/gorm"
)

// Function-field mocks for the service ports. A nil field means "succeed and
// return zero values".

type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, u *model.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*model.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	SaveFunc       func(ctx context.Context, u *model.User) error
	ListFunc       func(ctx context.Context) ([]model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Save(ctx context.Context, u *model.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockMenuRepo struct {
	CreateFunc  func(ctx context.Context, mi *model.MenuItem) error
	GetByIDFunc func(ctx context.Context, id uint) (*model.MenuItem, error)
	ListFunc    func(ctx context.Context) ([]model.MenuItem, error)
	SaveFunc    func(ctx context.Context, mi *model.MenuItem) error
	DeleteFunc  func(ctx context.Context, id uint) error
}

func (m *mockMenuRepo) Create(ctx context.Context, mi *model.MenuItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, mi)
	}
	return nil
}

func (m *mockMenuRepo) GetByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMenuRepo) Save(ctx context.Context, mi *model.MenuItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, mi)
	}
	return nil
}

func (m *mockMenuRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockOrderRepo struct {
	CreateFunc              func(ctx context.Context, o *model.Order) error
	GetByIDFunc             func(ctx context.Context, id uint) (*model.Order, error)
	ListByUserFunc          func(ctx context.Context, userID uint) ([]model.Order, error)
	ListAllFunc             func(ctx context.Context) ([]model.Order, error)
	ListByPaymentStatusFunc func(ctx context.Context, ps model.PaymentStatus) ([]model.Order, error)
	UpdateStatusFunc        func(ctx context.Context, id uint, s model.OrderStatus) error
	UpdatePaymentStatusFunc func(ctx context.Context, id uint, ps model.PaymentStatus) error
	SetPaymentIntentFunc    func(ctx context.Context, id uint, intentID string) error
	DeleteFunc              func(ctx context.Context, id uint) error
}

func (m *mockOrderRepo) Create(ctx context.Context, o *model.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uint) (*model.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID uint) ([]model.Order, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockOrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockOrderRepo) ListByPaymentStatus(ctx context.Context, ps model.PaymentStatus) ([]model.Order, error) {
	if m.ListByPaymentStatusFunc != nil {
		return m.ListByPaymentStatusFunc(ctx, ps)
	}
	return nil, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uint, s model.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, s)
	}
	return nil
}

func (m *mockOrderRepo) UpdatePaymentStatus(ctx context.Context, id uint, ps model.PaymentStatus) error {
	if m.UpdatePaymentStatusFunc != nil {
		return m.UpdatePaymentStatusFunc(ctx, id, ps)
	}
	return nil
}

func (m *mockOrderRepo) SetPaymentIntent(ctx context.Context, id uint, intentID string) error {
	if m.SetPaymentIntentFunc != nil {
		return m.SetPaymentIntentFunc(ctx, id, intentID)
	}
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockQREncoder struct {
	EncodeFunc func(p qr.Payload) (string, string, error)
	Calls      []qr.Payload
}

func (m *mockQREncoder) Encode(p qr.Payload) (string, string, error) {
	m.Calls = append(m.Calls, p)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(p)
	}
	return "data:image/png;base64,ZmFrZQ==", `{"fake":true}`, nil
}

type mockGateway struct {
	CreateIntentFunc   func(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*payment.Intent, error)
	RetrieveIntentFunc func(ctx context.Context, id string) (string, error)
}

func (m *mockGateway) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (*payment.Intent, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, amountCents, currency, metadata)
	}
	return &payment.Intent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

func (m *mockGateway) RetrieveIntent(ctx context.Context, id string) (string, error) {
	if m.RetrieveIntentFunc != nil {
		return m.RetrieveIntentFunc(ctx, id)
	}
	return payment.StatusSucceeded, nil
}

type mockMenuCache struct {
	GetFunc        func(ctx context.Context) ([]model.MenuItem, bool, error)
	SetFunc        func(ctx context.Context, items []model.MenuItem) error
	InvalidateFunc func(ctx context.Context) error
	Invalidations  int
}

func (m *mockMenuCache) Get(ctx context.Context) ([]model.MenuItem, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, false, nil
}

func (m *mockMenuCache) Set(ctx context.Context, items []model.MenuItem) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, items)
	}
	return nil
}

func (m *mockMenuCache) Invalidate(ctx context.Context) error {
	m.Invalidations++
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}
