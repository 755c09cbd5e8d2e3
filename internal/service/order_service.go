package service

import (
	"context"
	"errors"

	"skyhi-pos/internal/model"
	"skyhi-pos/internal/qr"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreateOrderItem references a catalog item by id; name and price are
// snapshotted server-side.
type CreateOrderItem struct {
	MenuItemID uint
	Quantity   int
}

type CreateOrderInput struct {
	OrderType model.OrderType
	Tables    []int
	Items     []CreateOrderItem
}

// OrderService owns the order lifecycle: creation with snapshot pricing and
// QR binding, listing, fulfillment transitions and the deletion guard.
type OrderService struct {
	orders OrderRepo
	menu   MenuRepo
	qr     QREncoder

	transitions      TransitionTable
	allowUnavailable bool

	log        *zap.Logger
	newOrderNo func() string
}

func NewOrderService(orders OrderRepo, menu MenuRepo, encoder QREncoder, transitions TransitionTable, allowUnavailable bool, log *zap.Logger) *OrderService {
	return &OrderService{
		orders:           orders,
		menu:             menu,
		qr:               encoder,
		transitions:      transitions,
		allowUnavailable: allowUnavailable,
		log:              log,
		newOrderNo:       func() string { return uuid.New().String() },
	}
}

// Create validates and prices the request, computes the QR artifact, and
// persists order, items and artifact in one transaction. Any bad item
// reference fails the whole operation with nothing persisted.
func (s *OrderService) Create(ctx context.Context, user *model.User, in CreateOrderInput) (*model.Order, error) {
	switch in.OrderType {
	case model.OrderDineIn:
		if len(in.Tables) == 0 {
			return nil, validationf("tables", "at least one table number is required for dine-in")
		}
		for _, t := range in.Tables {
			if t <= 0 {
				return nil, validationf("tables", "table number must be positive, got %d", t)
			}
		}
	case model.OrderTakeaway:
		if len(in.Tables) != 0 {
			return nil, validationf("tables", "takeaway orders carry no table numbers")
		}
	default:
		return nil, validationf("order_type", "must be dine_in or takeaway")
	}
	if len(in.Items) == 0 {
		return nil, validationf("items", "at least one item is required")
	}

	lines := make([]model.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, validationf("items", "quantity must be >= 1")
		}
		mi, err := s.menu.GetByID(ctx, it.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationf("items", "menu item %d not found", it.MenuItemID)
			}
			return nil, err
		}
		if !s.allowUnavailable && mi.Status == model.ItemUnavailable {
			return nil, validationf("items", "menu item %q is unavailable", mi.Name)
		}
		lines = append(lines, model.OrderItem{
			MenuItemID:     mi.ID,
			Name:           mi.Name,
			UnitPriceCents: mi.PriceCents,
			Quantity:       it.Quantity,
		})
	}

	totals := ComputeTotals(lines)
	orderNo := s.newOrderNo()

	// The artifact depends only on data known before the first write, so it
	// is computed up front and persisted with the order in one transaction.
	// An order never exists without its QR code.
	image, payload, err := s.qr.Encode(qr.Payload{
		OrderNo:    orderNo,
		TotalCents: totals.TotalCents,
		OrderType:  string(in.OrderType),
		Tables:     in.Tables,
	})
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		OrderNo:       orderNo,
		UserID:        user.ID,
		OrderType:     in.OrderType,
		Tables:        in.Tables,
		Items:         lines,
		SubtotalCents: totals.SubtotalCents,
		TaxCents:      totals.TaxCents,
		TotalCents:    totals.TotalCents,
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentPending,
		QRCode:        image,
		QRData:        payload,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	s.log.Info("order created",
		zap.Uint("order_id", order.ID),
		zap.String("order_no", order.OrderNo),
		zap.Uint("user_id", user.ID),
		zap.Int64("total_cents", order.TotalCents))
	return order, nil
}

// Get returns a single order, visible to its owner and to admins.
func (s *OrderService) Get(ctx context.Context, user *model.User, id uint) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != user.ID && !user.IsAdmin() {
		return nil, ErrForbidden
	}
	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, userID uint) ([]model.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ListAll returns every order, newest first. Admin only; the router gates it.
func (s *OrderService) ListAll(ctx context.Context) ([]model.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus sets the fulfillment status. The value must be one of the five
// enumerated states; the configured transition table then decides whether the
// move is legal (the default table accepts everything).
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, validationf("status", "unknown status %q", status)
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !s.transitions.Allowed(order.Status, status) {
		return nil, ErrTransitionDenied
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	s.log.Info("order status updated",
		zap.Uint("order_id", id),
		zap.String("status", string(status)))
	return order, nil
}

// Delete removes an order while it is still pending or cancelled.
// Only the owner or an admin may delete.
func (s *OrderService) Delete(ctx context.Context, user *model.User, id uint) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if order.UserID != user.ID && !user.IsAdmin() {
		return ErrForbidden
	}
	if !order.Deletable() {
		return ErrNotDeletable
	}
	return s.orders.Delete(ctx, id)
}
