package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"skyhi-pos/internal/model"
	"skyhi-pos/internal/payment"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PaymentService drives the payment leg of the order lifecycle. Payment
// status only ever changes in response to a gateway answer; client-supplied
// state is never trusted.
type PaymentService struct {
	orders   OrderRepo
	gateway  payment.Gateway
	currency string
	log      *zap.Logger
}

func NewPaymentService(orders OrderRepo, gateway payment.Gateway, currency string, log *zap.Logger) *PaymentService {
	return &PaymentService{
		orders:   orders,
		gateway:  gateway,
		currency: currency,
		log:      log,
	}
}

func (s *PaymentService) ownedOrder(ctx context.Context, user *model.User, orderID uint) (*model.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != user.ID {
		return nil, ErrForbidden
	}
	return order, nil
}

// CreateIntent opens a payment attempt for the order total. A second call
// after a successful settlement is rejected rather than returning the old
// intent.
func (s *PaymentService) CreateIntent(ctx context.Context, user *model.User, orderID uint) (*payment.Intent, error) {
	order, err := s.ownedOrder(ctx, user, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus == model.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	intent, err := s.gateway.CreateIntent(ctx, order.TotalCents, s.currency, map[string]string{
		"order_no": order.OrderNo,
		"order_id": strconv.FormatUint(uint64(order.ID), 10),
		"user_id":  strconv.FormatUint(uint64(user.ID), 10),
	})
	if err != nil {
		s.log.Error("create payment intent failed", zap.Uint("order_id", order.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if err := s.orders.SetPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		return nil, err
	}
	s.log.Info("payment intent created",
		zap.Uint("order_id", order.ID),
		zap.String("intent_id", intent.ID))
	return intent, nil
}

// Confirm pulls the settlement state from the gateway and records the
// outcome: succeeded marks the order paid, any other terminal answer marks
// it failed. The supplied intent id must be the one stored on the order.
func (s *PaymentService) Confirm(ctx context.Context, user *model.User, orderID uint, intentID string) (*model.Order, string, error) {
	if intentID == "" {
		return nil, "", validationf("paymentIntentId", "required")
	}
	order, err := s.ownedOrder(ctx, user, orderID)
	if err != nil {
		return nil, "", err
	}
	if order.PaymentIntentID == "" || order.PaymentIntentID != intentID {
		return nil, "", ErrIntentMismatch
	}

	status, err := s.gateway.RetrieveIntent(ctx, intentID)
	if err != nil {
		s.log.Error("retrieve payment intent failed", zap.Uint("order_id", order.ID), zap.Error(err))
		return nil, "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	ps := model.PaymentFailed
	if status == payment.StatusSucceeded {
		ps = model.PaymentPaid
	}
	if err := s.orders.UpdatePaymentStatus(ctx, order.ID, ps); err != nil {
		return nil, "", err
	}
	order.PaymentStatus = ps
	s.log.Info("payment confirmed",
		zap.Uint("order_id", order.ID),
		zap.String("gateway_status", status),
		zap.String("payment_status", string(ps)))
	return order, status, nil
}

// Status reports the order's payment status, opportunistically reconciling
// pending→paid against the gateway when an intent exists. Gateway errors are
// logged and swallowed; the stored status is still returned.
func (s *PaymentService) Status(ctx context.Context, user *model.User, orderID uint) (model.PaymentStatus, error) {
	order, err := s.ownedOrder(ctx, user, orderID)
	if err != nil {
		return "", err
	}
	if order.PaymentIntentID == "" || order.PaymentStatus == model.PaymentPaid {
		return order.PaymentStatus, nil
	}

	status, err := s.gateway.RetrieveIntent(ctx, order.PaymentIntentID)
	if err != nil {
		s.log.Warn("payment status reconcile failed", zap.Uint("order_id", order.ID), zap.Error(err))
		return order.PaymentStatus, nil
	}
	if status == payment.StatusSucceeded {
		if err := s.orders.UpdatePaymentStatus(ctx, order.ID, model.PaymentPaid); err != nil {
			return "", err
		}
		s.log.Info("payment reconciled to paid", zap.Uint("order_id", order.ID))
		return model.PaymentPaid, nil
	}
	return order.PaymentStatus, nil
}
