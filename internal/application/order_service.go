package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/helpers"
	"github.com/storelab/ecommerce-api/pkg/mailer"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
)

// OrderService handles orders and their line items. Creating an order for a
// known user enqueues a confirmation email; the queue publish is best-effort
// and never fails the order.
type OrderService struct {
	Orders repo.OrderRepository
	Items  repo.OrderItemRepository
	Users  repo.UserRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewOrderService(orders repo.OrderRepository, items repo.OrderItemRepository, users repo.UserRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *OrderService {
	return &OrderService{Orders: orders, Items: items, Users: users, Pub: pub, Logger: logger}
}

func (s *OrderService) CreateOrder(ctx context.Context, o *entity.Order) error {
	if err := s.Orders.Create(ctx, o); err != nil {
		return err
	}
	s.enqueueConfirmation(ctx, o)
	return nil
}

func (s *OrderService) enqueueConfirmation(ctx context.Context, o *entity.Order) {
	if s.Pub == nil || o.UserID == nil {
		return
	}
	u, err := s.Users.GetByID(ctx, *o.UserID)
	if err != nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "order_confirmation",
		Data: map[string]any{
			"Name":    u.FullName,
			"OrderID": o.ID,
			"Status":  o.Status,
			"Total":   o.TotalAmount,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("order_id", o.ID).Warn("failed to enqueue confirmation email")
	}
}

// ValidateItem enforces the positive quantity/price contract on order items.
func ValidateItem(quantity int, price float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func (s *OrderService) CreateItem(ctx context.Context, it *entity.OrderItem) error {
	if err := ValidateItem(it.Quantity, it.Price); err != nil {
		return err
	}
	return s.Items.Create(ctx, it)
}

func (s *OrderService) UpdateItem(ctx context.Context, it *entity.OrderItem) error {
	if err := ValidateItem(it.Quantity, it.Price); err != nil {
		return err
	}
	return s.Items.Update(ctx, it)
}
