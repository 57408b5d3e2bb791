package repository

import (
	"context"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	Update(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, id string) error
}

type OrderItemRepository interface {
	Create(ctx context.Context, it *entity.OrderItem) error
	GetByID(ctx context.Context, id string) (*entity.OrderItem, error)
	List(ctx context.Context) ([]entity.OrderItem, error)
	Update(ctx context.Context, it *entity.OrderItem) error
	Delete(ctx context.Context, id string) error
}
