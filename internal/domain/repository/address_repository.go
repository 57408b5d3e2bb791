package repository

import (
	"context"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
)

type AddressRepository interface {
	Create(ctx context.Context, a *entity.Address) error
	GetByID(ctx context.Context, id string) (*entity.Address, error)
	List(ctx context.Context) ([]entity.Address, error)
	Update(ctx context.Context, a *entity.Address) error
	Delete(ctx context.Context, id string) error
}
