package repository

import (
	"context"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// It is the credential store: the auth service never caches records across
// requests, every call goes back here.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id string) error
}
