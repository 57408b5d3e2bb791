package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if us := args.Get(0); us != nil {
		return us.([]entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, o *entity.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	if os := args.Get(0); os != nil {
		return os.([]entity.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, o *entity.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderItemRepo struct{ mock.Mock }

func (m *mockOrderItemRepo) Create(ctx context.Context, it *entity.OrderItem) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockOrderItemRepo) GetByID(ctx context.Context, id string) (*entity.OrderItem, error) {
	args := m.Called(ctx, id)
	if it := args.Get(0); it != nil {
		return it.(*entity.OrderItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderItemRepo) List(ctx context.Context) ([]entity.OrderItem, error) {
	args := m.Called(ctx)
	if its := args.Get(0); its != nil {
		return its.([]entity.OrderItem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderItemRepo) Update(ctx context.Context, it *entity.OrderItem) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockOrderItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
