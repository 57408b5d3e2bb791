package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	"github.com/storelab/ecommerce-api/pkg/validation"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Init()
	os.Exit(m.Run())
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return m
}

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
