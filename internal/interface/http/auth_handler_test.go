package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storelab/ecommerce-api/internal/application"
	"github.com/storelab/ecommerce-api/internal/domain/entity"
	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

func authRouter(users repo.UserRepository) *gin.Engine {
	svc := application.NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), nil)
	h := NewAuthHandler(svc, nil)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	users := new(mockUserRepo)
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*entity.User)
		u.ID = "user-1"
		u.CreatedAt = time.Now()
		u.UpdatedAt = u.CreatedAt
	}).Return(nil)

	r := authRouter(users)
	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"full_name": "Jane Doe",
		"email":     "jane@example.com",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "user-1", body["id"])
	assert.Equal(t, "jane@example.com", body["email"])
	assert.Equal(t, "Jane Doe", body["full_name"])
	// the stored digest comes back, never the plaintext
	assert.NotEqual(t, "secret123", body["password"])
	assert.NotEmpty(t, body["password"])
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	users := new(mockUserRepo)
	r := authRouter(users)

	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{"email": "jane@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body, "error")

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_StoreFailure(t *testing.T) {
	users := new(mockUserRepo)
	users.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	r := authRouter(users)
	w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
		"full_name": "Jane Doe",
		"email":     "jane@example.com",
		"password":  "secret123",
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestAuthHandler_Login(t *testing.T) {
	hash, err := helpers.HashPassword("secret123")
	require.NoError(t, err)
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(&entity.User{
		ID: "user-1", FullName: "Jane Doe", Email: "jane@example.com", Password: hash,
	}, nil)

	r := authRouter(users)
	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "jane@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])
	assert.Len(t, body, 1, "login success body is exactly {token}")
}

// Wrong password and unknown email must produce byte-identical responses.
func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	hash, err := helpers.HashPassword("secret123")
	require.NoError(t, err)
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(&entity.User{
		ID: "user-1", Email: "jane@example.com", Password: hash,
	}, nil)
	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repo.ErrNotFound)

	r := authRouter(users)
	wWrongPw := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	wUnknown := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusUnauthorized, wWrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.JSONEq(t, `{"message":"invalid credentials"}`, wWrongPw.Body.String())
	assert.Equal(t, wWrongPw.Body.String(), wUnknown.Body.String())
}
