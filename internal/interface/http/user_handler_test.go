package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

func userRouter(users repo.UserRepository) *gin.Engine {
	h := NewUserHandler(users, nil)
	r := gin.New()
	r.GET("/api/users", h.List)
	r.GET("/api/users/:id", h.Get)
	r.PUT("/api/users/:id", h.Update)
	r.DELETE("/api/users/:id", h.Delete)
	return r
}

func TestUserHandler_List(t *testing.T) {
	users := new(mockUserRepo)
	users.On("List", mock.Anything).Return([]entity.User{
		{ID: "u1", FullName: "A", Email: "a@example.com"},
		{ID: "u2", FullName: "B", Email: "b@example.com"},
	}, nil)

	w := doJSON(userRouter(users), http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []entity.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "u2", got[1].ID)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "missing").Return(nil, repo.ErrNotFound)

	w := doJSON(userRouter(users), http.MethodGet, "/api/users/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
}

func TestUserHandler_Update_RehashesPassword(t *testing.T) {
	stored := &entity.User{
		ID: "user-1", FullName: "Jane Doe", Email: "jane@example.com",
		Password: "old-digest", CreatedAt: time.Now(),
	}
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "user-1").Return(stored, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return helpers.CompareHashAndPassword(u.Password, "new-secret")
	})).Return(nil)

	w := doJSON(userRouter(users), http.MethodPut, "/api/users/user-1", gin.H{"password": "new-secret"})
	require.Equal(t, http.StatusOK, w.Code)
	users.AssertExpectations(t)
}

func TestUserHandler_Update_PartialFields(t *testing.T) {
	stored := &entity.User{ID: "user-1", FullName: "Jane Doe", Email: "jane@example.com", Password: "digest"}
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, "user-1").Return(stored, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		// untouched fields survive the merge
		return u.FullName == "Janet Doe" && u.Email == "jane@example.com" && u.Password == "digest"
	})).Return(nil)

	w := doJSON(userRouter(users), http.MethodPut, "/api/users/user-1", gin.H{"full_name": "Janet Doe"})
	require.Equal(t, http.StatusOK, w.Code)
	users.AssertExpectations(t)
}

func TestUserHandler_Delete(t *testing.T) {
	users := new(mockUserRepo)
	users.On("Delete", mock.Anything, "user-1").Return(nil)
	users.On("Delete", mock.Anything, "missing").Return(repo.ErrNotFound)

	r := userRouter(users)

	w := doJSON(r, http.MethodDelete, "/api/users/user-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(r, http.MethodDelete, "/api/users/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, w.Body.String())
}
