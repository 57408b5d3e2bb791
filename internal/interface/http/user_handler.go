package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/helpers"
	"github.com/storelab/ecommerce-api/pkg/response"
	"github.com/storelab/ecommerce-api/pkg/validation"
)

type UserHandler struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserHandler(r repo.UserRepository, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Repo: r, Logger: logger}
}

type updateUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Repo.List(c.Request.Context())
	if err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeErr(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	ctx := c.Request.Context()
	u, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		storeErr(c, err, "User not found")
		return
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Password != nil {
		// A new password arrives in plaintext and goes to the store hashed.
		hash, err := helpers.HashPassword(*req.Password)
		if err != nil {
			response.Err(c, http.StatusInternalServerError, err.Error())
			return
		}
		u.Password = hash
	}
	if err := h.Repo.Update(ctx, u); err != nil {
		storeErr(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeErr(c, err, "User not found")
		return
	}
	c.Status(http.StatusNoContent)
}
