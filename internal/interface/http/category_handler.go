package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/response"
	"github.com/storelab/ecommerce-api/pkg/validation"
)

type CategoryHandler struct {
	Repo   repo.CategoryRepository
	Logger *logrus.Logger
}

func NewCategoryHandler(r repo.CategoryRepository, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Repo: r, Logger: logger}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Repo.List(c.Request.Context())
	if err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	cat, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeErr(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	cat := &entity.Category{Name: req.Name}
	if err := h.Repo.Create(c.Request.Context(), cat); err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	ctx := c.Request.Context()
	cat, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		storeErr(c, err, "Category not found")
		return
	}
	cat.Name = req.Name
	if err := h.Repo.Update(ctx, cat); err != nil {
		storeErr(c, err, "Category not found")
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeErr(c, err, "Category not found")
		return
	}
	c.Status(http.StatusNoContent)
}
