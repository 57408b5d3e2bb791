package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storelab/ecommerce-api/internal/application"
	"github.com/storelab/ecommerce-api/internal/domain/entity"
	"github.com/storelab/ecommerce-api/pkg/response"
	"github.com/storelab/ecommerce-api/pkg/validation"
)

type OrderItemHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderItemHandler(svc *application.OrderService, logger *logrus.Logger) *OrderItemHandler {
	return &OrderItemHandler{Svc: svc, Logger: logger}
}

type createOrderItemRequest struct {
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
	OrderID   string  `json:"order_id" binding:"required"`
	ProductID string  `json:"product_id" binding:"required"`
}

type updateOrderItemRequest struct {
	Quantity  *int     `json:"quantity"`
	Price     *float64 `json:"price"`
	OrderID   *string  `json:"order_id"`
	ProductID *string  `json:"product_id"`
}

func itemErr(c *gin.Context, err error) bool {
	if errors.Is(err, application.ErrInvalidQuantity) || errors.Is(err, application.ErrInvalidPrice) {
		response.Err(c, http.StatusBadRequest, err.Error())
		return true
	}
	return false
}

func (h *OrderItemHandler) List(c *gin.Context) {
	items, err := h.Svc.Items.List(c.Request.Context())
	if err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) Get(c *gin.Context) {
	it, err := h.Svc.Items.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeErr(c, err, "Order item not found")
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *OrderItemHandler) Create(c *gin.Context) {
	var req createOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	it := &entity.OrderItem{
		Quantity:  req.Quantity,
		Price:     req.Price,
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
	}
	if err := h.Svc.CreateItem(c.Request.Context(), it); err != nil {
		if itemErr(c, err) {
			return
		}
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, it)
}

func (h *OrderItemHandler) Update(c *gin.Context) {
	var req updateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	ctx := c.Request.Context()
	it, err := h.Svc.Items.GetByID(ctx, c.Param("id"))
	if err != nil {
		storeErr(c, err, "Order item not found")
		return
	}
	if req.Quantity != nil {
		it.Quantity = *req.Quantity
	}
	if req.Price != nil {
		it.Price = *req.Price
	}
	if req.OrderID != nil {
		it.OrderID = *req.OrderID
	}
	if req.ProductID != nil {
		it.ProductID = *req.ProductID
	}
	if err := h.Svc.UpdateItem(ctx, it); err != nil {
		if itemErr(c, err) {
			return
		}
		storeErr(c, err, "Order item not found")
		return
	}
	c.JSON(http.StatusOK, it)
}

func (h *OrderItemHandler) Delete(c *gin.Context) {
	if err := h.Svc.Items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeErr(c, err, "Order item not found")
		return
	}
	c.Status(http.StatusNoContent)
}
