package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storelab/ecommerce-api/internal/application"
	"github.com/storelab/ecommerce-api/internal/domain/entity"
	"github.com/storelab/ecommerce-api/pkg/response"
	"github.com/storelab/ecommerce-api/pkg/validation"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

type createOrderRequest struct {
	Status      string  `json:"status" binding:"required"`
	TotalAmount float64 `json:"total_amount" binding:"required"`
	UserID      *string `json:"user_id"`
}

type updateOrderRequest struct {
	Status      *string  `json:"status"`
	TotalAmount *float64 `json:"total_amount"`
	UserID      *string  `json:"user_id"`
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Svc.Orders.List(c.Request.Context())
	if err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.Svc.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeErr(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	o := &entity.Order{
		Status:      req.Status,
		TotalAmount: req.TotalAmount,
		UserID:      req.UserID,
	}
	if err := h.Svc.CreateOrder(c.Request.Context(), o); err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) Update(c *gin.Context) {
	var req updateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	ctx := c.Request.Context()
	o, err := h.Svc.Orders.GetByID(ctx, c.Param("id"))
	if err != nil {
		storeErr(c, err, "Order not found")
		return
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.TotalAmount != nil {
		o.TotalAmount = *req.TotalAmount
	}
	if req.UserID != nil {
		o.UserID = req.UserID
	}
	if err := h.Svc.Orders.Update(ctx, o); err != nil {
		storeErr(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.Svc.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeErr(c, err, "Order not found")
		return
	}
	c.Status(http.StatusNoContent)
}
