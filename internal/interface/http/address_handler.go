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

type AddressHandler struct {
	Repo   repo.AddressRepository
	Logger *logrus.Logger
}

func NewAddressHandler(r repo.AddressRepository, logger *logrus.Logger) *AddressHandler {
	return &AddressHandler{Repo: r, Logger: logger}
}

type createAddressRequest struct {
	Street  string  `json:"street" binding:"required"`
	Number  string  `json:"number"`
	City    string  `json:"city" binding:"required"`
	State   string  `json:"state" binding:"required"`
	ZipCode string  `json:"zip_code" binding:"required"`
	Country string  `json:"country"`
	UserID  *string `json:"user_id"`
}

type updateAddressRequest struct {
	Street  *string `json:"street"`
	Number  *string `json:"number"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
	UserID  *string `json:"user_id"`
}

func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.Repo.List(c.Request.Context())
	if err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) Get(c *gin.Context) {
	a, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeErr(c, err, "Address not found")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AddressHandler) Create(c *gin.Context) {
	var req createAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	a := &entity.Address{
		Street:  req.Street,
		Number:  req.Number,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Country: req.Country,
		UserID:  req.UserID,
	}
	if err := h.Repo.Create(c.Request.Context(), a); err != nil {
		response.Err(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AddressHandler) Update(c *gin.Context) {
	var req updateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Err(c, http.StatusBadRequest, validation.ToMessage(err))
		return
	}
	ctx := c.Request.Context()
	a, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		storeErr(c, err, "Address not found")
		return
	}
	if req.Street != nil {
		a.Street = *req.Street
	}
	if req.Number != nil {
		a.Number = *req.Number
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.State != nil {
		a.State = *req.State
	}
	if req.ZipCode != nil {
		a.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		a.Country = *req.Country
	}
	if req.UserID != nil {
		a.UserID = req.UserID
	}
	if err := h.Repo.Update(ctx, a); err != nil {
		storeErr(c, err, "Address not found")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AddressHandler) Delete(c *gin.Context) {
	if err := h.Repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeErr(c, err, "Address not found")
		return
	}
	c.Status(http.StatusNoContent)
}
