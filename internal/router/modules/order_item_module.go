package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storelab/ecommerce-api/internal/container"
	handlers "github.com/storelab/ecommerce-api/internal/interface/http"
	"github.com/storelab/ecommerce-api/internal/interface/middleware"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

type OrderItemModule struct {
	Handler *handlers.OrderItemHandler
	JWT     *helpers.JWTManager
}

func NewOrderItemModule(h *handlers.OrderItemHandler, jwt *helpers.JWTManager) *OrderItemModule {
	return &OrderItemModule{Handler: h, JWT: jwt}
}

func (m *OrderItemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/order-items", m.Handler.List)
	rg.GET("/order-items/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/order-items", m.Handler.Create)
		auth.PUT("/order-items/:id", m.Handler.Update)
		auth.DELETE("/order-items/:id", m.Handler.Delete)
	}
}
