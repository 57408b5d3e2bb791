package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storelab/ecommerce-api/internal/container"
	handlers "github.com/storelab/ecommerce-api/internal/interface/http"
	"github.com/storelab/ecommerce-api/internal/interface/middleware"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

type AddressModule struct {
	Handler *handlers.AddressHandler
	JWT     *helpers.JWTManager
}

func NewAddressModule(h *handlers.AddressHandler, jwt *helpers.JWTManager) *AddressModule {
	return &AddressModule{Handler: h, JWT: jwt}
}

func (m *AddressModule) Register(rg *gin.RouterGroup) {
	rg.GET("/addresses", m.Handler.List)
	rg.GET("/addresses/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/addresses", m.Handler.Create)
		auth.PUT("/addresses/:id", m.Handler.Update)
		auth.DELETE("/addresses/:id", m.Handler.Delete)
	}
}
