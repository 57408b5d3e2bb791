package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storelab/ecommerce-api/internal/container"
	handlers "github.com/storelab/ecommerce-api/internal/interface/http"
	"github.com/storelab/ecommerce-api/internal/interface/middleware"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

// ProductModule wires product CRUD plus search and image upload
// Public: GET /api/products, GET /api/products/:id, GET /api/products/search
// Protected: POST/PUT/DELETE /api/products, POST /api/products/:id/image

type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.GET("/products", m.Handler.List)
	rg.GET("/products/search", searchLimiter, m.Handler.Search)
	rg.GET("/products/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/products", m.Handler.Create)
		auth.PUT("/products/:id", m.Handler.Update)
		auth.DELETE("/products/:id", m.Handler.Delete)
		auth.POST("/products/:id/image", m.Handler.UploadImage)
	}
}
