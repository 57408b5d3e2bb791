package router

import (
	"github.com/storelab/ecommerce-api/internal/application"
	"github.com/storelab/ecommerce-api/internal/container"
	"github.com/storelab/ecommerce-api/internal/infrastructure/postgres"
	handlers "github.com/storelab/ecommerce-api/internal/interface/http"
	"github.com/storelab/ecommerce-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	userRepo := postgres.NewUserRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	orderItemRepo := postgres.NewOrderItemRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	catalogSvc := application.NewCatalogService(
		productRepo,
		container.GetRedis(),
		container.GetES(),
		cfg.ESProductsIndex,
		container.GetGCS(),
		cfg.GCSBucket,
		logger,
	)
	orderSvc := application.NewOrderService(orderRepo, orderItemRepo, userRepo, container.GetRabbitPub(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userRepo, logger), container.GetJWT()))
	r.Add(modules.NewAddressModule(handlers.NewAddressHandler(addressRepo, logger), container.GetJWT()))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categoryRepo, logger), container.GetJWT()))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(catalogSvc, logger), container.GetJWT()))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger), container.GetJWT()))
	r.Add(modules.NewOrderItemModule(handlers.NewOrderItemHandler(orderSvc, logger), container.GetJWT()))
	r.Add(modules.NewDebugModule())
}
