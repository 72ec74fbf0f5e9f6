package router

import (
	"context"
	"net/http"

	"farmstand/apps/gateway/handlers/cart"
	"farmstand/apps/gateway/handlers/checkout"
	"farmstand/apps/gateway/handlers/middleware"
	"farmstand/apps/gateway/handlers/order"
	"farmstand/apps/gateway/handlers/product"
	"farmstand/apps/gateway/handlers/review"
	"farmstand/apps/gateway/handlers/session"
	"farmstand/apps/gateway/handlers/user"
	"farmstand/internal/structs"
	"farmstand/pkg/config"
	"farmstand/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Session   session.Handler
	User      user.Handler
	Product   product.Handler
	Cart      cart.Handler
	Checkout  checkout.Handler
	Order     order.Handler
	Review    review.Handler
}

func NewRouter(params Params) {
	r := gin.New()
	baseUrl := "/api/v1"

	out := r.Group(baseUrl)
	out.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	auth := r.Group(baseUrl)
	auth.Use(params.Ctx(), gin.Logger(), gin.Recovery())
	auth.Use(params.CheckAuth())

	sessionGroup := out.Group("/session")
	{
		sessionGroup.POST("/login", params.Session.Login)
		sessionGroup.POST("/register", params.Session.Register)
		auth.POST("/session/logout", params.Session.Logout)
		auth.GET("/session/me", params.Session.GetMe)
	}

	productGroup := out.Group("/products")
	{
		productGroup.GET("/", params.Product.GetListProduct)
		productGroup.GET("/:id", params.Product.GetByIDProduct)
	}
	farmerProducts := auth.Group("/products")
	farmerProducts.Use(params.RequireRole(structs.RoleFarmer))
	{
		farmerProducts.POST("/", params.Product.CreateProduct)
		farmerProducts.POST("/image", params.Product.UploadImage)
		farmerProducts.PUT("/:id", params.Product.PatchProduct)
		farmerProducts.DELETE("/:id", params.Product.DeleteProduct)
	}

	cartGroup := auth.Group("/cart")
	{
		cartGroup.GET("/", params.Cart.GetCart)
		cartGroup.GET("/by-farmer", params.Cart.GetByFarmer)
		cartGroup.POST("/items", params.Cart.AddItem)
		cartGroup.PATCH("/items/:productId", params.Cart.PatchItem)
		cartGroup.DELETE("/items/:productId", params.Cart.DeleteItem)
		cartGroup.DELETE("/", params.Cart.ClearCart)
	}

	// role precondition is re-checked inside the orchestrator; the route
	// gate just keeps obvious misuse out
	auth.POST("/checkout", params.RequireRole(structs.RoleCustomer), params.Checkout.PlaceOrder)

	orderGroup := auth.Group("/orders")
	{
		orderGroup.GET("/my", params.RequireRole(structs.RoleCustomer), params.Order.GetMyOrders)
		orderGroup.GET("/farmer", params.RequireRole(structs.RoleFarmer), params.Order.GetFarmerOrders)
		orderGroup.PUT("/:id/status", params.RequireRole(structs.RoleFarmer), params.Order.UpdateStatusOrder)
	}

	reviewGroup := out.Group("/reviews")
	{
		reviewGroup.GET("/:productId", params.Review.GetByProduct)
		auth.POST("/reviews", params.RequireRole(structs.RoleCustomer), params.Review.CreateReview)
	}

	adminGroup := auth.Group("/users")
	adminGroup.Use(params.RequireRole(structs.RoleAdmin))
	{
		adminGroup.GET("/", params.User.GetListUser)
		adminGroup.PUT("/:id/role", params.User.UpdateUserRole)
		adminGroup.PUT("/:id/promote", params.User.PromoteAdmin)
		adminGroup.DELETE("/:id", params.User.DeleteUser)
	}

	allowedOrigins := params.Config.GetStringSlice("cors.allowed_origins")
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173"}
	}

	server := http.Server{
		Addr: params.Config.GetString("server.port"),
		Handler: cors.New(cors.Options{
			AllowedHeaders:   []string{"*"},
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
			AllowCredentials: true,
		}).Handler(r),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
