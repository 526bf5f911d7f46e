package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/stayhub/backend/internal/infrastructure/auth"
	applogger "github.com/stayhub/backend/internal/infrastructure/logger"
	"github.com/stayhub/backend/internal/interfaces/http/dto"
	"github.com/stayhub/backend/internal/interfaces/http/handler"
	"github.com/stayhub/backend/internal/interfaces/http/middleware"
)

// maxBodyBytes caps request bodies. Document uploads are the largest
// accepted payload.
const maxBodyBytes = 12 << 20

// Config carries everything the router needs to wire the API
type Config struct {
	Logger      *zap.Logger
	JWTManager  *auth.JWTManager
	ServiceName string
	// TracingEnabled attaches the otelgin middleware
	TracingEnabled bool
	CORS           middleware.CORSConfig

	System          *handler.SystemHandler
	Auth            *handler.AuthHandler
	Profile         *handler.ProfileHandler
	Inventory       *handler.InventoryHandler
	Bookings        *handler.BookingHandler
	Orders          *handler.VendorOrderHandler
	PaymentCallback *handler.PaymentCallbackHandler
}

// Setup builds the gin engine with middleware and all API routes
func Setup(cfg Config) *gin.Engine {
	if err := dto.RegisterValidations(); err != nil {
		cfg.Logger.Warn("custom validations not registered", zap.Error(err))
	}

	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(applogger.GinMiddleware(cfg.Logger))
	engine.Use(applogger.GinRecovery(cfg.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	engine.Use(middleware.BodyLimit(maxBodyBytes))
	if cfg.TracingEnabled {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}

	jwtCfg := middleware.DefaultJWTConfig(cfg.JWTManager)
	jwtCfg.Logger = cfg.Logger

	engine.GET("/health", cfg.System.Health)

	api := engine.Group("/api/v1")
	api.Use(middleware.JWTAuthWithConfig(jwtCfg))

	api.GET("/health", cfg.System.Health)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", cfg.Auth.Login)
		authGroup.POST("/refresh", cfg.Auth.Refresh)
		authGroup.GET("/me", cfg.Auth.Me)
	}

	profile := api.Group("/profile")
	{
		profile.GET("", cfg.Profile.Get)
		profile.PUT("", cfg.Profile.Update)
		profile.POST("/documents", cfg.Profile.UploadDocument)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("/items", cfg.Inventory.List)
		inventory.POST("/items", cfg.Inventory.Create)
		inventory.GET("/stats", cfg.Inventory.Stats)
		inventory.GET("/items/alerts/low-stock", cfg.Inventory.LowStock)
		inventory.GET("/items/:id", cfg.Inventory.Get)
		inventory.DELETE("/items/:id", cfg.Inventory.Delete)
		inventory.GET("/items/:id/movements", cfg.Inventory.Movements)
		inventory.POST("/items/:id/movements", cfg.Inventory.RecordMovement)
	}

	bookings := api.Group("/bookings")
	{
		bookings.GET("", cfg.Bookings.List)
		bookings.GET("/:id", cfg.Bookings.Get)
		bookings.POST("/:id/cancel", cfg.Bookings.Cancel)
	}

	orders := api.Group("/vendor/orders")
	{
		orders.GET("", cfg.Orders.List)
		orders.GET("/:id", cfg.Orders.Get)
		orders.POST("/:id/payment/initialize", cfg.Orders.InitializePayment)
		orders.POST("/:id/payment/verify", cfg.Orders.VerifyPayment)
	}

	api.POST("/payment/callback/paystack", cfg.PaymentCallback.HandlePaystackWebhook)

	return engine
}
