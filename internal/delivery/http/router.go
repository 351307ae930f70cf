package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "stockledger/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	StockHandler       *StockHandler
	TransactionHandler *TransactionHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "stockledger-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}

	// Ledger accounts (protected)
	users := api.Group("/users", custommiddleware.AuthMiddleware)
	{
		users.POST("", config.UserHandler.CreateUser)
		users.GET("/:username", config.UserHandler.GetUser)
	}

	// Stock catalog (protected; create is admin-only)
	stocks := api.Group("/stocks", custommiddleware.AuthMiddleware)
	{
		stocks.POST("", config.StockHandler.CreateStock, custommiddleware.AdminMiddleware)
		stocks.GET("", config.StockHandler.ListStocks)
		stocks.GET("/:ticker", config.StockHandler.GetStock)
	}

	// Order execution and history (protected)
	txns := api.Group("/transactions", custommiddleware.AuthMiddleware)
	{
		txns.POST("", config.TransactionHandler.CreateTransaction)
		txns.GET("/:username", config.TransactionHandler.ListTransactions)
		txns.GET("/:username/range", config.TransactionHandler.ListTransactionsByRange)
	}
}
