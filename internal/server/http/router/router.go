package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ChristianPavilonis/orderdesk/internal/server/http/handlers"
	"github.com/ChristianPavilonis/orderdesk/internal/server/http/middleware"
)

// Setup configures the gin engine with handlers and middleware.
func Setup(facade handlers.OrdersFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	orders := engine.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id", orderHandler.UpdateStatus)
	orders.DELETE("/:id", orderHandler.Delete)

	engine.GET("/healthz", healthHandler.Check)

	return engine
}
