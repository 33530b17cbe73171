package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"insurance/internal/api/handlers"
	"insurance/internal/api/middleware"
)

type Router struct {
	vehicleHandler *handlers.VehicleHandler
	quoteHandler   *handlers.QuoteHandler
	logger         *zap.Logger
}

func NewRouter(
	vehicleHandler *handlers.VehicleHandler,
	quoteHandler *handlers.QuoteHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		vehicleHandler: vehicleHandler,
		quoteHandler:   quoteHandler,
		logger:         logger,
	}
}

func (r *Router) Setup(engine *gin.Engine) {
	engine.Use(middleware.RequestID(), middleware.Logger(r.logger))

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	engine.GET("/kinds", r.vehicleHandler.Kinds)
	engine.POST("/quote", r.quoteHandler.Quote)

	vehicles := engine.Group("/vehicles")
	{
		vehicles.POST("", r.vehicleHandler.Register)
		vehicles.GET("", r.vehicleHandler.List)
		vehicles.GET("/:id", r.vehicleHandler.Get)
		vehicles.DELETE("/:id", r.vehicleHandler.Delete)
		vehicles.GET("/:id/quote", r.quoteHandler.QuoteVehicle)
	}
}
