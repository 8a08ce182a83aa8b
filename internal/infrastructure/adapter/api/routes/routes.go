package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, lifecycleHandler *handler.LifecycleHandler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userRoutes := router.Group("/user/:userId")
	{
		userRoutes.POST("/transactions/sip", lifecycleHandler.CreateSIP)
		userRoutes.POST("/transactions/lumpsum", lifecycleHandler.CreateLumpsum)
		userRoutes.GET("/transactions/:id", lifecycleHandler.GetTransactionDetails)

		userRoutes.PATCH("/transactions/:id/pause", lifecycleHandler.PauseSIP)
		userRoutes.PATCH("/transactions/:id/resume", lifecycleHandler.ResumeSIP)
		userRoutes.PATCH("/transactions/:id/cancel", lifecycleHandler.CancelTransaction)
		userRoutes.PATCH("/transactions/:id/deduction", lifecycleHandler.UpdateNextDeductionDate)

		userRoutes.GET("/portfolio", lifecycleHandler.GetPortfolio)
		userRoutes.POST("/portfolio/:id", lifecycleHandler.LinkToPortfolio)
		userRoutes.GET("/deduction-dates", lifecycleHandler.GetNextDeductionDates)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
}
