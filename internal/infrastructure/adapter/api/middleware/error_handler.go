package middleware

import (
	"net/http"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": c.GetHeader(RequestIDHeader),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.CodeInternalServer,
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

// NotFound answers unknown routes in the API error format
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Code:    errs.CodeNotFound,
			Message: "Route not found",
		})
	}
}
