package handler

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// logFielder is implemented by the structured domain errors
type logFielder interface {
	LogFields() map[string]any
}

// statusFor maps a domain error onto an HTTP status
func statusFor(err error) int {
	var linkErr *errs.PortfolioLinkError

	switch {
	case errors.As(err, &linkErr):
		return http.StatusConflict
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsInvalidTransitionError(err):
		return http.StatusUnprocessableEntity
	case errs.IsConflictError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes the matching error response
func (h *LifecycleHandler) writeError(c *gin.Context, operation string, err error) {
	status := statusFor(err)

	fields := map[string]any{
		"operation": operation,
		"status":    status,
		"error":     err.Error(),
	}
	var structured logFielder
	if errors.As(err, &structured) {
		for k, v := range structured.LogFields() {
			fields[k] = v
		}
	}

	resp := dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: err.Error(),
	}

	var linkErr *errs.PortfolioLinkError
	if errors.As(err, &linkErr) {
		resp.TransactionID = linkErr.TransactionID
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Lifecycle request failed", fields)
		resp.Message = "Internal server error"
	} else {
		h.logger.Debug("Lifecycle request refused", fields)
	}

	c.JSON(status, resp)
}

// badRequest writes a 400 for malformed input that never reached the engine
func badRequest(c *gin.Context, code int, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
