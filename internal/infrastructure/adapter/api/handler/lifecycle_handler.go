package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LifecycleHandler handles transaction lifecycle HTTP requests.
// It is the caller that owns retry policy: lost races are re-run and
// unlinked transactions are reconciled before answering.
type LifecycleHandler struct {
	lifecycle usecase.LifecycleUseCase
	retrier   *Retrier
	logger    coreport.Logger
}

// NewLifecycleHandler creates a new lifecycle handler instance
func NewLifecycleHandler(lifecycle usecase.LifecycleUseCase, policy RetryPolicy, logger coreport.Logger) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycle: lifecycle,
		retrier:   NewRetrier(policy, logger),
		logger:    logger,
	}
}

// transitionFunc is the shape shared by the owner-scoped mutations
type transitionFunc func(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error)

func parseUserID(c *gin.Context) (uint64, bool) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		badRequest(c, errs.CodeInvalidUserID, "Invalid user ID format")
		return 0, false
	}
	return userID, true
}

func parseTransactionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, errs.CodeValidation, "Invalid transaction ID format")
		return uuid.Nil, false
	}
	return id, true
}

// CreateSIP handles POST /user/{userId}/transactions/sip
func (h *LifecycleHandler) CreateSIP(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSIPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errs.CodeValidation, "Invalid request format: "+err.Error())
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		badRequest(c, errs.CodeInvalidDateRange, err.Error())
		return
	}
	endDate, err := dto.ParseDate(req.EndDate)
	if err != nil {
		badRequest(c, errs.CodeInvalidDateRange, err.Error())
		return
	}

	tx, err := h.lifecycle.CreateSIP(c.Request.Context(), usecase.CreateSIPRequest{
		UserID:       userID,
		FundID:       req.FundID,
		Amount:       req.Amount,
		Frequency:    req.Frequency,
		StartDate:    startDate,
		EndDate:      endDate,
		DeductionDay: req.DeductionDay,
	})
	h.respondCreated(c, "create_sip", userID, tx, err)
}

// CreateLumpsum handles POST /user/{userId}/transactions/lumpsum
func (h *LifecycleHandler) CreateLumpsum(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLumpsumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, errs.CodeValidation, "Invalid request format: "+err.Error())
		return
	}

	tx, err := h.lifecycle.CreateLumpsum(c.Request.Context(), usecase.CreateLumpsumRequest{
		UserID: userID,
		FundID: req.FundID,
		Amount: req.Amount,
	})
	h.respondCreated(c, "create_lumpsum", userID, tx, err)
}

// respondCreated answers a creation, reconciling a missing portfolio link first
func (h *LifecycleHandler) respondCreated(c *gin.Context, operation string, userID uint64, tx *entity.Transaction, err error) {
	var linkErr *errs.PortfolioLinkError
	if errors.As(err, &linkErr) && tx != nil {
		err = h.reconcileLink(c.Request.Context(), tx, userID, err)
	}

	if err != nil {
		h.writeError(c, operation, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// reconcileLink retries the portfolio append; on failure the original link error is kept
func (h *LifecycleHandler) reconcileLink(ctx context.Context, tx *entity.Transaction, userID uint64, linkErr error) error {
	err := h.retrier.Do(ctx, "link_to_portfolio", isTransientLinkFailure, func() error {
		return h.lifecycle.LinkToPortfolio(ctx, tx.ID, userID)
	})
	if err != nil {
		h.logger.Error("Portfolio link reconciliation failed", map[string]any{
			"transaction_id": tx.ID.String(),
			"user_id":        userID,
			"error":          err.Error(),
		})
		return linkErr
	}

	h.logger.Info("Portfolio link reconciled", map[string]any{
		"transaction_id": tx.ID.String(),
		"user_id":        userID,
	})
	return nil
}

// PauseSIP handles PATCH /user/{userId}/transactions/{id}/pause
func (h *LifecycleHandler) PauseSIP(c *gin.Context) {
	h.transition(c, "pause", h.lifecycle.PauseSIP)
}

// ResumeSIP handles PATCH /user/{userId}/transactions/{id}/resume
func (h *LifecycleHandler) ResumeSIP(c *gin.Context) {
	h.transition(c, "resume", h.lifecycle.ResumeSIP)
}

// CancelTransaction handles PATCH /user/{userId}/transactions/{id}/cancel
func (h *LifecycleHandler) CancelTransaction(c *gin.Context) {
	h.transition(c, "cancel", h.lifecycle.CancelTransaction)
}

// UpdateNextDeductionDate handles PATCH /user/{userId}/transactions/{id}/deduction
func (h *LifecycleHandler) UpdateNextDeductionDate(c *gin.Context) {
	h.transition(c, "advance_deduction", h.lifecycle.UpdateNextDeductionDate)
}

// transition runs an owner-scoped mutation, re-running it when it loses a race.
// Each attempt re-reads the stored state, so a retry re-evaluates the move.
func (h *LifecycleHandler) transition(c *gin.Context, operation string, apply transitionFunc) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var tx *entity.Transaction
	err := h.retrier.Do(ctx, operation, isLostRace, func() error {
		var opErr error
		tx, opErr = apply(ctx, id, userID)
		return opErr
	})
	if err != nil {
		h.writeError(c, operation, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// GetNextDeductionDates handles GET /user/{userId}/deduction-dates
func (h *LifecycleHandler) GetNextDeductionDates(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	schedules, err := h.lifecycle.GetNextDeductionDates(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "deduction_dates", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDeductionScheduleResponses(schedules))
}

// GetPortfolio handles GET /user/{userId}/portfolio
func (h *LifecycleHandler) GetPortfolio(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	txs, err := h.lifecycle.GetPortfolio(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, "portfolio", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPortfolioResponse(userID, txs))
}

// GetTransactionDetails handles GET /user/{userId}/transactions/{id}
func (h *LifecycleHandler) GetTransactionDetails(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	tx, err := h.lifecycle.GetTransactionDetails(c.Request.Context(), id, userID)
	if err != nil {
		h.writeError(c, "transaction_details", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// LinkToPortfolio handles POST /user/{userId}/portfolio/{id}
func (h *LifecycleHandler) LinkToPortfolio(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}
	id, ok := parseTransactionID(c)
	if !ok {
		return
	}

	if err := h.lifecycle.LinkToPortfolio(c.Request.Context(), id, userID); err != nil {
		h.writeError(c, "link_to_portfolio", err)
		return
	}

	c.Status(http.StatusNoContent)
}
