package handlers

import (
	"context"
	"errors"
	"net/http"

	"algoeconomics/internal/api/models"
	"algoeconomics/internal/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCreator creates checkout sessions. *checkout.Service is one.
type SessionCreator interface {
	Create(ctx context.Context, token, priceID string) (checkout.Result, error)
}

// OutcomeRecorder counts checkout outcomes. *metrics.Metrics is one.
type OutcomeRecorder interface {
	CheckoutOutcome(outcome string)
}

// CheckoutHandler starts subscription checkouts
type CheckoutHandler struct {
	service  SessionCreator
	outcomes OutcomeRecorder
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new checkout handler. outcomes may be nil.
func NewCheckoutHandler(service SessionCreator, outcomes OutcomeRecorder, logger *zap.Logger) *CheckoutHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutHandler{service: service, outcomes: outcomes, logger: logger}
}

// Create handles POST /api/checkout
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.record("invalid")
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	}

	token := checkout.BearerToken(c.GetHeader("Authorization"))
	res, err := h.service.Create(c.Request.Context(), token, req.PriceID)
	switch {
	case errors.Is(err, checkout.ErrUnauthorized):
		h.record("unauthorized")
		respondError(c, http.StatusUnauthorized, models.CodeUnauthorized, "Unauthorized", nil)
		return
	case errors.Is(err, checkout.ErrMissingPrice):
		h.record("invalid")
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest, err.Error(), nil)
		return
	case err != nil:
		h.record("error")
		h.logger.Error("checkout session failed", zap.Error(err))
		respondError(c, http.StatusBadGateway, models.CodeCheckoutError, "Failed to create checkout session", nil)
		return
	}

	if res.Cached {
		h.record("cached")
	} else {
		h.record("created")
	}
	c.JSON(http.StatusOK, models.CheckoutResponse{URL: res.Session.URL})
}

func (h *CheckoutHandler) record(outcome string) {
	if h.outcomes != nil {
		h.outcomes.CheckoutOutcome(outcome)
	}
}
