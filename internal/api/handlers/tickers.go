package handlers

import (
	"net/http"

	"algoeconomics/internal/api/models"
	"algoeconomics/internal/ticker"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SnapshotSource returns the latest ticker snapshot. *ticker.Feed is one.
type SnapshotSource interface {
	Snapshot() ticker.Snapshot
}

// TickersHandler serves the FX and stock exchange tickers
type TickersHandler struct {
	feed   SnapshotSource
	logger *zap.Logger
}

// NewTickersHandler creates a new tickers handler
func NewTickersHandler(feed SnapshotSource, logger *zap.Logger) *TickersHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TickersHandler{feed: feed, logger: logger}
}

// Get handles GET /api/v1/tickers
func (h *TickersHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Snapshot())
}

// HTML handles GET /api/v1/tickers/html. ?track=exchange|stock|combined
// returns one track as text/html; without it all three come back as JSON.
func (h *TickersHandler) HTML(c *gin.Context) {
	tracks, err := ticker.Render(h.feed.Snapshot())
	if err != nil {
		h.logger.Error("rendering tickers", zap.Error(err))
		respondError(c, http.StatusInternalServerError, models.CodeInternalError, "failed to render tickers", nil)
		return
	}

	var body string
	switch c.Query("track") {
	case "":
		c.JSON(http.StatusOK, tracks)
		return
	case "exchange":
		body = tracks.Exchange
	case "stock":
		body = tracks.Stock
	case "combined":
		body = tracks.Combined
	default:
		respondError(c, http.StatusBadRequest, models.CodeInvalidRequest,
			"track must be one of exchange, stock, combined", nil)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}
