// Package api assembles the HTTP surface of the site backend.
package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"algoeconomics/internal/api/handlers"
	"algoeconomics/internal/api/middleware"
	"algoeconomics/internal/api/models"
	"algoeconomics/internal/metrics"
	"algoeconomics/internal/widget"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators the router serves. Only Presets is required;
// routes whose collaborator is nil are not registered.
type Deps struct {
	Logger         *zap.Logger
	Presets        widget.PresetSource
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Tickers        handlers.SnapshotSource
	Checkout       handlers.SessionCreator
	Live           http.Handler
	AllowedOrigins []string
	StaticDir      string
}

func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Left as nil interfaces when metrics are off.
	var (
		observer middleware.HTTPObserver
		recorder widget.Recorder
		outcomes handlers.OutcomeRecorder
	)
	if d.Metrics != nil {
		observer = d.Metrics
		recorder = d.Metrics
		outcomes = d.Metrics
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, observer))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(d.AllowedOrigins))

	modelHandler := handlers.NewModelHandler(d.Presets, recorder, logger)
	sectionsHandler := handlers.NewSectionsHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	{
		api.GET("/model/inputs", modelHandler.ListInputs)
		api.GET("/model/presets", modelHandler.ListPresets)
		api.POST("/model/recompute", modelHandler.Recompute)
		api.POST("/model/compare", modelHandler.Compare)
		api.GET("/model/sweep", modelHandler.Sweep)
		api.GET("/charts/model", modelHandler.ModelChart)

		api.GET("/sections", sectionsHandler.List)
		api.GET("/sections/:id", sectionsHandler.Get)

		if d.Tickers != nil {
			tickersHandler := handlers.NewTickersHandler(d.Tickers, logger)
			api.GET("/tickers", tickersHandler.Get)
			api.GET("/tickers/html", tickersHandler.HTML)
		}
		if d.Live != nil {
			api.GET("/live", gin.WrapH(d.Live))
		}
	}

	if d.Checkout != nil {
		checkoutHandler := handlers.NewCheckoutHandler(d.Checkout, outcomes, logger)
		router.POST("/api/checkout", checkoutHandler.Create)
	}

	serveStatic(router, d.StaticDir, logger)
	return router
}

// serveStatic serves the built site from dir, falling back to index.html
// for page routes. API paths that match nothing get the JSON envelope.
func serveStatic(router *gin.Engine, dir string, logger *zap.Logger) {
	hasStatic := false
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			hasStatic = true
			router.Static("/assets", filepath.Join(dir, "assets"))
			router.StaticFile("/favicon.ico", filepath.Join(dir, "favicon.ico"))
			logger.Info("serving static files", zap.String("dir", dir))
		} else {
			logger.Info("static directory not found, skipping static file serving", zap.String("dir", dir))
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if !hasStatic || strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{Code: models.CodeInvalidRequest, Message: "Not found"},
			})
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
