package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"audioboard/internal/api/middleware"
	v1routes "audioboard/internal/api/v1/routes"
	"audioboard/internal/app/metrics"
)

// Config represents API server configuration
type Config struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string

	// StaticDir holds the dashboard page; defaults to web/static.
	StaticDir string
}

// Server represents the dashboard server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates a new dashboard server
func NewServer(config Config, container *v1routes.ServiceContainer, logger *slog.Logger) *Server {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(middleware.Metrics(metrics.Default()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, container)
	}

	// Single-page dashboard. The recording duration slider, library
	// columns and viewers all talk to the v1 API above.
	staticDir := config.StaticDir
	if staticDir == "" {
		wd, _ := os.Getwd()
		staticDir = filepath.Join(wd, "web", "static")
	}
	router.StaticFile("/", filepath.Join(staticDir, "index.html"))
	router.StaticFile("/index.html", filepath.Join(staticDir, "index.html"))

	// WriteTimeout must exceed the longest allowed capture; the record
	// endpoint blocks for the full requested duration.
	addr := fmt.Sprintf("%s:%s", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start starts the dashboard server
func (s *Server) Start() error {
	s.logger.Info("Starting dashboard server",
		"host", s.config.Host,
		"port", s.config.Port,
		"environment", s.config.Environment,
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	s.logger.Info("Dashboard server started successfully",
		"address", s.httpServer.Addr,
	)

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down dashboard server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	s.logger.Info("Dashboard server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
