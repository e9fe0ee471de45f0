package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	grammarHTTP "github.com/allisson/posts/internal/grammar/http"
	postHTTP "github.com/allisson/posts/internal/post/http"
)

// ServerConfig holds everything the API server needs to build its router.
type ServerConfig struct {
	Host             string
	Port             int
	GinMode          string
	CORSEnabled      bool
	CORSAllowOrigins string

	Logger *slog.Logger

	// AuthMiddleware guards every route under /v1.
	AuthMiddleware gin.HandlerFunc

	// MetricsMiddleware is optional; nil disables per-request metrics.
	MetricsMiddleware gin.HandlerFunc

	PostHandler    *postHTTP.PostHandler
	GrammarHandler *grammarHTTP.GrammarHandler
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// NewServer creates a new HTTP server with all application routes mounted.
// Health and readiness endpoints are registered at Start, where the shutdown
// context is available.
func NewServer(cfg ServerConfig) *Server {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(cfg.Logger))
	router.Use(CustomRecoveryMiddleware(cfg.Logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, cfg.Logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsMiddleware != nil {
		router.Use(cfg.MetricsMiddleware)
	}

	v1 := router.Group("/v1", cfg.AuthMiddleware)
	{
		v1.POST("/posts", cfg.PostHandler.CreateHandler)
		v1.GET("/posts", cfg.PostHandler.ListHandler)
		v1.GET("/posts/feed", cfg.PostHandler.FeedHandler)
		v1.GET("/posts/:id", cfg.PostHandler.GetHandler)
		v1.PUT("/posts/:id", cfg.PostHandler.UpdateHandler)
		v1.DELETE("/posts/:id", cfg.PostHandler.DeleteHandler)

		v1.POST("/grammar/check", cfg.GrammarHandler.CheckHandler)
	}

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router: router,
		logger: cfg.Logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.router.GET("/health", gin.WrapH(HealthHandler()))
	s.router.GET("/ready", gin.WrapH(ReadinessHandler(ctx)))

	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
