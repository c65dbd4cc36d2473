// Package site serves the portfolio: the rendered page, the gallery API,
// the contact form, and the admin dashboard.
package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators the server is built from. Visits and Mailer
// may be nil: tracking is then skipped and the contact form reports that
// mail is unavailable.
type Deps struct {
	Content *content.Content
	Visits  VisitStore
	Mailer  Mailer
}

// Server is the portfolio's HTTP server.
type Server struct {
	engine  *gin.Engine
	cfg     *config.Config
	deps    Deps
	logger  *zap.Logger
	metrics *Metrics
	tracker *tracker
	auth    *adminAuth
	now     func() time.Time
}

// NewServer wires routes and middleware for cfg.
func NewServer(cfg *config.Config, deps Deps, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.Content == nil {
		return nil, fmt.Errorf("content is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}

	metrics := NewMetrics()
	t, err := newTracker(deps.Visits, logger, metrics)
	if err != nil {
		return nil, err
	}
	auth, err := newAdminAuth(cfg.Admin.Username, cfg.Admin.Password.Value())
	if err != nil {
		return nil, err
	}
	if !auth.enabled() {
		logger.Warn("admin login disabled: set ADMIN_PASSWORD to enable the dashboard")
	}

	e := gin.New()
	e.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		logger.Error("panic recovered", zap.Any("panic", rec), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))
	e.Use(requestLogger(logger))
	e.Use(t.middleware())

	s := &Server{
		engine:  e,
		cfg:     cfg,
		deps:    deps,
		logger:  logger,
		metrics: metrics,
		tracker: t,
		auth:    auth,
		now:     time.Now,
	}
	s.registerRoutes()
	return s, nil
}

// requestLogger emits one entry per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}

func (s *Server) registerRoutes() {
	s.engine.Static("/images", s.cfg.Server.ImagesDir)
	s.engine.Static("/static", s.cfg.Server.StaticDir)

	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/privacy", s.handlePrivacy)
	s.engine.POST("/contact", s.handleContact)

	api := s.engine.Group("/api")
	api.GET("/content", s.handleContent)
	api.GET("/gallery/frame", s.handleFrame)
	api.GET("/gallery/jump", s.handleJump)

	s.registerAdminRoutes()
}

// Handler returns the server's http.Handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully and waits for pending visit writes.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.tracker.wg.Add(1)
	go func() {
		defer s.tracker.wg.Done()
		if _, err := s.tracker.prune(ctx, s.cfg.Store.Retention); err != nil {
			s.logger.Warn("privacy cleanup failed", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.tracker.wait()
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
