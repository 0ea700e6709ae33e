package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/paramountfood/paramount/internal/api/handlers"
	"github.com/paramountfood/paramount/internal/api/middleware"
	"github.com/paramountfood/paramount/internal/config"
	"github.com/paramountfood/paramount/internal/db"
	"github.com/paramountfood/paramount/internal/logging"
	"github.com/paramountfood/paramount/internal/repository"
	"github.com/paramountfood/paramount/internal/server/routes"
	"github.com/paramountfood/paramount/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *db.Database
	repos  *Repositories
	svcs   *Services
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, database *db.Database) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if database == nil {
		return nil, errors.New("database is required")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	repos := &Repositories{
		Inquiry:     repository.NewInquiryRepository(database.DB),
		StatusCheck: repository.NewStatusCheckRepository(database.DB),
	}
	dispatcher := service.NewNotificationDispatcherFromConfig(cfg.Notify)
	logging.GetGlobalLogger().Info("Inquiry notification channels: %v", dispatcher.Channels())

	svcs := &Services{
		Inquiry: service.NewInquiryService(repos.Inquiry, dispatcher),
		Status:  service.NewStatusService(repos.StatusCheck),
	}

	s := &Server{
		router: router,
		cfg:    cfg,
		db:     database,
		repos:  repos,
		svcs:   svcs,
	}
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	logger := logging.GetGlobalLogger()

	s.router.Use(otelgin.Middleware(s.cfg.ServiceName))
	routes.SetupGlobalMiddleware(s.router, logger, s.cfg.CORSOrigins)

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(s.db),
		Contact: handlers.NewContactHandler(s.svcs.Inquiry),
		Status:  handlers.NewStatusHandler(s.svcs.Status),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	routes.Setup(s.router, h, m)
}

// Handler exposes the configured router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Services exposes the service layer for commands that bypass HTTP
func (s *Server) Services() *Services {
	return s.svcs
}

// Start serves HTTP until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("api server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down API server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}
	logger.Info("API server stopped")
	return nil
}
