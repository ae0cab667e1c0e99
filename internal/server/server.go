package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/SandboxFS/internal/config"
	apihttp "github.com/GriffinCanCode/SandboxFS/internal/http"
	"github.com/GriffinCanCode/SandboxFS/internal/logging"
	"github.com/GriffinCanCode/SandboxFS/internal/middleware"
	"github.com/GriffinCanCode/SandboxFS/internal/monitoring"
	"github.com/GriffinCanCode/SandboxFS/internal/providers/filesystem"
	"github.com/GriffinCanCode/SandboxFS/internal/sandbox"
	"github.com/GriffinCanCode/SandboxFS/internal/service"
	"github.com/GriffinCanCode/SandboxFS/internal/session"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	sessions *session.Manager
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	srv      *http.Server
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing SandboxFS server",
		zap.String("port", cfg.Server.Port),
		zap.String("sandbox_dir", cfg.Sandbox.BaseDir),
	)

	metrics := monitoring.NewMetrics()

	// Session manager owns per-session sandboxes under the base dir.
	sessions, err := session.NewManager(filepath.Join(cfg.Sandbox.BaseDir, "sessions"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session manager: %w", err)
	}

	// The default workspace serves requests that carry no session ID.
	workspaceRoot := filepath.Join(cfg.Sandbox.BaseDir, "workspace")
	if err := os.MkdirAll(workspaceRoot, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	workspace, err := sandbox.New(workspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize workspace sandbox: %w", err)
	}

	registry := service.NewRegistry()

	logger.Info("Registering service providers...")
	fsProvider := filesystem.NewProvider(sessions, workspace, logger)
	if err := registry.Register(fsProvider); err != nil {
		return nil, fmt.Errorf("failed to register filesystem provider: %w", err)
	}
	stats := registry.Stats()
	logger.Info("Providers registered",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, sessions, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// Session endpoints
	router.POST("/sessions", handlers.CreateSession)
	router.GET("/sessions", handlers.ListSessions)
	router.GET("/sessions/:id", handlers.GetSession)
	router.DELETE("/sessions/:id", handlers.DestroySession)

	// Metrics endpoints
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/stats", handlers.Stats)

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		sessions: sessions,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
	}, nil
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
			return err
		}
	}

	s.logger.Sync()
	return nil
}
