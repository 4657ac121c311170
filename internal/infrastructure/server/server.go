package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	apihttp "github.com/GriffinCanCode/utilkit/internal/api/http"
	"github.com/GriffinCanCode/utilkit/internal/api/middleware"
	"github.com/GriffinCanCode/utilkit/internal/infrastructure/config"
	"github.com/GriffinCanCode/utilkit/internal/infrastructure/logging"
	"github.com/GriffinCanCode/utilkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/utilkit/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/utilkit/internal/providers/calculator"
	"github.com/GriffinCanCode/utilkit/internal/providers/formatter"
	"github.com/GriffinCanCode/utilkit/internal/service"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  http.Handler
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	return NewServerWithLogger(cfg, logging.NewFromLevel(cfg.Logging.Level, cfg.Logging.Development))
}

// NewServerWithLogger creates a server that logs through logger
func NewServerWithLogger(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Initializing utilkit server",
		zap.String("addr", cfg.Addr()),
		zap.Int("precision", cfg.Calculator.Precision),
		zap.Int("max_length", cfg.Formatter.MaxLength),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("utilkit", logger.Named("tracing").Logger)

	calc := calculator.New(calculator.WithPrecision(cfg.Calculator.Precision))
	f := formatter.New(
		formatter.WithTruncateSuffix(cfg.Formatter.TruncateSuffix),
		formatter.WithDefaultMaxLength(cfg.Formatter.MaxLength),
	)

	registry := service.NewRegistry()
	if err := registerProviders(registry, calc, f); err != nil {
		tracer.Close()
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
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

	handlers := apihttp.NewHandlers(calc, f, registry, metrics, logger.Named("http").Logger)
	handlers.Register(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		handler:  gzhttp.GzipHandler(router),
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
	}, nil
}

// Handler returns the root handler, router plus response compression
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run serves on the configured address until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return nil
}

// Close flushes pending spans and syncs the logger
func (s *Server) Close() error {
	s.tracer.Close()
	// Sync on a console sink returns ENOTTY on some platforms
	_ = s.logger.Sync()
	return nil
}

func registerProviders(registry *service.Registry, calc *calculator.Calculator, f *formatter.Formatter) error {
	if err := registry.Register(calculator.NewProvider(calc)); err != nil {
		return fmt.Errorf("failed to register calculator provider: %w", err)
	}
	if err := registry.Register(formatter.NewProvider(f)); err != nil {
		return fmt.Errorf("failed to register formatter provider: %w", err)
	}
	return nil
}
