package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/numengine/internal/config"
	handlers "github.com/GriffinCanCode/numengine/internal/http"
	"github.com/GriffinCanCode/numengine/internal/logging"
	"github.com/GriffinCanCode/numengine/internal/middleware"
	"github.com/GriffinCanCode/numengine/internal/monitoring"
	"github.com/GriffinCanCode/numengine/internal/numeric"
	"github.com/GriffinCanCode/numengine/internal/numeric/specialize"
	"github.com/GriffinCanCode/numengine/internal/providers"
	mathProvider "github.com/GriffinCanCode/numengine/internal/providers/math"
	"github.com/GriffinCanCode/numengine/internal/service"
	"github.com/GriffinCanCode/numengine/internal/ws"
)

// ShutdownTimeout bounds graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  http.Handler
	http     *http.Server
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
	config   *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Nop()
	}

	logger.Info("Initializing numeric engine server",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.Int("series_budget", cfg.Numeric.SeriesBudget),
	)

	// Engine tuning and observation
	numeric.SetDefaultBudget(cfg.Numeric.SeriesBudget)
	metrics := monitoring.NewMetrics(specialize.Default)
	specialize.Default.SetLogger(logger.Logger)
	specialize.Default.SetObserver(metrics)

	serviceRegistry := service.NewRegistry(
		service.WithLogger(logger.Component("registry")),
		service.WithRecorder(metrics),
	)

	logger.Info("Registering service providers...")
	if err := registerProviders(serviceRegistry, cfg, logger); err != nil {
		return nil, err
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger.Component("http")))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	h := handlers.NewHandlers(serviceRegistry, specialize.Default, metrics)

	// Health
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// Service management
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	// Engine introspection
	router.GET("/specializations", h.Specializations)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// WebSocket
	if cfg.Stream.Enabled {
		wsHandler := ws.NewHandler(serviceRegistry, metrics, logger.Component("ws"), cfg.Stream.MaxMessageSize)
		router.GET("/stream", wsHandler.HandleConnection)
	}

	s := &Server{
		router:   router,
		handler:  compress(router),
		registry: serviceRegistry,
		metrics:  metrics,
		logger:   logger,
		config:   cfg,
	}
	s.http = &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// compress gzips responses for clients that accept it. WebSocket upgrades
// bypass the wrapper since they need the raw connection.
func compress(next http.Handler) http.Handler {
	gz := gzhttp.GzipHandler(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if websocket.IsWebSocketUpgrade(r) {
			next.ServeHTTP(w, r)
			return
		}
		gz.ServeHTTP(w, r)
	})
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Registry returns the service registry.
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run starts the server and blocks until it stops. A graceful Shutdown
// is not reported as an error.
func (s *Server) Run() error {
	s.logger.Info("Starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// Close releases resources held by the server
func (s *Server) Close() error {
	specialize.Default.SetObserver(nil)
	return s.logger.Close()
}

func registerProviders(registry *service.Registry, cfg *config.Config, logger *logging.Logger) error {
	math := mathProvider.NewProvider(mathProvider.WithLeniency(cfg.Numeric.Leniency))
	if err := registry.Register(math); err != nil {
		return fmt.Errorf("register math provider: %w", err)
	}
	logger.Info("  ✓ Math service")

	engine := providers.NewEngine(specialize.Default, providers.WithLogLevel(logger))
	if err := registry.Register(engine); err != nil {
		return fmt.Errorf("register engine provider: %w", err)
	}
	logger.Info("  ✓ Engine service")

	stats := registry.Stats()
	logger.Info("Registered services",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)
	return nil
}
