package nest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server wraps an Echo instance with controller mounting, a per instance
// route registry and lifecycle management.
type Server struct {
	echo     *echo.Echo
	config   *ServerConfig
	log      *zap.Logger
	registry *Registry
}

// ServerOption customises a Server before it is built.
type ServerOption func(*Server)

// WithConfig sets the server configuration, skipping the environment.
func WithConfig(config *ServerConfig) ServerOption {
	return func(s *Server) { s.config = config }
}

// WithLogger sets the server logger.
func WithLogger(log *zap.Logger) ServerOption {
	return func(s *Server) { s.log = log }
}

// NewServer creates a server. Without options the configuration comes
// from NEST_* environment variables and logging uses a production zap
// logger.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{registry: NewRegistry()}
	for _, opt := range opts {
		opt(s)
	}

	var cfgErr error
	if s.config == nil {
		s.config, cfgErr = LoadServerConfig()
		if cfgErr != nil {
			s.config = DefaultServerConfig()
		}
	}
	if s.log == nil {
		s.log = zap.Must(zap.NewProduction())
	}
	if cfgErr != nil {
		s.log.Warn("invalid environment config, using defaults", zap.Error(cfgErr))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if s.config.EnableRecover {
		e.Use(middleware.Recover())
	}
	if s.config.EnableLogger {
		e.Use(middleware.Logger())
	}
	if s.config.EnableCORS {
		e.Use(middleware.CORS())
	}
	if s.config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
	if s.config.EnableHealth {
		e.GET("/health", func(c echo.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
		})
	}

	s.echo = e
	return s
}

// Echo returns the underlying Echo instance for advanced configuration.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Logger returns the server logger.
func (s *Server) Logger() *zap.Logger {
	return s.log
}

// Registry returns the server's route registry.
func (s *Server) Registry() *Registry {
	return s.registry
}

// Routes returns the records of every mounted route.
func (s *Server) Routes() []RouteInfo {
	return s.registry.All()
}

// PrintRoutes writes the mounted route table to standard output.
func (s *Server) PrintRoutes() {
	PrintRoutes(s.Routes())
}

// Mount assembles each controller and registers its routes, with prefix
// prepended to the controller's own prefix. The first controller that
// fails to assemble aborts the mount and returns its error.
func (s *Server) Mount(prefix string, controllers ...Controller) error {
	mountParts, err := PathSpec(prefix).Parts()
	if err != nil {
		return fmt.Errorf("mount prefix: %w", err)
	}
	base := EchoPath(mountParts)

	for _, c := range controllers {
		asm, err := Assemble(c)
		if err != nil {
			return err
		}

		full := base + EchoPath(asm.PrefixParts)
		for _, r := range asm.Routes {
			nativePath := full + EchoPath(r.Parts)
			route := s.echo.Add(r.Method, nativePath, EchoHandler(asm.Handler(r)))
			if r.Options.Name != "" {
				route.Name = r.Options.Name
			}

			info := r.Info
			info.Path = prefix + info.Path
			info.NativePath = nativePath
			s.registry.Add(info)
		}

		s.log.Info("mounted controller",
			zap.String("controller", asm.Controller),
			zap.String("prefix", prefix),
			zap.Int("routes", len(asm.Routes)))
	}
	return nil
}

// Start starts the server and blocks until a shutdown signal arrives,
// then drains connections within the configured timeout.
func (s *Server) Start() error {
	go func() {
		addr := s.config.Addr()
		s.log.Info("starting server", zap.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info("server shutdown complete")
	return nil
}

// Shutdown stops the server without waiting for a signal.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
