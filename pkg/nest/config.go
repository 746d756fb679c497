package nest

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds configuration for the nest web server. The fields
// are filled from NEST_* environment variables by LoadServerConfig.
type ServerConfig struct {
	// Port is the port to listen on (default: 8080)
	Port string `env:"NEST_PORT" envDefault:"8080"`

	// Host is the host to bind to (default: "")
	Host string `env:"NEST_HOST" envDefault:""`

	// EnableCORS enables CORS middleware (default: true)
	EnableCORS bool `env:"NEST_CORS" envDefault:"true"`

	// EnableLogger enables request logging middleware (default: true)
	EnableLogger bool `env:"NEST_REQUEST_LOG" envDefault:"true"`

	// EnableRecover enables panic recovery middleware (default: true)
	EnableRecover bool `env:"NEST_RECOVER" envDefault:"true"`

	// EnableMetrics exposes Prometheus metrics on /metrics (default: true)
	EnableMetrics bool `env:"NEST_METRICS" envDefault:"true"`

	// EnableHealth exposes a liveness probe on /health (default: true)
	EnableHealth bool `env:"NEST_HEALTH" envDefault:"true"`

	// ShutdownTimeout is the timeout for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"NEST_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// DefaultServerConfig returns a server configuration with sensible
// defaults, honoring the conventional PORT variable when set.
func DefaultServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &ServerConfig{
		Port:            port,
		Host:            "",
		EnableCORS:      true,
		EnableLogger:    true,
		EnableRecover:   true,
		EnableMetrics:   true,
		EnableHealth:    true,
		ShutdownTimeout: 30 * time.Second,
	}
}

// LoadServerConfig reads the configuration from NEST_* environment
// variables. PORT is honored when NEST_PORT is unset.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if os.Getenv("NEST_PORT") == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Port = port
		}
	}
	return cfg, nil
}

// Addr returns the host:port address the server binds to.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
