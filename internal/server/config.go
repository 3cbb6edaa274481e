package server

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/pkg/config/env"
	"github.com/DjordjeVuckovic/shunt-calc/pkg/utils"
)

const defaultPort = "8080"

type Config struct {
	Port            string
	UseHttp2        bool
	CorsOrigins     []string
	ShutdownTimeout time.Duration
}

// Addr is the listen address for Port on every interface.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// LoadConfig reads PORT, USE_HTTP2, CORS_ORIGINS and SHUTDOWN_TIMEOUT_SECONDS.
func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(env.AppEnv(), "cmd/calc_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := env.String("PORT", defaultPort)
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", port, err)
	}

	origins := utils.SplitAndTrim(env.String("CORS_ORIGINS", ""), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	timeout := time.Duration(env.Int("SHUTDOWN_TIMEOUT_SECONDS", 0)) * time.Second
	if timeout <= 0 {
		timeout = GracefulShutdownTimeout
	}

	return &Config{
		Port:            port,
		UseHttp2:        env.Bool("USE_HTTP2", false),
		CorsOrigins:     origins,
		ShutdownTimeout: timeout,
	}, nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	switch {
	case err != nil:
		return fmt.Errorf("not a number")
	case n < 1 || n > 65535:
		return fmt.Errorf("out of range 1..65535")
	}
	return nil
}
