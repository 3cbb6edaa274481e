package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/shunt-calc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CalcApiConfig struct {
	StorageConfig factory.StorageConfig
	Calc          calc.Config
	// RecordEvaluations stores every served evaluation through the storer.
	RecordEvaluations bool
}

func (as *AppConfig) Load() (*CalcApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &CalcApiConfig{
		StorageConfig:     *storageCfg,
		Calc:              calc.LoadConfig(),
		RecordEvaluations: env.Bool("RECORD_EVALUATIONS", true),
	}, nil
}
