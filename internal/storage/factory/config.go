package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/shunt-calc/internal/storage"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/pg"
	"github.com/DjordjeVuckovic/shunt-calc/pkg/utils"
)

const DefaultJsonFilePath = "data/evaluations.jsonl"

type StorageConfig struct {
	storage.Type
	Pg       *pg.PoolConfig
	Es       *es.ClientConfig
	JsonFile string
}

// LoadEnv reads the storage configuration from the environment.
// STORAGE_TYPE defaults to in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if !storageType.Valid() {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			storage.Types)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ","),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = "evaluations"
		}
		if err := cfg.Es.Validate(); err != nil {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses, "indexName", cfg.Es.IndexName)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: %w", err)
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING is not set")
		}
	case storage.JsonFile:
		cfg.JsonFile = strings.TrimSpace(os.Getenv("JSON_FILE_PATH"))
		if cfg.JsonFile == "" {
			cfg.JsonFile = DefaultJsonFilePath
		}
	}

	return cfg, nil
}
