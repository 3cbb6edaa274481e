package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/shunt-calc/internal/storage"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/json_file"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/shunt-calc/pkg/server"
)

// Storage bundles a storer with its health check and cleanup.
type Storage struct {
	Storer  storage.Storer
	Health  pkgserver.HealthChecker
	cleanup func()
}

func (s *Storage) Close() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

// NewStorer creates a new storage.Storer based on the storage type
func NewStorer(ctx context.Context, cfg *StorageConfig) (*Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage config is nil")
	}

	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		storer, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Storage{Storer: storer, Health: pg.NewHealthChecker(pool), cleanup: pool.Close}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		storer, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Storage{Storer: storer, Health: es.NewHealthChecker(storer)}, nil

	case storage.JsonFile:
		storer, err := json_file.NewJsonFileStorer(cfg.JsonFile)
		if err != nil {
			return nil, err
		}
		return &Storage{Storer: storer, Health: pkgserver.NewOkHealthChecker()}, nil

	case storage.InMem:
		return &Storage{Storer: in_mem.NewInMemStorer(), Health: pkgserver.NewOkHealthChecker()}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
