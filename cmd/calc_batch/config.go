package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/reader"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/shunt-calc/pkg/config/env"
)

type cliConfig struct {
	InputPath string
	Format    string
	Column    string
	Workers   int
	BulkSize  int
	Print     bool
	Debug     bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.InputPath, "input", "", "Path to the expressions file (one per line, or csv)")
	flag.StringVar(&cfg.Format, "format", "", "Input format: text or csv (default: from file extension)")
	flag.StringVar(&cfg.Column, "column", reader.DefaultCSVColumn, "CSV column holding the expression")
	flag.IntVar(&cfg.Workers, "workers", runtime.NumCPU(), "Number of evaluation workers")
	flag.IntVar(&cfg.BulkSize, "bulk", 0, "Save records in bulks of this size (0 saves one by one)")
	flag.BoolVar(&cfg.Print, "print", false, "Print every result to stdout in input order")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	flag.Parse()
	return cfg
}

func (c cliConfig) format() (reader.Format, error) {
	if c.Format == "" {
		return reader.FormatFromPath(c.InputPath), nil
	}
	switch f := reader.Format(c.Format); f {
	case reader.FormatText, reader.FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported input format %q", c.Format)
	}
}

type BatchConfig struct {
	StorageConfig factory.StorageConfig
	Calc          calc.Config
}

func loadBatchConfig() (*BatchConfig, error) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/calc_batch/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &BatchConfig{
		StorageConfig: *storageCfg,
		Calc:          calc.LoadConfig(),
	}, nil
}
