package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/repl"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/factory"
	"github.com/DjordjeVuckovic/shunt-calc/pkg/config/env"
)

func main() {
	var (
		debug  bool
		record bool
	)
	flag.BoolVar(&debug, "debug", false, "Log why evaluations fail (to stderr)")
	flag.BoolVar(&record, "record", false, "Store every evaluated line using STORAGE_TYPE")
	flag.Parse()

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := env.LoadDotEnv(env.AppEnv(), "cmd/calc/.env"); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []repl.Option
	if record {
		storageCfg, err := factory.LoadEnv()
		if err != nil {
			slog.Error("Failed to load storage configuration", "error", err)
			os.Exit(1)
		}
		store, err := factory.NewStorer(ctx, storageCfg)
		if err != nil {
			slog.Error("Failed to create storage", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		opts = append(opts, repl.WithRecorder(store.Storer))
	}

	calculator := calc.New(calc.LoadConfig().Options()...)
	r := repl.New(calculator, os.Stdin, os.Stdout, repl.LoadConfig(), opts...)

	if err := r.Run(ctx); err != nil {
		slog.Error("REPL stopped", "error", err)
		os.Exit(1)
	}
}
