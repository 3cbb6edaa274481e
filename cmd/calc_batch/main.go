package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/collector"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/reader"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage/factory"
)

func main() {
	cli := parseFlags()

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cli); err != nil {
		slog.Error("Batch evaluation failed", "error", err)
		os.Exit(1)
	}
}

func run(cli cliConfig) error {
	if cli.InputPath == "" {
		return fmt.Errorf("-input is required")
	}
	format, err := cli.format()
	if err != nil {
		return err
	}

	cfg, err := loadBatchConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	file, err := os.Open(cli.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	lines, err := reader.New(format, file, cli.Column)
	if err != nil {
		return err
	}

	store, err := factory.NewStorer(ctx, &cfg.StorageConfig)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}
	defer store.Close()

	calculator := calc.New(cfg.Calc.Options()...)
	c := collector.NewExpressionCollector(lines, calculator, collector.WithWorkers(cli.Workers))

	var evaluated []collector.Evaluated
	opts := []ingest.EvalPipelineOption{ingest.WithName("calc-batch")}
	if cli.BulkSize > 0 {
		opts = append(opts, ingest.WithBulk(cli.BulkSize))
	}
	if cli.Print {
		opts = append(opts, ingest.WithSink(func(e collector.Evaluated) {
			evaluated = append(evaluated, e)
		}))
	}

	slog.Info("Starting batch evaluation",
		"input", cli.InputPath,
		"format", format,
		"storageType", cfg.StorageConfig.Type,
		"workers", cli.Workers,
		"bulk", cli.BulkSize)

	p := ingest.NewEvalPipeline(c, store.Storer, opts...)
	runErr := p.Run(ctx)

	if cli.Print {
		printResults(os.Stdout, evaluated)
	}
	printStats(os.Stdout, p.Stats())

	return runErr
}

func printResults(w io.Writer, evaluated []collector.Evaluated) {
	sort.Slice(evaluated, func(i, j int) bool {
		return evaluated[i].Line < evaluated[j].Line
	})
	for _, e := range evaluated {
		rec := e.Record
		if rec.Succeeded() {
			fmt.Fprintf(w, "%d: %s = %d\n", e.Line, rec.Expression, *rec.Value)
			continue
		}
		fmt.Fprintf(w, "%d: %s ERROR %s\n", e.Line, rec.Expression, rec.ErrorKind)
	}
}

func printStats(w io.Writer, s ingest.Stats) {
	fmt.Fprintf(w, "read=%d succeeded=%d failed=%d read_errors=%d saved=%d save_errors=%d\n",
		s.Read, s.Succeeded, s.Failed, s.ReadErrors, s.Saved, s.SaveErrors)

	kinds := make([]string, 0, len(s.ErrorsByKind))
	for k := range s.ErrorsByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "  %s=%d\n", k, s.ErrorsByKind[k])
	}
}
