package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/plan"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/report"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/runner"
)

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	bp, err := loadPlan(cfg)
	if err != nil {
		slog.Error("Failed to load plan", "path", cfg.PlanPath, "error", err)
		os.Exit(1)
	}

	runCfg := runner.Config{
		WarmupRuns: cfg.Warmup,
		Runs:       max(cfg.Runs, 1),
		FailFast:   cfg.FailFast,
	}
	if bp.Runs.Warmup > 0 && cfg.Warmup == 0 {
		runCfg.WarmupRuns = bp.Runs.Warmup
	}
	if bp.Runs.Iterations > 1 && cfg.Runs <= 1 {
		runCfg.Runs = bp.Runs.Iterations
	}

	executors, cleanup, err := engine.CreateFromPlan(bp.Engines)
	if err != nil {
		slog.Error("Failed to create executors", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	result, err := runner.New(runCfg).RunAll(ctx, bp, executors)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	if err := outputReport(result, engineInfo(bp), cfg.Output); err != nil {
		slog.Error("Failed to write JSON report", "error", err)
		os.Exit(1)
	}

	if failed := result.Failed(); failed > 0 {
		slog.Warn("Some cases did not pass", "failed", failed)
		os.Exit(2)
	}
}

func loadPlan(cfg cliConfig) (*plan.BenchPlan, error) {
	if cfg.PlanPath != "" {
		return plan.LoadFromFile(cfg.PlanPath)
	}
	return buildQuickPlan(cfg), nil
}

func buildQuickPlan(cfg cliConfig) *plan.BenchPlan {
	engines := map[string]plan.Engine{
		"local": {Type: plan.EngineLocal, LegacyDigits: cfg.LegacyDigits},
	}
	engineNames := []string{"local"}

	if cfg.APIURL != "" {
		engines["api"] = plan.Engine{Type: plan.EngineAPI, Connection: cfg.APIURL}
		engineNames = append(engineNames, "api")
	}

	return &plan.BenchPlan{
		Engines: engines,
		Jobs: []plan.Job{
			{
				Name:    "quick",
				Suite:   cfg.SuitePath,
				Engines: engineNames,
			},
		},
	}
}

func engineInfo(bp *plan.BenchPlan) map[string]report.EngineInfo {
	info := make(map[string]report.EngineInfo, len(bp.Engines))
	for name, eng := range bp.Engines {
		info[name] = report.EngineInfo{
			Type:         eng.Type,
			Connection:   eng.Connection,
			LegacyDigits: eng.LegacyDigits,
		}
	}
	return info
}

func outputReport(result *runner.BenchmarkResult, engines map[string]report.EngineInfo, outputPath string) error {
	rpt := report.Generate(result, engines)
	report.WriteTable(rpt, os.Stdout)

	if outputPath == "" {
		return nil
	}
	if err := report.WriteJSON(rpt, outputPath); err != nil {
		return err
	}
	slog.Info("Report written", "path", outputPath)
	return nil
}
