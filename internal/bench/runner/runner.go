package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/plan"
	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/suite"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	if cfg.Runs <= 0 {
		cfg.Runs = DefaultRuns
	}
	if cfg.WarmupRuns < 0 {
		cfg.WarmupRuns = DefaultWarmupRuns
	}
	return &Runner{config: cfg}
}

func (r *Runner) RunAll(
	ctx context.Context,
	bp *plan.BenchPlan,
	executors map[string]engine.Executor,
) (*BenchmarkResult, error) {
	br := &BenchmarkResult{Config: r.config}

	for _, job := range bp.Jobs {
		loaded, err := suite.LoadFromFile(job.Suite)
		if err != nil {
			return nil, fmt.Errorf("load suite for job %q: %w", job.Name, err)
		}

		jr, err := r.RunJob(ctx, job, loaded, executors)
		if err != nil {
			return nil, fmt.Errorf("run job %q: %w", job.Name, err)
		}
		br.Jobs = append(br.Jobs, jr)
	}

	return br, nil
}

func (r *Runner) RunJob(
	ctx context.Context,
	job plan.Job,
	loaded *suite.LoadedSuite,
	executors map[string]engine.Executor,
) (*JobResult, error) {
	jobExecutors := make([]engine.Executor, 0, len(job.Engines))
	for _, engName := range job.Engines {
		exec, ok := executors[engName]
		if !ok {
			return nil, fmt.Errorf("executor %q not found", engName)
		}
		jobExecutors = append(jobExecutors, exec)
	}

	jr := &JobResult{
		JobName:     job.Name,
		SuiteName:   loaded.Suite.Name,
		Results:     make(map[string]map[string]CaseResult),
		EngineNames: job.Engines,
	}

	slog.Info("Running job", "job", job.Name, "suite", loaded.Suite.Name, "cases", len(loaded.Suite.Cases), "engines", job.Engines)

	for i := range loaded.Suite.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := &loaded.Suite.Cases[i]
		jr.CaseOrder = append(jr.CaseOrder, c.ID)
		jr.Results[c.ID] = make(map[string]CaseResult, len(jobExecutors))

		allPassed := true
		for _, exec := range jobExecutors {
			cr := r.runCase(ctx, exec, c)
			cr.JobName = job.Name
			jr.Results[c.ID][exec.Name()] = cr

			switch {
			case cr.Error != nil:
				slog.Warn("case failed to execute", "case", c.ID, "engine", exec.Name(), "error", cr.Error)
			case !cr.Passed:
				slog.Warn("case mismatch", "case", c.ID, "engine", exec.Name(), "expected", cr.Expected, "got", cr.Outcome(), "unstable", cr.Unstable)
			}
			allPassed = allPassed && cr.Passed
		}

		if !allPassed && r.config.FailFast {
			slog.Info("Stopping job at first mismatch", "job", job.Name, "case", c.ID)
			break
		}
	}

	return jr, nil
}

type outcome struct {
	value value.Value
	kind  string
}

func (r *Runner) runCase(ctx context.Context, exec engine.Executor, c *suite.Case) CaseResult {
	cr := CaseResult{
		CaseID:     c.ID,
		EngineName: exec.Name(),
		Expr:       c.Expr,
		Expected:   c.Expectation(),
	}

	for i := 0; i < r.config.WarmupRuns; i++ {
		_, _ = exec.Execute(ctx, c.Expr)
	}

	var (
		latencies []time.Duration
		first     *outcome
		lastErr   error
	)
	for i := 0; i < r.config.Runs; i++ {
		res, err := exec.Execute(ctx, c.Expr)
		if err != nil {
			lastErr = err
			continue
		}
		latencies = append(latencies, res.Latency)

		o := outcome{value: res.Value, kind: res.ErrorKind}
		if first == nil {
			first = &o
		} else if o != *first {
			cr.Unstable = true
		}
	}

	if first == nil {
		cr.Error = lastErr
		return cr
	}

	cr.Value = first.value
	cr.ErrorKind = first.kind
	cr.Latency = ComputeLatencyStats(latencies)
	cr.Passed = !cr.Unstable && c.Matches(first.value, first.kind)
	return cr
}
