package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/collector"
	"github.com/DjordjeVuckovic/shunt-calc/internal/storage"
)

const defaultBatchSize = 1000

// EvalPipeline drains an expression collector into a storer, one record at a
// time or in bulks.
type EvalPipeline struct {
	collector collector.Collector[collector.Evaluated]
	storer    storage.Storer
	config    *PipelineConfig
	sink      func(collector.Evaluated)
	stats     Stats
}

type EvalPipelineOption func(*EvalPipeline)

func WithBulk(size int) EvalPipelineOption {
	return func(p *EvalPipeline) {
		if size <= 0 {
			size = defaultBatchSize
		}
		p.config.Bulk = &BulkOptions{Enabled: true, Size: size}
	}
}

func WithName(name string) EvalPipelineOption {
	return func(p *EvalPipeline) {
		p.config.Name = name
	}
}

// WithSink observes every evaluated line before it is stored.
func WithSink(fn func(collector.Evaluated)) EvalPipelineOption {
	return func(p *EvalPipeline) {
		p.sink = fn
	}
}

func NewEvalPipeline(c collector.Collector[collector.Evaluated], storer storage.Storer, opts ...EvalPipelineOption) *EvalPipeline {
	p := &EvalPipeline{
		collector: c,
		storer:    storer,
		config: &PipelineConfig{
			Name: "eval-pipeline",
			Bulk: &BulkOptions{Enabled: false, Size: defaultBatchSize},
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *EvalPipeline) Run(ctx context.Context) error {
	start := time.Now()
	p.stats = Stats{ErrorsByKind: make(map[string]int)}

	results, err := p.collector.Collect(ctx)
	if err != nil {
		slog.Error("Error collecting expressions", "pipeline", p.config.Name, "error", err)
		return err
	}

	if p.config.Bulk != nil && p.config.Bulk.Enabled {
		err = p.importBatch(ctx, results)
	} else {
		err = p.importBasic(ctx, results)
	}

	slog.Info("Pipeline run completed",
		"pipeline", p.config.Name,
		"duration", time.Since(start),
		"read", p.stats.Read,
		"succeeded", p.stats.Succeeded,
		"failed", p.stats.Failed,
		"saved", p.stats.Saved)

	return err
}

// Stats returns the counters of the last Run.
func (p *EvalPipeline) Stats() Stats {
	return p.stats
}

func (p *EvalPipeline) importBasic(ctx context.Context, results <-chan collector.Result[collector.Evaluated]) error {
	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, stopping collection")
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				return nil
			}
			rec, ok := p.accept(res)
			if !ok {
				continue
			}
			if _, err := p.storer.Save(ctx, rec); err != nil {
				p.stats.SaveErrors++
				slog.Error("Error saving evaluation", "expression", rec.Expression, "error", err)
				continue
			}
			p.stats.Saved++
		}
	}
}

func (p *EvalPipeline) importBatch(ctx context.Context, results <-chan collector.Result[collector.Evaluated]) error {
	batch := make([]domain.EvaluationRecord, 0, p.config.Bulk.Size)

	flush := func(ctx context.Context) {
		if len(batch) == 0 {
			return
		}
		if err := p.storer.SaveBulk(ctx, batch); err != nil {
			p.stats.SaveErrors += len(batch)
			slog.Error("Error saving bulk evaluations", "error", err, "count", len(batch))
		} else {
			p.stats.Saved += len(batch)
			slog.Debug("Bulk evaluations saved", "count", len(batch))
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			slog.Info("Pipeline context cancelled, flushing pending evaluations", "count", len(batch))
			flush(context.WithoutCancel(ctx))
			return ctx.Err()
		case res, ok := <-results:
			if !ok {
				flush(ctx)
				return nil
			}
			rec, ok := p.accept(res)
			if !ok {
				continue
			}
			batch = append(batch, rec)
			if len(batch) >= p.config.Bulk.Size {
				flush(ctx)
			}
		}
	}
}

func (p *EvalPipeline) accept(res collector.Result[collector.Evaluated]) (domain.EvaluationRecord, bool) {
	if res.Err != nil {
		p.stats.ReadErrors++
		slog.Error("Error reading expression", "line", res.Result.Line, "error", res.Err)
		return domain.EvaluationRecord{}, false
	}

	p.stats.Read++
	rec := res.Result.Record
	if rec.Succeeded() {
		p.stats.Succeeded++
	} else {
		p.stats.Failed++
		p.stats.ErrorsByKind[rec.ErrorKind]++
	}
	if p.sink != nil {
		p.sink(res.Result)
	}
	return rec, true
}
