package collector

import (
	"context"
	"runtime"
	"sync"

	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
	"github.com/DjordjeVuckovic/shunt-calc/internal/domain"
	"github.com/DjordjeVuckovic/shunt-calc/internal/ingest/reader"
)

// Evaluated is the outcome of one input line.
type Evaluated struct {
	Line   int
	Record domain.EvaluationRecord
}

// ExpressionCollector evaluates every line of a reader on a pool of workers.
// Results arrive in completion order, not input order.
type ExpressionCollector struct {
	reader     reader.LineReader
	calculator *calc.Calculator
	workers    int
	source     domain.Source
}

type ExpressionCollectorOption func(*ExpressionCollector)

func WithWorkers(n int) ExpressionCollectorOption {
	return func(c *ExpressionCollector) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithSource(s domain.Source) ExpressionCollectorOption {
	return func(c *ExpressionCollector) {
		c.source = s
	}
}

func NewExpressionCollector(r reader.LineReader, calculator *calc.Calculator, opts ...ExpressionCollectorOption) *ExpressionCollector {
	c := &ExpressionCollector{
		reader:     r,
		calculator: calculator,
		workers:    runtime.NumCPU(),
		source:     domain.SourceBatch,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (ec *ExpressionCollector) Collect(ctx context.Context) (<-chan Result[Evaluated], error) {
	lines, err := ec.reader.Lines(ctx)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[Evaluated])
	var wg sync.WaitGroup

	wg.Add(ec.workers)
	for w := 0; w < ec.workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case res, ok := <-lines:
					if !ok {
						return
					}
					var item Result[Evaluated]
					if res.Err != nil {
						item = Result[Evaluated]{Result: Evaluated{Line: res.Line.No}, Err: res.Err}
					} else {
						item = Result[Evaluated]{Result: ec.evaluate(res.Line)}
					}
					select {
					case out <- item:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

func (ec *ExpressionCollector) evaluate(line reader.Line) Evaluated {
	tr, err := ec.calculator.Trace(line.Text)
	return Evaluated{
		Line:   line.No,
		Record: domain.NewEvaluationRecord(ec.source, line.Text, tr.Postfix, tr.Value, err),
	}
}
