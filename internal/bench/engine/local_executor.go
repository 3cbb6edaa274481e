package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
)

// LocalExecutor runs the calculator in-process.
type LocalExecutor struct {
	name       string
	calculator *calc.Calculator
}

func NewLocalExecutor(name string, calculator *calc.Calculator) *LocalExecutor {
	return &LocalExecutor{name: name, calculator: calculator}
}

func (e *LocalExecutor) Execute(ctx context.Context, expr string) (*Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	tr, err := e.calculator.Trace(expr)
	latency := time.Since(start)

	if err != nil && !apperr.IsPipeline(err) {
		return nil, fmt.Errorf("local evaluate: %w", err)
	}

	return &Execution{
		Value:     tr.Value,
		ErrorKind: apperr.KindOf(err),
		Postfix:   tr.Postfix,
		Latency:   latency,
	}, nil
}

func (e *LocalExecutor) Name() string { return e.name }
func (e *LocalExecutor) Close() error { return nil }
