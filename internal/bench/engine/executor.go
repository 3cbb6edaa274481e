package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

// Executor evaluates one expression. An expression that fails to evaluate is
// a normal Execution with ErrorKind set; the returned error is reserved for
// failures of the executor itself.
type Executor interface {
	Execute(ctx context.Context, expr string) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	Value     value.Value
	ErrorKind string
	Postfix   string
	Latency   time.Duration
}
