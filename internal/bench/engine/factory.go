package engine

import (
	"fmt"

	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/plan"
	"github.com/DjordjeVuckovic/shunt-calc/internal/calc"
)

func CreateFromPlan(engines map[string]plan.Engine) (map[string]Executor, func(), error) {
	executors := make(map[string]Executor, len(engines))

	cleanup := func() {
		for _, exec := range executors {
			_ = exec.Close()
		}
	}

	for name, eng := range engines {
		switch eng.Type {
		case plan.EngineLocal:
			executors[name] = NewLocalExecutor(name, calc.New(calc.WithLegacyDigits(eng.LegacyDigits)))
		case plan.EngineAPI:
			executors[name] = NewAPIExecutor(name, eng.Connection)
		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported engine type %q for %q", eng.Type, name)
		}
	}

	return executors, cleanup, nil
}
