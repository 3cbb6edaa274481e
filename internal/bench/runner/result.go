package runner

import (
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

type CaseResult struct {
	CaseID     string
	JobName    string
	EngineName string
	Expr       string
	Expected   string
	Value      value.Value
	ErrorKind  string
	Passed     bool
	// Unstable is set when measured runs disagreed on the outcome.
	Unstable bool
	Latency  LatencyStats
	Error    error
}

// Outcome renders what the engine produced, in the same form as
// suite.Case.Expectation.
func (r CaseResult) Outcome() string {
	switch {
	case r.Error != nil:
		return "n/a"
	case r.ErrorKind != "":
		return "error:" + r.ErrorKind
	default:
		return value.Format(r.Value)
	}
}

type JobResult struct {
	JobName     string
	SuiteName   string
	Results     map[string]map[string]CaseResult // [caseID][engineName]
	CaseOrder   []string
	EngineNames []string
}

type BenchmarkResult struct {
	Jobs   []*JobResult
	Config Config
}

func (br *BenchmarkResult) AllEngineNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, jr := range br.Jobs {
		for _, name := range jr.EngineNames {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// Failed counts results that did not pass, across every job and engine.
func (br *BenchmarkResult) Failed() int {
	n := 0
	for _, jr := range br.Jobs {
		for _, byEngine := range jr.Results {
			for _, r := range byEngine {
				if !r.Passed {
					n++
				}
			}
		}
	}
	return n
}
