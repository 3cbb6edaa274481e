package report

import (
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/runner"
	"github.com/DjordjeVuckovic/shunt-calc/pkg/utils"
	"github.com/google/uuid"
)

func Generate(br *runner.BenchmarkResult, engines map[string]EngineInfo) *Report {
	r := &Report{
		Meta: BenchMeta{
			RunID:       uuid.New(),
			Timestamp:   time.Now().UTC(),
			Engines:     engines,
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			WarmupRuns: br.Config.WarmupRuns,
			Runs:       br.Config.Runs,
			FailFast:   br.Config.FailFast,
		},
	}

	for _, jr := range br.Jobs {
		r.Jobs = append(r.Jobs, generateJob(jr))
	}

	return r
}

func generateJob(jr *runner.JobResult) JobReport {
	rep := JobReport{
		JobName:   jr.JobName,
		SuiteName: jr.SuiteName,
	}

	for _, caseID := range jr.CaseOrder {
		for _, engName := range jr.EngineNames {
			cr, ok := jr.Results[caseID][engName]
			if !ok {
				continue
			}
			entry := Entry{
				CaseID:     cr.CaseID,
				EngineName: cr.EngineName,
				Expr:       cr.Expr,
				Expected:   cr.Expected,
				Got:        cr.Outcome(),
				Passed:     cr.Passed,
				Unstable:   cr.Unstable,
				Latency:    cr.Latency,
			}
			if cr.Error != nil {
				entry.Error = cr.Error.Error()
			}
			rep.PerCase = append(rep.PerCase, entry)
		}
	}

	rep.Aggregated = aggregate(jr)
	return rep
}

func aggregate(jr *runner.JobResult) []AggregatedEntry {
	entries := make([]AggregatedEntry, 0, len(jr.EngineNames))

	for _, engName := range jr.EngineNames {
		agg := AggregatedEntry{EngineName: engName}
		var latencies []runner.LatencyStats

		for _, caseID := range jr.CaseOrder {
			cr, ok := jr.Results[caseID][engName]
			if !ok {
				continue
			}
			agg.CaseCount++

			switch {
			case cr.Error != nil:
				agg.ErrorCount++
				continue
			case cr.Passed:
				agg.Passed++
			default:
				agg.Failed++
			}
			latencies = append(latencies, cr.Latency)
		}

		if agg.CaseCount > 0 {
			agg.PassRate = utils.RoundDecimal(float64(agg.Passed)/float64(agg.CaseCount), 4)
		}
		agg.Latency = runner.MergeLatencyStats(latencies)

		entries = append(entries, agg)
	}

	return entries
}
