package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/runner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *runner.BenchmarkResult {
	lat := runner.ComputeLatencyStats([]time.Duration{time.Millisecond, 3 * time.Millisecond})
	return &runner.BenchmarkResult{
		Config: runner.Config{WarmupRuns: 1, Runs: 2},
		Jobs: []*runner.JobResult{{
			JobName:     "basics",
			SuiteName:   "arithmetic",
			CaseOrder:   []string{"precedence", "div-zero", "wrong"},
			EngineNames: []string{"local", "api"},
			Results: map[string]map[string]runner.CaseResult{
				"precedence": {
					"local": {CaseID: "precedence", EngineName: "local", Expr: "2+3*4", Expected: "14", Value: 14, Passed: true, Latency: lat},
					"api":   {CaseID: "precedence", EngineName: "api", Expr: "2+3*4", Expected: "14", Error: errors.New("api status 503")},
				},
				"div-zero": {
					"local": {CaseID: "div-zero", EngineName: "local", Expr: "5//0", Expected: "error:bad_calculation", ErrorKind: "bad_calculation", Passed: true, Latency: lat},
					"api":   {CaseID: "div-zero", EngineName: "api", Expr: "5//0", Expected: "error:bad_calculation", ErrorKind: "bad_calculation", Passed: true, Latency: lat},
				},
				"wrong": {
					"local": {CaseID: "wrong", EngineName: "local", Expr: "1+1", Expected: "3", Value: 2, Latency: lat},
				},
			},
		}},
	}
}

func TestGenerate(t *testing.T) {
	r := Generate(sampleResult(), map[string]EngineInfo{"local": {Type: "local"}})

	assert.NotEqual(t, uuid.Nil, r.Meta.RunID)
	assert.Equal(t, 2, r.Config.Runs)
	require.Len(t, r.Jobs, 1)

	job := r.Jobs[0]
	require.Len(t, job.PerCase, 5)
	assert.Equal(t, "precedence", job.PerCase[0].CaseID)
	assert.Equal(t, "local", job.PerCase[0].EngineName)
	assert.Equal(t, "14", job.PerCase[0].Got)
	assert.Equal(t, "api status 503", job.PerCase[1].Error)
	assert.Equal(t, "2", job.PerCase[4].Got)

	require.Len(t, job.Aggregated, 2)
	local := job.Aggregated[0]
	assert.Equal(t, "local", local.EngineName)
	assert.Equal(t, 3, local.CaseCount)
	assert.Equal(t, 2, local.Passed)
	assert.Equal(t, 1, local.Failed)
	assert.Equal(t, 0.6667, local.PassRate)
	assert.Equal(t, 6, local.Latency.SampleCount)

	api := job.Aggregated[1]
	assert.Equal(t, 2, api.CaseCount)
	assert.Equal(t, 1, api.ErrorCount)
	assert.Equal(t, 0.5, api.PassRate)
	assert.Equal(t, 2, api.Latency.SampleCount)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Generate(sampleResult(), nil), &buf)

	out := buf.String()
	assert.Contains(t, out, "--- Job: basics (suite arithmetic) ---")
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "error:bad_calculation")
	for _, s := range []string{"OK", "FAIL", "ERR"} {
		assert.Contains(t, out, s)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(Generate(sampleResult(), nil), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Jobs, 1)
	assert.Equal(t, 0.6667, decoded.Jobs[0].Aggregated[0].PassRate)
	assert.Equal(t, "bad_calculation", decoded.Jobs[0].PerCase[2].Got[len("error:"):])
}

func TestFmtDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "-"},
		{in: 1500 * time.Nanosecond, want: "1.5µs"},
		{in: 2500 * time.Microsecond, want: "2.50ms"},
		{in: 1500 * time.Millisecond, want: "1.50s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fmtDuration(tt.in))
	}
}
