package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/shunt-calc/internal/bench/runner"
	"github.com/google/uuid"
)

type Report struct {
	Meta   BenchMeta    `json:"meta"`
	Jobs   []JobReport  `json:"jobs"`
	Config ReportConfig `json:"config"`
}

type BenchMeta struct {
	RunID       uuid.UUID             `json:"runId"`
	Timestamp   time.Time             `json:"timestamp"`
	Engines     map[string]EngineInfo `json:"engines,omitempty"`
	Environment EnvironmentInfo       `json:"environment"`
}

type EngineInfo struct {
	Type         string `json:"type"`
	Connection   string `json:"connection,omitempty"`
	LegacyDigits bool   `json:"legacyDigits,omitempty"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"numCpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	WarmupRuns int  `json:"warmupRuns"`
	Runs       int  `json:"runs"`
	FailFast   bool `json:"failFast,omitempty"`
}

type JobReport struct {
	JobName    string            `json:"jobName"`
	SuiteName  string            `json:"suiteName,omitempty"`
	Aggregated []AggregatedEntry `json:"aggregated"`
	PerCase    []Entry           `json:"perCase"`
}

type Entry struct {
	CaseID     string              `json:"caseId"`
	EngineName string              `json:"engine"`
	Expr       string              `json:"expr"`
	Expected   string              `json:"expected"`
	Got        string              `json:"got"`
	Passed     bool                `json:"passed"`
	Unstable   bool                `json:"unstable,omitempty"`
	Latency    runner.LatencyStats `json:"latency"`
	Error      string              `json:"error,omitempty"`
}

type AggregatedEntry struct {
	EngineName string              `json:"engine"`
	CaseCount  int                 `json:"caseCount"`
	Passed     int                 `json:"passed"`
	Failed     int                 `json:"failed"`
	ErrorCount int                 `json:"errorCount"`
	PassRate   float64             `json:"passRate"`
	Latency    runner.LatencyStats `json:"latency"`
}
