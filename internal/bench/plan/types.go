package plan

// BenchPlan runs one or more suites against named engines.
type BenchPlan struct {
	Engines map[string]Engine `yaml:"engines"`
	Runs    RunsConfig        `yaml:"runs"`
	Jobs    []Job             `yaml:"jobs"`
}

// Engine is either the in-process calculator ("local") or a running
// calc API ("api", Connection is its base URL).
type Engine struct {
	Type         string `yaml:"type"`
	Connection   string `yaml:"connection,omitempty"`
	LegacyDigits bool   `yaml:"legacy_digits,omitempty"`
}

type RunsConfig struct {
	Warmup     int `yaml:"warmup"`
	Iterations int `yaml:"iterations"`
}

type Job struct {
	Name    string   `yaml:"name"`
	Suite   string   `yaml:"suite"`
	Engines []string `yaml:"engines"`
}

const (
	EngineLocal = "local"
	EngineAPI   = "api"
)
