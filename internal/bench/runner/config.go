package runner

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	WarmupRuns int
	Runs       int
	// FailFast stops a job at the first case that does not match.
	FailFast bool
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}
