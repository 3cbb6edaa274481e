package main

import (
	"flag"
)

type cliConfig struct {
	PlanPath     string
	SuitePath    string
	APIURL       string
	LegacyDigits bool
	Warmup       int
	Runs         int
	FailFast     bool
	Output       string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.PlanPath, "plan", "", "Path to bench plan YAML (multi-job mode)")
	flag.StringVar(&cfg.SuitePath, "suite", "configs/bench/arithmetic_v1.yaml", "Path to suite YAML (quick single-job mode)")
	flag.StringVar(&cfg.APIURL, "api", "", "Also run the suite against a calc API at this base URL (quick mode)")
	flag.BoolVar(&cfg.LegacyDigits, "legacy-digits", false, "Use the legacy digit table for the local engine (quick mode)")
	flag.IntVar(&cfg.Warmup, "warmup", 0, "Number of warmup runs before measurement")
	flag.IntVar(&cfg.Runs, "runs", 1, "Number of measured runs per case")
	flag.BoolVar(&cfg.FailFast, "fail-fast", false, "Stop a job at the first failing case")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")

	flag.Parse()
	return cfg
}
