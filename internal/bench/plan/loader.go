package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*BenchPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	// suite paths are relative to the plan file
	dir := filepath.Dir(path)
	for i := range p.Jobs {
		if !filepath.IsAbs(p.Jobs[i].Suite) {
			p.Jobs[i].Suite = filepath.Join(dir, p.Jobs[i].Suite)
		}
	}
	return p, nil
}

func Parse(data []byte) (*BenchPlan, error) {
	var p BenchPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan YAML: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validate(p *BenchPlan) error {
	if len(p.Jobs) == 0 {
		return fmt.Errorf("plan has no jobs")
	}
	if len(p.Engines) == 0 {
		return fmt.Errorf("plan has no engines")
	}
	for i, j := range p.Jobs {
		if j.Name == "" {
			return fmt.Errorf("job at index %d has no name", i)
		}
		if j.Suite == "" {
			return fmt.Errorf("job %q has no suite", j.Name)
		}
		if len(j.Engines) == 0 {
			return fmt.Errorf("job %q has no engines", j.Name)
		}
		for _, engRef := range j.Engines {
			if _, ok := p.Engines[engRef]; !ok {
				return fmt.Errorf("job %q references unknown engine %q", j.Name, engRef)
			}
		}
	}
	for name, eng := range p.Engines {
		switch eng.Type {
		case EngineLocal:
		case EngineAPI:
			if eng.Connection == "" {
				return fmt.Errorf("engine %q has no connection", name)
			}
		case "":
			return fmt.Errorf("engine %q has no type", name)
		default:
			return fmt.Errorf("engine %q has invalid type %q", name, eng.Type)
		}
	}
	if p.Runs.Warmup < 0 {
		p.Runs.Warmup = 0
	}
	if p.Runs.Iterations <= 0 {
		p.Runs.Iterations = 1
	}
	return nil
}
