package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite *TestSuite
	Dir   string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	kinds := apperr.KindNames()
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		switch {
		case c.Expect != nil && c.ExpectError != "":
			return nil, fmt.Errorf("case %q sets both expect and expect_error", c.ID)
		case c.Expect == nil && c.ExpectError == "":
			return nil, fmt.Errorf("case %q has no expectation", c.ID)
		case c.ExpectError != "" && !slices.Contains(kinds, c.ExpectError):
			return nil, fmt.Errorf("case %q expects unknown error kind %q, expected one of %v", c.ID, c.ExpectError, kinds)
		}
	}

	return &LoadedSuite{Suite: &s}, nil
}
