package suite

import (
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

type TestSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Cases       []Case `yaml:"cases"`
}

// Case is one expression with exactly one expectation: a value or an error kind.
type Case struct {
	ID          string       `yaml:"id"`
	Description string       `yaml:"description,omitempty"`
	Expr        string       `yaml:"expr"`
	Expect      *value.Value `yaml:"expect,omitempty"`
	ExpectError string       `yaml:"expect_error,omitempty"`
}

// Expectation renders what the case expects, for reports.
func (c *Case) Expectation() string {
	if c.Expect != nil {
		return value.Format(*c.Expect)
	}
	return "error:" + c.ExpectError
}

// Matches reports whether an outcome satisfies the case.
// got is ignored when errKind is set.
func (c *Case) Matches(got value.Value, errKind string) bool {
	if c.Expect != nil {
		return errKind == "" && got == *c.Expect
	}
	return errKind == c.ExpectError
}
