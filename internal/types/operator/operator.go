package operator

import (
	"fmt"
)

// Operator is a binary arithmetic operator, identified by its source spelling.
//
// Usage:
//
//	op, _ := operator.Parse("//")
//	op.Precedence()        // 15
//	op.IsRightAssociative() // false
type Operator string

const (
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Mod Operator = "%"
	Div Operator = "//"
	Pow Operator = "^"
)

// Spec is the static metadata of an operator. Higher precedence binds tighter.
type Spec struct {
	Precedence       int  `json:"precedence" yaml:"precedence"`
	RightAssociative bool `json:"right_associative" yaml:"right_associative"`
}

// All lists every operator in precedence order, loosest first.
var All = []Operator{Mod, Add, Sub, Mul, Div, Pow}

// Add and Mul are flagged right-associative. It does not change results for
// those two, but it does change grouping order; keep the table as is.
var specs = map[Operator]Spec{
	Mod: {Precedence: 5, RightAssociative: false},
	Add: {Precedence: 10, RightAssociative: true},
	Sub: {Precedence: 10, RightAssociative: false},
	Mul: {Precedence: 15, RightAssociative: true},
	Div: {Precedence: 15, RightAssociative: false},
	Pow: {Precedence: 20, RightAssociative: false},
}

var names = map[Operator]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Mod: "mod",
	Div: "div",
	Pow: "pow",
}

// Parse accepts either the operator symbol ("//") or its name ("div").
func Parse(s string) (Operator, error) {
	op := Operator(s)
	if _, ok := specs[op]; ok {
		return op, nil
	}
	for o, name := range names {
		if name == s {
			return o, nil
		}
	}
	return "", fmt.Errorf("invalid operator: %q (must be one of + - * %% // ^)", s)
}

// String returns the source spelling of the operator
func (o Operator) String() string {
	return string(o)
}

// Name returns the lower case operator name, e.g. "div".
func (o Operator) Name() string {
	return names[o]
}

func (o Operator) Spec() Spec {
	return specs[o]
}

func (o Operator) Precedence() int {
	return specs[o].Precedence
}

func (o Operator) IsRightAssociative() bool {
	return specs[o].RightAssociative
}

// Validate ensures the operator is one of the known operators
func (o Operator) Validate() error {
	if _, ok := specs[o]; !ok {
		return fmt.Errorf("invalid operator: %q", string(o))
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for JSON serialization
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
