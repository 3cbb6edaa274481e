package parser

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

type Kind int

const (
	NOP Kind = iota
	LITERAL
	OPERATOR
)

func (k Kind) String() string {
	switch k {
	case NOP:
		return "NOP"
	case LITERAL:
		return "LITERAL"
	case OPERATOR:
		return "OPERATOR"
	default:
		return "UNKNOWN"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for _, known := range []Kind{NOP, LITERAL, OPERATOR} {
		if known.String() == string(text) {
			*k = known
			return nil
		}
	}
	return fmt.Errorf("unknown instruction kind %q", text)
}

// Instruction is one step of a postfix program.
type Instruction struct {
	Kind    Kind              `json:"kind"`
	Literal value.Value       `json:"literal,omitempty"`
	Op      operator.Operator `json:"op,omitempty"`
}

func Nop() Instruction {
	return Instruction{Kind: NOP}
}

func Push(v value.Value) Instruction {
	return Instruction{Kind: LITERAL, Literal: v}
}

func Apply(op operator.Operator) Instruction {
	return Instruction{Kind: OPERATOR, Op: op}
}

func (i Instruction) String() string {
	switch i.Kind {
	case LITERAL:
		return value.Format(i.Literal)
	case OPERATOR:
		return i.Op.String()
	default:
		return ""
	}
}

// Program is a postfix (RPN) instruction sequence.
type Program []Instruction

// String renders the program in postfix notation, e.g. "2 3 4 * +".
// NOP instructions are omitted.
func (p Program) String() string {
	parts := make([]string, 0, len(p))
	for _, in := range p {
		if in.Kind == NOP {
			continue
		}
		parts = append(parts, in.String())
	}
	return strings.Join(parts, " ")
}
