package token

import (
	"fmt"

	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/value"
)

type Type int

const (
	LITERAL Type = iota
	OPERATOR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case LITERAL:
		return "LITERAL"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	for _, known := range []Type{LITERAL, OPERATOR, LPAREN, RPAREN} {
		if known.String() == string(text) {
			*t = known
			return nil
		}
	}
	return fmt.Errorf("unknown token type %q", text)
}

// Token is one lexical unit of an expression. Literal is set for LITERAL
// tokens, Op for OPERATOR tokens. Tokens carry no position information.
type Token struct {
	Type    Type              `json:"type"`
	Literal value.Value       `json:"literal,omitempty"`
	Op      operator.Operator `json:"op,omitempty"`
}

func Literal(v value.Value) Token {
	return Token{Type: LITERAL, Literal: v}
}

func BinaryOp(op operator.Operator) Token {
	return Token{Type: OPERATOR, Op: op}
}

func ParenOpen() Token {
	return Token{Type: LPAREN}
}

func ParenClose() Token {
	return Token{Type: RPAREN}
}

func (t Token) String() string {
	switch t.Type {
	case LITERAL:
		return value.Format(t.Literal)
	case OPERATOR:
		return t.Op.String()
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return "?"
	}
}
