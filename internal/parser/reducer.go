package parser

import (
	"fmt"

	"github.com/DjordjeVuckovic/shunt-calc/internal/apperr"
	"github.com/DjordjeVuckovic/shunt-calc/internal/token"
	"github.com/DjordjeVuckovic/shunt-calc/internal/types/operator"
)

// stackEntry is either a pending operator or an open-parenthesis marker.
type stackEntry struct {
	paren bool
	op    operator.Operator
}

// Reducer reorders infix tokens into a postfix Program using the
// shunting-yard algorithm. Precedence and associativity come from the
// operator table; the reducer has no per-operator logic of its own.
type Reducer struct{}

func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce converts tokens to postfix. The only structural failure is an
// unmatched parenthesis, reported as apperr.ErrUnclosedParens.
func (r *Reducer) Reduce(tokens []token.Token) (Program, error) {
	opstack := make([]stackEntry, 0)
	output := make(Program, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Type {
		case token.LITERAL:
			output = append(output, Push(tok.Literal))
		case token.OPERATOR:
			for len(opstack) > 0 {
				top := opstack[len(opstack)-1]
				if top.paren || !emitsBefore(top.op, tok.Op) {
					break
				}
				output = append(output, Apply(top.op))
				opstack = opstack[:len(opstack)-1]
			}
			opstack = append(opstack, stackEntry{op: tok.Op})
		case token.LPAREN:
			opstack = append(opstack, stackEntry{paren: true})
		case token.RPAREN:
			for {
				if len(opstack) == 0 {
					return nil, apperr.NewUnclosedParens()
				}
				top := opstack[len(opstack)-1]
				opstack = opstack[:len(opstack)-1]
				if top.paren {
					break
				}
				output = append(output, Apply(top.op))
			}
		default:
			return nil, fmt.Errorf("reduce: unexpected token type %s", tok.Type)
		}
	}

	for i := len(opstack) - 1; i >= 0; i-- {
		if opstack[i].paren {
			return nil, apperr.NewUnclosedParens()
		}
		output = append(output, Apply(opstack[i].op))
	}

	return output, nil
}

// emitsBefore reports whether stacked, already on the operator stack, must be
// moved to the output before incoming is pushed.
func emitsBefore(stacked, incoming operator.Operator) bool {
	if stacked.Precedence() > incoming.Precedence() {
		return true
	}
	return stacked.Precedence() == incoming.Precedence() && !incoming.IsRightAssociative()
}
