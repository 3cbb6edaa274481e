package dto

import (
	"github.com/DjordjeVuckovic/shunt-calc/internal/parser"
	"github.com/DjordjeVuckovic/shunt-calc/internal/token"
	"github.com/google/uuid"
)

// MaxExpressionLength bounds a single request line.
const MaxExpressionLength = 4096

type EvalRequest struct {
	Expression *string `json:"expression" example:"2+3*4"`
	// Trace adds tokens and the postfix program to the response.
	Trace bool `json:"trace,omitempty"`
}

type EvalResponse struct {
	ID         *uuid.UUID     `json:"id,omitempty" swaggertype:"string" format:"uuid"`
	Expression string         `json:"expression" example:"2+3*4"`
	Value      int32          `json:"value" example:"14"`
	Postfix    string         `json:"postfix,omitempty" example:"2 3 4 * +"`
	Tokens     []token.Token  `json:"tokens,omitempty"`
	Program    parser.Program `json:"program,omitempty"`
}

type OperatorInfo struct {
	Symbol           string `json:"symbol" example:"//"`
	Name             string `json:"name" example:"div"`
	Precedence       int    `json:"precedence" example:"15"`
	RightAssociative bool   `json:"rightAssociative"`
}

type OperatorsResponse struct {
	Operators  []OperatorInfo `json:"operators"`
	ErrorKinds []string       `json:"errorKinds"`
}

// ErrorResponse mirrors what apperr.GlobalErrorHandler writes.
type ErrorResponse struct {
	Error string `json:"error" example:"eval: division by zero"`
	Kind  string `json:"kind,omitempty" example:"bad_calculation"`
	Stage string `json:"stage,omitempty" example:"eval"`
	Title string `json:"title,omitempty" example:"failed to evaluate"`
}
