package apperr

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// Pipeline error kinds. Stage errors below wrap exactly one of these.
var (
	ErrBadChar        = errors.New("bad character")
	ErrFailedNumLit   = errors.New("failed numeric literal")
	ErrUnclosedParens = errors.New("unclosed parentheses")
	ErrEmpty          = errors.New("empty program")
	ErrTooFewArgs     = errors.New("too few arguments")
	ErrNonSingular    = errors.New("non-singular result")
	ErrBadCalculation = errors.New("bad calculation")
)

type Stage string

const (
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
	StageEval  Stage = "eval"
)

// LexError is returned by the lexer. Char is the offending byte for ErrBadChar.
type LexError struct {
	Err  error
	Char byte
}

func (e *LexError) Error() string {
	if errors.Is(e.Err, ErrBadChar) {
		return fmt.Sprintf("lex: %v %q", e.Err, e.Char)
	}
	return "lex: " + e.Err.Error()
}

func (e *LexError) Unwrap() error {
	return e.Err
}

func NewBadChar(c byte) *LexError {
	return &LexError{Err: ErrBadChar, Char: c}
}

func NewFailedNumLit() *LexError {
	return &LexError{Err: ErrFailedNumLit}
}

type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func NewUnclosedParens() *ParseError {
	return &ParseError{Err: ErrUnclosedParens}
}

// EvalError is returned by the evaluator. Detail is optional context such as
// "division by zero".
type EvalError struct {
	Err    error
	Detail string
}

func (e *EvalError) Error() string {
	if e.Detail != "" {
		return "eval: " + e.Err.Error() + ": " + e.Detail
	}
	return "eval: " + e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func NewEval(kind error) *EvalError {
	return &EvalError{Err: kind}
}

func NewBadCalculation(detail string) *EvalError {
	return &EvalError{Err: ErrBadCalculation, Detail: detail}
}

// StageOf returns the pipeline stage an error came from, or "" when err is
// not a pipeline error.
func StageOf(err error) Stage {
	var le *LexError
	var pe *ParseError
	var ee *EvalError
	switch {
	case errors.As(err, &le):
		return StageLex
	case errors.As(err, &pe):
		return StageParse
	case errors.As(err, &ee):
		return StageEval
	default:
		return ""
	}
}

var kinds = []struct {
	err  error
	name string
}{
	{ErrBadChar, "bad_char"},
	{ErrFailedNumLit, "failed_num_lit"},
	{ErrUnclosedParens, "unclosed_parens"},
	{ErrEmpty, "empty"},
	{ErrTooFewArgs, "too_few_args"},
	{ErrNonSingular, "non_singular"},
	{ErrBadCalculation, "bad_calculation"},
}

// KindOf returns the stable snake_case name of a pipeline error kind, or ""
// when err does not wrap one.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// KindNames lists every pipeline error kind name.
func KindNames() []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.name
	}
	return out
}

// IsPipeline reports whether err came out of the lex/reduce/evaluate pipeline.
func IsPipeline(err error) bool {
	return StageOf(err) != ""
}
